package store

import (
	"context"
	"errors"

	"backend-oneskyquest/internal/db"
	"backend-oneskyquest/internal/model"

	"github.com/jackc/pgx/v5"
)

// PostgresStorage implements Storage over a relational database. Identifier
// assignment moves to SERIAL columns; everything else keeps the in-memory
// contract, including absent rows reported as a false instead of an error.
type PostgresStorage struct {
	db db.Querier
}

func NewPostgresStorage(q db.Querier) *PostgresStorage {
	return &PostgresStorage{db: q}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.FullName, &u.Bio, &u.ProfileImage, &u.CreatedAt)
	return u, err
}

func scanTrip(row rowScanner) (model.Trip, error) {
	var t model.Trip
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.StartDate, &t.EndDate, &t.Status, &t.Budget, &t.Travelers, &t.ImageURL, &t.CreatedAt)
	return t, err
}

func scanItineraryItem(row rowScanner) (model.ItineraryItem, error) {
	var i model.ItineraryItem
	err := row.Scan(&i.ID, &i.TripID, &i.Title, &i.Description, &i.ItemType, &i.StartTime, &i.EndTime, &i.Location, &i.Cost, &i.Day, &i.IsCustom)
	return i, err
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var e model.Expense
	err := row.Scan(&e.ID, &e.TripID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.Notes, &e.CreatedAt)
	return e, err
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.TripID, &b.BookingType, &b.Title, &b.Provider, &b.ConfirmationCode, &b.StartDate, &b.EndDate, &b.Location, &b.Cost, &b.Details, &b.CreatedAt)
	return b, err
}

func scanAlert(row rowScanner) (model.Alert, error) {
	var a model.Alert
	err := row.Scan(&a.ID, &a.UserID, &a.TripID, &a.Title, &a.Message, &a.AlertType, &a.Urgency, &a.IsRead, &a.CreatedAt, &a.ExpiresAt)
	return a, err
}

func scanHiddenGem(row rowScanner) (model.HiddenGem, error) {
	var g model.HiddenGem
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Location, &g.ImageURL, &g.Rating, &g.ReviewCount, &g.ReviewerType, &g.Tags, &g.CreatedAt)
	return g, err
}

func scanCommunityPost(row rowScanner) (model.CommunityPost, error) {
	var p model.CommunityPost
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Location, &p.LikeCount, &p.ReplyCount, &p.CreatedAt)
	return p, err
}

func scanLocalExpert(row rowScanner) (model.LocalExpert, error) {
	var e model.LocalExpert
	err := row.Scan(&e.ID, &e.UserID, &e.Location, &e.Specialties, &e.Bio, &e.Rating, &e.ReviewCount, &e.IsVerified, &e.CreatedAt)
	return e, err
}

// Users

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (model.User, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, password, email, full_name, bio, profile_image, created_at
		FROM users WHERE id=$1
	`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (model.User, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, password, email, full_name, bio, profile_image, created_at
		FROM users WHERE username=$1
	`, username)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (model.User, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, password, email, full_name, bio, profile_image, created_at
		FROM users WHERE email=$1
	`, email)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, in model.InsertUser) (model.User, error) {
	u := model.User{
		Username:     in.Username,
		Password:     in.Password,
		Email:        in.Email,
		FullName:     in.FullName,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO users (username, password, email, full_name, bio, profile_image)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`, in.Username, in.Password, in.Email, in.FullName, in.Bio, in.ProfileImage)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Trips

func (s *PostgresStorage) GetTrips(ctx context.Context) ([]model.Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, destination, start_date, end_date, status, budget, travelers, image_url, created_at
		FROM trips ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (s *PostgresStorage) GetTripsByUserID(ctx context.Context, userID int) ([]model.Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, destination, start_date, end_date, status, budget, travelers, image_url, created_at
		FROM trips WHERE user_id=$1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (s *PostgresStorage) GetTrip(ctx context.Context, id int) (model.Trip, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, destination, start_date, end_date, status, budget, travelers, image_url, created_at
		FROM trips WHERE id=$1
	`, id)
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Trip{}, false, nil
	}
	if err != nil {
		return model.Trip{}, false, err
	}
	return t, true, nil
}

func (s *PostgresStorage) CreateTrip(ctx context.Context, in model.InsertTrip) (model.Trip, error) {
	status := in.Status
	if status == "" {
		status = model.TripStatusPlanned
	}
	travelers := in.Travelers
	if travelers < 1 {
		travelers = 1
	}
	t := model.Trip{
		UserID:      in.UserID,
		Title:       in.Title,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Budget:      in.Budget,
		Travelers:   travelers,
		ImageURL:    in.ImageURL,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO trips (user_id, title, destination, start_date, end_date, status, budget, travelers, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at
	`, t.UserID, t.Title, t.Destination, t.StartDate, t.EndDate, t.Status, t.Budget, t.Travelers, t.ImageURL)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return model.Trip{}, err
	}
	return t, nil
}

func (s *PostgresStorage) UpdateTrip(ctx context.Context, id int, patch model.TripPatch) (model.Trip, bool, error) {
	t, ok, err := s.GetTrip(ctx, id)
	if err != nil || !ok {
		return model.Trip{}, ok, err
	}
	t = patch.Apply(t)
	_, err = s.db.Exec(ctx, `
		UPDATE trips
		SET title=$2, destination=$3, start_date=$4, end_date=$5, status=$6, budget=$7, travelers=$8, image_url=$9
		WHERE id=$1
	`, t.ID, t.Title, t.Destination, t.StartDate, t.EndDate, t.Status, t.Budget, t.Travelers, t.ImageURL)
	if err != nil {
		return model.Trip{}, false, err
	}
	return t, true, nil
}

func (s *PostgresStorage) DeleteTrip(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Itinerary items

func (s *PostgresStorage) GetItineraryItemsByTripID(ctx context.Context, tripID int) ([]model.ItineraryItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, title, description, item_type, start_time, end_time, location, cost, day, is_custom
		FROM itinerary_items WHERE trip_id=$1 ORDER BY id
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.ItineraryItem{}
	for rows.Next() {
		i, err := scanItineraryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (s *PostgresStorage) GetItineraryItem(ctx context.Context, id int) (model.ItineraryItem, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, trip_id, title, description, item_type, start_time, end_time, location, cost, day, is_custom
		FROM itinerary_items WHERE id=$1
	`, id)
	i, err := scanItineraryItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ItineraryItem{}, false, nil
	}
	if err != nil {
		return model.ItineraryItem{}, false, err
	}
	return i, true, nil
}

func (s *PostgresStorage) CreateItineraryItem(ctx context.Context, in model.InsertItineraryItem) (model.ItineraryItem, error) {
	i := model.ItineraryItem{
		TripID:      in.TripID,
		Title:       in.Title,
		Description: in.Description,
		ItemType:    in.ItemType,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Location:    in.Location,
		Cost:        in.Cost,
		Day:         in.Day,
		IsCustom:    in.IsCustom,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO itinerary_items (trip_id, title, description, item_type, start_time, end_time, location, cost, day, is_custom)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, i.TripID, i.Title, i.Description, i.ItemType, i.StartTime, i.EndTime, i.Location, i.Cost, i.Day, i.IsCustom)
	if err := row.Scan(&i.ID); err != nil {
		return model.ItineraryItem{}, err
	}
	return i, nil
}

func (s *PostgresStorage) UpdateItineraryItem(ctx context.Context, id int, patch model.ItineraryItemPatch) (model.ItineraryItem, bool, error) {
	i, ok, err := s.GetItineraryItem(ctx, id)
	if err != nil || !ok {
		return model.ItineraryItem{}, ok, err
	}
	i = patch.Apply(i)
	_, err = s.db.Exec(ctx, `
		UPDATE itinerary_items
		SET title=$2, description=$3, item_type=$4, start_time=$5, end_time=$6, location=$7, cost=$8, day=$9, is_custom=$10
		WHERE id=$1
	`, i.ID, i.Title, i.Description, i.ItemType, i.StartTime, i.EndTime, i.Location, i.Cost, i.Day, i.IsCustom)
	if err != nil {
		return model.ItineraryItem{}, false, err
	}
	return i, true, nil
}

func (s *PostgresStorage) DeleteItineraryItem(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM itinerary_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Expenses

func (s *PostgresStorage) GetExpensesByTripID(ctx context.Context, tripID int) ([]model.Expense, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, title, amount, category, date, notes, created_at
		FROM expenses WHERE trip_id=$1 ORDER BY id
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *PostgresStorage) GetExpense(ctx context.Context, id int) (model.Expense, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, trip_id, title, amount, category, date, notes, created_at
		FROM expenses WHERE id=$1
	`, id)
	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Expense{}, false, nil
	}
	if err != nil {
		return model.Expense{}, false, err
	}
	return e, true, nil
}

func (s *PostgresStorage) CreateExpense(ctx context.Context, in model.InsertExpense) (model.Expense, error) {
	e := model.Expense{
		TripID:   in.TripID,
		Title:    in.Title,
		Amount:   in.Amount,
		Category: in.Category,
		Date:     in.Date,
		Notes:    in.Notes,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO expenses (trip_id, title, amount, category, date, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`, e.TripID, e.Title, e.Amount, e.Category, e.Date, e.Notes)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

func (s *PostgresStorage) UpdateExpense(ctx context.Context, id int, patch model.ExpensePatch) (model.Expense, bool, error) {
	e, ok, err := s.GetExpense(ctx, id)
	if err != nil || !ok {
		return model.Expense{}, ok, err
	}
	e = patch.Apply(e)
	_, err = s.db.Exec(ctx, `
		UPDATE expenses
		SET title=$2, amount=$3, category=$4, date=$5, notes=$6
		WHERE id=$1
	`, e.ID, e.Title, e.Amount, e.Category, e.Date, e.Notes)
	if err != nil {
		return model.Expense{}, false, err
	}
	return e, true, nil
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Bookings

func (s *PostgresStorage) GetBookingsByTripID(ctx context.Context, tripID int) ([]model.Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, booking_type, title, provider, confirmation_code, start_date, end_date, location, cost, details, created_at
		FROM bookings WHERE trip_id=$1 ORDER BY id
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *PostgresStorage) GetBooking(ctx context.Context, id int) (model.Booking, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, trip_id, booking_type, title, provider, confirmation_code, start_date, end_date, location, cost, details, created_at
		FROM bookings WHERE id=$1
	`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Booking{}, false, nil
	}
	if err != nil {
		return model.Booking{}, false, err
	}
	return b, true, nil
}

func (s *PostgresStorage) CreateBooking(ctx context.Context, in model.InsertBooking) (model.Booking, error) {
	b := model.Booking{
		TripID:           in.TripID,
		BookingType:      in.BookingType,
		Title:            in.Title,
		Provider:         in.Provider,
		ConfirmationCode: in.ConfirmationCode,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Location:         in.Location,
		Cost:             in.Cost,
		Details:          in.Details,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO bookings (trip_id, booking_type, title, provider, confirmation_code, start_date, end_date, location, cost, details)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at
	`, b.TripID, b.BookingType, b.Title, b.Provider, b.ConfirmationCode, b.StartDate, b.EndDate, b.Location, b.Cost, b.Details)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

func (s *PostgresStorage) UpdateBooking(ctx context.Context, id int, patch model.BookingPatch) (model.Booking, bool, error) {
	b, ok, err := s.GetBooking(ctx, id)
	if err != nil || !ok {
		return model.Booking{}, ok, err
	}
	b = patch.Apply(b)
	_, err = s.db.Exec(ctx, `
		UPDATE bookings
		SET booking_type=$2, title=$3, provider=$4, confirmation_code=$5, start_date=$6, end_date=$7, location=$8, cost=$9, details=$10
		WHERE id=$1
	`, b.ID, b.BookingType, b.Title, b.Provider, b.ConfirmationCode, b.StartDate, b.EndDate, b.Location, b.Cost, b.Details)
	if err != nil {
		return model.Booking{}, false, err
	}
	return b, true, nil
}

func (s *PostgresStorage) DeleteBooking(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Alerts

func (s *PostgresStorage) GetAlertsByUserID(ctx context.Context, userID int) ([]model.Alert, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, trip_id, title, message, alert_type, urgency, is_read, created_at, expires_at
		FROM alerts WHERE user_id=$1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *PostgresStorage) GetAlertsByTripID(ctx context.Context, tripID int) ([]model.Alert, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, trip_id, title, message, alert_type, urgency, is_read, created_at, expires_at
		FROM alerts WHERE trip_id=$1 ORDER BY id
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *PostgresStorage) GetAlert(ctx context.Context, id int) (model.Alert, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, trip_id, title, message, alert_type, urgency, is_read, created_at, expires_at
		FROM alerts WHERE id=$1
	`, id)
	a, err := scanAlert(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Alert{}, false, nil
	}
	if err != nil {
		return model.Alert{}, false, err
	}
	return a, true, nil
}

func (s *PostgresStorage) CreateAlert(ctx context.Context, in model.InsertAlert) (model.Alert, error) {
	urgency := in.Urgency
	if urgency == "" {
		urgency = model.UrgencyNormal
	}
	a := model.Alert{
		UserID:    in.UserID,
		TripID:    in.TripID,
		Title:     in.Title,
		Message:   in.Message,
		AlertType: in.AlertType,
		Urgency:   urgency,
		IsRead:    false,
		ExpiresAt: in.ExpiresAt,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO alerts (user_id, trip_id, title, message, alert_type, urgency, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`, a.UserID, a.TripID, a.Title, a.Message, a.AlertType, a.Urgency, a.ExpiresAt)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return model.Alert{}, err
	}
	return a, nil
}

func (s *PostgresStorage) UpdateAlert(ctx context.Context, id int, patch model.AlertPatch) (model.Alert, bool, error) {
	a, ok, err := s.GetAlert(ctx, id)
	if err != nil || !ok {
		return model.Alert{}, ok, err
	}
	a = patch.Apply(a)
	_, err = s.db.Exec(ctx, `
		UPDATE alerts
		SET title=$2, message=$3, alert_type=$4, urgency=$5, expires_at=$6
		WHERE id=$1
	`, a.ID, a.Title, a.Message, a.AlertType, a.Urgency, a.ExpiresAt)
	if err != nil {
		return model.Alert{}, false, err
	}
	return a, true, nil
}

func (s *PostgresStorage) DeleteAlert(ctx context.Context, id int) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM alerts WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStorage) MarkAlertAsRead(ctx context.Context, id int) (model.Alert, bool, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE alerts SET is_read=true WHERE id=$1
		RETURNING id, user_id, trip_id, title, message, alert_type, urgency, is_read, created_at, expires_at
	`, id)
	a, err := scanAlert(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Alert{}, false, nil
	}
	if err != nil {
		return model.Alert{}, false, err
	}
	return a, true, nil
}

// Hidden gems

func (s *PostgresStorage) GetHiddenGems(ctx context.Context) ([]model.HiddenGem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, description, location, image_url, rating, review_count, reviewer_type, tags, created_at
		FROM hidden_gems ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gems := []model.HiddenGem{}
	for rows.Next() {
		g, err := scanHiddenGem(rows)
		if err != nil {
			return nil, err
		}
		gems = append(gems, g)
	}
	return gems, rows.Err()
}

func (s *PostgresStorage) GetHiddenGem(ctx context.Context, id int) (model.HiddenGem, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, title, description, location, image_url, rating, review_count, reviewer_type, tags, created_at
		FROM hidden_gems WHERE id=$1
	`, id)
	g, err := scanHiddenGem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.HiddenGem{}, false, nil
	}
	if err != nil {
		return model.HiddenGem{}, false, err
	}
	return g, true, nil
}

func (s *PostgresStorage) GetHiddenGemsByLocation(ctx context.Context, location string) ([]model.HiddenGem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, description, location, image_url, rating, review_count, reviewer_type, tags, created_at
		FROM hidden_gems WHERE location ILIKE '%' || $1 || '%' ORDER BY id
	`, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gems := []model.HiddenGem{}
	for rows.Next() {
		g, err := scanHiddenGem(rows)
		if err != nil {
			return nil, err
		}
		gems = append(gems, g)
	}
	return gems, rows.Err()
}

func (s *PostgresStorage) CreateHiddenGem(ctx context.Context, in model.InsertHiddenGem) (model.HiddenGem, error) {
	g := model.HiddenGem{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		ImageURL:     in.ImageURL,
		Rating:       in.Rating,
		ReviewCount:  in.ReviewCount,
		ReviewerType: in.ReviewerType,
		Tags:         in.Tags,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO hidden_gems (title, description, location, image_url, rating, review_count, reviewer_type, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at
	`, g.Title, g.Description, g.Location, g.ImageURL, g.Rating, g.ReviewCount, g.ReviewerType, g.Tags)
	if err := row.Scan(&g.ID, &g.CreatedAt); err != nil {
		return model.HiddenGem{}, err
	}
	return g, nil
}

// Community posts

func (s *PostgresStorage) GetCommunityPosts(ctx context.Context) ([]model.CommunityPost, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, content, location, like_count, reply_count, created_at
		FROM community_posts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.CommunityPost{}
	for rows.Next() {
		p, err := scanCommunityPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *PostgresStorage) GetCommunityPost(ctx context.Context, id int) (model.CommunityPost, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, content, location, like_count, reply_count, created_at
		FROM community_posts WHERE id=$1
	`, id)
	p, err := scanCommunityPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CommunityPost{}, false, nil
	}
	if err != nil {
		return model.CommunityPost{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStorage) CreateCommunityPost(ctx context.Context, in model.InsertCommunityPost) (model.CommunityPost, error) {
	p := model.CommunityPost{
		UserID:   in.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Location: in.Location,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO community_posts (user_id, title, content, location)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, p.UserID, p.Title, p.Content, p.Location)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return model.CommunityPost{}, err
	}
	return p, nil
}

// Local experts

func (s *PostgresStorage) GetLocalExperts(ctx context.Context) ([]model.LocalExpert, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, location, specialties, bio, rating, review_count, is_verified, created_at
		FROM local_experts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experts := []model.LocalExpert{}
	for rows.Next() {
		e, err := scanLocalExpert(rows)
		if err != nil {
			return nil, err
		}
		experts = append(experts, e)
	}
	return experts, rows.Err()
}

func (s *PostgresStorage) GetLocalExpertsByLocation(ctx context.Context, location string) ([]model.LocalExpert, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, location, specialties, bio, rating, review_count, is_verified, created_at
		FROM local_experts WHERE location ILIKE '%' || $1 || '%' ORDER BY id
	`, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experts := []model.LocalExpert{}
	for rows.Next() {
		e, err := scanLocalExpert(rows)
		if err != nil {
			return nil, err
		}
		experts = append(experts, e)
	}
	return experts, rows.Err()
}

func (s *PostgresStorage) GetLocalExpert(ctx context.Context, id int) (model.LocalExpert, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, location, specialties, bio, rating, review_count, is_verified, created_at
		FROM local_experts WHERE id=$1
	`, id)
	e, err := scanLocalExpert(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LocalExpert{}, false, nil
	}
	if err != nil {
		return model.LocalExpert{}, false, err
	}
	return e, true, nil
}

func (s *PostgresStorage) CreateLocalExpert(ctx context.Context, in model.InsertLocalExpert) (model.LocalExpert, error) {
	e := model.LocalExpert{
		UserID:      in.UserID,
		Location:    in.Location,
		Specialties: in.Specialties,
		Bio:         in.Bio,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO local_experts (user_id, location, specialties, bio)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, e.UserID, e.Location, e.Specialties, e.Bio)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return model.LocalExpert{}, err
	}
	return e, nil
}
