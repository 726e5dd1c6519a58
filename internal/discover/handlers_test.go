package discover

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"

	"github.com/gofiber/fiber/v2"
)

func newApp(storage store.Storage) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/api"), storage)
	return app
}

func postGem(t *testing.T, app *fiber.App, gem model.InsertHiddenGem) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(gem)
	req := httptest.NewRequest(http.MethodPost, "/api/hidden-gems", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func TestHiddenGemHandlersCreateAndGet(t *testing.T) {
	app := newApp(store.NewMemStorage())

	resp := postGem(t, app, model.InsertHiddenGem{
		Title:       "Shakespeare and Company",
		Description: "Historic bookstore",
		Location:    "Latin Quarter, Paris",
		Rating:      47,
		ReviewCount: 156,
		Tags:        []string{"books", "historic"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}
	var created model.HiddenGem
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 1 || created.Rating != 47 {
		t.Fatalf("unexpected gem: %+v", created)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/hidden-gems/1", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/hidden-gems/99", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHiddenGemHandlersLocationFilter(t *testing.T) {
	app := newApp(store.NewMemStorage())

	for _, loc := range []string{"Saint-Germain-des-Prés, Paris", "Shibuya, Tokyo"} {
		resp := postGem(t, app, model.InsertHiddenGem{Title: loc, Description: "d", Location: loc})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create status %d", resp.StatusCode)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/hidden-gems?location=paris", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filter status %d", resp.StatusCode)
	}
	var gems []model.HiddenGem
	if err := json.NewDecoder(resp.Body).Decode(&gems); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(gems) != 1 || gems[0].Location != "Saint-Germain-des-Prés, Paris" {
		t.Fatalf("unexpected filtered gems: %+v", gems)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/hidden-gems", nil)
	resp, _ = app.Test(req)
	gems = nil
	if err := json.NewDecoder(resp.Body).Decode(&gems); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(gems) != 2 {
		t.Fatalf("expected full listing without filter")
	}
}

func TestHiddenGemHandlersTripScopedListing(t *testing.T) {
	app := newApp(store.NewMemStorage())

	resp := postGem(t, app, model.InsertHiddenGem{Title: "Gem", Description: "d", Location: "Paris"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	// any numeric trip id yields the full set of gems
	req := httptest.NewRequest(http.MethodGet, "/api/trips/999/hidden-gems", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("trip-scoped status %d", resp.StatusCode)
	}
	var gems []model.HiddenGem
	if err := json.NewDecoder(resp.Body).Decode(&gems); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(gems) != 1 {
		t.Fatalf("expected full gem set")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips/abc/hidden-gems", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric trip id, got %d", resp.StatusCode)
	}
}

func TestHiddenGemHandlersValidation(t *testing.T) {
	app := newApp(store.NewMemStorage())

	resp := postGem(t, app, model.InsertHiddenGem{Title: "No location"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp = postGem(t, app, model.InsertHiddenGem{Title: "t", Description: "d", Location: "l", Rating: 51})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d", resp.StatusCode)
	}
}
