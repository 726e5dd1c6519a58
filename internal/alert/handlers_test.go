package alert

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"
	"backend-oneskyquest/internal/stream"

	"github.com/gofiber/fiber/v2"
)

func newApp(storage store.Storage, hub *stream.Hub) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/api"), storage, hub)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func TestAlertHandlersCreateIgnoresClientReadFlag(t *testing.T) {
	app := newApp(store.NewMemStorage(), nil)

	body := []byte(`{"userId":1,"title":"Flight Delayed","message":"2 hours late","alertType":"flight","isRead":true}`)
	resp := doJSON(t, app, http.MethodPost, "/api/alerts", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}
	var created model.Alert
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.IsRead {
		t.Fatalf("expected isRead forced to false")
	}
	if created.Urgency != model.UrgencyNormal {
		t.Fatalf("expected urgency defaulted to normal")
	}
}

func TestAlertHandlersBroadcastsToOwnerFeed(t *testing.T) {
	hub := stream.NewHub(nil)
	app := newApp(store.NewMemStorage(), hub)

	client := hub.Register(1)
	defer hub.Unregister(client)

	body := []byte(`{"userId":1,"title":"Weather Alert","message":"Heavy rain","alertType":"weather"}`)
	resp := doJSON(t, app, http.MethodPost, "/api/alerts", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	select {
	case payload := <-client.Send:
		var pushed model.Alert
		if err := json.Unmarshal(payload, &pushed); err != nil {
			t.Fatalf("unmarshal pushed alert: %v", err)
		}
		if pushed.Title != "Weather Alert" {
			t.Fatalf("unexpected pushed alert: %+v", pushed)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for pushed alert")
	}
}

func TestAlertHandlersMarkReadIsIdempotent(t *testing.T) {
	app := newApp(store.NewMemStorage(), nil)

	body := []byte(`{"userId":1,"title":"Deal","message":"20% off","alertType":"deal"}`)
	resp := doJSON(t, app, http.MethodPost, "/api/alerts", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/alerts/1/read", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("mark read status %d", resp.StatusCode)
		}
		var marked model.Alert
		if err := json.NewDecoder(resp.Body).Decode(&marked); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !marked.IsRead {
			t.Fatalf("expected alert read")
		}
	}

	resp = doJSON(t, app, http.MethodPost, "/api/alerts/99/read", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAlertHandlersTripScopedListing(t *testing.T) {
	app := newApp(store.NewMemStorage(), nil)

	body := []byte(`{"userId":1,"tripId":4,"title":"Metro Disruption","message":"Line 1 closed","alertType":"transport"}`)
	resp := doJSON(t, app, http.MethodPost, "/api/alerts", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/trips/4/alerts", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	var alerts []model.Alert
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert")
	}

	// alerts for an unknown trip are an empty list, not a 404
	resp = doJSON(t, app, http.MethodGet, "/api/trips/999/alerts", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for unknown trip, got %d", resp.StatusCode)
	}
	var none []model.Alert
	if err := json.NewDecoder(resp.Body).Decode(&none); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestAlertHandlersPatchAndDelete(t *testing.T) {
	app := newApp(store.NewMemStorage(), nil)

	body := []byte(`{"userId":1,"title":"Deal","message":"20% off","alertType":"deal"}`)
	resp := doJSON(t, app, http.MethodPost, "/api/alerts", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/alerts/1", []byte(`{"urgency":"loud"}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad urgency, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/alerts/1", []byte(`{"urgency":"urgent"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch status %d", resp.StatusCode)
	}
	var patched model.Alert
	if err := json.NewDecoder(resp.Body).Decode(&patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Urgency != model.UrgencyUrgent {
		t.Fatalf("unexpected alert: %+v", patched)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/alerts/1", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodDelete, "/api/alerts/1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", resp.StatusCode)
	}
}

func TestAlertHandlersValidation(t *testing.T) {
	app := newApp(store.NewMemStorage(), nil)

	resp := doJSON(t, app, http.MethodPost, "/api/alerts", []byte(`{"userId":1,"title":"x","message":"y","alertType":"rumor"}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad alertType, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/alerts/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}
