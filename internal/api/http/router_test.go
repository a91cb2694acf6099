package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elegance-studio/salon-service/internal/api/http/handlers"
	"github.com/elegance-studio/salon-service/internal/auth"
	"github.com/elegance-studio/salon-service/internal/config"
	"github.com/elegance-studio/salon-service/internal/observability"
	"github.com/elegance-studio/salon-service/internal/persistence"
	"github.com/elegance-studio/salon-service/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	kv, err := persistence.NewFileStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	directory, err := store.NewStaffDirectory(ctx, kv, nil, logger)
	if err != nil {
		t.Fatalf("NewStaffDirectory: %v", err)
	}
	ledger, err := store.NewAppointmentLedger(ctx, kv, nil, logger)
	if err != nil {
		t.Fatalf("NewAppointmentLedger: %v", err)
	}
	admin, err := auth.NewAdmin(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		AdminEmail:            "admin@elegance.salon",
		AdminPassword:         "s3cret",
	})
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:          handlers.NewHealthHandler("salon-service", "test", kv),
		Auth:            handlers.NewAuthHandler(admin),
		Staff:           handlers.NewStaffHandler(directory),
		Appointments:    handlers.NewAppointmentsHandler(ledger),
		AdminMiddleware: auth.NewAdminMiddleware(admin),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var parsed map[string]any
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(data) > 0 {
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("decode response %s: %v", data, err)
		}
	}
	return resp, parsed
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/auth/admin/login", "", map[string]string{
		"email":    "admin@elegance.salon",
		"password": "s3cret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d %v", resp.StatusCode, body)
	}
	return body["data"].(map[string]any)["token"].(string)
}

func TestHealthLive(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	if resp.StatusCode != http.StatusOK || body["status"] != "alive" {
		t.Fatalf("unexpected response: %d %v", resp.StatusCode, body)
	}
}

func TestStaffMutationsRequireAdminToken(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/staff", "", map[string]any{"name": "X"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d %v", resp.StatusCode, body)
	}
}

func TestStaffCreateListFlow(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/staff", token, map[string]any{
		"name":        "New Stylist",
		"email":       "new@elegance.salon",
		"phone":       "555-0199",
		"role":        "Stylist",
		"specialties": []string{"Haircut"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", resp.StatusCode, body)
	}
	created := body["data"].(map[string]any)
	if created["status"] != "active" {
		t.Fatalf("expected active status, got %v", created["status"])
	}

	resp, body = doJSON(t, app, http.MethodGet, "/staff", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	// 4 seeded members plus the new one.
	if got := len(body["data"].([]any)); got != 5 {
		t.Fatalf("expected 5 members, got %d", got)
	}
}

func TestStaffCreate_DuplicateEmailConflict(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	payload := map[string]any{
		"name":        "Clone",
		"email":       "SOPHIA@elegance.salon",
		"phone":       "555-0999",
		"role":        "Stylist",
		"specialties": []string{"Haircut"},
	}
	resp, body := doJSON(t, app, http.MethodPost, "/staff", token, payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d %v", resp.StatusCode, body)
	}
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "DUPLICATE" {
		t.Fatalf("unexpected error code: %v", errObj["code"])
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	app := newTestApp(t)

	// 2024-01-01 is a Monday; only the seeded senior stylist cuts hair
	// on Mondays.
	resp, body := doJSON(t, app, http.MethodGet, "/staff/available?date=2024-01-01&time=10:00&service=Haircut", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", resp.StatusCode, body)
	}
	matches := body["data"].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].(map[string]any)["name"] != "Sophia Laurent" {
		t.Fatalf("unexpected match: %v", matches[0])
	}
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/appointments", "", map[string]any{
		"email":    "client@example.com",
		"date":     "2024-01-01",
		"time":     "10:00",
		"service":  "Haircut",
		"staff_id": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodGet, "/appointments/lookup?email=client@example.com", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", resp.StatusCode, body)
	}
	appt := body["data"].(map[string]any)
	if appt["service"] != "Haircut" {
		t.Fatalf("unexpected appointment: %v", appt)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, "/appointments/1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, body = doJSON(t, app, http.MethodGet, "/appointments/lookup?email=client@example.com", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after cancel, got %d %v", resp.StatusCode, body)
	}
}
