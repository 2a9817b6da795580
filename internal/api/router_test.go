package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/acme/user-directory/internal/infrastructure/memory"
)

// The whole request lifecycle runs against a single seeded router instance,
// in order: login, protected CRUD, conflict and validation failures, logout.
// One instance because the Prometheus middleware registers its collectors on
// the process-wide default registry.
func TestAPIScenario(t *testing.T) {
	clock := clockwork.NewFakeClock()
	repo := memory.NewUserRepository()
	if err := memory.Seed(context.Background(), repo, clock); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	e := NewRouter(repo, "test-secret", time.Hour, clock, zerolog.Nop())

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var out map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json response: %v (%s)", err, rec.Body.String())
		}
		return out
	}

	var token string
	var annID string

	t.Run("root health", func(t *testing.T) {
		rec := do(http.MethodGet, "/", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := decode(rec); body["status"] != "ok" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("login validation failure", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/login", "", `{"password":"password"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decode(rec)
		fields, ok := body["fields"].(map[string]any)
		if !ok {
			t.Fatalf("expected fields map, got %v", body)
		}
		if _, ok := fields["email"]; !ok {
			t.Fatalf("expected email field error, got %v", fields)
		}
	})

	t.Run("login invalid credentials", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/login", "", `{"email":"demo@example.com","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("login success", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/login", "", `{"email":"demo@example.com","password":"password"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decode(rec)
		token, _ = body["token"].(string)
		if token == "" {
			t.Fatalf("expected token in response")
		}
		user, ok := body["user"].(map[string]any)
		if !ok {
			t.Fatalf("expected user in response")
		}
		if user["email"] != "demo@example.com" {
			t.Fatalf("unexpected user: %v", user)
		}
		if _, leaked := user["password"]; leaked {
			t.Fatalf("password leaked in login response")
		}
	})

	t.Run("protected routes reject missing token", func(t *testing.T) {
		if rec := do(http.MethodGet, "/api/users", "", ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if rec := do(http.MethodPost, "/api/logout", "", ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("list seeded users newest first", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/users", token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var users []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(users) != memory.SeedCount() {
			t.Fatalf("expected %d users, got %d", memory.SeedCount(), len(users))
		}
		if users[0]["email"] != "demo@example.com" {
			t.Fatalf("expected most recently created first, got %v", users[0]["email"])
		}
		for _, u := range users {
			if _, leaked := u["password"]; leaked {
				t.Fatalf("password leaked in list response: %v", u)
			}
		}
	})

	t.Run("create normalizes email", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/users", token, `{"name":"Ann Lee","email":"ANN@X.COM","role":"viewer","password":"secret1"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decode(rec)
		if body["email"] != "ann@x.com" {
			t.Fatalf("expected normalized email, got %v", body["email"])
		}
		if body["role"] != "viewer" {
			t.Fatalf("expected viewer role, got %v", body["role"])
		}
		annID, _ = body["id"].(string)
		if annID == "" {
			t.Fatalf("expected id in response")
		}
	})

	t.Run("repeat create conflicts", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/users", token, `{"name":"Ann Lee","email":"ANN@X.COM","role":"viewer","password":"secret1"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("create validation failure maps fields", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/users", token, `{"name":" a ","email":"not-an-email","role":"chief","password":"short"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		fields, _ := decode(rec)["fields"].(map[string]any)
		for _, f := range []string{"name", "email", "role", "password"} {
			if _, ok := fields[f]; !ok {
				t.Fatalf("expected %s field error, got %v", f, fields)
			}
		}
	})

	t.Run("malformed body maps to root", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/users", token, `{not json`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		fields, _ := decode(rec)["fields"].(map[string]any)
		if _, ok := fields["root"]; !ok {
			t.Fatalf("expected root field error, got %v", fields)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/users/"+annID, token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := decode(rec); body["email"] != "ann@x.com" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/users/no-such-id", token, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("update skips empty fields", func(t *testing.T) {
		rec := do(http.MethodPut, "/api/users/"+annID, token, `{"name":"Ann B. Lee","password":""}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if body := decode(rec); body["name"] != "Ann B. Lee" {
			t.Fatalf("expected updated name, got %v", body["name"])
		}

		// Empty password above was a no-op: the original one still logs in.
		login := do(http.MethodPost, "/api/login", "", `{"email":"ann@x.com","password":"secret1"}`)
		if login.Code != http.StatusOK {
			t.Fatalf("expected original password to survive empty update, got %d", login.Code)
		}
	})

	t.Run("update with no fields changes nothing", func(t *testing.T) {
		rec := do(http.MethodPut, "/api/users/"+annID, token, `{}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decode(rec)
		if body["name"] != "Ann B. Lee" || body["email"] != "ann@x.com" || body["role"] != "viewer" {
			t.Fatalf("record changed unexpectedly: %v", body)
		}
	})

	t.Run("update email conflict", func(t *testing.T) {
		rec := do(http.MethodPut, "/api/users/"+annID, token, `{"email":"DEMO@example.com"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		rec := do(http.MethodPut, "/api/users/no-such-id", token, `{"name":"Nobody"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("delete returns deleted record", func(t *testing.T) {
		rec := do(http.MethodDelete, "/api/users/"+annID, token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decode(rec)
		if body["success"] != true {
			t.Fatalf("expected success true, got %v", body)
		}
		user, _ := body["user"].(map[string]any)
		if user["email"] != "ann@x.com" {
			t.Fatalf("expected deleted record in response, got %v", body)
		}

		if rec := do(http.MethodGet, "/api/users/"+annID, token, ""); rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		clock.Advance(61 * time.Minute)
		rec := do(http.MethodGet, "/api/users", token, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 after expiry, got %d", rec.Code)
		}
	})

	t.Run("logout requires valid token", func(t *testing.T) {
		login := do(http.MethodPost, "/api/login", "", `{"email":"demo@example.com","password":"password"}`)
		fresh, _ := decode(login)["token"].(string)

		rec := do(http.MethodPost, "/api/logout", fresh, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := decode(rec); body["success"] != true {
			t.Fatalf("expected success true, got %v", body)
		}

		// Logout is advisory: the token stays valid until expiry.
		if rec := do(http.MethodGet, "/api/users", fresh, ""); rec.Code != http.StatusOK {
			t.Fatalf("expected token still valid after logout, got %d", rec.Code)
		}
	})
}
