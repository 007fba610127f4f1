package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garnizeh/recruitd/api"
	"github.com/garnizeh/recruitd/internal/security"
	"github.com/garnizeh/recruitd/pkg/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware(t *testing.T) {
	h := api.CORSMiddleware(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := api.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	issuer := security.NewTokenIssuer(testSecret, time.Hour)
	other := security.NewTokenIssuer("other-secret", time.Hour)
	expired := security.NewTokenIssuer(testSecret, -time.Hour)

	valid, err := issuer.Issue("alice01", models.RoleApplicant)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	foreign, err := other.Issue("alice01", models.RoleApplicant)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	stale, err := expired.Issue("alice01", models.RoleApplicant)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	var seen *security.Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(api.CtxIdentity).(*security.Identity)
		w.WriteHeader(http.StatusOK)
	})
	h := api.AuthMiddleware(issuer)(inner)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"expired", "Bearer " + stale, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantStatus == http.StatusOK {
				if seen == nil || seen.Username != "alice01" || seen.Role != models.RoleApplicant {
					t.Fatalf("expected identity in context, got %#v", seen)
				}
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := api.RequireRole(models.RoleRecruiter)(okHandler())

	withIdentity := func(id *security.Identity) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if id != nil {
			req = req.WithContext(context.WithValue(req.Context(), api.CtxIdentity, id))
		}
		return req
	}

	tests := []struct {
		name       string
		id         *security.Identity
		wantStatus int
	}{
		{"matching role", &security.Identity{Username: "rick01", Role: models.RoleRecruiter}, http.StatusOK},
		{"wrong role", &security.Identity{Username: "alice01", Role: models.RoleApplicant}, http.StatusForbidden},
		{"no identity", nil, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, withIdentity(tc.id))
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
