package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/garnizeh/recruitd/api"
	dbfs "github.com/garnizeh/recruitd/db"
	"github.com/garnizeh/recruitd/internal/config"
	dbpkg "github.com/garnizeh/recruitd/internal/db"
	"github.com/garnizeh/recruitd/internal/security"
)

const (
	testSecret = "test-secret"
	testPepper = "test-pepper"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testServer struct {
	srv  *httptest.Server
	conn *dbpkg.DB
}

// setupServer builds the full router over a fresh migrated database and
// serves it from an httptest server.
func setupServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		Addr:           ":0",
		JWTSecret:      testSecret,
		APITimeout:     5 * time.Second,
		QueryTimeout:   2 * time.Second,
		TokenDuration:  time.Hour,
		PasswordPepper: testPepper,
	}

	conn, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := dbpkg.Migrate(ctx, conn, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router, err := api.SetupRoutes(cfg, "test", "now", conn)
	if err != nil {
		t.Fatalf("failed to set up routes: %v", err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, conn: conn}
}

func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, out.Bytes()
}

func signupBody(username string) map[string]any {
	return map[string]any{
		"first_name":    "Alice",
		"last_name":     "Larsson",
		"person_number": "19900101-1234",
		"username":      username,
		"email":         username + "@example.com",
		"password":      "hunter22",
	}
}

// signupToken registers a fresh applicant and returns the issued token.
func (ts *testServer) signupToken(t *testing.T, username string) string {
	t.Helper()

	resp, body := ts.doJSON(t, http.MethodPost, "/v1/auth/signup", "", signupBody(username))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", username, resp.StatusCode, body)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("signup %s: empty token", username)
	}
	return out.Token
}

// recruiterToken provisions a recruiter directly in the database and signs
// them in. The signup endpoint only mints applicants, so recruiters come in
// at the database level, as an operator would create them.
func (ts *testServer) recruiterToken(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	res, err := ts.conn.Exec(ctx,
		`INSERT INTO person (first_name, last_name, person_number, role_id) VALUES (?, ?, ?, ?)`,
		"Rick", "Svensson", "19800101-4321", 2)
	if err != nil {
		t.Fatalf("failed to insert recruiter: %v", err)
	}
	personID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read recruiter id: %v", err)
	}

	hasher := security.NewHasher(testPepper)
	if _, err := ts.conn.Exec(ctx,
		`INSERT INTO login_info (person_id, username, email, password_hash) VALUES (?, ?, ?, ?)`,
		personID, username, fmt.Sprintf("%s@example.com", username), hasher.Hash("hunter22", username)); err != nil {
		t.Fatalf("failed to insert recruiter credential: %v", err)
	}

	resp, body := ts.doJSON(t, http.MethodPost, "/v1/auth/signin", "", map[string]any{
		"username": username,
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signin %s: expected 200, got %d: %s", username, resp.StatusCode, body)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to decode signin response: %v", err)
	}
	return out.Token
}

func registerBody(competenceID int64, from, to string) map[string]any {
	return map[string]any{
		"competence_id":       competenceID,
		"years_of_experience": 2,
		"from_date":           from,
		"to_date":             to,
	}
}
