package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/tabscan/tabscan/internal/auth"
	"github.com/tabscan/tabscan/internal/models"
	"github.com/tabscan/tabscan/internal/service"
	"github.com/tabscan/tabscan/internal/storage/sqlite"
)

// setupTestServer starts an httptest server over a temp SQLite database.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret-key-for-tests", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := New(
		service.NewScanService(store),
		service.NewTabService(store),
		service.NewAuthService(authenticator, jwtManager),
		jwtManager,
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		store.Close()
	})
	return ts
}

// doJSON posts body to path and decodes the response into out.
func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

// register creates an account and returns its bearer token.
func register(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()
	var session service.Session
	status := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": email, "name": "Tester", "password": "hunter2hunter2"},
		&session)
	if status != http.StatusCreated {
		t.Fatalf("register returned %d", status)
	}
	if session.Token == "" {
		t.Fatal("register returned empty token")
	}
	return session.Token
}

func TestScanEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	var outcome service.ScanOutcome
	status := doJSON(t, ts, http.MethodPost, "/api/v1/scan", "",
		map[string]string{
			"sourceKind": "ocr",
			"sourceId":   "img-1",
			"text":       "Organic Bananas     $3.99\nWhole Milk          $4.25\nTotal:             $8.24",
		}, &outcome)
	if status != http.StatusOK {
		t.Fatalf("scan returned %d", status)
	}
	if !outcome.Plausible {
		t.Error("expected plausible")
	}
	if len(outcome.Scan.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", outcome.Scan.Items)
	}
	if outcome.Scan.Items[0].Name != "Organic Bananas" {
		t.Errorf("first item = %+v", outcome.Scan.Items[0])
	}
	if math.Abs(outcome.Total-8.24) > 1e-9 {
		t.Errorf("total = %v, want 8.24", outcome.Total)
	}
}

func TestEqualSplitEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	var resp struct {
		People []models.Person `json:"people"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/v1/split/equal", "",
		map[string]any{"total": 30.0, "participants": []string{"Alice", "", "   ", "Bob"}},
		&resp)
	if status != http.StatusOK {
		t.Fatalf("split returned %d", status)
	}
	if len(resp.People) != 2 {
		t.Fatalf("expected 2 people, got %+v", resp.People)
	}
	for _, p := range resp.People {
		if math.Abs(p.AmountOwed-15.0) > 1e-9 {
			t.Errorf("%s owes %v, want 15.0", p.Name, p.AmountOwed)
		}
	}
}

func TestSettleEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	var resp struct {
		Transfers []models.Transfer `json:"transfers"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/v1/split/settle", "",
		map[string]any{"balances": map[string]float64{"Alice": 30.0, "Bob": 10.0}},
		&resp)
	if status != http.StatusOK {
		t.Fatalf("settle returned %d", status)
	}
	if len(resp.Transfers) != 1 {
		t.Fatalf("expected 1 transfer, got %+v", resp.Transfers)
	}
	tr := resp.Transfers[0]
	if tr.From != "Bob" || tr.To != "Alice" || math.Abs(tr.Amount-10.0) > 0.01 {
		t.Errorf("transfer = %+v, want Bob -> Alice 10.00", tr)
	}
}

func TestAuthFlow(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("register then login", func(t *testing.T) {
		register(t, ts, "alice@example.com")

		var session service.Session
		status := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "alice@example.com", "password": "hunter2hunter2"},
			&session)
		if status != http.StatusOK {
			t.Fatalf("login returned %d", status)
		}
		if session.Token == "" {
			t.Error("login returned empty token")
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "alice@example.com", "password": "wrong-password"},
			&map[string]string{})
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "",
			map[string]string{"email": "alice@example.com", "name": "Dup", "password": "hunter2hunter2"},
			&map[string]string{})
		if status != http.StatusConflict {
			t.Errorf("expected 409, got %d", status)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "",
			map[string]string{"email": "bob@example.com", "name": "Bob", "password": "short"},
			&map[string]string{})
		if status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", status)
		}
	})
}

func TestTabEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	token := register(t, ts, "carol@example.com")

	t.Run("unauthenticated tab creation rejected", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/tabs", "",
			map[string]any{"participants": []string{"Alice"}}, nil)
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})

	var created struct {
		Tab   models.Tab       `json:"tab"`
		Total float64          `json:"total"`
		Split service.TabSplit `json:"split"`
	}

	t.Run("create tab with assignments", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/tabs", token,
			map[string]any{
				"title":        "Dinner",
				"participants": []string{"Alice", "Bob"},
				"items": []map[string]any{
					{"name": "Pizza", "price": 20.0, "quantity": 1, "assignedTo": "Alice"},
					{"name": "Beer", "price": 10.0, "quantity": 1, "assignedTo": "Bob"},
				},
			}, &created)
		if status != http.StatusCreated {
			t.Fatalf("create tab returned %d", status)
		}
		if created.Tab.ID == "" {
			t.Fatal("tab ID not assigned")
		}
		if math.Abs(created.Total-30.0) > 1e-9 {
			t.Errorf("total = %v, want 30.0", created.Total)
		}
		if len(created.Split.Transfers) != 1 {
			t.Fatalf("expected 1 transfer, got %+v", created.Split.Transfers)
		}
	})

	t.Run("get tab returns same split", func(t *testing.T) {
		var fetched struct {
			Tab   models.Tab       `json:"tab"`
			Split service.TabSplit `json:"split"`
		}
		status := doJSON(t, ts, http.MethodGet, "/api/v1/tabs/"+created.Tab.ID, token, nil, &fetched)
		if status != http.StatusOK {
			t.Fatalf("get tab returned %d", status)
		}
		if len(fetched.Split.Transfers) != 1 {
			t.Errorf("split differs on fetch: %+v", fetched.Split)
		}
	})

	t.Run("other users cannot read the tab", func(t *testing.T) {
		otherToken := register(t, ts, "dave@example.com")
		status := doJSON(t, ts, http.MethodGet, "/api/v1/tabs/"+created.Tab.ID, otherToken, nil, &map[string]string{})
		if status != http.StatusForbidden {
			t.Errorf("expected 403, got %d", status)
		}
	})

	t.Run("unknown assignee rejected", func(t *testing.T) {
		status := doJSON(t, ts, http.MethodPost, "/api/v1/tabs", token,
			map[string]any{
				"participants": []string{"Alice"},
				"items": []map[string]any{
					{"name": "Pizza", "price": 20.0, "quantity": 1, "assignedTo": "Mallory"},
				},
			}, &map[string]string{})
		if status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", status)
		}
	})

	t.Run("list tabs", func(t *testing.T) {
		var tabs []models.Tab
		status := doJSON(t, ts, http.MethodGet, "/api/v1/tabs", token, nil, &tabs)
		if status != http.StatusOK {
			t.Fatalf("list tabs returned %d", status)
		}
		if len(tabs) != 1 {
			t.Errorf("expected 1 tab, got %d", len(tabs))
		}
	})
}
