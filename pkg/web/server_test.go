package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/migrate"
	"github.com/teamwallet/teamwallet/pkg/store"
	"github.com/teamwallet/teamwallet/pkg/store/database"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Auth.SessionSecret = "test-secret"

	ctx := log.WithContext(context.TODO(), log.Default())
	ctx = config.WithContext(ctx, cfg)

	dbx, err := db.Open(ctx, "sqlite", filepath.Join(cfg.DataPath, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dbx.Close(); err != nil {
			t.Error(err)
		}
	})
	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}

	datastore := database.New(ctx, dbx)
	be := backend.New(ctx, cfg, dbx, datastore)

	ctx = db.WithContext(ctx, dbx)
	ctx = store.WithContext(ctx, datastore)
	ctx = backend.WithContext(ctx, be)

	srv := httptest.NewServer(NewRouter(ctx))
	t.Cleanup(srv.Close)
	return srv
}

// request performs a JSON request and decodes the response into out when it
// is non-nil.
func request(t *testing.T, srv *httptest.Server, method, path, token string, in, out interface{}) int {
	t.Helper()
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, srv.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
	return res.StatusCode
}

func register(t *testing.T, srv *httptest.Server, name string) sessionResponse {
	t.Helper()
	var session sessionResponse
	code := request(t, srv, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"username": name,
		"email":    name + "@example.com",
		"password": "hunter2!",
	}, &session)
	if code != http.StatusOK {
		t.Fatalf("register %q => %d", name, code)
	}
	return session
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	res, err := srv.Client().Get(srv.URL + "/livez")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("livez => %d, want 200", res.StatusCode)
	}

	res, err = srv.Client().Get(srv.URL + "/readyz")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("readyz => %d, want 200", res.StatusCode)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := testServer(t)

	if code := request(t, srv, http.MethodGet, "/v1/teams", "", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("GET /v1/teams without token => %d, want 401", code)
	}
	if code := request(t, srv, http.MethodGet, "/v1/teams", "not-a-token", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("GET /v1/teams with bad token => %d, want 401", code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := testServer(t)
	register(t, srv, "frank")

	code := request(t, srv, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": "frank",
		"password": "wrong",
	}, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("login with bad password => %d, want 401", code)
	}
}

// The full flow over HTTP: register two users, create a team, invite, fine,
// pay, payout, and read the derived ledger.
func TestAPIFlow(t *testing.T) {
	srv := testServer(t)
	admin := register(t, srv, "alice")
	member := register(t, srv, "bob")

	var team teamResponse
	if code := request(t, srv, http.MethodPost, "/v1/teams", admin.Token,
		map[string]string{"name": "Sunday League"}, &team); code != http.StatusCreated {
		t.Fatalf("create team => %d", code)
	}
	base := fmt.Sprintf("/v1/teams/%d", team.ID)

	var invite inviteResponse
	if code := request(t, srv, http.MethodPost, base+"/invites", admin.Token,
		map[string]string{"role": "member"}, &invite); code != http.StatusCreated {
		t.Fatalf("create invite => %d", code)
	}
	if invite.Token == "" {
		t.Fatal("invite response is missing the raw token")
	}

	var joined memberResponse
	if code := request(t, srv, http.MethodPost, "/v1/invites/"+invite.Token+"/accept", member.Token,
		nil, &joined); code != http.StatusOK {
		t.Fatalf("accept invite => %d", code)
	}

	// The token is spent now.
	if code := request(t, srv, http.MethodGet, "/v1/invites/"+invite.Token, "", nil, nil); code != http.StatusGone {
		t.Errorf("resolve consumed invite => %d, want 410", code)
	}

	var def definitionResponse
	if code := request(t, srv, http.MethodPost, base+"/catalog", admin.Token,
		map[string]string{"name": "Late to training", "amount": "5.00"}, &def); code != http.StatusCreated {
		t.Fatalf("create definition => %d", code)
	}

	var fine fineResponse
	if code := request(t, srv, http.MethodPost, base+"/fines", admin.Token,
		map[string]int64{"membership_id": joined.ID, "definition_id": def.ID}, &fine); code != http.StatusCreated {
		t.Fatalf("issue fine => %d", code)
	}

	// Members can not issue fines.
	if code := request(t, srv, http.MethodPost, base+"/fines", member.Token,
		map[string]int64{"membership_id": joined.ID, "definition_id": def.ID}, nil); code != http.StatusForbidden {
		t.Errorf("issue fine as member => %d, want 403", code)
	}

	payPath := fmt.Sprintf("%s/fines/%d/pay", base, fine.ID)
	var paid fineResponse
	if code := request(t, srv, http.MethodPost, payPath, admin.Token, nil, &paid); code != http.StatusOK {
		t.Fatalf("pay fine => %d", code)
	}
	if paid.Status != "paid" {
		t.Errorf("fine status = %q, want paid", paid.Status)
	}
	// Paying again is a no-op success.
	if code := request(t, srv, http.MethodPost, payPath, admin.Token, nil, &paid); code != http.StatusOK {
		t.Errorf("second payment => %d, want 200", code)
	}

	if code := request(t, srv, http.MethodPost, base+"/payouts", admin.Token,
		map[string]string{"amount": "2.00", "purpose": "new ball"}, nil); code != http.StatusCreated {
		t.Fatalf("record payout => %d", code)
	}

	var led ledgerResponse
	if code := request(t, srv, http.MethodGet, base+"/ledger", member.Token, nil, &led); code != http.StatusOK {
		t.Fatalf("get ledger => %d", code)
	}
	if led.Balance.String() != "3.00" {
		t.Errorf("balance = %s, want 3.00", led.Balance)
	}
	if len(led.Timeline) != 2 {
		t.Errorf("timeline has %d entries, want 2", len(led.Timeline))
	}

	// Report service is not configured in tests.
	if code := request(t, srv, http.MethodGet, base+"/report", member.Token, nil, nil); code != http.StatusServiceUnavailable {
		t.Errorf("get report => %d, want 503", code)
	}
}
