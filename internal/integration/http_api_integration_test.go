package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tictactoe_webapp/internal/config"
	httpServer "tictactoe_webapp/internal/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	applyMigrations(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{APIRateLimit: 1000, APIRateWindow: 60}
	httpServer.RegisterRoutes(r, db, cfg, "test")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHTTPRowOneWin(t *testing.T) {
	srv := newTestAPI(t)
	name := uniqueName(t)

	created := call(t, srv, http.MethodPost, "/tictactoe/create",
		map[string]any{"sessionName": name})
	if created["state"] != "SUCCESS" || created["symbol"] != "x" {
		t.Fatalf("create response = %v", created)
	}
	xID := int64(created["playerId"].(float64))

	joined := call(t, srv, http.MethodPut, "/tictactoe/join",
		map[string]any{"sessionName": name})
	if joined["state"] != "SUCCESS" || joined["symbol"] != "o" {
		t.Fatalf("join response = %v", joined)
	}
	oID := int64(joined["playerId"].(float64))

	moves := []struct {
		player   int64
		position int
	}{
		{xID, 0}, {oID, 3}, {xID, 1}, {oID, 4}, {xID, 2},
	}

	var last map[string]any
	for _, m := range moves {
		last = call(t, srv, http.MethodPut, "/tictactoe/place",
			map[string]any{"playerId": m.player, "position": m.position})
		if last["state"] != "SUCCESS" {
			t.Fatalf("place(%d, %d) response = %v", m.player, m.position, last)
		}
	}

	if last["board"] != "xxxoo____" {
		t.Fatalf("final board = %v; want xxxoo____", last["board"])
	}

	state := call(t, srv, http.MethodGet, fmt.Sprintf("/tictactoe/state/%d", xID), nil)
	if state["state"] != "WIN" || state["winningSeq"] != "ROW1" {
		t.Fatalf("x state response = %v; want WIN on ROW1", state)
	}
}

func TestHTTPListGames(t *testing.T) {
	srv := newTestAPI(t)
	name := uniqueName(t)

	call(t, srv, http.MethodPost, "/tictactoe/create",
		map[string]any{"sessionName": name})

	listed := call(t, srv, http.MethodGet, "/tictactoe/games", nil)
	if listed["state"] != "SUCCESS" {
		t.Fatalf("list response = %v", listed)
	}

	games, ok := listed["games"].([]any)
	if !ok {
		t.Fatalf("games field = %v; want array", listed["games"])
	}

	found := false
	for _, raw := range games {
		g := raw.(map[string]any)
		if g["name"] == name {
			found = true
			if g["state"] != "UNSTARTED" || g["board"] != "_________" {
				t.Fatalf("listed game = %v", g)
			}
		}
	}
	if !found {
		t.Fatalf("game %q not in listing", name)
	}
}

func TestHTTPNotFoundEnvelope(t *testing.T) {
	srv := newTestAPI(t)

	res, err := srv.Client().Get(srv.URL + "/tictactoe/nope")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", res.StatusCode)
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["state"] != "FAIL" {
		t.Fatalf("state = %v; want FAIL", resp["state"])
	}
}
