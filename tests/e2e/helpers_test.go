//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/lifeflow-backend/internal/app"
	authpkg "github.com/heartmarshall/lifeflow-backend/internal/auth"
	"github.com/heartmarshall/lifeflow-backend/internal/config"
)

const (
	testSecret = "e2e-test-secret-at-least-32-bytes-long"
	testIssuer = "lifeflow-e2e"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{JWTSecret: testSecret, JWTIssuer: testIssuer},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Gamification: config.GamificationConfig{
			LeaderboardSize:      10,
			DefaultEarningsLimit: 10,
			MaxEarningsLimit:     100,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWith(t, testConfig())
}

func setupTestServerWith(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	handler, stop := app.NewHandler(cfg, pool, logger)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		stop()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
	}
}

// createTestUserAndGetToken seeds a user and returns its ID with a valid
// access token.
func createTestUserAndGetToken(t *testing.T, ts *testServer) (uuid.UUID, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)
	token, err := ts.jwt.GenerateAccessToken(user.ID, time.Hour)
	require.NoError(t, err)
	return user.ID, token
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "decode %s %s", method, path)
	}
	return resp
}

type habitJSON struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Frequency         string   `json:"frequency"`
	Streak            int      `json:"streak"`
	CompletionHistory []string `json:"completionHistory"`
}

type toggleJSON struct {
	Habit         habitJSON `json:"habit"`
	MarkedDone    bool      `json:"markedDone"`
	PointsAwarded int       `json:"pointsAwarded"`
}

type errorJSON struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type pointsJSON struct {
	TotalPoints int `json:"totalPoints"`
}

type earningJSON struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Date        string `json:"date"`
}

type leaderboardJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func (ts *testServer) points(t *testing.T, token string) int {
	t.Helper()
	var p pointsJSON
	resp := ts.do(t, http.MethodGet, "/gamification/points", token, nil, &p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return p.TotalPoints
}
