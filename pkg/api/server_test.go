package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/events"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/search"
	"github.com/delverhq/delver/pkg/services"
	testdb "github.com/delverhq/delver/test/database"
)

// stubSearcher returns canned results for the passthrough endpoint.
type stubSearcher struct {
	results []search.Result
	err     error
}

func (s *stubSearcher) Search(context.Context, search.Query) ([]search.Result, error) {
	return s.results, s.err
}

// stubQueue satisfies services.JobQueue without a broker.
type stubQueue struct{}

func (stubQueue) Enqueue(context.Context, string, queue.JobData, queue.EnqueueOptions) error {
	return nil
}
func (stubQueue) Remove(context.Context, string) (bool, error) { return true, nil }
func (stubQueue) Progress(context.Context, string) (int, string, error) {
	return 33, "analyze", nil
}
func (stubQueue) State(context.Context, string) (queue.JobState, error) {
	return queue.JobStateActive, nil
}

type testServer struct {
	router   *gin.Engine
	sessions *services.SessionService
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret-key"
	if mutate != nil {
		mutate(cfg)
	}

	db := testdb.NewTestClient(t)
	logger := slog.Default()

	sessions := services.NewSessionService(db.Client, stubQueue{}, nil, cfg.Research, logger)
	reports := services.NewReportService(db.Client, logger)
	users := services.NewUserService(db.Client, logger)
	manager := events.NewConnectionManager(5*time.Second, logger)

	searcher := &stubSearcher{results: []search.Result{
		{URL: "https://example.com/a", Title: "A", Snippet: "about a"},
	}}

	srv := NewServer(cfg, db, sessions, reports, users, searcher, manager, nil, logger)
	return &testServer{router: srv.Router(), sessions: sessions}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its bearer token.
func (ts *testServer) register(t *testing.T, email string) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "long enough password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t, nil)

	token := ts.register(t, "alice@example.com")

	rec := ts.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, rec, &me)
	assert.Equal(t, "alice@example.com", me.Email)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "long enough password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "long enough password",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/refresh", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResearchEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.register(t, "alice@example.com")

	// Unauthenticated requests are rejected.
	rec := ts.do(t, http.MethodPost, "/api/v1/research", "", map[string]any{"topic": "a valid topic"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Validation failures carry the VALIDATION_ERROR code.
	rec = ts.do(t, http.MethodPost, "/api/v1/research", token, map[string]any{"topic": "AI"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), CodeValidation)

	rec = ts.do(t, http.MethodPost, "/api/v1/research", token, map[string]any{
		"topic":      "Impact of AI on healthcare diagnostics",
		"parameters": map[string]any{"max_sources": 10, "min_sources": 3, "depth": "standard"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rec, &created)
	assert.Equal(t, "pending", created.Status)

	rec = ts.do(t, http.MethodGet, "/api/v1/research/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/research/"+created.ID+"/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress struct {
		Status   string `json:"status"`
		Progress int    `json:"progress"`
		Phase    string `json:"phase"`
	}
	decodeData(t, rec, &progress)
	assert.Equal(t, "pending", progress.Status)
	assert.Equal(t, 33, progress.Progress)

	rec = ts.do(t, http.MethodGet, "/api/v1/research?status=pending", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Total int `json:"total"`
	}
	decodeData(t, rec, &list)
	assert.Equal(t, 1, list.Total)

	// Cancel, then cancel again: idempotent.
	rec = ts.do(t, http.MethodPost, "/api/v1/research/"+created.ID+"/cancel", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodPost, "/api/v1/research/"+created.ID+"/cancel", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Retry of a non-failed session is a conflict.
	rec = ts.do(t, http.MethodPost, "/api/v1/research/"+created.ID+"/retry", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), CodeConflict)

	// Foreign users cannot see the session.
	otherToken := ts.register(t, "bob@example.com")
	rec = ts.do(t, http.MethodGet, "/api/v1/research/"+created.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportEndpoints_NotFoundAndFormat(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.register(t, "alice@example.com")

	rec := ts.do(t, http.MethodGet, "/api/v1/reports/no-such-report", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/reports/whatever?format=pdf", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/reports/session/no-such-session", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.register(t, "alice@example.com")

	rec := ts.do(t, http.MethodPost, "/api/v1/search", token, map[string]any{"query": "solid state batteries"})
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Query   string          `json:"query"`
		Results json.RawMessage `json:"results"`
	}
	decodeData(t, rec, &result)
	assert.Equal(t, "solid state batteries", result.Query)

	rec = ts.do(t, http.MethodPost, "/api/v1/search", token, map[string]any{"query": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/search/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []struct {
		Query string `json:"query"`
	}
	decodeData(t, rec, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "solid state batteries", history[0].Query)
}

func TestSettingsEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.register(t, "alice@example.com")

	rec := ts.do(t, http.MethodPut, "/api/v1/settings/user", token, map[string]any{
		"preferences": map[string]any{"theme": "dark"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/settings/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings struct {
		Preferences map[string]any `json:"preferences"`
	}
	decodeData(t, rec, &settings)
	assert.Equal(t, "dark", settings.Preferences["theme"])

	rec = ts.do(t, http.MethodGet, "/api/v1/settings/models", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/settings/search-engines", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRateLimit(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.AuthRateLimit = 2
	})

	body := map[string]string{"email": "nobody@example.com", "password": "whatever pass"}
	for i := 0; i < 2; i++ {
		rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d hits the handler", i+1)
	}
	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), CodeRateLimit)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), "database")
}

func TestS2_ValidationCreatesNoSession(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.register(t, "alice@example.com")

	rec := ts.do(t, http.MethodPost, "/api/v1/research", token, map[string]any{"topic": "AI"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/research", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Total int `json:"total"`
	}
	decodeData(t, rec, &list)
	assert.Zero(t, list.Total)
}
