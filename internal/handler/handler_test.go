package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Tibebua/NationalPark/internal/metrics"
	"github.com/Tibebua/NationalPark/internal/repository"
	"github.com/Tibebua/NationalPark/internal/service"
	"github.com/Tibebua/NationalPark/internal/testdb"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testApp собирает приложение поверх чистой базы в памяти.
type testApp struct {
	db     *sqlx.DB
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testdb.New(t)
	return newTestAppWithStores(t, db,
		repository.NewNationalParkRepository(db), repository.NewTrailRepository(db))
}

func newTestAppWithStores(t *testing.T, db *sqlx.DB, parks service.NationalParkStore, trails service.TrailStore) *testApp {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(service.NewNationalParkService(parks), service.NewTrailService(trails), log)
	return &testApp{db: db, router: NewRouter(h, metrics.New())}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	a.router.ServeHTTP(resp, req)
	return resp
}

// mustCreate отправляет POST и проверяет, что запись создана.
func (a *testApp) mustCreate(t *testing.T, path, body string) map[string]any {
	t.Helper()
	resp := a.do(http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	return decodeObject(t, resp)
}

func decodeObject(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}

func decodeList(t *testing.T, resp *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}

func decodeErrors(t *testing.T, resp *httptest.ResponseRecorder) ModelErrors {
	t.Helper()
	var out ModelErrors
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestRequestID(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(http.MethodGet, "/health", "")
	generated := resp.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t)
	app.do(http.MethodGet, "/api/nationalparks", "")

	resp := app.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `parky_http_requests_total{method="GET",route="/api/nationalparks",status="200"} 1`)
}
