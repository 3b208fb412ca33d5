package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/config"
)

type fakeDB struct {
	pingErr error
}

func (f *fakeDB) Client(context.Context) (*mongo.Client, error) {
	return nil, errors.New("not connected")
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

func (f *fakeDB) Disconnect(context.Context) error { return nil }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ucs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"nome":"A","slug":"a","sigla":"A","perfil":"Tronco Comum","avaliacoes":[]}]`), 0o600))
	return config.Config{
		Addr:                   ":0",
		MongoDatabase:          "infoloom",
		FormResponseCollection: "form_responses",
		DataFile:               path,
		ChatUpstreamURL:        config.DefaultChatUpstreamURL,
		AllowedOrigins:         []string{"https://infoloom.example"},
	}
}

func serve(h http.Handler, method, path string, header map[string]string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	db := &fakeDB{}
	router := New(testConfig(t), zap.NewNop(), db).Router()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/healthz", nil, "").Code)

	db.pingErr = errors.New("no primary")
	rec := serve(router, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no primary")
}

func TestRouter_MountsPublicRoutes(t *testing.T) {
	router := New(testConfig(t), zap.NewNop(), &fakeDB{}).Router()

	rec := serve(router, http.MethodGet, "/api/dates", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sigla": "A"`)

	rec = serve(router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "infoloom_http_requests_total")
}

func TestRouter_SubmitFormSurfacesConnectionFailure(t *testing.T) {
	router := New(testConfig(t), zap.NewNop(), &fakeDB{}).Router()

	rec := serve(router, http.MethodPost, "/api/submit-form", map[string]string{"Content-Type": "application/json"},
		`{"formId":"f1","submittedAt":"2025-01-01T00:00:00Z","sections":[]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not connected")
}

func TestRouter_AdminMountedOnlyWithSecret(t *testing.T) {
	cfg := testConfig(t)
	router := New(cfg, zap.NewNop(), &fakeDB{}).Router()
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/admin/form-responses", nil, "").Code)

	cfg.AdminJWTSecret = []byte("secret")
	router = New(cfg, zap.NewNop(), &fakeDB{}).Router()
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/admin/form-responses", nil, "").Code)
}

func TestWithCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := withCORS([]string{"https://infoloom.example"})(next)

	rec := serve(h, http.MethodGet, "/", map[string]string{"Origin": "https://infoloom.example"}, "")
	assert.Equal(t, "https://infoloom.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(h, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"}, "")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodOptions, "/", map[string]string{"Origin": "https://infoloom.example"}, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	all := withCORS([]string{"*"})(next)
	rec = serve(all, http.MethodGet, "/", map[string]string{"Origin": "https://any.example"}, "")
	assert.Equal(t, "https://any.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
