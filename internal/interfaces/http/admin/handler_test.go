package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	adminapp "github.com/infoloom/infoloom/api/internal/admin/application"
	"github.com/infoloom/infoloom/api/internal/admin/domain"
	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
)

var secret = []byte("admin-secret")

type fakeService struct {
	filter adminapp.FormResponseFilter
	err    error
}

func (f *fakeService) List(_ context.Context, filter adminapp.FormResponseFilter) ([]domain.FormResponse, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return []domain.FormResponse{{ID: "abc", FormID: "f1", SubmittedAt: "2025-01-01T00:00:00Z"}}, nil
}

func newRouter(svc adminapp.FormResponseService) chi.Router {
	h := NewHandler(Config{Logger: zap.NewNop(), FormResponses: svc, JWTSecret: secret})
	r := chi.NewRouter()
	r.Route("/admin", h.Register)
	return r
}

func token(t *testing.T) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, common.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "rep-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestFormResponseList_RequiresToken(t *testing.T) {
	r := newRouter(&fakeService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/form-responses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFormResponseList(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/form-responses?formId=f1&limit=5", nil)
	req.Header.Set("Authorization", "Bearer "+token(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body formResponseListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "abc", body.Items[0].ID)
	assert.Equal(t, adminapp.FormResponseFilter{FormID: "f1", Limit: 5}, svc.filter)
}

func TestFormResponseList_BadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/form-responses?limit=ten", nil)
	req.Header.Set("Authorization", "Bearer "+token(t))
	rec := httptest.NewRecorder()
	newRouter(&fakeService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormResponseList_ServiceError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/form-responses", nil)
	req.Header.Set("Authorization", "Bearer "+token(t))
	rec := httptest.NewRecorder()
	newRouter(&fakeService{err: errors.New("mongo down")}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
