package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims AdminClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims() AdminClaims {
	return AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			Issuer:    "infoloom",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name: "Admin",
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "Avaliaçõ", Truncate("Avaliações", 8))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestWriteInternalError_IncludesStack(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(zap.NewNop(), rec, errors.Wrap(errors.New("disk on fire"), "read dataset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body InternalErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "read dataset: disk on fire", body.Message)
	assert.Contains(t, body.Stack, "common_test.go")
}

func TestParseAdminToken(t *testing.T) {
	claims, err := ParseAdminToken(signToken(t, testSecret, validClaims()), testSecret, "infoloom")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)

	_, err = ParseAdminToken(signToken(t, []byte("other"), validClaims()), testSecret, "")
	assert.Error(t, err, "wrong secret")

	_, err = ParseAdminToken(signToken(t, testSecret, validClaims()), testSecret, "someone-else")
	assert.Error(t, err, "wrong issuer")

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	_, err = ParseAdminToken(signToken(t, testSecret, expired), testSecret, "")
	assert.Error(t, err, "expired")

	anonymous := validClaims()
	anonymous.Subject = ""
	_, err = ParseAdminToken(signToken(t, testSecret, anonymous), testSecret, "")
	assert.Error(t, err, "no subject")
}

func TestBearerAuth(t *testing.T) {
	var seen AdminPrincipal
	h := BearerAuth(zap.NewNop(), testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, testSecret, validClaims()), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
	assert.Equal(t, "admin-1", seen.Subject)
}
