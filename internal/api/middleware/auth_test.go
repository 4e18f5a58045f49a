package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool
	var gotAdmin bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(nopLogger{})(next)

	t.Run("valid user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set(HeaderUserID, "42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
		assert.False(t, gotAdmin)
	})

	t.Run("admin role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set(HeaderUserID, "42")
		req.Header.Set(HeaderUserRole, RoleAdmin)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotAdmin)
	})

	t.Run("unknown role is not admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set(HeaderUserID, "42")
		req.Header.Set(HeaderUserRole, "trainer")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotAdmin)
	})

	t.Run("missing user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set(HeaderUserID, "abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set(HeaderUserID, "0")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		assert.True(t, ok)
		assert.NotEmpty(t, id)
		w.WriteHeader(http.StatusOK)
	})

	handler := RequestID(next)

	t.Run("generates id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})
}
