package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"articlehub/internal/reqctx"
	"articlehub/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotUserID *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := reqctx.GetUserID(r.Context())
		require.True(t, ok, "user_id должен быть в контексте")
		*gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuth_NoToken(t *testing.T) {
	var userID int
	handler := JWTAuth(testSecret)(protectedHandler(t, &userID))

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_BadToken(t *testing.T) {
	var userID int
	handler := JWTAuth(testSecret)(protectedHandler(t, &userID))

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer не-токен")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	var userID int
	handler := JWTAuth(testSecret)(protectedHandler(t, &userID))

	token, err := utils.GenerateToken("другой-секрет", 7, "user", time.Minute, "access")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	var userID int
	handler := JWTAuth(testSecret)(protectedHandler(t, &userID))

	token, err := utils.GenerateToken(testSecret, 7, "user", time.Minute, "access")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, userID)
}
