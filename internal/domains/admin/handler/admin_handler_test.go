package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(
		"admin123",
		token.NewManager("test-secret", 24),
		middleware.DefaultSessionConfig(),
	)

	router := gin.New()
	router.POST("/api/admin/login", h.Login)
	router.POST("/api/admin/logout", h.Logout)
	router.GET("/api/admin/status", h.Status)
	return router
}

func login(t *testing.T, router *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(gin.H{"password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == AdminCookieName {
			return cookie
		}
	}
	return nil
}

func TestLoginWithCorrectPassword(t *testing.T) {
	router := setupRouter()

	w := login(t, router, "admin123")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		IsAdmin bool   `json:"isAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.True(t, body.IsAdmin)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "login must set the admin session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginWithWrongPassword(t *testing.T) {
	router := setupRouter()

	w := login(t, router, "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w), "failed login must not set a cookie")
}

func TestLoginWithEmptyPassword(t *testing.T) {
	router := setupRouter()

	w := login(t, router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusReflectsSessionCookie(t *testing.T) {
	router := setupRouter()

	// No cookie: not admin, still 200.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		IsAdmin bool `json:"isAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsAdmin)

	// With the cookie from a successful login.
	cookie := sessionCookie(login(t, router, "admin123"))
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.IsAdmin)
}

func TestStatusIgnoresForgedCookie(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "forged-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		IsAdmin bool `json:"isAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsAdmin)
}

func TestLogoutExpiresCookie(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
