package handler

import (
	"crypto/subtle"
	"net/http"

	"lawfirm-backend/internal/domains/admin"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/internal/shared/response"
	"lawfirm-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AdminCookieName carries the signed admin session token. This is UI gating
// with one shared credential, not per-user authentication.
const AdminCookieName = "admin_session"

type AdminHandler struct {
	password   string
	tokens     *token.Manager
	sessionCfg middleware.SessionConfig
}

func NewAdminHandler(password string, tokens *token.Manager, sessionCfg middleware.SessionConfig) *AdminHandler {
	return &AdminHandler{
		password:   password,
		tokens:     tokens,
		sessionCfg: sessionCfg,
	}
}

// ========== LOGIN: POST /api/admin/login ==========
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid login data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid login data", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		response.Unauthorized(c, "Invalid password")
		return
	}

	sessionToken, err := h.tokens.GenerateAdminToken()
	if err != nil {
		response.InternalServerError(c, "Failed to authenticate")
		return
	}

	c.SetCookie(
		AdminCookieName,
		sessionToken,
		middleware.SessionMaxAge,
		h.sessionCfg.CookiePath,
		h.sessionCfg.CookieDomain,
		h.sessionCfg.CookieSecure,
		true, // httpOnly
	)

	c.JSON(http.StatusOK, admin.LoginResponse{Message: "Login successful", IsAdmin: true})
}

// ========== LOGOUT: POST /api/admin/logout ==========
func (h *AdminHandler) Logout(c *gin.Context) {
	// Expire the cookie immediately.
	c.SetCookie(
		AdminCookieName,
		"",
		-1,
		h.sessionCfg.CookiePath,
		h.sessionCfg.CookieDomain,
		h.sessionCfg.CookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// ========== STATUS: GET /api/admin/status ==========
// Never fails; an absent or invalid cookie simply means not admin.
func (h *AdminHandler) Status(c *gin.Context) {
	isAdmin := false
	if cookie, err := c.Cookie(AdminCookieName); err == nil && cookie != "" {
		isAdmin = h.tokens.IsAdminToken(cookie)
	}

	c.JSON(http.StatusOK, admin.StatusResponse{IsAdmin: isAdmin})
}
