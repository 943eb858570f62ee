package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session identity for anonymous visitors. A visitor is correlated to likes
// and chat history by an opaque session id: an explicit client-supplied
// sessionId wins, otherwise the visitor cookie is used. The id carries no
// authentication guarantee, only linkage.

const (
	// Cookie settings
	SessionCookieName = "visitor_session"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	// Context keys
	ContextKeySessionID = "session_id"
)

// SessionConfig holds cookie configuration for the visitor session.
type SessionConfig struct {
	CookieDomain   string        // "" for current domain
	CookiePath     string        // default "/"
	CookieSecure   bool          // true for HTTPS only
	CookieSameSite http.SameSite // Strict, Lax, or None
}

// DefaultSessionConfig returns secure default configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true, // set false for localhost dev
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Session reads the visitor cookie and, when present, exposes the session id
// to handlers via the context. It never creates a session by itself; handlers
// that need one call EnsureSessionID.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := getCookieSessionID(c); sessionID != "" {
			c.Set(ContextKeySessionID, sessionID)
		}
		c.Next()
	}
}

// getCookieSessionID retrieves the session id from the visitor cookie.
func getCookieSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	// Cookie values are server-assigned UUIDs; reject anything else.
	if _, err := uuid.Parse(sessionID); err != nil {
		return ""
	}

	return sessionID
}

// GetSessionID retrieves the resolved session id from the context, or ""
// when the visitor has none.
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(ContextKeySessionID)
	if !exists {
		return ""
	}

	sid, ok := sessionID.(string)
	if !ok {
		return ""
	}

	return sid
}

// EnsureSessionID returns the visitor's session id, assigning a fresh one
// (and setting the cookie) when none exists yet.
func EnsureSessionID(c *gin.Context, config SessionConfig) string {
	if sid := GetSessionID(c); sid != "" {
		return sid
	}

	sessionID := uuid.New().String()
	setSessionCookie(c, sessionID, config)
	c.Set(ContextKeySessionID, sessionID)
	return sessionID
}

// setSessionCookie sets the secure visitor cookie.
func setSessionCookie(c *gin.Context, sessionID string, config SessionConfig) {
	c.SetCookie(
		SessionCookieName,
		sessionID,
		SessionMaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly
	)
}
