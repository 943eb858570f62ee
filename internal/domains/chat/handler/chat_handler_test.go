package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawfirm-backend/internal/domains/chat"
	"lawfirm-backend/internal/domains/chat/repository"
	"lawfirm-backend/internal/domains/chat/service"
	"lawfirm-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewChatHandler(service.NewChatService(repository.NewMemoryRepository()))

	router := gin.New()
	router.Use(middleware.Session(middleware.DefaultSessionConfig()))
	router.GET("/api/chat", h.List)
	router.POST("/api/chat", h.Create)
	return router
}

func postMessage(t *testing.T, router *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateChatMessageReturnsConversation(t *testing.T) {
	router := setupRouter()
	sessionID := uuid.New().String()

	w := postMessage(t, router, gin.H{
		"sessionId": sessionID,
		"message":   "Quais áreas vocês atendem?",
		"sender":    chat.SenderUser,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var conv chat.ConversationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	require.NotNil(t, conv.UserMessage)
	require.NotNil(t, conv.BotMessage)
	assert.Equal(t, chat.SenderBot, conv.BotMessage.Sender)
	assert.NotEmpty(t, conv.BotMessage.Message)
}

func TestCreateChatMessageValidation(t *testing.T) {
	router := setupRouter()

	// No session cookie and no sessionId in the body.
	w := postMessage(t, router, gin.H{
		"message": "olá",
		"sender":  chat.SenderUser,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Details, "sessionId")

	// Unknown sender value.
	w = postMessage(t, router, gin.H{
		"sessionId": uuid.New().String(),
		"message":   "olá",
		"sender":    "system",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChatMessageUsesVisitorCookie(t *testing.T) {
	router := setupRouter()
	sessionID := uuid.New().String()

	payload, err := json.Marshal(gin.H{
		"message": "bom dia",
		"sender":  chat.SenderUser,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var conv chat.ConversationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	require.NotNil(t, conv.UserMessage)
	assert.Equal(t, sessionID, conv.UserMessage.SessionID)
}

func TestListConversationAndGlobalFeed(t *testing.T) {
	router := setupRouter()
	first := uuid.New().String()
	second := uuid.New().String()

	require.Equal(t, http.StatusCreated, postMessage(t, router, gin.H{
		"sessionId": first, "message": "olá", "sender": chat.SenderUser,
	}).Code)
	require.Equal(t, http.StatusCreated, postMessage(t, router, gin.H{
		"sessionId": second, "message": "bom dia", "sender": chat.SenderUser,
	}).Code)

	// One conversation: user message then bot reply, oldest first.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat?sessionId="+first, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var messages []chat.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, chat.SenderUser, messages[0].Sender)
	assert.Equal(t, chat.SenderBot, messages[1].Sender)

	// No sessionId: all four messages across both sessions.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 4)
}

func TestListIgnoresVisitorCookie(t *testing.T) {
	router := setupRouter()
	sessionID := uuid.New().String()

	require.Equal(t, http.StatusCreated, postMessage(t, router, gin.H{
		"sessionId": sessionID, "message": "olá", "sender": chat.SenderUser,
	}).Code)

	// A visitor cookie must not narrow the unfiltered feed.
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: uuid.New().String()})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []chat.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
}
