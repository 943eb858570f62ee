package handler

import (
	"net/http"

	"lawfirm-backend/internal/domains/chat"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/chat?sessionId= ==========
// With a sessionId this is one conversation, oldest first. Without one it is
// the back-office activity feed across all sessions, newest first — so no
// cookie fallback here.
func (h *ChatHandler) List(c *gin.Context) {
	sessionID := c.Query("sessionId")

	messages, err := h.service.ListMessages(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch chat messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ========== CREATE: POST /api/chat ==========
// Stores the visitor message, then the assistant's reply, and returns both.
func (h *ChatHandler) Create(c *gin.Context) {
	var req chat.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid chat message data")
		return
	}

	if req.SessionID == "" {
		req.SessionID = middleware.GetSessionID(c)
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid chat message data", err)
		return
	}

	conversation, err := h.service.PostMessage(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "Failed to send chat message")
		return
	}

	c.JSON(http.StatusCreated, conversation)
}
