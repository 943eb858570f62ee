package handler

import (
	"errors"
	"net/http"

	"lawfirm-backend/internal/domains/contact"
	"lawfirm-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/contact ==========
// Back-office listing; newest first.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch contact messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ========== CREATE: POST /api/contact ==========
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid contact message data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid contact message data", err)
		return
	}

	msg, err := h.service.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, "Failed to send contact message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ========== UPDATE STATUS: PATCH /api/contact/:id/status ==========
// The status enum is checked here; a bad value never reaches storage.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req contact.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid status", err)
		return
	}

	msg, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, contact.ErrMessageNotFound) {
			response.NotFound(c, "Contact message not found")
			return
		}
		response.InternalServerError(c, "Failed to update contact message status")
		return
	}

	c.JSON(http.StatusOK, msg)
}
