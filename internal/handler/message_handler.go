package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/middleware"
	"github.com/lejebolig/lejebolig-backend/internal/service"
)

// MessageHandler handles direct-message endpoints
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles GET /api/v1/messages
func (h *MessageHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	messages, err := h.messageService.ListForUser(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load messages", err)
		return
	}
	common.SuccessResponse(c, messages)
}

// Send handles POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	message, err := h.messageService.Send(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidationFailed), errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid message", err)
		case errors.Is(err, common.ErrUserNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Recipient not found", nil)
		case errors.Is(err, common.ErrPropertyNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message", err)
		}
		return
	}
	common.CreatedResponse(c, message)
}

// Conversations handles GET /api/v1/messages/conversations
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	conversations, err := h.messageService.Conversations(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load conversations", err)
		return
	}
	common.SuccessResponse(c, conversations)
}

// MarkRead handles PATCH /api/v1/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	messageID, ok := parseID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageService.MarkRead(messageID, userID); err != nil {
		switch {
		case errors.Is(err, common.ErrMessageNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Message not found", nil)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Only the recipient can mark a message read", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark message read", err)
		}
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Marked as read"})
}
