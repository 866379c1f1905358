package handler

import (
	"context"
	"fmt"
	"net/http"

	model "auction-market/internal/models"
	"auction-market/services/messaging/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type MessagingServiceInterface interface {
	SendMessage(ctx context.Context, senderID, recipientID, auctionID, content string) (model.Message, error)
	GetInbox(ctx context.Context, userID string) ([]model.Message, error)
	GetSent(ctx context.Context, userID string) ([]model.Message, error)
	GetThread(ctx context.Context, auctionID, currentUser, otherUser string) ([]model.Message, error)
	MarkRead(ctx context.Context, messageID, userID string) error
	DeleteMessage(ctx context.Context, messageID, userID string) error
}

type MessagingHandler struct {
	service MessagingServiceInterface
}

func NewMessagingHandler(service MessagingServiceInterface) *MessagingHandler {
	return &MessagingHandler{service: service}
}

// SendMessageHandler handles POST /messages
func (h *MessagingHandler) SendMessageHandler(c *gin.Context) {
	var req helpers.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	sender := utils.CurrentUser(c)
	msg, err := h.service.SendMessage(c.Request.Context(), sender, req.Recipient, req.AuctionID, req.Content)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SendMessageHandler: failed to send message", map[string]any{
			"auction_id": req.AuctionID,
			"sender":     sender,
			"recipient":  req.Recipient,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToMessageResponse(msg), "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"message_id": msg.MessageID,
		"auction_id": msg.AuctionID,
		"sender":     sender,
	})
}

// InboxHandler handles GET /messages/inbox
func (h *MessagingHandler) InboxHandler(c *gin.Context) {
	user := utils.CurrentUser(c)
	msgs, err := h.service.GetInbox(c.Request.Context(), user)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("InboxHandler: error retrieving inbox", map[string]any{"user": user, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMessageResponses(msgs), "inbox retrieved successfully")
}

// SentHandler handles GET /messages/sent
func (h *MessagingHandler) SentHandler(c *gin.Context) {
	user := utils.CurrentUser(c)
	msgs, err := h.service.GetSent(c.Request.Context(), user)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SentHandler: error retrieving sent messages", map[string]any{"user": user, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMessageResponses(msgs), "sent messages retrieved successfully")
}

// ThreadHandler handles GET /messages/thread?auction_id=&user=
func (h *MessagingHandler) ThreadHandler(c *gin.Context) {
	auctionID := c.Query("auction_id")
	otherUser := c.Query("user")
	currentUser := utils.CurrentUser(c)

	msgs, err := h.service.GetThread(c.Request.Context(), auctionID, currentUser, otherUser)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ThreadHandler: error retrieving thread", map[string]any{
			"auction_id": auctionID,
			"user":       currentUser,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMessageResponses(msgs), "thread retrieved successfully")
}

// DeleteMessageHandler handles DELETE /messages/:id
func (h *MessagingHandler) DeleteMessageHandler(c *gin.Context) {
	messageID := c.Param("id")
	user := utils.CurrentUser(c)

	if err := h.service.DeleteMessage(c.Request.Context(), messageID, user); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteMessageHandler: failed to delete message", map[string]any{
			"message_id": messageID,
			"user":       user,
			"error":      err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteMessageHandler", "message deleted successfully", map[string]any{
		"message_id": messageID,
		"user":       user,
	})
}

// MarkReadHandler handles POST /messages/:id/read
func (h *MessagingHandler) MarkReadHandler(c *gin.Context) {
	messageID := c.Param("id")
	user := utils.CurrentUser(c)

	if err := h.service.MarkRead(c.Request.Context(), messageID, user); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MarkReadHandler: failed to mark message read", map[string]any{
			"message_id": messageID,
			"user":       user,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "message marked as read")
}
