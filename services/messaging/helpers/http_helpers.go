package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrMessageNotFound):
		return http.StatusNotFound, "message not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid message details"
	case errors.Is(err, auctionerrors.ErrMalformedTimestamp):
		return http.StatusBadRequest, "malformed timestamp"
	case errors.Is(err, auctionerrors.ErrAuctionNotFinished):
		return http.StatusConflict, "auction has not finished"
	case errors.Is(err, auctionerrors.ErrNoWinner):
		return http.StatusForbidden, "no winner for this auction"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "only the winner and seller can message each other"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToMessageResponse converts a message model into its response DTO
func ToMessageResponse(msg model.Message) MessageResponse {
	return MessageResponse{
		MessageID: msg.MessageID,
		Sender:    msg.Sender,
		Recipient: msg.Recipient,
		AuctionID: msg.AuctionID,
		Content:   msg.Content,
		SentAt:    msg.SentAt.UTC().Format(time.RFC3339),
		Read:      msg.Read,
	}
}

// ToMessageResponses converts a slice of messages, keeping order
func ToMessageResponses(msgs []model.Message) []MessageResponse {
	resp := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, ToMessageResponse(m))
	}
	return resp
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
