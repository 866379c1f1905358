package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
	"auction-market/services/messaging/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newMessageRouter(h *MessagingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/messages", utils.RequireIdentity)
	group.POST("", h.SendMessageHandler)
	group.GET("/inbox", h.InboxHandler)
	group.GET("/sent", h.SentHandler)
	group.GET("/thread", h.ThreadHandler)
	group.DELETE("/:id", h.DeleteMessageHandler)
	group.POST("/:id/read", h.MarkReadHandler)
	return router
}

// Test SendMessageHandler
func TestSendMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMessagingServiceInterface(ctrl)
	router := newMessageRouter(NewMessagingHandler(mockService))

	now := time.Now().UTC()
	validBody := helpers.SendMessageRequest{
		Recipient: "seller1",
		AuctionID: "auction1",
		Content:   "where do I pick it up?",
	}

	tests := []struct {
		name           string
		user           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			user:        "winner1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					SendMessage(gomock.Any(), "winner1", "seller1", "auction1", "where do I pick it up?").
					Return(model.Message{
						MessageID: "m1",
						Sender:    "winner1",
						Recipient: "seller1",
						AuctionID: "auction1",
						Content:   "where do I pick it up?",
						SentAt:    now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_identity_header",
			user:           "",
			requestBody:    validBody,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid_json",
			user:           "winner1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_content",
			user:           "winner1",
			requestBody:    helpers.SendMessageRequest{Recipient: "seller1", AuctionID: "auction1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "auction_not_finished",
			user:        "winner1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					SendMessage(gomock.Any(), "winner1", "seller1", "auction1", "where do I pick it up?").
					Return(model.Message{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFinished))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "no_winner",
			user:        "winner1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					SendMessage(gomock.Any(), "winner1", "seller1", "auction1", "where do I pick it up?").
					Return(model.Message{}, fmt.Errorf("service: %w", auctionerrors.ErrNoWinner))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "not_a_participant",
			user:        "winner1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					SendMessage(gomock.Any(), "winner1", "seller1", "auction1", "where do I pick it up?").
					Return(model.Message{}, fmt.Errorf("service: %w", auctionerrors.ErrUnauthorized))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "auction_not_found",
			user:        "winner1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					SendMessage(gomock.Any(), "winner1", "seller1", "auction1", "where do I pick it up?").
					Return(model.Message{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tc.user != "" {
				req.Header.Set(utils.IdentityHeader, tc.user)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, "m1", data["message_id"])
				require.Equal(t, "winner1", data["sender"])
				require.Equal(t, false, data["read"])
			}
		})
	}
}

// Test inbox, sent and thread handlers
func TestMessageListHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMessagingServiceInterface(ctrl)
	router := newMessageRouter(NewMessagingHandler(mockService))

	now := time.Now().UTC()
	m1 := model.Message{MessageID: "m1", Sender: "seller1", Recipient: "winner1", AuctionID: "a1", Content: "hi", SentAt: now}

	t.Run("inbox", func(t *testing.T) {
		mockService.EXPECT().GetInbox(gomock.Any(), "winner1").Return([]model.Message{m1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/messages/inbox", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 1)
		require.Equal(t, "m1", data[0].(map[string]any)["message_id"])
	})

	t.Run("empty_inbox_is_empty_array", func(t *testing.T) {
		mockService.EXPECT().GetInbox(gomock.Any(), "winner1").Return(nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/messages/inbox", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data, ok := resp["data"].([]any)
		require.True(t, ok, "data must be an array, not null")
		require.Empty(t, data)
	})

	t.Run("sent", func(t *testing.T) {
		mockService.EXPECT().GetSent(gomock.Any(), "seller1").Return([]model.Message{m1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/messages/sent", nil)
		req.Header.Set(utils.IdentityHeader, "seller1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("thread_passes_query_params", func(t *testing.T) {
		mockService.EXPECT().GetThread(gomock.Any(), "a1", "winner1", "seller1").Return([]model.Message{m1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/messages/thread?auction_id=a1&user=seller1", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("thread_missing_params", func(t *testing.T) {
		mockService.EXPECT().GetThread(gomock.Any(), "", "winner1", "").
			Return(nil, fmt.Errorf("service: %w", auctionerrors.ErrInvalidInput))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/messages/thread", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test DeleteMessageHandler and MarkReadHandler
func TestMessageMutationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMessagingServiceInterface(ctrl)
	router := newMessageRouter(NewMessagingHandler(mockService))

	t.Run("delete", func(t *testing.T) {
		mockService.EXPECT().DeleteMessage(gomock.Any(), "m1", "winner1").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/messages/m1", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete_missing_message", func(t *testing.T) {
		mockService.EXPECT().DeleteMessage(gomock.Any(), "ghost", "winner1").
			Return(fmt.Errorf("service: %w", auctionerrors.ErrMessageNotFound))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/messages/ghost", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mark_read", func(t *testing.T) {
		mockService.EXPECT().MarkRead(gomock.Any(), "m1", "winner1").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/messages/m1/read", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mark_read_missing_message", func(t *testing.T) {
		mockService.EXPECT().MarkRead(gomock.Any(), "ghost", "winner1").
			Return(fmt.Errorf("service: %w", auctionerrors.ErrMessageNotFound))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/messages/ghost/read", nil)
		req.Header.Set(utils.IdentityHeader, "winner1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
