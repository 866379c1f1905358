package helpers

// Request/Response DTOs
type SendMessageRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	AuctionID string `json:"auction_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type MessageResponse struct {
	MessageID string `json:"message_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	AuctionID string `json:"auction_id"`
	Content   string `json:"content"`
	SentAt    string `json:"sent_at"`
	Read      bool   `json:"read"`
}
