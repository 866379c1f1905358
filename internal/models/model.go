package models

import "time"

// User represents a marketplace account. Only the fields the auction core
// reads are carried here; credentials live with the auth collaborator.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Location string `json:"location"`
	Country  string `json:"country"`
}

// Auction represents a listed auction. Started and Ends are stored as
// canonical "yyyy-MM-ddTHH:mm" strings (UTC wall clock); an empty Started
// means the auction started at creation.
type Auction struct {
	AuctionID     string  `json:"auction_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Categories    string  `json:"categories"`
	StartingPrice float64 `json:"starting_price"`
	Started       string  `json:"started,omitempty"`
	Ends          string  `json:"ends"`
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	SellerID      string  `json:"seller_id"`
}

// Bid represents a user's accepted bid on an auction. Bids are immutable
// once recorded and are never deleted.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a post-auction message between the winner and the seller.
// The hidden flags are per-participant tombstones: a delete by one side
// hides the message from that side only, the row itself stays.
type Message struct {
	MessageID         string    `json:"message_id"`
	Sender            string    `json:"sender"`
	Recipient         string    `json:"recipient"`
	AuctionID         string    `json:"auction_id"`
	Content           string    `json:"content"`
	SentAt            time.Time `json:"sent_at"`
	Read              bool      `json:"read"`
	HiddenBySender    bool      `json:"-"`
	HiddenByRecipient bool      `json:"-"`
}
