package repository

import (
	"context"
	"fmt"
	"sync"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// AuctionStore defines auction persistence for the marketplace
type AuctionStore interface {
	SaveAuction(ctx context.Context, auction model.Auction) error
	GetAuctionByID(ctx context.Context, auctionID string) (model.Auction, error)
	GetAllAuctions(ctx context.Context) ([]model.Auction, error)
	GetAuctionsBySeller(ctx context.Context, sellerID string) ([]model.Auction, error)
	DeleteAuctionByID(ctx context.Context, auctionID string) error
}

// BidStore defines bid persistence. Bids are append-only.
type BidStore interface {
	RecordBidForAuction(ctx context.Context, bid model.Bid) error
	GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
}

// MessageStore defines message persistence, including the keyed lookups
// the messaging service needs (by recipient, by sender, by auction and
// participant pair).
type MessageStore interface {
	SaveMessage(ctx context.Context, msg model.Message) error
	GetMessageByID(ctx context.Context, messageID string) (model.Message, error)
	GetMessagesByRecipient(ctx context.Context, userID string) ([]model.Message, error)
	GetMessagesBySender(ctx context.Context, userID string) ([]model.Message, error)
	GetThreadMessages(ctx context.Context, auctionID, userA, userB string) ([]model.Message, error)
	UpdateMessage(ctx context.Context, msg model.Message) error
}

// ProfileDirectory resolves a user's profile, used to copy the seller's
// location/country onto an auction at creation time.
type ProfileDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of all the
// store interfaces, used for tests and single-node deployments.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	bids     map[string][]model.Bid   // key: auctionID -> accepted bids in order
	messages map[string]model.Message // key: messageID
	msgOrder []string                 // messageIDs in insertion order
	users    map[string]model.User    // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		messages: make(map[string]model.Message),
		users:    make(map[string]model.User),
	}
}

// SaveAuction stores or replaces an auction
func (r *MemoryRepo) SaveAuction(ctx context.Context, auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuctionByID returns a single auction by its identifier
func (r *MemoryRepo) GetAuctionByID(ctx context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetAllAuctions returns every stored auction
func (r *MemoryRepo) GetAllAuctions(ctx context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// GetAuctionsBySeller returns the auctions listed by one seller
func (r *MemoryRepo) GetAuctionsBySeller(ctx context.Context, sellerID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.SellerID == sellerID {
			auctions = append(auctions, a)
		}
	}
	return auctions, nil
}

// DeleteAuctionByID removes an auction. Lifecycle rules are enforced by
// the auction service, not here.
func (r *MemoryRepo) DeleteAuctionByID(ctx context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, auctionID)
	return nil
}

// RecordBidForAuction appends an accepted bid to an auction's history
func (r *MemoryRepo) RecordBidForAuction(ctx context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

// GetBidsByAuction returns all accepted bids for an auction in acceptance order
func (r *MemoryRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// SaveMessage stores a new message
func (r *MemoryRepo) SaveMessage(ctx context.Context, msg model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[msg.MessageID]; !ok {
		r.msgOrder = append(r.msgOrder, msg.MessageID)
	}
	r.messages[msg.MessageID] = msg
	return nil
}

// GetMessageByID returns a single message by its identifier
func (r *MemoryRepo) GetMessageByID(ctx context.Context, messageID string) (model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msg, ok := r.messages[messageID]
	if !ok {
		return model.Message{}, fmt.Errorf("get message %s: %w", messageID, auctionerrors.ErrMessageNotFound)
	}
	return msg, nil
}

// GetMessagesByRecipient returns every message addressed to a user,
// tombstones included; visibility filtering belongs to the service.
func (r *MemoryRepo) GetMessagesByRecipient(ctx context.Context, userID string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var msgs []model.Message
	for _, id := range r.msgOrder {
		if m := r.messages[id]; m.Recipient == userID {
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

// GetMessagesBySender returns every message a user has sent
func (r *MemoryRepo) GetMessagesBySender(ctx context.Context, userID string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var msgs []model.Message
	for _, id := range r.msgOrder {
		if m := r.messages[id]; m.Sender == userID {
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

// GetThreadMessages returns both directions of a conversation between two
// users about one auction, in insertion order.
func (r *MemoryRepo) GetThreadMessages(ctx context.Context, auctionID, userA, userB string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var msgs []model.Message
	for _, id := range r.msgOrder {
		m := r.messages[id]
		if m.AuctionID != auctionID {
			continue
		}
		if (m.Sender == userA && m.Recipient == userB) || (m.Sender == userB && m.Recipient == userA) {
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

// UpdateMessage replaces a stored message's flags
func (r *MemoryRepo) UpdateMessage(ctx context.Context, msg model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[msg.MessageID]; !ok {
		return fmt.Errorf("update message %s: %w", msg.MessageID, auctionerrors.ErrMessageNotFound)
	}
	r.messages[msg.MessageID] = msg
	return nil
}

// GetUserProfile returns a stored user profile
func (r *MemoryRepo) GetUserProfile(ctx context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user profile %s: user not found", userID)
	}
	return user, nil
}

// AddUser stores a user profile. Used by seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddAuction stores an auction directly, bypassing creation-time
// validation. Used by seeding and tests.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = auction
}
