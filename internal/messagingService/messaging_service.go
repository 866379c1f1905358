package messaging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/lifecycle"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// WinnerResolver yields the winning bid of an auction. The bidding
// service satisfies this; no-bids is reported with ErrNoBids.
type WinnerResolver interface {
	GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error)
}

// MessagingService gates message exchange to the winner and seller of a
// closed auction and manages per-participant read/hidden flags. The
// reference "now" comes from an injected clock (UTC by default) so the
// end-of-auction comparison is timezone-explicit.
type MessagingService struct {
	auctions repository.AuctionStore
	messages repository.MessageStore
	winners  WinnerResolver
	now      func() time.Time
}

// NewMessagingService creates a new MessagingService instance
func NewMessagingService(auctions repository.AuctionStore, messages repository.MessageStore, winners WinnerResolver) *MessagingService {
	return &MessagingService{
		auctions: auctions,
		messages: messages,
		winners:  winners,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SendMessage stores a message between the winner and seller of a closed
// auction. Preconditions, in order: the auction exists, it is closed, it
// has a winner, and (sender, recipient) is exactly (winner, seller) or
// (seller, winner). Any other pairing is rejected.
func (s *MessagingService) SendMessage(ctx context.Context, senderID, recipientID, auctionID, content string) (models.Message, error) {
	if senderID == "" || recipientID == "" || auctionID == "" || content == "" {
		return models.Message{}, fmt.Errorf("service: %w - missing sender, recipient, auction or content", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Message{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	state, err := lifecycle.Resolve(auction.Started, auction.Ends, s.now())
	if err != nil {
		return models.Message{}, fmt.Errorf("service: auction %s: %w", auctionID, err)
	}
	if state != lifecycle.StateClosed {
		return models.Message{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotFinished, auctionID, state)
	}

	winner, err := s.winners.GetWinningBid(ctx, auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return models.Message{}, fmt.Errorf("service: %w - auction %s received no bids", auctionerrors.ErrNoWinner, auctionID)
		}
		return models.Message{}, fmt.Errorf("service: failed to resolve winner for auction %s: %w", auctionID, err)
	}

	validPair := (senderID == winner.UserID && recipientID == auction.SellerID) ||
		(senderID == auction.SellerID && recipientID == winner.UserID)
	if !validPair {
		return models.Message{}, fmt.Errorf("service: %w - only the winner and seller can message each other", auctionerrors.ErrUnauthorized)
	}

	msg := models.Message{
		MessageID: utils.GenerateID(),
		Sender:    senderID,
		Recipient: recipientID,
		AuctionID: auctionID,
		Content:   content,
		SentAt:    s.now(),
	}

	if err := s.messages.SaveMessage(ctx, msg); err != nil {
		return models.Message{}, fmt.Errorf("service: failed to save message for auction %s: %w", auctionID, err)
	}

	utils.Info("message sent", map[string]any{
		"message_id": msg.MessageID,
		"auction_id": auctionID,
		"sender":     senderID,
		"recipient":  recipientID,
	})
	return msg, nil
}

// GetInbox returns the messages addressed to a user, newest first,
// excluding messages the user has hidden.
func (s *MessagingService) GetInbox(ctx context.Context, userID string) ([]models.Message, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	msgs, err := s.messages.GetMessagesByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get inbox for %s: %w", userID, err)
	}
	visible := msgs[:0:0]
	for _, m := range msgs {
		if !m.HiddenByRecipient {
			visible = append(visible, m)
		}
	}
	sortBySentAtDesc(visible)
	return visible, nil
}

// GetSent returns the messages a user has sent, newest first, excluding
// messages the user has hidden.
func (s *MessagingService) GetSent(ctx context.Context, userID string) ([]models.Message, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	msgs, err := s.messages.GetMessagesBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get sent messages for %s: %w", userID, err)
	}
	visible := msgs[:0:0]
	for _, m := range msgs {
		if !m.HiddenBySender {
			visible = append(visible, m)
		}
	}
	sortBySentAtDesc(visible)
	return visible, nil
}

// GetThread returns both directions of the conversation between two users
// about one auction, oldest first, excluding messages hidden by
// currentUser's own tombstone. The other participant's tombstones have no
// effect on what currentUser sees.
func (s *MessagingService) GetThread(ctx context.Context, auctionID, currentUser, otherUser string) ([]models.Message, error) {
	if auctionID == "" || currentUser == "" || otherUser == "" {
		return nil, fmt.Errorf("service: %w - missing auction or participant", auctionerrors.ErrInvalidInput)
	}
	msgs, err := s.messages.GetThreadMessages(ctx, auctionID, currentUser, otherUser)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get thread for auction %s: %w", auctionID, err)
	}
	visible := msgs[:0:0]
	for _, m := range msgs {
		if m.Sender == currentUser && m.HiddenBySender {
			continue
		}
		if m.Recipient == currentUser && m.HiddenByRecipient {
			continue
		}
		visible = append(visible, m)
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].SentAt.Before(visible[j].SentAt) })
	return visible, nil
}

// MarkRead sets the read flag if userID is the recipient and the flag is
// still unset. Repeat calls and calls by non-recipients are no-ops, never
// errors; only a missing message fails.
func (s *MessagingService) MarkRead(ctx context.Context, messageID, userID string) error {
	if messageID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing message or user ID", auctionerrors.ErrInvalidInput)
	}
	msg, err := s.messages.GetMessageByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("service: failed to get message %s: %w", messageID, err)
	}
	if userID != msg.Recipient || msg.Read {
		return nil
	}
	msg.Read = true
	if err := s.messages.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("service: failed to mark message %s read: %w", messageID, err)
	}
	return nil
}

// DeleteMessage sets the caller's tombstone(s) on a message: the sender
// side if userID is the sender, the recipient side if userID is the
// recipient. A caller matching neither role is a silent no-op; the row is
// never physically removed by one participant's delete.
func (s *MessagingService) DeleteMessage(ctx context.Context, messageID, userID string) error {
	if messageID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing message or user ID", auctionerrors.ErrInvalidInput)
	}
	msg, err := s.messages.GetMessageByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("service: failed to get message %s: %w", messageID, err)
	}

	changed := false
	if userID == msg.Sender && !msg.HiddenBySender {
		msg.HiddenBySender = true
		changed = true
	}
	if userID == msg.Recipient && !msg.HiddenByRecipient {
		msg.HiddenByRecipient = true
		changed = true
	}
	if !changed {
		return nil
	}

	if err := s.messages.UpdateMessage(ctx, msg); err != nil {
		return fmt.Errorf("service: failed to hide message %s: %w", messageID, err)
	}
	utils.Info("message hidden", map[string]any{"message_id": messageID, "user_id": userID})
	return nil
}

func sortBySentAtDesc(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].SentAt.After(msgs[j].SentAt) })
}
