package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/lifecycle"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// BiddingService implements bid acceptance and auction-outcome resolution.
// Acceptance for one auction is serialized by a mutex keyed on the auction
// ID, so two concurrent bids can never both validate against the same
// stale highest amount. Auctions stay independent of each other.
type BiddingService struct {
	auctions repository.AuctionStore
	bids     repository.BidStore
	locks    sync.Map // auctionID -> *sync.Mutex
	now      func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(auctions repository.AuctionStore, bids repository.BidStore) *BiddingService {
	return &BiddingService{
		auctions: auctions,
		bids:     bids,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *BiddingService) lockFor(auctionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(auctionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// PlaceBid validates and records a user's bid on an auction. The auction
// must exist and be active, and the amount must strictly exceed the
// current highest accepted amount (the starting price when no bids exist).
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, userID string, amount float64) (models.Bid, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	mu := s.lockFor(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	state, err := lifecycle.Resolve(auction.Started, auction.Ends, s.now())
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, err)
	}
	if state != lifecycle.StateActive {
		return models.Bid{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionClosed, auctionID, state)
	}

	highest, err := s.currentHighest(ctx, auction)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to resolve current price for auction %s: %w", auctionID, err)
	}
	if amount <= highest {
		return models.Bid{}, fmt.Errorf("service: %w - current price is %.2f", auctionerrors.ErrBidTooLow, highest)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: s.now(),
	}

	if err := s.bids.RecordBidForAuction(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	utils.Info("bid accepted", map[string]any{
		"auction_id": auctionID,
		"bid_id":     bid.BidID,
		"user_id":    userID,
		"amount":     amount,
	})
	return bid, nil
}

// currentHighest scans the accepted bids and returns the maximum amount,
// falling back to the starting price when the auction has no bids yet.
func (s *BiddingService) currentHighest(ctx context.Context, auction models.Auction) (float64, error) {
	highest := auction.StartingPrice
	bids, err := s.bids.GetBidsByAuction(ctx, auction.AuctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return highest, nil
		}
		return 0, err
	}
	for _, b := range bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest, nil
}

// GetBidsForAuction returns all accepted bids for an auction
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.bids.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid resolves the auction's outcome: the accepted bid with the
// maximum amount. An auction without bids yields ErrNoBids, which callers
// treat as "no winner" rather than a failure. Ties cannot occur because
// acceptance is strictly increasing.
func (s *BiddingService) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.bids.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, nil
}
