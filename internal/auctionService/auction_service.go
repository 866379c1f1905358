package auction

import (
	"context"
	"fmt"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/lifecycle"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/internal/timeparse"
	"auction-market/utils"
)

// NewAuctionInput carries the seller-supplied fields of a new listing.
// Started may be empty, meaning the auction starts immediately.
type NewAuctionInput struct {
	Name          string
	Description   string
	Categories    string
	StartingPrice float64
	Started       string
	Ends          string
}

// AuctionService implements auction creation, retrieval and withdrawal.
type AuctionService struct {
	auctions repository.AuctionStore
	profiles repository.ProfileDirectory
	now      func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionStore, profiles repository.ProfileDirectory) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateAuction validates and stores a new listing for the given seller.
// Start/end values must be in the strict creation form and are stored in
// the canonical "yyyy-MM-ddTHH:mm" shape; the end instant must be strictly
// after now. The seller's location and country are copied onto the
// auction from the profile directory.
func (s *AuctionService) CreateAuction(ctx context.Context, sellerID string, in NewAuctionInput) (models.Auction, error) {
	if sellerID == "" || in.Name == "" || in.Ends == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing seller, name or end time", auctionerrors.ErrInvalidInput)
	}
	if in.StartingPrice < 0 {
		return models.Auction{}, fmt.Errorf("service: %w - negative starting price", auctionerrors.ErrInvalidInput)
	}

	now := s.now()

	ends, endInstant, err := timeparse.ParseCreationTime(in.Ends)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: end time: %w", err)
	}
	if !endInstant.After(now) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be after now", auctionerrors.ErrInvalidInput)
	}

	started := ""
	if in.Started != "" {
		var startInstant time.Time
		started, startInstant, err = timeparse.ParseCreationTime(in.Started)
		if err != nil {
			return models.Auction{}, fmt.Errorf("service: start time: %w", err)
		}
		if !startInstant.After(now) {
			return models.Auction{}, fmt.Errorf("service: %w - start time must be after now", auctionerrors.ErrInvalidInput)
		}
		if !endInstant.After(startInstant) {
			return models.Auction{}, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidInput)
		}
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Name:          in.Name,
		Description:   in.Description,
		Categories:    in.Categories,
		StartingPrice: in.StartingPrice,
		Started:       started,
		Ends:          ends,
		SellerID:      sellerID,
	}

	// Seller location/country are snapshots taken at creation; a missing
	// profile leaves them empty rather than failing the listing.
	if profile, err := s.profiles.GetUserProfile(ctx, sellerID); err == nil {
		auction.Location = profile.Location
		auction.Country = profile.Country
	} else {
		utils.Warn("seller profile unavailable at auction creation", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
	}

	if err := s.auctions.SaveAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to save auction for seller %s: %w", sellerID, err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
		"ends":       auction.Ends,
	})
	return auction, nil
}

// GetAuction returns a single auction by ID
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns all stored auctions
func (s *AuctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.auctions.GetAllAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// ListBySeller returns the auctions listed by one seller
func (s *AuctionService) ListBySeller(ctx context.Context, sellerID string) ([]models.Auction, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", auctionerrors.ErrInvalidInput)
	}
	auctions, err := s.auctions.GetAuctionsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions for seller %s: %w", sellerID, err)
	}
	return auctions, nil
}

// DeleteAuction withdraws a listing. Withdrawal is permitted only while
// the auction is still pending; once it has started the listing is
// immutable and the call fails with ErrAuctionStarted.
func (s *AuctionService) DeleteAuction(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	if err := lifecycle.CanDelete(auction.Started, s.now()); err != nil {
		return fmt.Errorf("service: auction %s: %w", auctionID, err)
	}

	if err := s.auctions.DeleteAuctionByID(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}

	utils.Info("auction withdrawn", map[string]any{"auction_id": auctionID})
	return nil
}
