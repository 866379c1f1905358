package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedNow is inside the [started, ends) window of the active test auction.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activeAuction(id string, startingPrice float64) model.Auction {
	return model.Auction{
		AuctionID:     id,
		Name:          "test auction",
		StartingPrice: startingPrice,
		Started:       "2025-06-15T10:00",
		Ends:          "2025-06-15T14:00",
		SellerID:      "seller1",
	}
}

func closedAuction(id string, startingPrice float64) model.Auction {
	a := activeAuction(id, startingPrice)
	a.Ends = "2025-06-15T11:00"
	return a
}

func pendingAuction(id string, startingPrice float64) model.Auction {
	a := activeAuction(id, startingPrice)
	a.Started = "2025-06-15T13:00"
	return a
}

func newTestService(auctions repository.AuctionStore, bids repository.BidStore) *BiddingService {
	svc := NewBiddingService(auctions, bids)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionStore(ctrl)
	mockBids := repository.NewMockBidStore(ctrl)
	service := newTestService(mockAuctions, mockBids)

	ctx := context.Background()

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		userID        string
		amount        float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:      "first_bid_above_starting_price",
			auctionID: "a1",
			userID:    "user1",
			amount:    120,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a1").Return(activeAuction("a1", 100), nil)
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a1").Return(nil, auctionerrors.ErrNoBids)
				mockBids.EXPECT().RecordBidForAuction(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			userID:        "user1",
			amount:        50,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_userID",
			auctionID:     "a2",
			userID:        "",
			amount:        50,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "non_positive_amount",
			auctionID:     "a3",
			userID:        "user1",
			amount:        0,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "auction_not_found",
			auctionID: "a4",
			userID:    "user1",
			amount:    50,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a4").
					Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "bid_on_closed_auction",
			auctionID: "a5",
			userID:    "user1",
			amount:    500,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a5").Return(closedAuction("a5", 100), nil)
			},
			expectedError: auctionerrors.ErrAuctionClosed,
		},
		{
			name:      "bid_on_pending_auction",
			auctionID: "a6",
			userID:    "user1",
			amount:    500,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a6").Return(pendingAuction("a6", 100), nil)
			},
			expectedError: auctionerrors.ErrAuctionClosed,
		},
		{
			name:      "bid_equal_to_highest_rejected",
			auctionID: "a7",
			userID:    "user2",
			amount:    150,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a7").Return(activeAuction("a7", 100), nil)
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a7").
					Return([]model.Bid{{BidID: "b1", AuctionID: "a7", Amount: 150}}, nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "bid_below_starting_price_rejected",
			auctionID: "a8",
			userID:    "user2",
			amount:    80,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a8").Return(activeAuction("a8", 100), nil)
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a8").Return(nil, auctionerrors.ErrNoBids)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "unparsable_end_bound",
			auctionID: "a9",
			userID:    "user1",
			amount:    200,
			mockSetup: func() {
				a := activeAuction("a9", 100)
				a.Ends = "not-a-time"
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a9").Return(a, nil)
			},
			expectedError: auctionerrors.ErrMalformedTimestamp,
		},
		{
			name:      "repo_write_fails",
			auctionID: "a10",
			userID:    "user3",
			amount:    200,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "a10").Return(activeAuction("a10", 100), nil)
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a10").Return(nil, auctionerrors.ErrNoBids)
				mockBids.EXPECT().RecordBidForAuction(gomock.Any(), gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectedError: nil, // Service wraps repo error, we don't match a sentinel here
		},
	}

	for _, tc := range tests {
		tc := tc
		wantSuccess := tc.name == "first_bid_above_starting_price"
		wantError := !wantSuccess

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			bid, err := service.PlaceBid(ctx, tc.auctionID, tc.userID, tc.amount)

			if wantError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				require.NotEmpty(t, bid.BidID)
				_, parseErr := uuid.Parse(bid.BidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")

				require.Equal(t, tc.auctionID, bid.AuctionID)
				require.Equal(t, tc.userID, bid.UserID)
				require.Equal(t, tc.amount, bid.Amount)
				require.True(t, bid.CreatedAt.Equal(fixedNow))
			}
		})
	}
}

// A rejected bid must leave the stored highest unchanged.
func TestBiddingService_RejectedBidLeavesPriceUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddAuction(activeAuction("a1", 100))
	service := newTestService(repo, repo)

	accepted, err := service.PlaceBid(ctx, "a1", "user1", 150)
	require.NoError(t, err)

	_, err = service.PlaceBid(ctx, "a1", "user2", 150)
	require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow))

	winning, err := service.GetWinningBid(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, accepted.BidID, winning.BidID)
	require.Equal(t, 150.0, winning.Amount)
}

// Tests GetBidsForAuction
func TestBiddingService_GetBidsForAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionStore(ctrl)
	mockBids := repository.NewMockBidStore(ctrl)
	service := newTestService(mockAuctions, mockBids)

	ctx := context.Background()
	now := time.Now().UTC()

	bidsExample := []model.Bid{
		{BidID: "bid1", AuctionID: "a1", UserID: "user1", Amount: 100, CreatedAt: now},
		{BidID: "bid2", AuctionID: "a1", UserID: "user2", Amount: 150, CreatedAt: now.Add(time.Second)},
	}

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func()
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:      "auction_with_bids",
			auctionID: "a1",
			mockSetup: func() {
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a1").Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "no_bids_propagated",
			auctionID: "a2",
			mockSetup: func() {
				mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a2").Return(nil, auctionerrors.ErrNoBids)
			},
			expectedError: auctionerrors.ErrNoBids,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			bids, err := service.GetBidsForAuction(ctx, tc.auctionID)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}

// Tests GetWinningBid: the outcome is the maximum amount, and zero bids is
// a distinct no-winner result.
func TestBiddingService_GetWinningBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionStore(ctrl)
	mockBids := repository.NewMockBidStore(ctrl)
	service := newTestService(mockAuctions, mockBids)

	ctx := context.Background()

	t.Run("max_of_unordered_amounts", func(t *testing.T) {
		mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a1").Return([]model.Bid{
			{BidID: "bid1", AuctionID: "a1", UserID: "user1", Amount: 10},
			{BidID: "bid2", AuctionID: "a1", UserID: "user2", Amount: 25},
			{BidID: "bid3", AuctionID: "a1", UserID: "user3", Amount: 18},
		}, nil)

		winning, err := service.GetWinningBid(ctx, "a1")
		require.NoError(t, err)
		require.Equal(t, "bid2", winning.BidID)
		require.Equal(t, 25.0, winning.Amount)
	})

	t.Run("zero_bids_is_no_winner", func(t *testing.T) {
		mockBids.EXPECT().GetBidsByAuction(gomock.Any(), "a2").Return(nil, auctionerrors.ErrNoBids)

		_, err := service.GetWinningBid(ctx, "a2")
		require.True(t, errors.Is(err, auctionerrors.ErrNoBids))
	})

	t.Run("empty_auctionID", func(t *testing.T) {
		_, err := service.GetWinningBid(ctx, "")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})
}

// N concurrent bidders race on one auction with distinct amounts. Every
// accepted bid must have been validated against the committed highest at
// its turn, so the acceptance sequence is strictly increasing and the
// final winner holds the maximum accepted amount.
func TestBiddingService_ConcurrentPlaceBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddAuction(activeAuction("hot", 0))
	service := newTestService(repo, repo)

	const bidders = 50

	var wg sync.WaitGroup
	accepted := make([]bool, bidders)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := float64(i + 1) // strictly distinct amounts
			_, err := service.PlaceBid(ctx, "hot", fmt.Sprintf("user%d", i), amount)
			if err == nil {
				accepted[i] = true
			} else {
				require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow),
					"only BidTooLow rejections are legal here, got: %v", err)
			}
		}(i)
	}
	wg.Wait()

	bids, err := repo.GetBidsByAuction(ctx, "hot")
	require.NoError(t, err)
	require.NotEmpty(t, bids)

	// Acceptance order equals storage order for the memory repo; amounts
	// must be strictly increasing along it.
	for i := 1; i < len(bids); i++ {
		require.Greater(t, bids[i].Amount, bids[i-1].Amount,
			"accepted amounts must be strictly increasing, got %v then %v", bids[i-1].Amount, bids[i].Amount)
	}

	// The top amount always gets accepted, and its acceptance matches the
	// bookkeeping above.
	require.True(t, accepted[bidders-1], "the highest distinct amount can never be rejected")
	winning, err := service.GetWinningBid(ctx, "hot")
	require.NoError(t, err)
	require.Equal(t, float64(bidders), winning.Amount)
}
