package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// BidRepository implements repository.BidStore
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates a new BidRepository instance
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

// RecordBidForAuction appends an accepted bid row. The foreign key rejects
// bids against an auction that does not exist.
func (r *BidRepository) RecordBidForAuction(ctx context.Context, bid model.Bid) error {
	query := `
        INSERT INTO bids (bid_id, auction_id, user_id, amount, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		bid.BidID,
		bid.AuctionID,
		bid.UserID,
		bid.Amount,
		bid.CreatedAt,
	)
	return err
}

// GetBidsByAuction returns all bids for an auction in acceptance order
func (r *BidRepository) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	query := `
        SELECT bid_id, auction_id, user_id, amount, created_at
        FROM bids
        WHERE auction_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.pool.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		err := rows.Scan(&b.BidID, &b.AuctionID, &b.UserID, &b.Amount, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}
