// Package postgres provides pgx-backed implementations of the store
// interfaces for deployments with a shared database.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// AuctionRepository implements repository.AuctionStore
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository creates a new AuctionRepository instance
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

const auctionColumns = "auction_id, name, description, categories, starting_price, started, ends, location, country, seller_id"

func scanAuction(row pgx.Row) (model.Auction, error) {
	var a model.Auction
	err := row.Scan(
		&a.AuctionID,
		&a.Name,
		&a.Description,
		&a.Categories,
		&a.StartingPrice,
		&a.Started,
		&a.Ends,
		&a.Location,
		&a.Country,
		&a.SellerID,
	)
	return a, err
}

// SaveAuction inserts or replaces an auction row
func (r *AuctionRepository) SaveAuction(ctx context.Context, auction model.Auction) error {
	query := `
        INSERT INTO auctions (` + auctionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (auction_id) DO UPDATE
        SET
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            categories = EXCLUDED.categories,
            starting_price = EXCLUDED.starting_price,
            started = EXCLUDED.started,
            ends = EXCLUDED.ends,
            location = EXCLUDED.location,
            country = EXCLUDED.country,
            seller_id = EXCLUDED.seller_id
    `
	_, err := r.pool.Exec(ctx, query,
		auction.AuctionID,
		auction.Name,
		auction.Description,
		auction.Categories,
		auction.StartingPrice,
		auction.Started,
		auction.Ends,
		auction.Location,
		auction.Country,
		auction.SellerID,
	)
	return err
}

// GetAuctionByID returns a single auction row
func (r *AuctionRepository) GetAuctionByID(ctx context.Context, auctionID string) (model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id = $1`
	auction, err := scanAuction(r.pool.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, err
	}
	return auction, nil
}

// GetAllAuctions returns every auction row
func (r *AuctionRepository) GetAllAuctions(ctx context.Context) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	return r.queryAuctions(ctx, query)
}

// GetAuctionsBySeller returns the auctions listed by one seller
func (r *AuctionRepository) GetAuctionsBySeller(ctx context.Context, sellerID string) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE seller_id = $1`
	return r.queryAuctions(ctx, query, sellerID)
}

// DeleteAuctionByID removes an auction row
func (r *AuctionRepository) DeleteAuctionByID(ctx context.Context, auctionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM auctions WHERE auction_id = $1`, auctionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

func (r *AuctionRepository) queryAuctions(ctx context.Context, query string, args ...any) ([]model.Auction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var auctions []model.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}
