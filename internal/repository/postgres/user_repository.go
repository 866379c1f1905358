package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "auction-market/internal/models"
)

// UserRepository implements repository.ProfileDirectory
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetUserProfile returns a stored user profile
func (r *UserRepository) GetUserProfile(ctx context.Context, userID string) (model.User, error) {
	query := `SELECT user_id, username, location, country FROM users WHERE user_id = $1`
	var u model.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(&u.UserID, &u.Username, &u.Location, &u.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user profile %s: user not found", userID)
		}
		return model.User{}, err
	}
	return u, nil
}
