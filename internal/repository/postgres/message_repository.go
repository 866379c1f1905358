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

// MessageRepository implements repository.MessageStore
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository instance
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = "message_id, sender, recipient, auction_id, content, sent_at, is_read, hidden_by_sender, hidden_by_recipient"

func scanMessage(row pgx.Row) (model.Message, error) {
	var m model.Message
	err := row.Scan(
		&m.MessageID,
		&m.Sender,
		&m.Recipient,
		&m.AuctionID,
		&m.Content,
		&m.SentAt,
		&m.Read,
		&m.HiddenBySender,
		&m.HiddenByRecipient,
	)
	return m, err
}

// SaveMessage inserts a new message row
func (r *MessageRepository) SaveMessage(ctx context.Context, msg model.Message) error {
	query := `
        INSERT INTO messages (` + messageColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.pool.Exec(ctx, query,
		msg.MessageID,
		msg.Sender,
		msg.Recipient,
		msg.AuctionID,
		msg.Content,
		msg.SentAt,
		msg.Read,
		msg.HiddenBySender,
		msg.HiddenByRecipient,
	)
	return err
}

// GetMessageByID returns a single message row
func (r *MessageRepository) GetMessageByID(ctx context.Context, messageID string) (model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE message_id = $1`
	msg, err := scanMessage(r.pool.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Message{}, fmt.Errorf("get message %s: %w", messageID, auctionerrors.ErrMessageNotFound)
		}
		return model.Message{}, err
	}
	return msg, nil
}

// GetMessagesByRecipient returns every message addressed to a user
func (r *MessageRepository) GetMessagesByRecipient(ctx context.Context, userID string) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE recipient = $1 ORDER BY sent_at ASC`
	return r.queryMessages(ctx, query, userID)
}

// GetMessagesBySender returns every message a user has sent
func (r *MessageRepository) GetMessagesBySender(ctx context.Context, userID string) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE sender = $1 ORDER BY sent_at ASC`
	return r.queryMessages(ctx, query, userID)
}

// GetThreadMessages returns both directions of a conversation between two
// users about one auction
func (r *MessageRepository) GetThreadMessages(ctx context.Context, auctionID, userA, userB string) ([]model.Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM messages
        WHERE auction_id = $1
          AND ((sender = $2 AND recipient = $3) OR (sender = $3 AND recipient = $2))
        ORDER BY sent_at ASC
    `
	return r.queryMessages(ctx, query, auctionID, userA, userB)
}

// UpdateMessage replaces a message's read/hidden flags
func (r *MessageRepository) UpdateMessage(ctx context.Context, msg model.Message) error {
	query := `
        UPDATE messages
        SET is_read = $2, hidden_by_sender = $3, hidden_by_recipient = $4
        WHERE message_id = $1
    `
	tag, err := r.pool.Exec(ctx, query,
		msg.MessageID,
		msg.Read,
		msg.HiddenBySender,
		msg.HiddenByRecipient,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update message %s: %w", msg.MessageID, auctionerrors.ErrMessageNotFound)
	}
	return nil
}

func (r *MessageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
