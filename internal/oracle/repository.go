package oracle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists oracle chat history.
type Repository interface {
	Save(ctx context.Context, msg Message) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Message, error)
}

// PostgresRepository stores chat history in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts a chat exchange.
func (r *PostgresRepository) Save(ctx context.Context, msg Message) error {
	msgID, err := uuid.Parse(msg.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(msg.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO chat_messages (id, user_id, user_message, oracle_response, created_at)
        VALUES ($1, $2, $3, $4, $5)`, msgID, userID, msg.UserMessage, msg.OracleResponse, msg.CreatedAt.UTC())
	return err
}

// ListByUser returns the user's most recent exchanges, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Message, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, user_message, oracle_response, created_at
        FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			id        uuid.UUID
			owner     uuid.UUID
			createdAt time.Time
			msg       Message
		)
		if err := rows.Scan(&id, &owner, &msg.UserMessage, &msg.OracleResponse, &createdAt); err != nil {
			return nil, err
		}
		msg.ID = id.String()
		msg.UserID = owner.String()
		msg.CreatedAt = createdAt.UTC()
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
