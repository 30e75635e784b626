package tarot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists tarot readings.
type Repository interface {
	Save(ctx context.Context, reading Reading) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Reading, error)
}

// PostgresRepository stores readings in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts a reading with its cards serialized as JSONB.
func (r *PostgresRepository) Save(ctx context.Context, reading Reading) error {
	readingID, err := uuid.Parse(reading.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(reading.UserID)
	if err != nil {
		return err
	}
	cards, err := json.Marshal(reading.Cards)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO tarot_readings (id, user_id, spread_type, question, cards, interpretation, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		readingID, userID, reading.SpreadType, reading.Question, cards, reading.Interpretation, reading.CreatedAt.UTC())
	return err
}

// ListByUser returns the user's most recent readings, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Reading, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, spread_type, question, cards, interpretation, created_at
        FROM tarot_readings WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []Reading
	for rows.Next() {
		var (
			id        uuid.UUID
			owner     uuid.UUID
			cards     []byte
			createdAt time.Time
			reading   Reading
		)
		if err := rows.Scan(&id, &owner, &reading.SpreadType, &reading.Question, &cards, &reading.Interpretation, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cards, &reading.Cards); err != nil {
			return nil, err
		}
		reading.ID = id.String()
		reading.UserID = owner.String()
		reading.CreatedAt = createdAt.UTC()
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}
