package bioscan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bio scans.
type Repository interface {
	Save(ctx context.Context, scan Scan) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Scan, error)
}

// PostgresRepository stores scans in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts a scan with its maps serialized as JSONB.
func (r *PostgresRepository) Save(ctx context.Context, scan Scan) error {
	scanID, err := uuid.Parse(scan.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(scan.UserID)
	if err != nil {
		return err
	}
	frequencies, err := json.Marshal(scan.Frequencies)
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(scan.Recommendations)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO bio_scans (id, user_id, transcription, analysis, frequencies, recommendations, vitality_score, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		scanID, userID, scan.Transcription, scan.Analysis, frequencies, recommendations, scan.VitalityScore, scan.CreatedAt.UTC())
	return err
}

// ListByUser returns the user's most recent scans, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Scan, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, transcription, analysis, frequencies, recommendations, vitality_score, created_at
        FROM bio_scans WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var (
			id              uuid.UUID
			owner           uuid.UUID
			frequencies     []byte
			recommendations []byte
			createdAt       time.Time
			scan            Scan
		)
		if err := rows.Scan(&id, &owner, &scan.Transcription, &scan.Analysis, &frequencies, &recommendations, &scan.VitalityScore, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(frequencies, &scan.Frequencies); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(recommendations, &scan.Recommendations); err != nil {
			return nil, err
		}
		scan.ID = id.String()
		scan.UserID = owner.String()
		scan.CreatedAt = createdAt.UTC()
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}
