package community

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists community posts.
type Repository interface {
	Create(ctx context.Context, post Post) error
	// List returns posts newest first; an empty category means no filter.
	List(ctx context.Context, category string, limit int) ([]Post, error)
}

// PostgresRepository stores posts in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a post record.
func (r *PostgresRepository) Create(ctx context.Context, post Post) error {
	postID, err := uuid.Parse(post.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(post.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO community_posts (id, user_id, user_name, content, category, likes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		postID, userID, post.UserName, post.Content, post.Category, post.Likes, post.CreatedAt.UTC())
	return err
}

// List fetches the feed, optionally filtered by category.
func (r *PostgresRepository) List(ctx context.Context, category string, limit int) ([]Post, error) {
	query := `SELECT id, user_id, user_name, content, category, likes, created_at
        FROM community_posts ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}
	if category != "" {
		query = `SELECT id, user_id, user_name, content, category, likes, created_at
            FROM community_posts WHERE category = $2 ORDER BY created_at DESC LIMIT $1`
		args = append(args, category)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var (
			id        uuid.UUID
			owner     uuid.UUID
			createdAt time.Time
			post      Post
		)
		if err := rows.Scan(&id, &owner, &post.UserName, &post.Content, &post.Category, &post.Likes, &createdAt); err != nil {
			return nil, err
		}
		post.ID = id.String()
		post.UserID = owner.String()
		post.CreatedAt = createdAt.UTC()
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
