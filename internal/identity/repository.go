package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no user matches the given identifier or email.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken indicates the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error
	// SetPremium flips the premium flag on; it reports whether this call
	// performed the transition (false when the user was already premium).
	SetPremium(ctx context.Context, id string, since time.Time) (bool, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, birth_date, birth_time, birth_location, human_design_type, is_premium, premium_since, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		userID, user.Email, user.PasswordHash, user.Name, user.BirthDate, user.BirthTime,
		user.BirthLocation, user.HumanDesignType, user.IsPremium, user.PremiumSince, user.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

const userColumns = `id, email, password_hash, name, birth_date, birth_time, birth_location, human_design_type, is_premium, premium_since, created_at`

// FindByEmail fetches a user by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

// UpdateProfile applies the non-nil fields of the update.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET
        name = COALESCE($2, name),
        birth_date = COALESCE($3, birth_date),
        birth_time = COALESCE($4, birth_time),
        birth_location = COALESCE($5, birth_location),
        human_design_type = COALESCE($6, human_design_type)
        WHERE id = $1`,
		userID, update.Name, update.BirthDate, update.BirthTime, update.BirthLocation, update.HumanDesignType)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPremium marks the user premium if not already.
func (r *PostgresRepository) SetPremium(ctx context.Context, id string, since time.Time) (bool, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return false, ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET is_premium = TRUE, premium_since = $2
        WHERE id = $1 AND is_premium = FALSE`, userID, since.UTC())
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		id           uuid.UUID
		premiumSince *time.Time
		createdAt    time.Time
		user         User
	)
	err := row.Scan(&id, &user.Email, &user.PasswordHash, &user.Name, &user.BirthDate,
		&user.BirthTime, &user.BirthLocation, &user.HumanDesignType, &user.IsPremium,
		&premiumSince, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	user.ID = id.String()
	user.PremiumSince = premiumSince
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
