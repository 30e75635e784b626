package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnknownSession indicates no transaction exists for a session id.
var ErrUnknownSession = errors.New("unknown payment session")

// Repository persists payment transactions.
type Repository interface {
	Create(ctx context.Context, txn Transaction) error
	FindBySession(ctx context.Context, sessionID string) (Transaction, error)
	UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error
}

// PostgresRepository stores transactions in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a transaction record.
func (r *PostgresRepository) Create(ctx context.Context, txn Transaction) error {
	txnID, err := uuid.Parse(txn.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(txn.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO payment_transactions (id, user_id, session_id, package_id, amount_cents, currency, status, payment_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txnID, userID, txn.SessionID, txn.PackageID, txn.AmountCents, txn.Currency, txn.Status, txn.PaymentStatus, txn.CreatedAt.UTC())
	return err
}

// FindBySession fetches a transaction by the processor's session id.
func (r *PostgresRepository) FindBySession(ctx context.Context, sessionID string) (Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, session_id, package_id, amount_cents, currency, status, payment_status, created_at
        FROM payment_transactions WHERE session_id = $1`, sessionID)
	var (
		id        uuid.UUID
		userID    uuid.UUID
		createdAt time.Time
		txn       Transaction
	)
	err := row.Scan(&id, &userID, &txn.SessionID, &txn.PackageID, &txn.AmountCents, &txn.Currency, &txn.Status, &txn.PaymentStatus, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrUnknownSession
	}
	if err != nil {
		return Transaction{}, err
	}
	txn.ID = id.String()
	txn.UserID = userID.String()
	txn.CreatedAt = createdAt.UTC()
	return txn, nil
}

// UpdateStatus mirrors the processor's status onto the transaction.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE payment_transactions SET status = $2, payment_status = $3 WHERE session_id = $1`,
		sessionID, status, paymentStatus)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUnknownSession
	}
	return nil
}
