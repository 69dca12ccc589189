package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/services/rides"
)

// PaymentRepo stores payments and driver wallet movements
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

var _ rides.PaymentRepo = (*PaymentRepo)(nil)

// NewPaymentRepository creates a payment repository over db
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	logger.Info("Initializing payment repository")
	return &PaymentRepo{cfg: cfg, db: db}
}

// RecordPayment inserts the payment of a ride and, when credit is set, the driver's
// wallet credit in the same transaction. ErrNotApplied means the ride already has a payment.
func (r *PaymentRepo) RecordPayment(ctx context.Context, payment *models.Payment, credit *models.WalletEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (id, ride_id, amount, method, status, transaction_ref, created_at)
		VALUES (:id, :ride_id, :amount, :method, :status, :transaction_ref, :created_at)
		ON CONFLICT (ride_id) DO NOTHING`

	res, err := tx.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if inserted == 0 {
		return rides.ErrNotApplied
	}

	if credit != nil {
		query = `
			INSERT INTO wallet_transactions (id, driver_id, ride_id, amount, transaction_type, description, created_at)
			VALUES (:id, :driver_id, :ride_id, :amount, :transaction_type, :description, :created_at)`
		if _, err = tx.NamedExecContext(ctx, query, credit); err != nil {
			return fmt.Errorf("failed to credit wallet: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListWalletEntries returns the driver's wallet movements, newest first
func (r *PaymentRepo) ListWalletEntries(ctx context.Context, driverID uuid.UUID) ([]*models.WalletEntry, error) {
	query := `
		SELECT id, driver_id, ride_id, amount, transaction_type, description, created_at
		FROM wallet_transactions
		WHERE driver_id = $1
		ORDER BY created_at DESC`

	entries := []*models.WalletEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list wallet entries: %w", err)
	}
	return entries, nil
}
