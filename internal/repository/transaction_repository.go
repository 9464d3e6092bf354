package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	// Create returns ErrAlreadyProcessed when a transaction already exists for
	// the external reference.
	Create(ctx context.Context, tx pgx.Tx, t *model.Transaction) (*model.Transaction, error)
	FindByExternalRef(ctx context.Context, tx pgx.Tx, externalRef string) (*model.Transaction, error)
	// FindByBookingID returns the booking's own charge, never a reversed stray one.
	FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.Transaction, error)
	UpdateRefund(ctx context.Context, tx pgx.Tx, t *model.Transaction) error
}

type TransactionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &TransactionRepositoryImpl{
		pool: pool,
	}
}

const transactionColumns = `id, transaction_id, booking_id, external_ref, gross, platform_fee, host_net,
		currency, status, refund_amount, refunded_at, refund_reason, gateway_refund_id,
		created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	var t model.Transaction
	err := row.Scan(
		&t.ID,
		&t.TransactionID,
		&t.BookingID,
		&t.ExternalRef,
		&t.Gross,
		&t.PlatformFee,
		&t.HostNet,
		&t.Currency,
		&t.Status,
		&t.RefundAmount,
		&t.RefundedAt,
		&t.RefundReason,
		&t.GatewayRefundID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, t *model.Transaction) (*model.Transaction, error) {
	if t.TransactionID == uuid.Nil {
		t.TransactionID = uuid.New()
	}
	query := `
		INSERT INTO transactions (
			transaction_id, booking_id, external_ref, gross, platform_fee, host_net, currency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_ref) DO NOTHING
		RETURNING ` + transactionColumns

	created, err := scanTransaction(on(r.pool, tx).QueryRow(ctx, query,
		t.TransactionID, t.BookingID, t.ExternalRef, t.Gross, t.PlatformFee, t.HostNet, t.Currency, t.Status,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", t.ExternalRef, apperrors.ErrAlreadyProcessed)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

func (r *TransactionRepositoryImpl) FindByExternalRef(ctx context.Context, tx pgx.Tx, externalRef string) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE external_ref = $1`
	return scanTransaction(on(r.pool, tx).QueryRow(ctx, query, externalRef))
}

func (r *TransactionRepositoryImpl) FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE booking_id = $1 AND status <> 'REVERSED'
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`
	return scanTransaction(on(r.pool, tx).QueryRow(ctx, query, bookingID))
}

// UpdateRefund writes the refund columns, the only ones that change after creation.
func (r *TransactionRepositoryImpl) UpdateRefund(ctx context.Context, tx pgx.Tx, t *model.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $1, refund_amount = $2, refunded_at = $3, refund_reason = $4,
		    gateway_refund_id = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := on(r.pool, tx).Exec(ctx, query,
		t.Status, t.RefundAmount, t.RefundedAt, t.RefundReason, t.GatewayRefundID, time.Now().UTC(), t.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
