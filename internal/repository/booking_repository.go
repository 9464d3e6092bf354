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

type BookingRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error)
	ListByEvent(ctx context.Context, eventID int, statuses ...model.BookingStatus) ([]*model.Booking, error)
	AttendanceStats(ctx context.Context, userIDs []int, before time.Time) (map[int]model.AttendanceStats, error)

	// Transaction methods, tx may be nil for reads outside a transaction
	FindByBookingIDWithLock(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*model.Booking, error)
	FindByUserAndEventWithLock(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Booking, error)
	FindByPaymentIntent(ctx context.Context, tx pgx.Tx, paymentIntentID string) (*model.Booking, error)
	CountHeldSeats(ctx context.Context, tx pgx.Tx, eventID int) (int, error)
	HasConfirmedByEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (bool, error)
	Save(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, booking_id, user_id, event_id, status,
		payment_method, payment_reference, payment_intent_id,
		amount_charged, platform_fee, amount_refunded, currency,
		verified_by, verified_at, rejection_reason, checked_in_at,
		interested_at, pending_at, paid_at, failed_at, refunded_at, joined_at, cancelled_at,
		created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	var method, reference, intent *string
	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.UserID,
		&b.EventID,
		&b.Status,
		&method,
		&reference,
		&intent,
		&b.AmountCharged,
		&b.PlatformFee,
		&b.AmountRefunded,
		&b.Currency,
		&b.VerifiedBy,
		&b.VerifiedAt,
		&b.RejectionReason,
		&b.CheckedInAt,
		&b.InterestedAt,
		&b.PendingAt,
		&b.PaidAt,
		&b.FailedAt,
		&b.RefundedAt,
		&b.JoinedAt,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	if method != nil && reference != nil {
		b.Payment = &model.PaymentRef{Method: model.PaymentMethod(*method), Reference: *reference}
		if intent != nil {
			b.Payment.PaymentIntentID = *intent
		}
	}
	return &b, nil
}

// paymentColumns flattens the tagged payment reference into its three columns.
func paymentColumns(p *model.PaymentRef) (method, reference, intent *string) {
	if p == nil {
		return nil, nil, nil
	}
	m := string(p.Method)
	ref := p.Reference
	method, reference = &m, &ref
	if p.Method == model.PaymentMethodGateway && p.PaymentIntentID != "" {
		pi := p.PaymentIntentID
		intent = &pi
	}
	return method, reference, intent
}

func (r *BookingRepositoryImpl) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`
	return scanBooking(r.pool.QueryRow(ctx, query, bookingID))
}

func (r *BookingRepositoryImpl) FindByBookingIDWithLock(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1 FOR UPDATE`
	return scanBooking(on(r.pool, tx).QueryRow(ctx, query, bookingID))
}

func (r *BookingRepositoryImpl) FindByUserAndEventWithLock(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 AND event_id = $2 FOR UPDATE`
	return scanBooking(on(r.pool, tx).QueryRow(ctx, query, userID, eventID))
}

func (r *BookingRepositoryImpl) FindByPaymentIntent(ctx context.Context, tx pgx.Tx, paymentIntentID string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_intent_id = $1`
	return scanBooking(on(r.pool, tx).QueryRow(ctx, query, paymentIntentID))
}

func (r *BookingRepositoryImpl) ListByEvent(ctx context.Context, eventID int, statuses ...model.BookingStatus) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE event_id = $1`
	args := []any{eventID}
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		query += ` AND status = ANY($2)`
		args = append(args, values)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountHeldSeats 計算佔用名額的預約數 (PENDING_PAYMENT + PAID + JOINED)
func (r *BookingRepositoryImpl) CountHeldSeats(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE event_id = $1 AND status IN ('PENDING_PAYMENT', 'PAID', 'JOINED')
	`
	var count int
	if err := on(r.pool, tx).QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) HasConfirmedByEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN users u ON u.id = b.user_id
			WHERE b.event_id = $1 AND u.email = LOWER($2) AND b.status IN ('PAID', 'JOINED')
		)
	`
	var exists bool
	if err := on(r.pool, tx).QueryRow(ctx, query, eventID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Save inserts a new booking or rewrites the mutable columns of an existing one.
func (r *BookingRepositoryImpl) Save(ctx context.Context, tx pgx.Tx, b *model.Booking) (*model.Booking, error) {
	method, reference, intent := paymentColumns(b.Payment)
	q := on(r.pool, tx)

	if b.ID == 0 {
		if b.BookingID == uuid.Nil {
			b.BookingID = uuid.New()
		}
		query := `
			INSERT INTO bookings (
				booking_id, user_id, event_id, status,
				payment_method, payment_reference, payment_intent_id,
				amount_charged, platform_fee, amount_refunded, currency,
				interested_at, pending_at, joined_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING ` + bookingColumns
		saved, err := scanBooking(q.QueryRow(ctx, query,
			b.BookingID, b.UserID, b.EventID, b.Status,
			method, reference, intent,
			b.AmountCharged, b.PlatformFee, b.AmountRefunded, b.Currency,
			b.InterestedAt, b.PendingAt, b.JoinedAt,
		))
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("booking for user %d and event %d: %w", b.UserID, b.EventID, apperrors.ErrAlreadyProcessed)
			}
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		return saved, nil
	}

	query := `
		UPDATE bookings SET
			status = $1,
			payment_method = $2, payment_reference = $3, payment_intent_id = $4,
			amount_charged = $5, platform_fee = $6, amount_refunded = $7, currency = $8,
			verified_by = $9, verified_at = $10, rejection_reason = $11, checked_in_at = $12,
			interested_at = $13, pending_at = $14, paid_at = $15, failed_at = $16,
			refunded_at = $17, joined_at = $18, cancelled_at = $19,
			updated_at = $20
		WHERE id = $21
		RETURNING ` + bookingColumns
	saved, err := scanBooking(q.QueryRow(ctx, query,
		b.Status,
		method, reference, intent,
		b.AmountCharged, b.PlatformFee, b.AmountRefunded, b.Currency,
		b.VerifiedBy, b.VerifiedAt, b.RejectionReason, b.CheckedInAt,
		b.InterestedAt, b.PendingAt, b.PaidAt, b.FailedAt,
		b.RefundedAt, b.JoinedAt, b.CancelledAt,
		time.Now().UTC(),
		b.ID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return saved, nil
}

// AttendanceStats counts, per user, confirmed bookings on events that started
// before the cutoff, split by whether the attendee checked in.
func (r *BookingRepositoryImpl) AttendanceStats(ctx context.Context, userIDs []int, before time.Time) (map[int]model.AttendanceStats, error) {
	stats := make(map[int]model.AttendanceStats, len(userIDs))
	if len(userIDs) == 0 {
		return stats, nil
	}

	query := `
		SELECT b.user_id,
		       COUNT(*) FILTER (WHERE b.checked_in_at IS NOT NULL),
		       COUNT(*) FILTER (WHERE b.checked_in_at IS NULL)
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.user_id = ANY($1)
		  AND b.status IN ('PAID', 'JOINED')
		  AND e.start_time < $2
		GROUP BY b.user_id
	`
	rows, err := r.pool.Query(ctx, query, userIDs, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID int
		var s model.AttendanceStats
		if err := rows.Scan(&userID, &s.Attended, &s.NoShows); err != nil {
			return nil, err
		}
		stats[userID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
