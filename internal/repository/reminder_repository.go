package repository

import (
	"context"
	"time"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderRepository interface {
	// Schedule keeps the first schedule for a booking.
	Schedule(ctx context.Context, tx pgx.Tx, bookingID int, sendAt time.Time) error
	// ClaimDue locks unsent reminders due by now whose booking is still confirmed.
	ClaimDue(ctx context.Context, tx pgx.Tx, now time.Time, limit int) ([]*model.DueReminder, error)
	MarkSent(ctx context.Context, tx pgx.Tx, id int, sentAt time.Time) error
}

type ReminderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReminderRepository(pool *pgxpool.Pool) ReminderRepository {
	return &ReminderRepositoryImpl{
		pool: pool,
	}
}

func (r *ReminderRepositoryImpl) Schedule(ctx context.Context, tx pgx.Tx, bookingID int, sendAt time.Time) error {
	query := `
		INSERT INTO reminders (booking_id, send_at)
		VALUES ($1, $2)
		ON CONFLICT (booking_id) DO NOTHING
	`
	_, err := on(r.pool, tx).Exec(ctx, query, bookingID, sendAt)
	return err
}

func (r *ReminderRepositoryImpl) ClaimDue(ctx context.Context, tx pgx.Tx, now time.Time, limit int) ([]*model.DueReminder, error) {
	query := `
		SELECT r.id, r.booking_id, r.send_at, r.sent_at, r.created_at,
		       u.email, e.name, e.start_time
		FROM reminders r
		JOIN bookings b ON b.id = r.booking_id
		JOIN users u ON u.id = b.user_id
		JOIN events e ON e.id = b.event_id
		WHERE r.sent_at IS NULL
		  AND r.send_at <= $1
		  AND b.status IN ('PAID', 'JOINED')
		ORDER BY r.send_at ASC
		LIMIT $2
		FOR UPDATE OF r SKIP LOCKED
	`
	rows, err := on(r.pool, tx).Query(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]*model.DueReminder, 0)
	for rows.Next() {
		var d model.DueReminder
		if err := rows.Scan(
			&d.ID, &d.BookingID, &d.SendAt, &d.SentAt, &d.CreatedAt,
			&d.Email, &d.EventName, &d.StartTime,
		); err != nil {
			return nil, err
		}
		due = append(due, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return due, nil
}

func (r *ReminderRepositoryImpl) MarkSent(ctx context.Context, tx pgx.Tx, id int, sentAt time.Time) error {
	result, err := on(r.pool, tx).Exec(ctx, `UPDATE reminders SET sent_at = $1 WHERE id = $2`, sentAt, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
