package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WaitlistRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *model.WaitlistEntry) (*model.WaitlistEntry, error)
	FindByEventAndEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (*model.WaitlistEntry, error)
	ListByEvent(ctx context.Context, eventID int) ([]*model.WaitlistEntry, error)
	CountWaitingBefore(ctx context.Context, eventID int, position int) (int, error)
	// CountNotified counts open seat offers that have not yet been converted or expired.
	CountNotified(ctx context.Context, tx pgx.Tx, eventID int) (int, error)
	Delete(ctx context.Context, tx pgx.Tx, eventID int, email string) error
	// NextWaiting locks the lowest-position WAITING entry of the event.
	NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.WaitlistEntry, error)
	// ListExpired locks NOTIFIED entries whose window closed before now.
	ListExpired(ctx context.Context, tx pgx.Tx, now time.Time) ([]*model.WaitlistEntry, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, entry *model.WaitlistEntry) error
}

type WaitlistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) WaitlistRepository {
	return &WaitlistRepositoryImpl{
		pool: pool,
	}
}

const waitlistColumns = `id, entry_id, event_id, email, name, position, status,
		notified_at, notification_expires_at, converted_at, created_at, updated_at`

func scanWaitlistEntry(row pgx.Row) (*model.WaitlistEntry, error) {
	var e model.WaitlistEntry
	err := row.Scan(
		&e.ID,
		&e.EntryID,
		&e.EventID,
		&e.Email,
		&e.Name,
		&e.Position,
		&e.Status,
		&e.NotifiedAt,
		&e.NotificationExpiresAt,
		&e.ConvertedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWaitlistEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *WaitlistRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, entry *model.WaitlistEntry) (*model.WaitlistEntry, error) {
	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}
	query := `
		INSERT INTO waitlist_entries (entry_id, event_id, email, name, position, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + waitlistColumns
	created, err := scanWaitlistEntry(on(r.pool, tx).QueryRow(ctx, query,
		entry.EntryID, entry.EventID, strings.ToLower(entry.Email), entry.Name, entry.Position, entry.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	return created, nil
}

func (r *WaitlistRepositoryImpl) FindByEventAndEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (*model.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries WHERE event_id = $1 AND email = LOWER($2)`
	return scanWaitlistEntry(on(r.pool, tx).QueryRow(ctx, query, eventID, email))
}

func (r *WaitlistRepositoryImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries WHERE event_id = $1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWaitlistEntries(rows)
}

func collectWaitlistEntries(rows pgx.Rows) ([]*model.WaitlistEntry, error) {
	entries := make([]*model.WaitlistEntry, 0)
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WaitlistRepositoryImpl) CountWaitingBefore(ctx context.Context, eventID int, position int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM waitlist_entries
		WHERE event_id = $1 AND status = 'WAITING' AND position < $2
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, eventID, position).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WaitlistRepositoryImpl) CountNotified(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist_entries WHERE event_id = $1 AND status = 'NOTIFIED'`
	var count int
	if err := on(r.pool, tx).QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WaitlistRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, eventID int, email string) error {
	query := `DELETE FROM waitlist_entries WHERE event_id = $1 AND email = LOWER($2)`
	result, err := on(r.pool, tx).Exec(ctx, query, eventID, email)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrWaitlistEntryNotFound
	}
	return nil
}

func (r *WaitlistRepositoryImpl) NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.WaitlistEntry, error) {
	query := `
		SELECT ` + waitlistColumns + `
		FROM waitlist_entries
		WHERE event_id = $1 AND status = 'WAITING'
		ORDER BY position ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`
	return scanWaitlistEntry(on(r.pool, tx).QueryRow(ctx, query, eventID))
}

func (r *WaitlistRepositoryImpl) ListExpired(ctx context.Context, tx pgx.Tx, now time.Time) ([]*model.WaitlistEntry, error) {
	query := `
		SELECT ` + waitlistColumns + `
		FROM waitlist_entries
		WHERE status = 'NOTIFIED' AND notification_expires_at <= $1
		ORDER BY event_id, position
		FOR UPDATE SKIP LOCKED
	`
	rows, err := on(r.pool, tx).Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWaitlistEntries(rows)
}

func (r *WaitlistRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, entry *model.WaitlistEntry) error {
	query := `
		UPDATE waitlist_entries
		SET status = $1, notified_at = $2, notification_expires_at = $3, converted_at = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := on(r.pool, tx).Exec(ctx, query,
		entry.Status, entry.NotifiedAt, entry.NotificationExpiresAt, entry.ConvertedAt, time.Now().UTC(), entry.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrWaitlistEntryNotFound
	}
	return nil
}
