package repository

import (
	"context"
	"encoding/json"
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

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	ListByHost(ctx context.Context, hostID int) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error)
	NextWaitlistPosition(ctx context.Context, tx pgx.Tx, id int) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_id, host_id, name, description, capacity, price_minor, currency,
		is_free, fee_policy, refund_policy, start_time, host_payout_account, waitlist_seq,
		created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var policy []byte
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.HostID,
		&event.Name,
		&event.Description,
		&event.Capacity,
		&event.PriceMinor,
		&event.Currency,
		&event.IsFree,
		&event.FeePolicy,
		&policy,
		&event.StartTime,
		&event.HostPayoutAccount,
		&event.WaitlistSeq,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	if len(policy) > 0 {
		if err := json.Unmarshal(policy, &event.RefundPolicy); err != nil {
			return nil, fmt.Errorf("decode refund policy: %w", err)
		}
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	policy, err := json.Marshal(event.RefundPolicy)
	if err != nil {
		return nil, fmt.Errorf("encode refund policy: %w", err)
	}

	query := `
		INSERT INTO events (
			event_id, host_id, name, description, capacity, price_minor, currency,
			is_free, fee_policy, refund_policy, start_time, host_payout_account
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.HostID, event.Name, event.Description, event.Capacity, event.PriceMinor,
		event.Currency, event.IsFree, event.FeePolicy, policy, event.StartTime, event.HostPayoutAccount,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_time ASC`
	return r.list(ctx, query)
}

func (r *EventRepositoryImpl) ListByHost(ctx context.Context, hostID int) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE host_id = $1 ORDER BY start_time ASC`
	return r.list(ctx, query, hostID)
}

func (r *EventRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`
	return scanEvent(r.pool.QueryRow(ctx, query, eventID))
}

// FindByIDWithLock 鎖定活動列，容量檢查與候補序號都在此鎖下進行
func (r *EventRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return scanEvent(on(r.pool, tx).QueryRow(ctx, query, id))
}

// NextWaitlistPosition bumps the event's waitlist counter. Positions handed out
// here are never reused, even if the entry holding the highest one is removed.
func (r *EventRepositoryImpl) NextWaitlistPosition(ctx context.Context, tx pgx.Tx, id int) (int, error) {
	query := `
		UPDATE events
		SET waitlist_seq = waitlist_seq + 1, updated_at = $1
		WHERE id = $2
		RETURNING waitlist_seq
	`
	var position int
	err := on(r.pool, tx).QueryRow(ctx, query, time.Now().UTC(), id).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, err
	}
	return position, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.Capacity != nil {
		sets = append(sets, fmt.Sprintf("capacity = $%d", argPos))
		args = append(args, *params.Capacity)
		argPos++
	}

	if params.StartTime != nil {
		sets = append(sets, fmt.Sprintf("start_time = $%d", argPos))
		args = append(args, params.StartTime.UTC())
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	return scanEvent(r.pool.QueryRow(ctx, query, args...))
}
