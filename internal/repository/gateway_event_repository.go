package repository

import (
	"context"
	"time"

	"go-gin-event-commerce/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GatewayEventRepository is the dedupe ledger for gateway webhook deliveries.
type GatewayEventRepository interface {
	// Record stores the event once and reports whether it was already processed.
	Record(ctx context.Context, record *model.GatewayEventRecord) (processed bool, err error)
	MarkProcessed(ctx context.Context, provider, providerEventID string, at time.Time) error
}

type GatewayEventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGatewayEventRepository(pool *pgxpool.Pool) GatewayEventRepository {
	return &GatewayEventRepositoryImpl{
		pool: pool,
	}
}

func (r *GatewayEventRepositoryImpl) Record(ctx context.Context, record *model.GatewayEventRecord) (bool, error) {
	insert := `
		INSERT INTO gateway_events (provider, provider_event_id, type, received_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_event_id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, insert,
		record.Provider, record.ProviderEventID, record.Type, record.ReceivedAt,
	); err != nil {
		return false, err
	}

	var processedAt *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT processed_at FROM gateway_events WHERE provider = $1 AND provider_event_id = $2`,
		record.Provider, record.ProviderEventID,
	).Scan(&processedAt)
	if err != nil {
		return false, err
	}
	return processedAt != nil, nil
}

func (r *GatewayEventRepositoryImpl) MarkProcessed(ctx context.Context, provider, providerEventID string, at time.Time) error {
	query := `
		UPDATE gateway_events
		SET processed_at = $1
		WHERE provider = $2 AND provider_event_id = $3 AND processed_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, at, provider, providerEventID)
	return err
}
