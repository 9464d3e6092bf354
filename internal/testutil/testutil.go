// Package testutil connects integration tests to the Postgres and Redis
// instances described by config.LoadTestConfig.
package testutil

import (
	"context"
	"fmt"
	"log"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup connects to the test database and Redis and applies migrations.
func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	if err := testDB.Ping(context.Background()); err != nil {
		testDB.Close()
		return nil, nil, nil, fmt.Errorf("failed to ping test database: %w", err)
	}
	if err := database.RunMigrations(testDB); err != nil {
		testDB.Close()
		return nil, nil, nil, err
	}
	log.Println("Test database connected successfully")

	testRdb, cleanupRedis, err := SetupRedisOnly()
	if err != nil {
		testDB.Close()
		return nil, nil, nil, err
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		testDB.Close()
		cleanupRedis()
	}
	return testDB, testRdb, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（如 queue、lock 整合測試）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// ResetDatabase empties every engine table between tests.
func ResetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE gateway_events, reminders, waitlist_entries, transactions, bookings, events, users
		RESTART IDENTITY CASCADE
	`)
	return err
}
