package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-event-commerce/internal/cache"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLocker_AcquireBulkRefund(t *testing.T) {
	ctx := context.Background()
	locker := cache.NewRedisEventLocker(getTestRdb(t))
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	t.Run("Success", func(t *testing.T) {
		defer clearRedis(ctx)
		lease, err := locker.AcquireBulkRefund(ctx, 1, time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, lease.Token)

		ttl, err := testRdb.TTL(ctx, lease.Key).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Failed - ErrLocked", func(t *testing.T) {
		defer clearRedis(ctx)
		_, err := locker.AcquireBulkRefund(ctx, 1, time.Minute)
		require.NoError(t, err)

		_, err = locker.AcquireBulkRefund(ctx, 1, time.Minute)
		assert.ErrorIs(t, err, apperrors.ErrLocked)

		// other events are unaffected
		_, err = locker.AcquireBulkRefund(ctx, 2, time.Minute)
		assert.NoError(t, err)
	})

	t.Run("Failed - zero ttl", func(t *testing.T) {
		_, err := locker.AcquireBulkRefund(ctx, 1, 0)
		assert.Error(t, err)
	})

	t.Run("Only one concurrent caller wins", func(t *testing.T) {
		defer clearRedis(ctx)
		var wg sync.WaitGroup
		var mu sync.Mutex
		won := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := locker.AcquireBulkRefund(ctx, 7, time.Minute); err == nil {
					mu.Lock()
					won++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, won)
	})
}

func TestEventLocker_Release(t *testing.T) {
	ctx := context.Background()
	locker := cache.NewRedisEventLocker(getTestRdb(t))
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	t.Run("Success - lock can be taken again", func(t *testing.T) {
		defer clearRedis(ctx)
		lease, err := locker.AcquireBulkRefund(ctx, 1, time.Minute)
		require.NoError(t, err)
		require.NoError(t, locker.Release(ctx, lease))
		require.NoError(t, locker.Release(ctx, lease))

		_, err = locker.AcquireBulkRefund(ctx, 1, time.Minute)
		assert.NoError(t, err)
	})

	t.Run("Stale lease does not release a newer holder", func(t *testing.T) {
		defer clearRedis(ctx)
		lease, err := locker.AcquireBulkRefund(ctx, 1, time.Minute)
		require.NoError(t, err)

		stale := &cache.Lease{Key: lease.Key, Token: "someone-else"}
		require.NoError(t, locker.Release(ctx, stale))

		_, err = locker.AcquireBulkRefund(ctx, 1, time.Minute)
		assert.ErrorIs(t, err, apperrors.ErrLocked)
	})

	t.Run("Nil lease is a no-op", func(t *testing.T) {
		assert.NoError(t, locker.Release(ctx, nil))
	})
}
