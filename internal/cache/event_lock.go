package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 只有持有 token 的人才能釋放鎖 (使用Lua腳本確保原子性)
const releaseScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`

// Lease is a held lock. Release is safe to call more than once.
type Lease struct {
	Key   string
	Token string
}

type EventLocker interface {
	// AcquireBulkRefund 取得活動的批次退款鎖，已被持有時回傳 ErrLocked
	AcquireBulkRefund(ctx context.Context, eventID int, ttl time.Duration) (*Lease, error)
	Release(ctx context.Context, lease *Lease) error
}

type RedisEventLocker struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisEventLocker(client *redis.Client) EventLocker {
	return &RedisEventLocker{
		client: client,
		script: redis.NewScript(releaseScript),
	}
}

func (l *RedisEventLocker) getBulkRefundKey(eventID int) string {
	return fmt.Sprintf("lock:bulk-refund:%d", eventID)
}

func (l *RedisEventLocker) AcquireBulkRefund(ctx context.Context, eventID int, ttl time.Duration) (*Lease, error) {
	if ttl <= 0 {
		return nil, errors.New("lock ttl must be positive")
	}
	key := l.getBulkRefundKey(eventID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, apperrors.ErrLocked
	}
	return &Lease{Key: key, Token: token}, nil
}

func (l *RedisEventLocker) Release(ctx context.Context, lease *Lease) error {
	if lease == nil || lease.Key == "" || lease.Token == "" {
		return nil
	}
	return l.script.Run(ctx, l.client, []string{lease.Key}, lease.Token).Err()
}
