package history

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/saikothasan/neno/internal/models"
)

const keyPrefix = "neno:history:"

// RedisStore keeps one capped list per client, newest entry at the head.
type RedisStore struct {
	client   *redis.Client
	ttl      time.Duration
	capacity int
}

func NewRedisStore(addr, password string, db int, ttl time.Duration, capacity int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreWithClient(rdb, ttl, capacity)
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration, capacity int) *RedisStore {
	return &RedisStore{
		client:   client,
		ttl:      ttl,
		capacity: normalizeCapacity(capacity),
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Append(ctx context.Context, clientID string, entry models.HistoryEntry) error {
	data, err := sonic.MarshalString(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	key := historyKey(clientID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, int64(r.capacity-1))
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (r *RedisStore) List(ctx context.Context, clientID string) ([]models.HistoryEntry, error) {
	vals, err := r.client.LRange(ctx, historyKey(clientID), 0, int64(r.capacity-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(vals))
	for _, v := range vals {
		var e models.HistoryEntry
		if err := sonic.UnmarshalString(v, &e); err != nil {
			return nil, fmt.Errorf("failed to decode history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *RedisStore) Clear(ctx context.Context, clientID string) error {
	return r.client.Del(ctx, historyKey(clientID)).Err()
}

func historyKey(clientID string) string {
	return keyPrefix + clientID
}
