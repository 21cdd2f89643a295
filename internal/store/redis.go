package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

const (
	keyNamespace = "funnel"
	ledgerKey    = "ledger:rows"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStore keeps the ledger as one JSON value so it survives restarts and
// can be shared by replicas.
type RedisStore struct {
	store cmdable
	raw   *redis.Client
	ttl   time.Duration
}

// NewRedisStore parses url, connects and pings.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{store: raw, raw: raw, ttl: ttl}, nil
}

func newRedisStoreWith(c cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{store: c, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context) ([]models.Transaction, bool, error) {
	raw, err := s.store.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get ledger: %w", err)
	}
	var rows []models.Transaction
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		// corrupt entry, treat as a miss
		return nil, false, nil
	}
	return rows, true, nil
}

func (s *RedisStore) Save(ctx context.Context, rows []models.Transaction) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.store.Set(ctx, s.key(), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set ledger: %w", err)
	}
	return nil
}

func (s *RedisStore) Invalidate(ctx context.Context) error {
	return s.store.Del(ctx, s.key()).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.store.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *RedisStore) key() string {
	return strings.Join([]string{keyNamespace, ledgerKey}, ":")
}
