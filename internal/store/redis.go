package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
)

const DefaultRedisKey = "fueltracker:records"

// RedisStore keeps the ledger document under a single Redis key, in the
// same JSON format the file backend writes.
type RedisStore struct {
	client *redis.Client
	key    string
	addr   string
}

// NewRedisStore connects lazily to the server named by rawURL.
func NewRedisStore(rawURL, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opts), key), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, addr: client.Options().Addr}
}

func (s *RedisStore) Location() string {
	return fmt.Sprintf("redis://%s/%s", s.addr, s.key)
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.FuelRecord, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", s.Location(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	records, err := parser.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Location(), err)
	}
	return records, nil
}

func (s *RedisStore) Save(ctx context.Context, records []domain.FuelRecord) error {
	var buf bytes.Buffer
	if err := parser.EncodeDocument(&buf, records); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, buf.Bytes(), 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
