package securestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/trainerhub/internal/cryptox"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces credential keys in a shared Redis.
const DefaultRedisPrefix = "trainerhub:credentials:"

// RedisStore keeps sealed credentials in Redis. Keys never expire; the
// record lives until logout or a rejected token removes it.
type RedisStore struct {
	client redis.UniversalClient
	sealer *cryptox.Sealer
	prefix string
}

// NewRedisStore returns a store using client. An empty prefix selects
// DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, sealer *cryptox.Sealer, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, sealer: sealer, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get credential[%s]: %w", key, err)
	}

	plain, err := s.sealer.Open(sealed, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("%w: credential[%s]: %w", ErrCorrupt, key, err)
	}
	return string(plain), true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	sealed, err := s.sealer.Seal([]byte(value), []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal credential[%s]: %w", key, err)
	}

	if err := s.client.Set(ctx, s.key(key), sealed, 0).Err(); err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", key, err)
	}
	return nil
}

// SetMany writes all entries inside MULTI/EXEC.
func (s *RedisStore) SetMany(ctx context.Context, entries ...Entry) error {
	sealed := make([][]byte, len(entries))
	for i, e := range entries {
		b, err := s.sealer.Seal([]byte(e.Value), []byte(e.Key))
		if err != nil {
			return fmt.Errorf("failed to seal credential[%s]: %w", e.Key, err)
		}
		sealed[i] = b
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, e := range entries {
			pipe.Set(ctx, s.key(e.Key), sealed[i], 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set credentials: %w", err)
	}
	return nil
}

// DeleteMany removes all keys with a single DEL.
func (s *RedisStore) DeleteMany(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}

	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
