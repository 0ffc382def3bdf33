package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const defaultCheckpointKey = "russianbank:checkpoint"

// RedisStore is the lower-latency shared-state alternative to
// PostgresStore, storing the checkpoint as a single JSON blob under one
// key instead of a row per checkpoint.
type RedisStore struct {
	rdb *goredis.Client
	key string
}

// NewRedisStore wraps an already-connected *goredis.Client, storing
// checkpoints under key (defaultCheckpointKey if empty).
func NewRedisStore(rdb *goredis.Client, key string) *RedisStore {
	if key == "" {
		key = defaultCheckpointKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

// Save stores cp's JSON encoding under the store's key, with no
// expiration: a checkpoint is retained until explicitly overwritten.
func (s *RedisStore) Save(ctx context.Context, cp Checkpoint) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("checkpoint: marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("checkpoint: set: %w", err)
	}
	return nil
}

// Load retrieves and decodes the checkpoint stored under the store's
// key, or returns (nil, false, nil) if none has been saved yet.
func (s *RedisStore) Load(ctx context.Context) (*Checkpoint, bool, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("checkpoint: get: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, false, fmt.Errorf("checkpoint: unmarshal: %w", err)
	}
	if err := checkVersion(&cp); err != nil {
		return nil, false, err
	}
	return &cp, true, nil
}
