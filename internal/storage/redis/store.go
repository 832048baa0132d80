package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fleetcore/helmsman/internal/core"
)

const keyPrefix = "session:"

// Backend persists session memory as JSON values under namespaced keys,
// with the retention window enforced by key expiry.
type Backend struct {
	client *redis.Client
}

func NewBackend(ctx context.Context, addr, password string, db int) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Backend{client: client}, nil
}

func (b *Backend) Get(ctx context.Context, sessionID string) (*core.SessionMemory, error) {
	data, err := b.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var mem core.SessionMemory
	if err := json.Unmarshal(data, &mem); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &mem, nil
}

func (b *Backend) Put(ctx context.Context, sessionID string, memory *core.SessionMemory) error {
	data, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := b.client.Set(ctx, keyPrefix+sessionID, data, core.SessionRetention).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	return b.client.Close()
}
