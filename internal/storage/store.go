package storage

import (
	"context"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/session"
	"github.com/fleetcore/helmsman/pkg/log"
)

// Backend is durable session persistence. Get returns (nil, nil) when no
// record exists. Put writes with the retention TTL.
type Backend interface {
	Get(ctx context.Context, sessionID string) (*core.SessionMemory, error)
	Put(ctx context.Context, sessionID string, memory *core.SessionMemory) error
}

// Store is the forgiving contract the request path sees: Load always hands
// back a usable record and Save never propagates persistence failures into
// the response already sent to the client.
type Store interface {
	Load(ctx context.Context, sessionID string) *core.SessionMemory
	Save(ctx context.Context, sessionID string, memory *core.SessionMemory)
}

type store struct {
	backend Backend
	cache   Cache
}

// NewStore wraps a backend with a read-through cache. The cache must return
// the same record instance per session id within a process lifetime so
// concurrent mutators inside one request never diverge.
func NewStore(backend Backend, cache Cache) Store {
	return &store{backend: backend, cache: cache}
}

func (s *store) Load(ctx context.Context, sessionID string) *core.SessionMemory {
	if mem, ok := s.cache.Get(sessionID); ok {
		return mem
	}

	logger := log.FromCtx(ctx)

	mem, err := s.backend.Get(ctx, sessionID)
	if err != nil {
		// Persistence failures substitute a fresh in-memory record; the
		// turn must not fail because the store is down.
		logger.Error().Err(err).Msg("session load failed, starting fresh")
		mem = nil
	}
	if mem == nil {
		mem = session.New(sessionID)
	}

	s.cache.Put(sessionID, mem)
	return mem
}

func (s *store) Save(ctx context.Context, sessionID string, memory *core.SessionMemory) {
	memory.UpdatedAt = time.Now().UTC()
	s.cache.Put(sessionID, memory)

	if err := s.backend.Put(ctx, sessionID, memory); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("session save failed")
	}
}
