package memory

import (
	"context"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/session"
	"github.com/fleetcore/helmsman/pkg/log"
)

// Sync folds one finished turn into session memory: extracts new knowledge
// from the query, merges it through the reducers, advances the topic, and
// rebuilds the summary. It never fails the caller; a turn's answer has
// already been delivered by the time this runs.
func Sync(ctx context.Context, mem *core.SessionMemory, query string) {
	turnIndex := mem.MessageCount / 2

	delta := Extract(query, turnIndex)
	if delta.Empty() {
		log.FromCtx(ctx).Debug().Msg("no new knowledge extracted this turn")
	} else {
		applied := session.Merge(&mem.AccumulatedKnowledge, delta)
		log.FromCtx(ctx).Debug().Int("applied", applied).Msg("knowledge merged into session memory")
	}

	if len(delta.Topics) > 0 {
		session.MergeTopic(mem, delta.Topics[0])
	}

	session.RebuildSummary(mem)
}
