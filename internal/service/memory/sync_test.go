package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/fleetcore/helmsman/internal/session"
)

func TestSyncAccumulatesAcrossTurns(t *testing.T) {
	ctx := context.Background()
	mem := session.New("s1")

	Sync(ctx, mem, "Tell me about MV Aurora maintenance")
	Sync(ctx, mem, "Nordic Shipping also operates MV Zephyr")

	k := &mem.AccumulatedKnowledge
	if len(k.VesselEntities) != 2 {
		t.Errorf("expected 2 vessels accumulated, got %+v", k.VesselEntities)
	}
	if len(k.CompanyEntities) != 1 {
		t.Errorf("expected 1 company, got %+v", k.CompanyEntities)
	}
	if len(k.Connections) != 1 {
		t.Errorf("expected vessel-company connection, got %+v", k.Connections)
	}
	if mem.ConversationTopic != "maintenance" {
		t.Errorf("expected topic from first turn, got %q", mem.ConversationTopic)
	}
	if !strings.Contains(mem.ConversationSummary, "MV Aurora") {
		t.Errorf("summary should mention the vessel: %q", mem.ConversationSummary)
	}
}

func TestSyncRepeatedMentionsDoNotDuplicate(t *testing.T) {
	ctx := context.Background()
	mem := session.New("s1")

	for i := 0; i < 3; i++ {
		Sync(ctx, mem, "more about MV Aurora maintenance")
	}

	if len(mem.AccumulatedKnowledge.VesselEntities) != 1 {
		t.Errorf("repeated mentions must not duplicate, got %+v", mem.AccumulatedKnowledge.VesselEntities)
	}
	if len(mem.AccumulatedKnowledge.DiscussedTopics) != 1 {
		t.Errorf("repeated topics must not duplicate, got %+v", mem.AccumulatedKnowledge.DiscussedTopics)
	}
}
