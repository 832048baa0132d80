package conversation

import (
	"testing"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/session"
)

func memoryWith(messageCount, vessels int, features bool) *core.SessionMemory {
	m := session.New("test")
	m.MessageCount = messageCount
	names := []string{"MV Aurora", "MV Zephyr", "MV Boreas"}
	for i := 0; i < vessels && i < len(names); i++ {
		session.Merge(&m.AccumulatedKnowledge, &session.KnowledgeDelta{
			Vessels: []core.EntityRecord{{Name: names[i]}},
		})
	}
	if features {
		session.Merge(&m.AccumulatedKnowledge, &session.KnowledgeDelta{
			Features: []core.FeatureKnowledge{{Name: "Planned Maintenance"}},
		})
	}
	return m
}

func TestDetectState(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		memory   *core.SessionMemory
		current  core.ConversationState
		expected core.ConversationState
	}{
		{
			name:     "nil memory is a cold start",
			query:    "hello",
			memory:   nil,
			expected: core.StateColdStart,
		},
		{
			name:     "zero messages is a cold start",
			query:    "compare these vessels",
			memory:   memoryWith(0, 2, false),
			expected: core.StateColdStart,
		},
		{
			name:     "comparison vocab with two entities",
			query:    "compare the MV Aurora versus the MV Zephyr",
			memory:   memoryWith(4, 2, false),
			current:  core.StateEntityDiscovery,
			expected: core.StateComparativeMode,
		},
		{
			name:     "comparison vocab with one entity stays put",
			query:    "which one is better",
			memory:   memoryWith(4, 1, false),
			current:  core.StateEntityDiscovery,
			expected: core.StateEntityDiscovery,
		},
		{
			name:     "platform question with entities and features is hybrid",
			query:    "how do I track work orders for it",
			memory:   memoryWith(4, 1, true),
			current:  core.StateEntityDiscovery,
			expected: core.StateHybridConsultation,
		},
		{
			name:     "trouble vocab beats platform exploration",
			query:    "the platform dashboard shows an error",
			memory:   memoryWith(2, 0, false),
			current:  core.StatePlatformExploration,
			expected: core.StateTroubleshooting,
		},
		{
			name:     "platform exploration phrasing",
			query:    "what does fleetcore offer for bulk carriers",
			memory:   memoryWith(2, 0, false),
			current:  core.StateEntityDiscovery,
			expected: core.StatePlatformExploration,
		},
		{
			name:     "vessel mention is entity discovery",
			query:    "tell me about the vessel MV Aurora",
			memory:   memoryWith(2, 0, false),
			current:  core.StateColdStart,
			expected: core.StateEntityDiscovery,
		},
		{
			name:     "no match keeps the current state",
			query:    "thanks, continue",
			memory:   memoryWith(6, 0, false),
			current:  core.StatePlatformExploration,
			expected: core.StatePlatformExploration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectState(tt.query, tt.memory, tt.current)
			if got != tt.expected {
				t.Errorf("DetectState(%q) = %s, expected %s", tt.query, got, tt.expected)
			}
		})
	}
}

func TestDetectStateDeterministic(t *testing.T) {
	mem := memoryWith(4, 2, true)
	query := "compare maintenance costs between the two ships"

	first := DetectState(query, mem, core.StateEntityDiscovery)
	for i := 0; i < 20; i++ {
		if got := DetectState(query, mem, core.StateEntityDiscovery); got != first {
			t.Fatalf("detection not deterministic: %s vs %s", first, got)
		}
	}
}
