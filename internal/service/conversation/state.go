package conversation

import (
	"github.com/fleetcore/helmsman/internal/core"
)

// StateRule is one row of the state decision table. Rules are evaluated in
// order; the first match wins.
type StateRule struct {
	Name    string
	State   core.ConversationState
	Matches func(query string, memory *core.SessionMemory, current core.ConversationState) bool
}

// StateRules in priority order. The absence of a match keeps the current
// state: stickiness is the deliberate default, not a fallback.
var StateRules = []StateRule{
	{
		Name:  "cold_start",
		State: core.StateColdStart,
		Matches: func(_ string, memory *core.SessionMemory, _ core.ConversationState) bool {
			return memory == nil || memory.MessageCount == 0
		},
	},
	{
		Name:  "comparative",
		State: core.StateComparativeMode,
		Matches: func(query string, memory *core.SessionMemory, _ core.ConversationState) bool {
			return memory.AccumulatedKnowledge.EntityCount() >= 2 && comparisonVocab.MatchString(query)
		},
	},
	{
		Name:  "hybrid_consultation",
		State: core.StateHybridConsultation,
		Matches: func(query string, memory *core.SessionMemory, _ core.ConversationState) bool {
			k := &memory.AccumulatedKnowledge
			if !k.HasPlatformKnowledge() || !k.HasEntities() {
				return false
			}
			return platformVocab.MatchString(query) || actionVocab.MatchString(query)
		},
	},
	{
		Name:  "troubleshooting",
		State: core.StateTroubleshooting,
		Matches: func(query string, _ *core.SessionMemory, _ core.ConversationState) bool {
			return troubleshootingVocab.MatchString(query)
		},
	},
	{
		Name:  "platform_exploration",
		State: core.StatePlatformExploration,
		Matches: func(query string, _ *core.SessionMemory, _ core.ConversationState) bool {
			return platformExplorationVocab.MatchString(query)
		},
	},
	{
		Name:  "entity_discovery",
		State: core.StateEntityDiscovery,
		Matches: func(query string, memory *core.SessionMemory, _ core.ConversationState) bool {
			return entityVocab.MatchString(query) || memory.AccumulatedKnowledge.HasEntities()
		},
	},
}

// DetectState classifies the current turn. Pure and deterministic:
// identical inputs always yield the same state.
func DetectState(query string, memory *core.SessionMemory, current core.ConversationState) core.ConversationState {
	for _, rule := range StateRules {
		if rule.Matches(query, memory, current) {
			return rule.State
		}
	}
	return current
}
