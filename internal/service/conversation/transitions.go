package conversation

import (
	"time"

	"github.com/fleetcore/helmsman/internal/core"
)

// triggerRule labels why a state change happened, first match wins.
type triggerRule struct {
	Trigger string
	Matches func(query string, to core.ConversationState) bool
}

var triggerRules = []triggerRule{
	{
		Trigger: "comparison_requested",
		Matches: func(query string, _ core.ConversationState) bool {
			return comparisonVocab.MatchString(query)
		},
	},
	{
		Trigger: "problem_reported",
		Matches: func(query string, _ core.ConversationState) bool {
			return troubleshootingVocab.MatchString(query)
		},
	},
	{
		Trigger: "platform_interest",
		Matches: func(query string, _ core.ConversationState) bool {
			return platformVocab.MatchString(query)
		},
	},
	{
		Trigger: "entity_introduced",
		Matches: func(query string, _ core.ConversationState) bool {
			return entityVocab.MatchString(query)
		},
	},
}

// DetectTransition emits a transition record only when the state actually
// changed since the prior turn.
func DetectTransition(query string, from, to core.ConversationState) (core.StateTransition, bool) {
	if from == to {
		return core.StateTransition{}, false
	}

	trigger := "topic_shift"
	for _, rule := range triggerRules {
		if rule.Matches(query, to) {
			trigger = rule.Trigger
			break
		}
	}

	return core.StateTransition{
		From:      from,
		To:        to,
		Trigger:   trigger,
		Timestamp: time.Now().UTC(),
	}, true
}

// ShouldPreserveContext defaults to true. The only transition that drops
// context is leaving troubleshooting for a cold start; every other
// transition, recognized or not, carries context forward.
func ShouldPreserveContext(from, to core.ConversationState) bool {
	if from == core.StateTroubleshooting && to == core.StateColdStart {
		return false
	}
	return true
}
