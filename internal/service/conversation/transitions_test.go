package conversation

import (
	"testing"

	"github.com/fleetcore/helmsman/internal/core"
)

func TestDetectTransition(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		from    core.ConversationState
		to      core.ConversationState
		changed bool
		trigger string
	}{
		{
			name:    "no change emits nothing",
			query:   "compare them",
			from:    core.StateComparativeMode,
			to:      core.StateComparativeMode,
			changed: false,
		},
		{
			name:    "comparison trigger",
			query:   "compare the two vessels",
			from:    core.StateEntityDiscovery,
			to:      core.StateComparativeMode,
			changed: true,
			trigger: "comparison_requested",
		},
		{
			name:    "problem trigger",
			query:   "the import is broken",
			from:    core.StatePlatformExploration,
			to:      core.StateTroubleshooting,
			changed: true,
			trigger: "problem_reported",
		},
		{
			name:    "platform trigger",
			query:   "does the platform handle spare parts",
			from:    core.StateEntityDiscovery,
			to:      core.StateHybridConsultation,
			changed: true,
			trigger: "platform_interest",
		},
		{
			name:    "entity trigger",
			query:   "we just acquired a new vessel",
			from:    core.StateColdStart,
			to:      core.StateEntityDiscovery,
			changed: true,
			trigger: "entity_introduced",
		},
		{
			name:    "unrecognized change is a topic shift",
			query:   "let's talk about something else",
			from:    core.StateTroubleshooting,
			to:      core.StateColdStart,
			changed: true,
			trigger: "topic_shift",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transition, ok := DetectTransition(tt.query, tt.from, tt.to)
			if ok != tt.changed {
				t.Fatalf("DetectTransition changed = %v, expected %v", ok, tt.changed)
			}
			if !ok {
				return
			}
			if transition.Trigger != tt.trigger {
				t.Errorf("trigger = %q, expected %q", transition.Trigger, tt.trigger)
			}
			if transition.From != tt.from || transition.To != tt.to {
				t.Errorf("unexpected endpoints: %+v", transition)
			}
			if transition.Timestamp.IsZero() {
				t.Error("transition must be timestamped")
			}
		})
	}
}

func TestShouldPreserveContext(t *testing.T) {
	if ShouldPreserveContext(core.StateTroubleshooting, core.StateColdStart) {
		t.Error("leaving troubleshooting for a cold start must drop context")
	}

	// Every other pair preserves, including unrecognized combinations
	states := []core.ConversationState{
		core.StateColdStart, core.StateEntityDiscovery, core.StatePlatformExploration,
		core.StateHybridConsultation, core.StateComparativeMode, core.StateTroubleshooting,
	}
	for _, from := range states {
		for _, to := range states {
			if from == core.StateTroubleshooting && to == core.StateColdStart {
				continue
			}
			if !ShouldPreserveContext(from, to) {
				t.Errorf("expected context preserved for %s -> %s", from, to)
			}
		}
	}
}
