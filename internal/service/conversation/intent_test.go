package conversation

import (
	"testing"

	"github.com/fleetcore/helmsman/internal/core"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		intent     core.Intent
		confidence float64
	}{
		{
			name:       "evaluation phrasing",
			query:      "should we use fleetcore for our tanker fleet",
			intent:     core.IntentEvaluation,
			confidence: 0.9,
		},
		{
			name:       "comparison phrasing",
			query:      "compare the fuel consumption of these two",
			intent:     core.IntentComparison,
			confidence: 0.95,
		},
		{
			name:       "problem phrasing",
			query:      "the sync keeps failing on board",
			intent:     core.IntentProblemSolving,
			confidence: 0.85,
		},
		{
			name:       "platform phrasing",
			query:      "what is fleetcore",
			intent:     core.IntentLearningPlatform,
			confidence: 0.8,
		},
		{
			name:       "entity fact phrasing",
			query:      "who operates the MV Aurora",
			intent:     core.IntentInformationGathering,
			confidence: 0.7,
		},
		{
			name:       "nothing matches",
			query:      "interesting, go on",
			intent:     core.IntentExploratory,
			confidence: 0.6,
		},
		{
			name:       "evaluation outranks the question words inside it",
			query:      "is fleetcore a good fit for what we do",
			intent:     core.IntentEvaluation,
			confidence: 0.9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIntent(tt.query, nil)
			if got.Intent != tt.intent {
				t.Errorf("DetectIntent(%q).Intent = %s, expected %s", tt.query, got.Intent, tt.intent)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("DetectIntent(%q).Confidence = %v, expected %v", tt.query, got.Confidence, tt.confidence)
			}
			if got.Context == "" {
				t.Error("every intent carries a context label")
			}
		})
	}
}
