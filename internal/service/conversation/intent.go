package conversation

import (
	"github.com/fleetcore/helmsman/internal/core"
)

// IntentResult carries the inferred intent. Confidence is a fixed
// per-branch constant, a categorical label rather than a calibrated
// probability.
type IntentResult struct {
	Intent     core.Intent
	Confidence float64
	Context    string
}

// IntentRule is one row of the intent decision table.
type IntentRule struct {
	Name       string
	Intent     core.Intent
	Confidence float64
	Context    string
	Matches    func(query string, memory *core.SessionMemory) bool
}

// IntentRules in priority order, first match wins.
var IntentRules = []IntentRule{
	{
		Name:       "evaluation",
		Intent:     core.IntentEvaluation,
		Confidence: 0.9,
		Context:    "evaluating the platform for a specific operation",
		Matches: func(query string, _ *core.SessionMemory) bool {
			return evaluationVocab.MatchString(query)
		},
	},
	{
		Name:       "comparison",
		Intent:     core.IntentComparison,
		Confidence: 0.95,
		Context:    "comparing entities or options",
		Matches: func(query string, _ *core.SessionMemory) bool {
			return comparisonVocab.MatchString(query)
		},
	},
	{
		Name:       "problem_solving",
		Intent:     core.IntentProblemSolving,
		Confidence: 0.85,
		Context:    "resolving a reported problem",
		Matches: func(query string, _ *core.SessionMemory) bool {
			return troubleshootingVocab.MatchString(query)
		},
	},
	{
		Name:       "learning_platform",
		Intent:     core.IntentLearningPlatform,
		Confidence: 0.8,
		Context:    "learning platform capabilities",
		Matches: func(query string, _ *core.SessionMemory) bool {
			return platformExplorationVocab.MatchString(query) || platformVocab.MatchString(query)
		},
	},
	{
		Name:       "information_gathering",
		Intent:     core.IntentInformationGathering,
		Confidence: 0.7,
		Context:    "gathering facts about vessels or companies",
		Matches: func(query string, _ *core.SessionMemory) bool {
			return questionVocab.MatchString(query) || entityVocab.MatchString(query)
		},
	},
}

// DetectIntent classifies the purpose behind a query. Falls through to
// EXPLORATORY when nothing matches.
func DetectIntent(query string, memory *core.SessionMemory) IntentResult {
	for _, rule := range IntentRules {
		if rule.Matches(query, memory) {
			return IntentResult{Intent: rule.Intent, Confidence: rule.Confidence, Context: rule.Context}
		}
	}
	return IntentResult{
		Intent:     core.IntentExploratory,
		Confidence: 0.6,
		Context:    "open-ended exploration",
	}
}
