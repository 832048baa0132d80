package router

import (
	"strings"

	"github.com/fleetcore/helmsman/internal/core"
)

// Decision is the routing outcome for one turn.
type Decision struct {
	Mode            core.QueryMode
	PreserveContext bool
	EnrichQuery     bool
	Rule            string
}

// Rule is one row of the routing decision table, evaluated in order.
type Rule struct {
	Name    string
	Matches func(in Input) bool
	Decide  func(in Input) Decision
}

// Input bundles everything the router looks at.
type Input struct {
	Query           string
	BrowsingEnabled bool
	Topic           string
	Intent          core.Intent
	Knowledge       *core.AccumulatedKnowledge
}

// Rules in priority order, first match wins.
var Rules = []Rule{
	{
		Name: "explicit_browsing",
		Matches: func(in Input) bool {
			return in.BrowsingEnabled
		},
		Decide: func(in Input) Decision {
			return Decision{Mode: core.ModeResearch, PreserveContext: true, Rule: "explicit_browsing"}
		},
	},
	{
		Name: "platform_with_entity",
		Matches: func(in Input) bool {
			return answerableInternally(in.Query) && referencesEntity(in.Query, in.Knowledge)
		},
		Decide: func(in Input) Decision {
			// Hybrid: blend platform knowledge with an entity lookup
			return Decision{Mode: core.ModeVerification, PreserveContext: true, EnrichQuery: true, Rule: "platform_with_entity"}
		},
	},
	{
		Name: "platform_only",
		Matches: func(in Input) bool {
			return answerableInternally(in.Query)
		},
		Decide: func(in Input) Decision {
			// Built-in knowledge answers platform and regulatory questions,
			// no external call
			return Decision{Mode: core.ModeNone, PreserveContext: true, Rule: "platform_only"}
		},
	},
	{
		Name: "evaluation_with_entity",
		Matches: func(in Input) bool {
			return in.Intent == core.IntentEvaluation && referencesEntity(in.Query, in.Knowledge)
		},
		Decide: func(in Input) Decision {
			return Decision{Mode: core.ModeVerification, PreserveContext: true, EnrichQuery: true, Rule: "evaluation_with_entity"}
		},
	},
}

// DetectQueryMode routes one turn to a retrieval strategy.
func DetectQueryMode(in Input) Decision {
	for _, rule := range Rules {
		if rule.Matches(in) {
			return rule.Decide(in)
		}
	}

	hasPlatform := in.Knowledge != nil && in.Knowledge.HasPlatformKnowledge()
	return Decision{
		Mode:            core.ModeVerification,
		PreserveContext: hasPlatform,
		EnrichQuery:     hasPlatform && referencesEntity(in.Query, in.Knowledge),
		Rule:            "default_verification",
	}
}

// answerableInternally reports whether the built-in knowledge base can
// serve the query without retrieval.
func answerableInternally(query string) bool {
	return MatchesPlatformKeywords(query) || MatchesKnowledgeTopics(query)
}

// referencesEntity reports whether the query names a concrete entity:
// either one already in memory or an explicit vessel mention.
func referencesEntity(query string, knowledge *core.AccumulatedKnowledge) bool {
	if vesselMention.MatchString(query) {
		return true
	}
	if knowledge == nil {
		return false
	}
	lower := strings.ToLower(query)
	for name := range knowledge.VesselEntities {
		if name != "" && strings.Contains(lower, name) {
			return true
		}
	}
	for name := range knowledge.CompanyEntities {
		if name != "" && strings.Contains(lower, name) {
			return true
		}
	}
	return false
}
