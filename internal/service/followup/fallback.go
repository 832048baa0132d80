package followup

import "github.com/fleetcore/helmsman/internal/core"

// Static question bank used when generation fails or no completer is
// configured. Keyed by conversation state so the suggestions still track
// where the dialogue is.
var fallbackBank = map[core.ConversationState][]FollowUp{
	core.StateColdStart: {
		{Question: "What does FleetCore's planned maintenance module cover?", Category: "platform", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "How do I track a vessel's survey schedule?", Category: "platform", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Which regulations apply to my fleet's maintenance records?", Category: "regulatory", Confidence: 0.5, Reasoning: "static fallback"},
	},
	core.StateEntityDiscovery: {
		{Question: "What are this vessel's main specifications?", Category: "entity", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Who operates this vessel?", Category: "entity", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "How would this vessel be set up in FleetCore?", Category: "hybrid", Confidence: 0.5, Reasoning: "static fallback"},
	},
	core.StatePlatformExploration: {
		{Question: "How does work order tracking fit into daily operations?", Category: "platform", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Can spare parts inventory sync with purchasing?", Category: "platform", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "What does onboarding a fleet look like?", Category: "platform", Confidence: 0.5, Reasoning: "static fallback"},
	},
	core.StateHybridConsultation: {
		{Question: "How would condition monitoring apply to this vessel's equipment?", Category: "hybrid", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "What maintenance history should be migrated first?", Category: "hybrid", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Which crew ranks need platform access?", Category: "hybrid", Confidence: 0.5, Reasoning: "static fallback"},
	},
	core.StateComparativeMode: {
		{Question: "How do these vessels compare on maintenance cost drivers?", Category: "comparison", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Which vessel has the heavier survey schedule ahead?", Category: "comparison", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "How would both fleets consolidate onto one platform?", Category: "comparison", Confidence: 0.5, Reasoning: "static fallback"},
	},
	core.StateTroubleshooting: {
		{Question: "What recent maintenance was done on the affected equipment?", Category: "troubleshooting", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Are there open defect reports for this system?", Category: "troubleshooting", Confidence: 0.5, Reasoning: "static fallback"},
		{Question: "Does the manufacturer manual cover this failure mode?", Category: "troubleshooting", Confidence: 0.5, Reasoning: "static fallback"},
	},
}

func fallbackQuestions(state core.ConversationState) []FollowUp {
	if questions, ok := fallbackBank[state]; ok {
		return questions
	}
	return fallbackBank[core.StateColdStart]
}
