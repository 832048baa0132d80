package session

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
)

// New returns an empty memory record for a session's first turn.
func New(sessionID string) *core.SessionMemory {
	now := time.Now().UTC()
	return &core.SessionMemory{
		SessionID: sessionID,
		AccumulatedKnowledge: core.AccumulatedKnowledge{
			VesselEntities:  make(map[string]*core.EntityRecord),
			CompanyEntities: make(map[string]*core.EntityRecord),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// truncateFront keeps the newest max elements, evicting from the front.
func truncateFront[T any](list []T, max int) []T {
	if len(list) <= max {
		return list
	}
	return list[len(list)-max:]
}

// AppendMessage stores one turn message. MessageCount increments exactly
// once per stored message, even when the bounded list evicts.
func AppendMessage(m *core.SessionMemory, role, content string) {
	m.RecentMessages = append(m.RecentMessages, core.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	m.RecentMessages = truncateFront(m.RecentMessages, core.MaxRecentMessages)
	m.MessageCount++
}

// RecordMode appends to the bounded mode history and sets the current mode.
func RecordMode(m *core.SessionMemory, mode core.QueryMode, query, snapshot string) {
	m.ModeHistory = append(m.ModeHistory, core.ModeRecord{
		Mode:              mode,
		Query:             query,
		Timestamp:         time.Now().UTC(),
		ContextSnapshot:   snapshot,
		EntitiesDiscussed: m.AccumulatedKnowledge.EntityNames(),
	})
	m.ModeHistory = truncateFront(m.ModeHistory, core.MaxModeHistory)
	m.CurrentMode = mode
}

// RecordIntent overwrites the latest intent and appends to the bounded
// intent history.
func RecordIntent(m *core.SessionMemory, intent core.Intent, confidence float64) {
	m.UserIntent = intent
	m.IntentHistory = append(m.IntentHistory, core.IntentRecord{
		Intent:     intent,
		Confidence: confidence,
		Timestamp:  time.Now().UTC(),
	})
	m.IntentHistory = truncateFront(m.IntentHistory, core.MaxIntentHistory)
}

// RecordTransition appends a state transition to the bounded list.
func RecordTransition(m *core.SessionMemory, t core.StateTransition) {
	m.StateTransitions = append(m.StateTransitions, t)
	m.StateTransitions = truncateFront(m.StateTransitions, core.MaxStateTransition)
}

// MergeTopic grows the conversation topic by concatenation ("old → new")
// unless the new topic is already a substring of the old one.
func MergeTopic(m *core.SessionMemory, topic string) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return
	}
	if m.ConversationTopic == "" {
		m.ConversationTopic = topic
		return
	}
	if strings.Contains(strings.ToLower(m.ConversationTopic), strings.ToLower(topic)) {
		return
	}
	m.ConversationTopic = m.ConversationTopic + " → " + topic
}

// RebuildSummary regenerates the free-text narrative from the structured
// fields. It is derived state: always rebuilt, never merged.
func RebuildSummary(m *core.SessionMemory) {
	k := &m.AccumulatedKnowledge
	var parts []string

	if m.ConversationTopic != "" {
		parts = append(parts, fmt.Sprintf("Topic: %s.", m.ConversationTopic))
	}
	if n := len(k.VesselEntities); n > 0 {
		parts = append(parts, fmt.Sprintf("Vessels discussed: %s.", joinEntityNames(k.VesselEntities)))
	}
	if n := len(k.CompanyEntities); n > 0 {
		parts = append(parts, fmt.Sprintf("Companies discussed: %s.", joinEntityNames(k.CompanyEntities)))
	}
	if len(k.FleetcoreFeatures) > 0 {
		names := make([]string, 0, len(k.FleetcoreFeatures))
		for _, f := range k.FleetcoreFeatures {
			names = append(names, f.Name)
		}
		parts = append(parts, fmt.Sprintf("Platform features covered: %s.", strings.Join(names, ", ")))
	}
	if len(k.Connections) > 0 {
		rels := make([]string, 0, len(k.Connections))
		for _, c := range k.Connections {
			rels = append(rels, fmt.Sprintf("%s %s %s", c.From, c.Relationship, c.To))
		}
		parts = append(parts, fmt.Sprintf("Known relationships: %s.", strings.Join(rels, "; ")))
	}
	if m.UserIntent != "" {
		parts = append(parts, fmt.Sprintf("Latest intent: %s.", m.UserIntent))
	}
	parts = append(parts, fmt.Sprintf("%d messages exchanged.", m.MessageCount))

	m.ConversationSummary = strings.Join(parts, " ")
}

func joinEntityNames(entities map[string]*core.EntityRecord) string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	// Map order is random; keep the summary stable
	sort.Strings(names)
	return strings.Join(names, ", ")
}
