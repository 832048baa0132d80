package core

import "time"

// Bounds for the FIFO-truncated lists inside SessionMemory.
const (
	MaxRecentMessages  = 10
	MaxModeHistory     = 5
	MaxIntentHistory   = 10
	MaxStateTransition = 10
)

// SessionRetention is the store-enforced expiry window for session records.
const SessionRetention = 7 * 24 * time.Hour

type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FeatureKnowledge is one learned platform capability, deduplicated by
// case-insensitive name.
type FeatureKnowledge struct {
	Name        string    `json:"name"`
	Explanation string    `json:"explanation"`
	TurnIndex   int       `json:"turnIndex"`
	Timestamp   time.Time `json:"timestamp"`
}

// EntityRecord is one vessel or company the conversation has mentioned.
// Later sightings merge fields into the existing record rather than
// replacing it.
type EntityRecord struct {
	Name           string            `json:"name"`
	Identifiers    map[string]string `json:"identifiers,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Discussed      bool              `json:"discussed"`
	FirstMentioned time.Time         `json:"firstMentioned"`
}

// Connection relates two known entities, deduplicated by (from,to).
type Connection struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"`
	TurnIndex    int    `json:"turnIndex"`
}

// AccumulatedKnowledge grows monotonically across turns; nothing in here
// shrinks except through the bounded-list eviction on the parent record.
type AccumulatedKnowledge struct {
	FleetcoreFeatures []FeatureKnowledge       `json:"fleetcoreFeatures"`
	VesselEntities    map[string]*EntityRecord `json:"vesselEntities"`
	CompanyEntities   map[string]*EntityRecord `json:"companyEntities"`
	Connections       []Connection             `json:"connections"`
	DiscussedTopics   []string                 `json:"discussedTopics"`
}

func (k *AccumulatedKnowledge) HasPlatformKnowledge() bool {
	return len(k.FleetcoreFeatures) > 0
}

func (k *AccumulatedKnowledge) HasEntities() bool {
	return len(k.VesselEntities) > 0 || len(k.CompanyEntities) > 0
}

func (k *AccumulatedKnowledge) EntityCount() int {
	return len(k.VesselEntities) + len(k.CompanyEntities)
}

// EntityNames returns all known entity names, vessels first.
func (k *AccumulatedKnowledge) EntityNames() []string {
	names := make([]string, 0, k.EntityCount())
	for _, e := range k.VesselEntities {
		names = append(names, e.Name)
	}
	for _, e := range k.CompanyEntities {
		names = append(names, e.Name)
	}
	return names
}

type ModeRecord struct {
	Mode              QueryMode `json:"mode"`
	Query             string    `json:"query"`
	Timestamp         time.Time `json:"timestamp"`
	ContextSnapshot   string    `json:"contextSnapshot,omitempty"`
	EntitiesDiscussed []string  `json:"entitiesDiscussed,omitempty"`
}

type IntentRecord struct {
	Intent     Intent    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

type StateTransition struct {
	From      ConversationState `json:"from"`
	To        ConversationState `json:"to"`
	Trigger   string            `json:"trigger"`
	Timestamp time.Time         `json:"timestamp"`
}

// SessionMemory is the per-conversation record persisted across turns.
type SessionMemory struct {
	SessionID            string               `json:"sessionId"`
	ConversationSummary  string               `json:"conversationSummary"`
	RecentMessages       []ChatMessage        `json:"recentMessages"`
	AccumulatedKnowledge AccumulatedKnowledge `json:"accumulatedKnowledge"`
	ConversationTopic    string               `json:"conversationTopic"`
	UserIntent           Intent               `json:"userIntent,omitempty"`
	ModeHistory          []ModeRecord         `json:"modeHistory"`
	CurrentMode          QueryMode            `json:"currentMode,omitempty"`
	ConversationState    ConversationState    `json:"conversationState,omitempty"`
	IntentHistory        []IntentRecord       `json:"intentHistory"`
	StateTransitions     []StateTransition    `json:"stateTransitions"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	MessageCount         int                  `json:"messageCount"`
}
