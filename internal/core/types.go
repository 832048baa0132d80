package core

const (
	AppName      = "Helmsman"
	AppUserAgent = "Helmsman-Agent/0.1"
	AppVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one inbound chat turn.
type ChatRequest struct {
	Messages       []Message `json:"messages"`
	SessionID      string    `json:"sessionId"`
	EnableBrowsing bool      `json:"enableBrowsing"`
}

// ChatResponse is the non-streaming reply shape.
type ChatResponse struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

// ConversationState classifies where the dialogue currently is.
type ConversationState string

const (
	StateColdStart           ConversationState = "COLD_START"
	StateEntityDiscovery     ConversationState = "ENTITY_DISCOVERY"
	StatePlatformExploration ConversationState = "PLATFORM_EXPLORATION"
	StateHybridConsultation  ConversationState = "HYBRID_CONSULTATION"
	StateComparativeMode     ConversationState = "COMPARATIVE_MODE"
	StateTroubleshooting     ConversationState = "TROUBLESHOOTING"
)

// Intent is the inferred purpose behind a user query.
type Intent string

const (
	IntentEvaluation           Intent = "EVALUATION"
	IntentComparison           Intent = "COMPARISON"
	IntentProblemSolving       Intent = "PROBLEM_SOLVING"
	IntentLearningPlatform     Intent = "LEARNING_PLATFORM"
	IntentInformationGathering Intent = "INFORMATION_GATHERING"
	IntentExploratory          Intent = "EXPLORATORY"
)

// QueryMode is the retrieval strategy selected for a turn.
type QueryMode string

const (
	ModeNone         QueryMode = "none"
	ModeVerification QueryMode = "verification"
	ModeResearch     QueryMode = "research"
)
