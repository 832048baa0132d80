package core

type EventType string

const (
	EventThinking EventType = "thinking"
	EventContent  EventType = "content"
	EventStep     EventType = "step"
	EventTool     EventType = "tool"
	EventSource   EventType = "source"
	EventError    EventType = "error"
)

const (
	StatusStart = "start"
	StatusEnd   = "end"
)

const (
	ActionSelected = "selected"
	ActionRejected = "rejected"
)

// StreamEvent is the tagged union multiplexed onto the answer stream:
// prose tokens and structured research-progress events share one channel,
// distinguished by Type.
type StreamEvent struct {
	Type    EventType `json:"type"`
	Content string    `json:"content,omitempty"`
	Step    string    `json:"step,omitempty"`
	Tool    string    `json:"tool,omitempty"`
	Status  string    `json:"status,omitempty"`
	Title   string    `json:"title,omitempty"`
	URL     string    `json:"url,omitempty"`
	Action  string    `json:"action,omitempty"`
}

func ThinkingEvent(content string) StreamEvent {
	return StreamEvent{Type: EventThinking, Content: content}
}

func ContentEvent(content string) StreamEvent {
	return StreamEvent{Type: EventContent, Content: content}
}

func StepEvent(step string) StreamEvent {
	return StreamEvent{Type: EventStep, Step: step}
}

func ToolEvent(tool, status string) StreamEvent {
	return StreamEvent{Type: EventTool, Tool: tool, Status: status}
}

func SourceEvent(title, url, action string) StreamEvent {
	return StreamEvent{Type: EventSource, Title: title, URL: url, Action: action}
}
