package knowledge

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	b := NewBase()

	tests := []struct {
		name     string
		topic    string
		found    bool
		contains string
	}{
		{
			name:     "exact heading",
			topic:    "Planned Maintenance",
			found:    true,
			contains: "maintenance",
		},
		{
			name:     "heading inside a longer question",
			topic:    "what can you tell me about work orders",
			found:    true,
			contains: "work order",
		},
		{
			name:     "case insensitive",
			topic:    "solas",
			found:    true,
			contains: "SOLAS",
		},
		{
			name:     "regulatory question in full",
			topic:    "What is SOLAS?",
			found:    true,
			contains: "Safety of Life at Sea",
		},
		{
			name:  "no match",
			topic: "quantum chromodynamics",
			found: false,
		},
		{
			name:  "blank topic",
			topic: "   ",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := b.Lookup(tt.topic)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found=%v, expected %v", tt.topic, ok, tt.found)
			}
			if !ok {
				return
			}
			if !strings.Contains(strings.ToLower(body), strings.ToLower(tt.contains)) {
				t.Errorf("Lookup(%q) body %q does not mention %q", tt.topic, body, tt.contains)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	b := NewBase()
	topics := b.Topics()

	if len(topics) < 5 {
		t.Fatalf("expected a populated knowledge base, got %d topics", len(topics))
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		if topic == "" {
			t.Error("empty section heading")
		}
		if seen[topic] {
			t.Errorf("duplicate heading %q", topic)
		}
		seen[topic] = true
	}
}
