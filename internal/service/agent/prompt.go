package agent

import (
	"fmt"
	"strings"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/tokens"
)

const systemPersona = `You are Helmsman, a research assistant for maritime maintenance operations.
Answer precisely, cite sources by number when sources are provided, and say
plainly when you do not know. Keep answers grounded in the material given.`

// PromptInput is the per-turn material beyond session memory.
type PromptInput struct {
	KnowledgeProse  string
	GroundedAnswer  string
	Sources         []core.ScoredSource
	PreserveContext bool
}

// Prompter assembles the completion messages for a turn, keeping the
// injected session context inside a token budget.
type Prompter struct {
	counter       *tokens.Counter
	contextBudget int
}

func NewPrompter(counter *tokens.Counter, contextBudget int) *Prompter {
	if contextBudget <= 0 {
		contextBudget = 600
	}
	return &Prompter{counter: counter, contextBudget: contextBudget}
}

func (p *Prompter) Build(mem *core.SessionMemory, query string, in PromptInput) []core.Message {
	messages := []core.Message{{Role: core.RoleSystem, Content: systemPersona}}

	if in.PreserveContext {
		if block := p.contextBlock(mem); block != "" {
			messages = append(messages, core.Message{
				Role:    core.RoleSystem,
				Content: "CONVERSATION CONTEXT:\n" + block,
			})
		}
	}

	if in.KnowledgeProse != "" {
		messages = append(messages, core.Message{
			Role:    core.RoleSystem,
			Content: "PLATFORM KNOWLEDGE:\n" + in.KnowledgeProse,
		})
	}

	if len(in.Sources) > 0 {
		messages = append(messages, core.Message{
			Role:    core.RoleSystem,
			Content: "SOURCES:\n" + sourcesBlock(in.Sources),
		})
	}

	if in.GroundedAnswer != "" {
		messages = append(messages, core.Message{
			Role:    core.RoleSystem,
			Content: "GROUNDED LOOKUP RESULT:\n" + in.GroundedAnswer,
		})
	}

	// Recent transcript, then the live query last
	for _, m := range mem.RecentMessages {
		if m.Role == core.RoleUser || m.Role == core.RoleAssistant {
			messages = append(messages, core.Message{Role: m.Role, Content: m.Content})
		}
	}

	if len(mem.RecentMessages) == 0 || mem.RecentMessages[len(mem.RecentMessages)-1].Content != query {
		messages = append(messages, core.Message{Role: core.RoleUser, Content: query})
	}
	return messages
}

// EnrichQuery blends learned platform and entity context into a lookup
// query for the hybrid verification case.
func (p *Prompter) EnrichQuery(query string, mem *core.SessionMemory) string {
	var extras []string
	if entities := mem.AccumulatedKnowledge.EntityNames(); len(entities) > 0 {
		extras = append(extras, strings.Join(entities, " "))
	}
	if mem.AccumulatedKnowledge.HasPlatformKnowledge() {
		extras = append(extras, "vessel maintenance management")
	}
	if len(extras) == 0 {
		return query
	}
	return query + " " + strings.Join(extras, " ")
}

func (p *Prompter) contextBlock(mem *core.SessionMemory) string {
	var b strings.Builder
	if mem.ConversationSummary != "" {
		b.WriteString(mem.ConversationSummary)
		b.WriteString("\n")
	}
	k := &mem.AccumulatedKnowledge
	for _, f := range k.FleetcoreFeatures {
		fmt.Fprintf(&b, "- Platform feature %q: %s\n", f.Name, f.Explanation)
	}
	for _, e := range k.VesselEntities {
		fmt.Fprintf(&b, "- Vessel %s%s\n", e.Name, entityDetail(e))
	}
	for _, e := range k.CompanyEntities {
		fmt.Fprintf(&b, "- Company %s%s\n", e.Name, entityDetail(e))
	}
	return p.counter.Truncate(strings.TrimSpace(b.String()), p.contextBudget)
}

func entityDetail(e *core.EntityRecord) string {
	var parts []string
	for k, v := range e.Identifiers {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ToUpper(k), v))
	}
	for k, v := range e.Attributes {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func sourcesBlock(sources []core.ScoredSource) string {
	var b strings.Builder
	for i, s := range sources {
		fmt.Fprintf(&b, "[%d] %s (%s, score %.2f)\n%s\n\n",
			i+1, s.Source.Title, s.Source.URL, s.Intelligence.FinalScore, s.Source.Content)
	}
	return strings.TrimSpace(b.String())
}
