package followup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
)

const (
	minQuestions = 3
	maxQuestions = 5
)

// FollowUp is one suggested next question.
type FollowUp struct {
	Question   string  `json:"question"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type Generator struct {
	completer core.Completer
}

func NewGenerator(completer core.Completer) *Generator {
	return &Generator{completer: completer}
}

// Generate proposes 3-5 follow-up questions from the turn's context. Any
// failure, transport or parse, falls back to the static per-state bank;
// follow-ups are an enrichment and may never fail the turn.
func (g *Generator) Generate(ctx context.Context, mem *core.SessionMemory, lastAnswer string) []FollowUp {
	logger := log.FromCtx(ctx)

	if g.completer == nil {
		return fallbackQuestions(mem.ConversationState)
	}

	prompt := buildPrompt(mem, lastAnswer)
	resp, err := g.completer.Complete(ctx, []core.Message{
		{Role: core.RoleSystem, Content: "You suggest follow-up questions for a maritime maintenance conversation. Output only a JSON array."},
		{Role: core.RoleUser, Content: prompt},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("follow-up generation failed, using fallback")
		return fallbackQuestions(mem.ConversationState)
	}

	questions, err := parseResponse(resp)
	if err != nil {
		logger.Warn().Err(err).Msg("follow-up response unparsable, using fallback")
		return fallbackQuestions(mem.ConversationState)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	if len(questions) < minQuestions {
		return fallbackQuestions(mem.ConversationState)
	}
	return questions
}

func buildPrompt(mem *core.SessionMemory, lastAnswer string) string {
	var b strings.Builder
	b.WriteString("Suggest 3-5 follow-up questions the user might ask next.\n")
	if mem.ConversationTopic != "" {
		fmt.Fprintf(&b, "Current topic: %s\n", mem.ConversationTopic)
	}
	if entities := mem.AccumulatedKnowledge.EntityNames(); len(entities) > 0 {
		fmt.Fprintf(&b, "Known entities: %s\n", strings.Join(entities, ", "))
	}
	if lastAnswer != "" {
		const limit = 1200
		if len(lastAnswer) > limit {
			lastAnswer = lastAnswer[:limit]
		}
		fmt.Fprintf(&b, "Last answer:\n%s\n", lastAnswer)
	}
	b.WriteString(`Output a JSON array of objects: {"question", "category", "confidence", "reasoning"}.`)
	return b.String()
}

func parseResponse(content string) ([]FollowUp, error) {
	jsonStr := extractJSONArray(content)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var questions []FollowUp
	if err := json.Unmarshal([]byte(jsonStr), &questions); err != nil {
		return nil, fmt.Errorf("unmarshal follow-ups: %w", err)
	}

	valid := questions[:0]
	for _, q := range questions {
		if strings.TrimSpace(q.Question) != "" {
			valid = append(valid, q)
		}
	}
	return valid, nil
}

func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content[start:], "]")
	if end == -1 {
		return ""
	}

	return content[start : start+end+1]
}
