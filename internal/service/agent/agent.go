package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/service/conversation"
	"github.com/fleetcore/helmsman/internal/service/followup"
	"github.com/fleetcore/helmsman/internal/service/intelligence"
	"github.com/fleetcore/helmsman/internal/service/memory"
	"github.com/fleetcore/helmsman/internal/service/research"
	"github.com/fleetcore/helmsman/internal/service/router"
	"github.com/fleetcore/helmsman/internal/session"
	"github.com/fleetcore/helmsman/internal/storage"
	"github.com/fleetcore/helmsman/pkg/log"
)

// Emitter receives the turn's stream events: prose tokens and structured
// progress multiplexed on one channel.
type Emitter func(core.StreamEvent)

type Agent struct {
	store        storage.Store
	completer    core.Completer
	grounded     core.GroundedSearcher
	kb           core.KnowledgeBase
	orchestrator *research.Orchestrator
	analyzer     *intelligence.Analyzer
	followups    *followup.Generator
	prompter     *Prompter
	maxSources   int
}

func NewAgent(
	store storage.Store,
	completer core.Completer,
	grounded core.GroundedSearcher,
	kb core.KnowledgeBase,
	orchestrator *research.Orchestrator,
	analyzer *intelligence.Analyzer,
	followups *followup.Generator,
	prompter *Prompter,
	maxSources int,
) *Agent {
	if maxSources <= 0 {
		maxSources = 5
	}
	return &Agent{
		store:        store,
		completer:    completer,
		grounded:     grounded,
		kb:           kb,
		orchestrator: orchestrator,
		analyzer:     analyzer,
		followups:    followups,
		prompter:     prompter,
		maxSources:   maxSources,
	}
}

// Model reports the configured completion model, empty when the agent
// runs without one.
func (a *Agent) Model() string {
	if a.completer == nil {
		return ""
	}
	return a.completer.Model()
}

// Run drives one conversation turn: classify, route, retrieve, score,
// synthesize, then sync memory. The answer streams through emit as it is
// produced; the returned string is the complete answer.
func (a *Agent) Run(ctx context.Context, req core.ChatRequest, emit Emitter) (string, error) {
	query := lastUserMessage(req.Messages)
	if query == "" {
		return "", fmt.Errorf("no user message in request")
	}

	turnID := uuid.NewString()
	ctx = log.WithTurn(ctx, req.SessionID, turnID)
	logger := log.FromCtx(ctx)

	mem := a.store.Load(ctx, req.SessionID)

	// Classify the turn before the user message lands in memory: the
	// cold-start rule keys off prior message count.
	prevState := mem.ConversationState
	state := conversation.DetectState(query, mem, prevState)
	preserve := conversation.ShouldPreserveContext(prevState, state)
	if transition, changed := conversation.DetectTransition(query, prevState, state); changed {
		session.RecordTransition(mem, transition)
	}
	mem.ConversationState = state

	intent := conversation.DetectIntent(query, mem)
	session.RecordIntent(mem, intent.Intent, intent.Confidence)

	decision := router.DetectQueryMode(router.Input{
		Query:           query,
		BrowsingEnabled: req.EnableBrowsing,
		Topic:           mem.ConversationTopic,
		Intent:          intent.Intent,
		Knowledge:       &mem.AccumulatedKnowledge,
	})
	preserve = preserve && decision.PreserveContext

	logger.Info().
		Str("state", string(state)).
		Str("intent", string(intent.Intent)).
		Str("mode", string(decision.Mode)).
		Str("rule", decision.Rule).
		Msg("turn classified")

	session.AppendMessage(mem, core.RoleUser, query)
	session.RecordMode(mem, decision.Mode, query, mem.ConversationSummary)

	emit(core.ThinkingEvent(fmt.Sprintf("Interpreting this as %s.", strings.ToLower(strings.ReplaceAll(string(intent.Intent), "_", " ")))))

	answer, err := a.answer(ctx, query, mem, decision, preserve, emit)
	if err != nil {
		return "", err
	}

	session.AppendMessage(mem, core.RoleAssistant, answer)

	// Enrichment paths after the answer: none of this may fail the turn
	memory.Sync(ctx, mem, query)
	if a.followups != nil {
		for _, q := range a.followups.Generate(ctx, mem, answer) {
			emit(core.StreamEvent{Type: core.EventStep, Step: "followup: " + q.Question})
		}
	}

	a.store.Save(ctx, req.SessionID, mem)
	return answer, nil
}

func (a *Agent) answer(ctx context.Context, query string, mem *core.SessionMemory, decision router.Decision, preserve bool, emit Emitter) (string, error) {
	switch decision.Mode {
	case core.ModeNone:
		return a.answerFromKnowledge(ctx, query, mem, preserve, emit)
	case core.ModeResearch:
		return a.answerWithResearch(ctx, query, mem, preserve, emit)
	default:
		return a.answerWithVerification(ctx, query, mem, decision, preserve, emit)
	}
}

// answerFromKnowledge serves platform questions from the built-in
// knowledge base without any external retrieval call.
func (a *Agent) answerFromKnowledge(ctx context.Context, query string, mem *core.SessionMemory, preserve bool, emit Emitter) (string, error) {
	var prose string
	if a.kb != nil {
		if matched, ok := a.kb.Lookup(query); ok {
			prose = matched
		}
	}

	// Without a completion provider the base article is the whole answer.
	if a.completer == nil {
		if prose == "" {
			prose = "I could not find that topic in the FleetCore knowledge base."
		}
		emit(core.ContentEvent(prose))
		return prose, nil
	}

	messages := a.prompter.Build(mem, query, PromptInput{
		KnowledgeProse:  prose,
		PreserveContext: preserve,
	})
	return a.streamAnswer(ctx, messages, emit)
}

// answerWithVerification runs the fast grounded lookup.
func (a *Agent) answerWithVerification(ctx context.Context, query string, mem *core.SessionMemory, decision router.Decision, preserve bool, emit Emitter) (string, error) {
	logger := log.FromCtx(ctx)

	lookup := query
	if decision.EnrichQuery {
		lookup = a.prompter.EnrichQuery(query, mem)
	}

	var accepted []core.ScoredSource
	var groundedAnswer string

	if a.grounded != nil && a.grounded.Available() {
		emit(core.ToolEvent("grounded_search", core.StatusStart))
		result, err := a.grounded.GroundedSearch(ctx, lookup)
		emit(core.ToolEvent("grounded_search", core.StatusEnd))
		if err != nil {
			logger.Warn().Err(err).Msg("grounded search failed, answering from model knowledge")
		} else if result.Confidence > 0 {
			groundedAnswer = result.Answer
			accepted = a.scoreAndSelect(ctx, result.Sources, query, core.DepthStandard, emit)
		}
	} else {
		logger.Debug().Msg("grounded search unavailable, answering from model knowledge")
	}

	messages := a.prompter.Build(mem, query, PromptInput{
		Sources:         accepted,
		GroundedAnswer:  groundedAnswer,
		PreserveContext: preserve,
	})
	return a.streamAnswer(ctx, messages, emit)
}

// answerWithResearch runs the deep multi-query fan-out.
func (a *Agent) answerWithResearch(ctx context.Context, query string, mem *core.SessionMemory, preserve bool, emit Emitter) (string, error) {
	queries := research.GenerateQueries(query, preserve, &mem.AccumulatedKnowledge)
	emit(core.StepEvent(fmt.Sprintf("researching %d query variants", len(queries))))

	sources := a.orchestrator.Research(ctx, queries, research.Emitter(emit))
	sources = a.orchestrator.EnrichSources(ctx, sources, 3, research.Emitter(emit))

	accepted := a.scoreAndSelect(ctx, sources, query, core.DepthDeep, emit)

	messages := a.prompter.Build(mem, query, PromptInput{
		Sources:         accepted,
		PreserveContext: preserve,
	})
	return a.streamAnswer(ctx, messages, emit)
}

func (a *Agent) scoreAndSelect(ctx context.Context, sources []core.ContentSource, query string, depth core.AnalysisDepth, emit Emitter) []core.ScoredSource {
	if len(sources) == 0 {
		return nil
	}

	scored := a.analyzer.BatchAnalyze(ctx, sources, query, depth)
	accepted, rejected := intelligence.SelectBestSources(scored, a.maxSources)

	for _, s := range accepted {
		emit(core.SourceEvent(s.Source.Title, s.Source.URL, core.ActionSelected))
	}
	for _, s := range rejected {
		emit(core.SourceEvent(s.Source.Title, s.Source.URL, core.ActionRejected))
	}

	log.FromCtx(ctx).Info().
		Int("accepted", len(accepted)).
		Int("rejected", len(rejected)).
		Str("depth", string(depth)).
		Msg("sources selected")
	return accepted
}

func (a *Agent) streamAnswer(ctx context.Context, messages []core.Message, emit Emitter) (string, error) {
	if a.completer == nil {
		return "", fmt.Errorf("no completion provider configured")
	}

	var b strings.Builder
	err := a.completer.StreamComplete(ctx, messages, func(delta string) error {
		b.WriteString(delta)
		emit(core.ContentEvent(delta))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}
	return b.String(), nil
}

func lastUserMessage(messages []core.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == core.RoleUser {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}
