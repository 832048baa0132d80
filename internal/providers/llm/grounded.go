package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
)

const groundedResults = 5

// Grounded implements the grounded-search completion: one query in, answer
// text plus the web sources it cites out. It composes the web searcher with
// the completion service.
type Grounded struct {
	completer core.Completer
	searcher  core.WebSearcher
}

func NewGrounded(completer core.Completer, searcher core.WebSearcher) *Grounded {
	return &Grounded{completer: completer, searcher: searcher}
}

// Available reports whether both collaborators are configured. A missing
// credential degrades to unavailable instead of erroring at call time.
func (g *Grounded) Available() bool {
	return g.completer != nil && g.searcher != nil && g.searcher.Available()
}

func (g *Grounded) GroundedSearch(ctx context.Context, query string) (*core.GroundedResult, error) {
	if !g.Available() {
		return &core.GroundedResult{Confidence: 0}, nil
	}

	sources, err := g.searcher.Search(ctx, query, groundedResults)
	if err != nil {
		// Transport failure degrades to the empty-result sentinel
		log.FromCtx(ctx).Warn().Err(err).Msg("grounded search retrieval failed")
		return &core.GroundedResult{Confidence: 0}, nil
	}
	if len(sources) == 0 {
		return &core.GroundedResult{Confidence: 0}, nil
	}

	answer, err := g.completer.Complete(ctx, []core.Message{
		{Role: core.RoleSystem, Content: "Answer the question using only the provided web sources. Cite sources by number."},
		{Role: core.RoleUser, Content: buildGroundedPrompt(query, sources)},
	})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("grounded completion failed")
		return &core.GroundedResult{Sources: sources, Confidence: 0}, nil
	}

	return &core.GroundedResult{
		Answer:     answer,
		Sources:    sources,
		Confidence: 0.8,
	}, nil
}

func buildGroundedPrompt(query string, sources []core.ContentSource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nSources:\n", query)
	for i, src := range sources {
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s\n\n", i+1, src.Title, src.URL, src.Content)
	}
	return b.String()
}
