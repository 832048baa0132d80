package research

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
	"github.com/fleetcore/helmsman/pkg/retry"
)

const (
	resultsPerQuery = 6
	fetchCharLimit  = 8000
)

// Emitter receives out-of-band progress events for the client stream.
type Emitter func(core.StreamEvent)

type Orchestrator struct {
	searcher core.WebSearcher
	fetcher  core.PageFetcher
	retrier  *retry.Retrier
}

func NewOrchestrator(searcher core.WebSearcher, fetcher core.PageFetcher) *Orchestrator {
	return &Orchestrator{
		searcher: searcher,
		fetcher:  fetcher,
		retrier:  retry.NewRetrier(retry.NewSearchConfig()),
	}
}

// Research fans all query variants out concurrently and merges the results
// with URL-based first-occurrence-wins deduplication. A failed variant
// contributes zero results; it never cancels its siblings.
func (o *Orchestrator) Research(ctx context.Context, queries []string, emit Emitter) []core.ContentSource {
	logger := log.FromCtx(ctx)

	if o.searcher == nil || !o.searcher.Available() {
		logger.Warn().Msg("web search unavailable, research degraded to zero sources")
		return nil
	}

	emit(core.ToolEvent("web_search", core.StatusStart))
	defer emit(core.ToolEvent("web_search", core.StatusEnd))

	// Per-variant slots keep merge order stable regardless of completion order
	slots := make([][]core.ContentSource, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			var results []core.ContentSource
			err := o.retrier.Do(gctx, func() error {
				var searchErr error
				results, searchErr = o.searcher.Search(gctx, q, resultsPerQuery)
				return searchErr
			})
			if err != nil {
				// Independent failure domain: swallow and move on
				logger.Warn().Err(err).Str("variant", q).Msg("search variant failed")
				return nil
			}
			slots[i] = results
			return nil
		})
	}
	_ = g.Wait()

	return dedupeByURL(slots)
}

// EnrichSources replaces snippet bodies with fetched page text for the
// first few sources, used only at deep analysis depth. Fetch failures
// leave the snippet in place.
func (o *Orchestrator) EnrichSources(ctx context.Context, sources []core.ContentSource, limit int, emit Emitter) []core.ContentSource {
	if o.fetcher == nil {
		return sources
	}
	logger := log.FromCtx(ctx)

	for i := range sources {
		if i >= limit {
			break
		}
		emit(core.ToolEvent("fetch_page", core.StatusStart))
		text, err := o.fetcher.Fetch(ctx, sources[i].URL)
		emit(core.ToolEvent("fetch_page", core.StatusEnd))
		if err != nil {
			logger.Debug().Err(err).Str("url", sources[i].URL).Msg("page fetch failed, keeping snippet")
			continue
		}
		if len(text) > fetchCharLimit {
			text = text[:fetchCharLimit]
		}
		if strings.TrimSpace(text) != "" {
			sources[i].Content = text
		}
	}
	return sources
}

func dedupeByURL(slots [][]core.ContentSource) []core.ContentSource {
	seen := make(map[string]struct{})
	var merged []core.ContentSource
	for _, results := range slots {
		for _, src := range results {
			key := strings.TrimSuffix(strings.ToLower(src.URL), "/")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, src)
		}
	}
	return merged
}
