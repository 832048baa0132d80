package intelligence

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
)

// Analyzer computes multi-tier trust/relevance scores for retrieved
// sources. Batch scoring runs on a shared worker pool.
type Analyzer struct {
	pool *ants.Pool
	now  func() time.Time
}

func NewAnalyzer(poolSize int) (*Analyzer, error) {
	if poolSize <= 0 {
		poolSize = 8
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Analyzer{pool: pool, now: time.Now}, nil
}

func (a *Analyzer) Release() {
	a.pool.Release()
}

// Analyze scores one source at the requested depth. The depth levels form
// a strict superset hierarchy: fast computes tier 1 only, standard adds
// tiers 2-3, deep adds tier 4. Partial sums are normalized by the weight
// of the tiers actually computed so scores stay comparable across depths.
func (a *Analyzer) Analyze(source core.ContentSource, query string, depth core.AnalysisDepth) core.ContentIntelligence {
	start := time.Now()

	ci := core.ContentIntelligence{AnalysisDepth: depth}

	// Tier 1 is always computed
	ci.DomainAuthority = scoreDomainAuthority(source.URL)
	ci.ContentFreshness = scoreFreshness(source.PublishedDate, a.now())
	ci.StructuralQuality = scoreStructuralQuality(source.Content)

	weighted := ci.DomainAuthority*weightDomainAuthority +
		ci.ContentFreshness*weightContentFreshness +
		ci.StructuralQuality*weightStructuralQuality
	norm := tier1WeightTotal

	if depth == core.DepthStandard || depth == core.DepthDeep {
		// Tier 2
		ci.KeywordRelevance = scoreKeywordRelevance(source.Content, query)
		ci.TitleRelevance = scoreTitleRelevance(source.Title, query)
		ci.TechnicalDepth = scoreTechnicalDepth(source.Content)
		ci.Completeness = scoreCompleteness(source.Content, query)
		// Tier 3
		ci.AuthoritySignals = scoreAuthoritySignals(source)
		ci.CitationQuality = scoreCitationQuality(source.Content)
		ci.ExpertiseIndicators = scoreExpertiseIndicators(source.Content)

		weighted += ci.KeywordRelevance*weightKeywordRelevance +
			ci.TitleRelevance*weightTitleRelevance +
			ci.TechnicalDepth*weightTechnicalDepth +
			ci.Completeness*weightCompleteness +
			ci.AuthoritySignals*weightAuthoritySignals +
			ci.CitationQuality*weightCitationQuality +
			ci.ExpertiseIndicators*weightExpertiseIndicators
		norm = tier123WeightTotal
	}

	if depth == core.DepthDeep {
		// Tier 4
		ci.DomainSpecificity = scoreDomainSpecificity(source)
		ci.TechnicalAccuracy = scoreTechnicalAccuracy(source.Content)

		weighted += ci.DomainSpecificity*weightDomainSpecificity +
			ci.TechnicalAccuracy*weightTechnicalAccuracy
		norm = allTiersWeightTotal
	}

	ci.FinalScore = clamp01(weighted / norm)
	ci.Confidence = confidenceFromSpread(ci.SubScores())
	ci.ProcessingTimeMs = time.Since(start).Milliseconds()
	return ci
}

// BatchAnalyze scores sources in parallel on the shared pool, preserving
// input order in the output pairing.
func (a *Analyzer) BatchAnalyze(ctx context.Context, sources []core.ContentSource, query string, depth core.AnalysisDepth) []core.ScoredSource {
	scored := make([]core.ScoredSource, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scored[i] = core.ScoredSource{
				Source:       src,
				Intelligence: a.Analyze(src, query, depth),
			}
		}
		if err := a.pool.Submit(task); err != nil {
			// Pool saturated or released: score inline rather than drop
			log.FromCtx(ctx).Warn().Err(err).Msg("scoring pool submit failed, running inline")
			task()
		}
	}
	wg.Wait()

	return scored
}

// confidenceFromSpread maps inter-metric variance to [0,1]: low spread
// across the twelve sub-scores signals a confident composite.
func confidenceFromSpread(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	mean := 0.0
	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(scores))

	if variance > 0.3 {
		variance = 0.3
	}
	return 1 - variance/0.3
}
