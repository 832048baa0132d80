package intelligence

import (
	"sort"

	"github.com/fleetcore/helmsman/internal/core"
)

// Selection thresholds. The quality gap is relative to the best source per
// query, not a fixed cutoff: a weak result set still yields its best
// candidates, a strong one rejects everything far below the leader.
const (
	narrowQualityGap    = 0.15
	wideQualityGap      = 0.20
	highConfidenceBar   = 0.8
	minFinalScore       = 0.45
	minSourceConfidence = 0.5
)

// SelectBestSources partitions scored sources into accepted and rejected
// sets. Accepted sources sort descending by final score, sit within the
// adaptive quality gap of the best source, clear the absolute floors, and
// fit the configured maximum.
func SelectBestSources(scored []core.ScoredSource, maxSources int) (accepted, rejected []core.ScoredSource) {
	if len(scored) == 0 {
		return nil, nil
	}

	ranked := make([]core.ScoredSource, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Intelligence.FinalScore > ranked[j].Intelligence.FinalScore
	})

	best := ranked[0].Intelligence
	gap := wideQualityGap
	if best.Confidence > highConfidenceBar {
		gap = narrowQualityGap
	}
	cutoff := best.FinalScore - gap

	for _, s := range ranked {
		ci := s.Intelligence
		ok := ci.FinalScore >= cutoff &&
			ci.FinalScore >= minFinalScore &&
			ci.Confidence >= minSourceConfidence &&
			len(accepted) < maxSources
		if ok {
			accepted = append(accepted, s)
		} else {
			rejected = append(rejected, s)
		}
	}
	return accepted, rejected
}
