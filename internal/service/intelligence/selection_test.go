package intelligence

import (
	"testing"

	"github.com/fleetcore/helmsman/internal/core"
)

func scoredWith(title string, final, confidence float64) core.ScoredSource {
	return core.ScoredSource{
		Source:       core.ContentSource{Title: title, URL: "https://example.com/" + title},
		Intelligence: core.ContentIntelligence{FinalScore: final, Confidence: confidence},
	}
}

func titles(sources []core.ScoredSource) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Source.Title
	}
	return out
}

func TestSelectBestSourcesNarrowGapOnHighConfidence(t *testing.T) {
	// Best scores 0.9 at confidence 0.85: the gap narrows to 0.15, so the
	// acceptance cutoff is 0.75.
	scored := []core.ScoredSource{
		scoredWith("best", 0.9, 0.85),
		scoredWith("close", 0.78, 0.7),
		scoredWith("edge", 0.75, 0.7),
		scoredWith("below", 0.74, 0.7),
	}

	accepted, rejected := SelectBestSources(scored, 10)
	if got := titles(accepted); len(got) != 3 || got[0] != "best" || got[1] != "close" || got[2] != "edge" {
		t.Errorf("unexpected accepted set: %v", got)
	}
	if got := titles(rejected); len(got) != 1 || got[0] != "below" {
		t.Errorf("unexpected rejected set: %v", got)
	}
}

func TestSelectBestSourcesWideGapOnLowConfidence(t *testing.T) {
	// Best confidence at the bar (not above) keeps the wide 0.20 gap
	scored := []core.ScoredSource{
		scoredWith("best", 0.9, 0.8),
		scoredWith("within-wide", 0.71, 0.7),
		scoredWith("outside", 0.69, 0.7),
	}

	accepted, _ := SelectBestSources(scored, 10)
	if got := titles(accepted); len(got) != 2 || got[1] != "within-wide" {
		t.Errorf("unexpected accepted set: %v", got)
	}
}

func TestSelectBestSourcesAbsoluteFloors(t *testing.T) {
	scored := []core.ScoredSource{
		scoredWith("weak-leader", 0.5, 0.9),
		scoredWith("below-score-floor", 0.44, 0.9),
		scoredWith("below-confidence-floor", 0.5, 0.45),
	}

	accepted, rejected := SelectBestSources(scored, 10)
	if got := titles(accepted); len(got) != 1 || got[0] != "weak-leader" {
		t.Errorf("unexpected accepted set: %v", got)
	}
	if len(rejected) != 2 {
		t.Errorf("floors should reject the rest: %v", titles(rejected))
	}
}

func TestSelectBestSourcesMaxCap(t *testing.T) {
	scored := []core.ScoredSource{
		scoredWith("a", 0.9, 0.9),
		scoredWith("b", 0.89, 0.9),
		scoredWith("c", 0.88, 0.9),
		scoredWith("d", 0.87, 0.9),
	}

	accepted, rejected := SelectBestSources(scored, 2)
	if len(accepted) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(accepted))
	}
	if got := titles(accepted); got[0] != "a" || got[1] != "b" {
		t.Errorf("cap must keep the highest-ranked sources: %v", got)
	}
	if len(rejected) != 2 {
		t.Errorf("capped-out sources land in rejected: %v", titles(rejected))
	}
}

func TestSelectBestSourcesEmpty(t *testing.T) {
	accepted, rejected := SelectBestSources(nil, 5)
	if accepted != nil || rejected != nil {
		t.Error("empty input yields empty partitions")
	}
}

func TestSelectBestSourcesSortIsStable(t *testing.T) {
	scored := []core.ScoredSource{
		scoredWith("first", 0.8, 0.9),
		scoredWith("second", 0.8, 0.9),
	}

	accepted, _ := SelectBestSources(scored, 10)
	if got := titles(accepted); got[0] != "first" || got[1] != "second" {
		t.Errorf("equal scores must keep input order: %v", got)
	}
}
