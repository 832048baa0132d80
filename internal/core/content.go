package core

// ContentSource is one retrieved document candidate. Sources are ephemeral:
// scored per request, never persisted beyond the turn.
type ContentSource struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

type AnalysisDepth string

const (
	DepthFast     AnalysisDepth = "fast"
	DepthStandard AnalysisDepth = "standard"
	DepthDeep     AnalysisDepth = "deep"
)

// ContentIntelligence holds the twelve sub-scores (four tiers) plus the
// weighted composite for one source.
type ContentIntelligence struct {
	// Tier 1: surface
	DomainAuthority   float64 `json:"domain_authority"`
	ContentFreshness  float64 `json:"content_freshness"`
	StructuralQuality float64 `json:"structural_quality"`
	// Tier 2: semantic
	KeywordRelevance float64 `json:"keyword_relevance"`
	TitleRelevance   float64 `json:"title_relevance"`
	TechnicalDepth   float64 `json:"technical_depth"`
	Completeness     float64 `json:"completeness"`
	// Tier 3: authority
	AuthoritySignals    float64 `json:"authority_signals"`
	CitationQuality     float64 `json:"citation_quality"`
	ExpertiseIndicators float64 `json:"expertise_indicators"`
	// Tier 4: domain specificity
	DomainSpecificity float64 `json:"domain_specificity"`
	TechnicalAccuracy float64 `json:"technical_accuracy"`

	FinalScore       float64       `json:"final_score"`
	Confidence       float64       `json:"confidence"`
	AnalysisDepth    AnalysisDepth `json:"analysis_depth"`
	ProcessingTimeMs int64         `json:"processing_time_ms"`
}

// SubScores lists all twelve metric values in tier order.
func (ci *ContentIntelligence) SubScores() []float64 {
	return []float64{
		ci.DomainAuthority, ci.ContentFreshness, ci.StructuralQuality,
		ci.KeywordRelevance, ci.TitleRelevance, ci.TechnicalDepth, ci.Completeness,
		ci.AuthoritySignals, ci.CitationQuality, ci.ExpertiseIndicators,
		ci.DomainSpecificity, ci.TechnicalAccuracy,
	}
}

// ScoredSource pairs a source with its intelligence, order-preserving with
// the scorer input.
type ScoredSource struct {
	Source       ContentSource       `json:"source"`
	Intelligence ContentIntelligence `json:"intelligence"`
}
