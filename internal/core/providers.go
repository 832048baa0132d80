package core

import "context"

// Completer is the external completion service.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	// StreamComplete forwards deltas as they arrive. onChunk returning an
	// error aborts the stream.
	StreamComplete(ctx context.Context, messages []Message, onChunk func(delta string) error) error
	Model() string
}

// GroundedResult is the outcome of a grounded-search completion: answer text
// plus the web sources it cites. A degraded call yields empty sources and
// zero confidence, never an unhandled error.
type GroundedResult struct {
	Answer     string          `json:"answer"`
	Sources    []ContentSource `json:"sources"`
	Confidence float64         `json:"confidence"`
}

type GroundedSearcher interface {
	Available() bool
	GroundedSearch(ctx context.Context, query string) (*GroundedResult, error)
}

type WebSearcher interface {
	Available() bool
	Search(ctx context.Context, query string, maxResults int) ([]ContentSource, error)
}

// KnowledgeBase is the internal static knowledge lookup: topic in, matched
// prose out, ok=false as the empty-result sentinel.
type KnowledgeBase interface {
	Lookup(topic string) (string, bool)
}

// PageFetcher retrieves and text-extracts one page for deep analysis.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
