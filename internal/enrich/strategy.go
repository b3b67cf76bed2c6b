package enrich

import (
	"context"

	"github.com/jonathan/resume-formatter/internal/llm"
	"github.com/jonathan/resume-formatter/internal/types"
)

// Strategy adapts the LLM extractor to the extraction ladder. Unlike the
// heuristic strategies it can fail, which makes the ladder fall through to
// the next rung.
type Strategy struct {
	extractor *Extractor
}

// NewStrategy wraps an LLM client as a ladder strategy
func NewStrategy(client llm.Client) *Strategy {
	return &Strategy{extractor: NewExtractor(client)}
}

// Name identifies the strategy in diagnostics and results
func (s *Strategy) Name() string { return "llm" }

// Extract runs the enriched extraction
func (s *Strategy) Extract(ctx context.Context, text string) (*types.ExtractedData, error) {
	return s.extractor.Extract(ctx, text)
}
