// Package extraction implements heuristic resume data extraction: field
// parsers, confidence scoring and the strategy fallback ladder.
package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
)

// Strategy is one way of turning raw resume text into structured data
type Strategy interface {
	// Name identifies the strategy in diagnostics and results
	Name() string
	// Extract produces structured data or an error. Returning an error makes
	// the ladder try the next strategy.
	Extract(ctx context.Context, text string) (*types.ExtractedData, error)
}

// BasicStrategy wraps BasicExtract. It never fails.
type BasicStrategy struct{}

// Name implements Strategy
func (BasicStrategy) Name() string { return "basic" }

// Extract implements Strategy
func (BasicStrategy) Extract(_ context.Context, text string) (*types.ExtractedData, error) {
	return BasicExtract(text), nil
}

// AdvancedStrategy wraps AdvancedExtract. It never fails either; internal
// parser panics degrade it to basic output wholesale.
type AdvancedStrategy struct{}

// Name implements Strategy
func (AdvancedStrategy) Name() string { return "advanced" }

// Extract implements Strategy
func (AdvancedStrategy) Extract(_ context.Context, text string) (*types.ExtractedData, error) {
	return AdvancedExtract(text), nil
}

// Result is the outcome of a ladder run
type Result struct {
	Data *types.ExtractedData
	// Strategy is the name of the strategy that produced Data
	Strategy string
	// Notes records, per skipped strategy, why the ladder moved past it
	Notes []string
}

// Ladder tries strategies in order until one succeeds. A strategy is only
// skipped when it returns an error; a low confidence score never triggers
// escalation to the next rung.
type Ladder struct {
	strategies []Strategy
}

// NewLadder builds a ladder over the given strategies, tried front to back
func NewLadder(strategies ...Strategy) *Ladder {
	return &Ladder{strategies: strategies}
}

// DefaultLadder is the heuristic-only ladder: advanced, then basic
func DefaultLadder() *Ladder {
	return NewLadder(AdvancedStrategy{}, BasicStrategy{})
}

// Extract runs the ladder. Empty or whitespace-only input short-circuits to
// a minimal result with zero confidence. If every strategy fails the last
// error is returned.
func (l *Ladder) Extract(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{
			Data:     &types.ExtractedData{RawText: text},
			Strategy: "none",
			Notes:    []string{"input text is empty"},
		}, nil
	}

	var notes []string
	var lastErr error
	for _, s := range l.strategies {
		data, err := s.Extract(ctx, text)
		if err != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", s.Name(), err))
			lastErr = err
			continue
		}
		return &Result{Data: data, Strategy: s.Name(), Notes: notes}, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all extraction strategies failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no extraction strategies configured")
}
