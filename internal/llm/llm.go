// Package llm defines the text-generation boundary. Generation is an
// external collaborator; the analysis pipeline only ever sees the Generator
// interface.
package llm

import (
	"context"
)

// #region generator

// Generator produces free text for an augmented prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// #endregion generator

// #region static

// Static returns a fixed response for every prompt. It stands in for a real
// model in tests and offline runs.
type Static struct {
	Response string
}

// Generate returns the configured response.
func (s Static) Generate(ctx context.Context, prompt string) (string, error) {
	return s.Response, nil
}

// #endregion static
