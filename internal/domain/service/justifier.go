package service

import "context"

// JustificationInput is what the text generator knows about the recommendation.
type JustificationInput struct {
	PlaceName string
	Distance  string // Formatted km, or the unavailable sentinel.
	Query     string
}

// Justifier produces a one-sentence reason for a recommendation.
// Callers must treat every error as recoverable and fall back to a fixed sentence.
type Justifier interface {
	Justify(ctx context.Context, input JustificationInput) (string, error)
}
