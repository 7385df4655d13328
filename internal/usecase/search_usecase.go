package usecase

import (
	"context"

	"achaperto/internal/domain/entity"
)

// SearchUsecase resolves a free-text request and a position into one recommendation.
type SearchUsecase interface {
	// Resolve runs one search. Geocoding misses and empty candidate lists come back as
	// results, not errors; an error means a provider failed or the position was invalid.
	Resolve(ctx context.Context, req *entity.SearchRequest) (*entity.ResolutionResult, error)
}

// EventWaiter is implemented by use cases that keep dispatching events after a call returns.
type EventWaiter interface {
	WaitForEvents(ctx context.Context) error
}
