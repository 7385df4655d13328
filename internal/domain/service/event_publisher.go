package service

import (
	"context"
	"time"
)

// Search outcomes carried by SearchEvent.
const (
	OutcomePartner       = "partner"
	OutcomeProvider      = "provider"
	OutcomeNoCandidates  = "no_candidates"
	OutcomeGeocodeFailed = "geocode_failed"

	// OutcomeError is only observed; failed resolutions are not published.
	OutcomeError = "error"
)

// SearchEvent is emitted after a search resolves, for downstream analytics.
// It carries the outcome only; the core keeps nothing.
type SearchEvent struct {
	EventID      string    `json:"event_id"`
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Query        string    `json:"query"`
	Category     string    `json:"category"`
	Outcome      string    `json:"outcome"`
	PlaceName    string    `json:"place_name"`
	Neighborhood string    `json:"neighborhood"`
	Redo         bool      `json:"redo"` // The request carried an exclusion list
	ResolvedAt   time.Time `json:"resolved_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSearchEvent publishes a search outcome
	PublishSearchEvent(ctx context.Context, event *SearchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
