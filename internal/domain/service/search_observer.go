package service

import "time"

// SearchObserver records resolution outcomes for monitoring.
type SearchObserver interface {
	ObserveResolution(outcome string, elapsed time.Duration)
}
