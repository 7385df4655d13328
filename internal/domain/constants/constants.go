// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Search event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on published search events.
const (
	AttributeEventID   = "event_id"
	AttributeRequestID = "request_id"
	AttributeOutcome   = "outcome"
	AttributeCategory  = "category"
)

// LocalSubscription is the subscription name reported by the local push publisher.
const LocalSubscription = "projects/local/subscriptions/search-events-sub"
