package entity

import "time"

// Candidate is a place returned by the nearby search, not yet enriched with details.
type Candidate struct {
	Name       string
	ProviderID string
	Types      []string
	Location   *Coordinate // Nil when the provider omitted geometry.
}

// PlaceDetails is the detail record fetched for the selected candidate.
type PlaceDetails struct {
	Name             string
	FormattedAddress string
	Phone            string
	Location         *Coordinate
	OpeningHours     *OpeningHours
}

// OpeningHours mirrors the provider's opening_hours block.
type OpeningHours struct {
	OpenNow *bool
	Periods []OpeningPeriod
}

// OpeningPeriod is one open/close pair. Close is nil for places open around the clock.
type OpeningPeriod struct {
	Open  DayTime
	Close *DayTime
}

// DayTime is a weekday plus a 24-hour "HHMM" time string.
type DayTime struct {
	Day  time.Weekday
	Time string
}
