package service

import (
	"context"

	"achaperto/internal/domain/entity"
	"achaperto/internal/errors"
)

// ErrGeocodeNotFound is returned by ResolvePosition when the provider has no result for the address.
// It is user-correctable; any other error from a Geocoder means the provider is unavailable.
var ErrGeocodeNotFound = errors.New("address not found")

// Geocoder wraps the external geocoding provider.
type Geocoder interface {
	// ResolvePosition forward-geocodes free-form address text.
	// Returns ErrGeocodeNotFound when the provider returns zero results.
	ResolvePosition(ctx context.Context, address string) (*GeocodedAddress, error)

	// ReverseLookup returns the administrative components around a coordinate.
	// Components the provider does not return are left empty.
	ReverseLookup(ctx context.Context, coord entity.Coordinate) (entity.AddressComponents, error)
}

// GeocodedAddress is the best forward-geocoding match for an address.
type GeocodedAddress struct {
	Location         entity.Coordinate
	FormattedAddress string
}
