package entity

// UnknownNeighborhood is used whenever the reverse lookup cannot name the user's neighborhood.
const UnknownNeighborhood = "Desconhecido"

// SearchRequest is one "find the nearest open place" request.
// When ManualAddress is set it takes precedence over Coordinates.
type SearchRequest struct {
	Query         string
	Coordinates   *Coordinate
	ManualAddress string
	// ExcludedNames holds names already shown to the user, oldest first.
	// It is round-tripped by the client and never rewritten here.
	ExcludedNames []string
}

// HasManualAddress reports whether the position must come from forward geocoding.
func (r *SearchRequest) HasManualAddress() bool {
	return r.ManualAddress != ""
}

// AddressComponents are the administrative parts of a reverse lookup.
// Fields the provider did not return are empty.
type AddressComponents struct {
	Neighborhood string
	City         string
	State        string
	Country      string
}

// ResolvedPosition is the user's position for the lifetime of one request.
type ResolvedPosition struct {
	Coordinate
	Neighborhood     string
	City             string
	State            string
	Country          string
	FormattedAddress string
}

// NewResolvedPosition combines a coordinate with its reverse lookup.
func NewResolvedPosition(coord Coordinate, components AddressComponents, formattedAddress string) ResolvedPosition {
	neighborhood := components.Neighborhood
	if neighborhood == "" {
		neighborhood = UnknownNeighborhood
	}

	return ResolvedPosition{
		Coordinate:       coord,
		Neighborhood:     neighborhood,
		City:             components.City,
		State:            components.State,
		Country:          components.Country,
		FormattedAddress: formattedAddress,
	}
}
