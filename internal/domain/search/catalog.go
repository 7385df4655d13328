package search

import "achaperto/internal/domain/entity"

// Catalog is the static configuration data of the search: the partner registry and the
// noise rules. It is loaded once at start-up and shared read-only between requests.
type Catalog struct {
	Registry *Registry
	Noise    *NoiseFilter
}

// NewCatalog builds an immutable catalog from raw configuration entries.
func NewCatalog(partners []entity.PartnerEntry, noiseRules []NoiseRule) *Catalog {
	return &Catalog{
		Registry: NewRegistry(partners),
		Noise:    NewNoiseFilter(noiseRules),
	}
}
