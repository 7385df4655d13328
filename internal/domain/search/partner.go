package search

import (
	"strings"

	"achaperto/internal/domain/entity"
)

// Registry is the priority partner list. It is built once at start-up and only read afterwards,
// so concurrent lookups need no locking.
type Registry struct {
	entries []entity.PartnerEntry
}

// NewRegistry copies entries; registry order is the tie-break between matching partners.
func NewRegistry(entries []entity.PartnerEntry) *Registry {
	copied := make([]entity.PartnerEntry, len(entries))
	copy(copied, entries)

	return &Registry{entries: copied}
}

// Len returns the number of partners.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// FindPartner returns the first partner for which the request term or category matches,
// the user's neighborhood is the partner's neighborhood, and the partner was not shown yet.
func (r *Registry) FindPartner(category Category, query, neighborhood string, excluded ExclusionSet) (entity.PartnerEntry, bool) {
	if r == nil {
		return entity.PartnerEntry{}, false
	}

	foldedQuery := Fold(query)
	userNeighborhood := strings.TrimSpace(neighborhood)

	for _, entry := range r.entries {
		if !termMatches(entry, category, foldedQuery) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(entry.Neighborhood), userNeighborhood) {
			continue
		}
		if excluded.Contains(entry.Name) {
			continue
		}

		return entry, true
	}

	return entity.PartnerEntry{}, false
}

func termMatches(entry entity.PartnerEntry, category Category, foldedQuery string) bool {
	if term := Fold(entry.MatchTerm); term != "" && strings.Contains(foldedQuery, term) {
		return true
	}

	return Fold(entry.Category) == Fold(string(category))
}
