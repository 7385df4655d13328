package search

import (
	"math"
	"sort"

	"achaperto/internal/domain/entity"
)

// SortByDistance returns a copy of candidates ordered by distance from origin.
// The sort is stable and candidates without a location go last in provider order,
// so a provider that already ranks by distance keeps its order.
func SortByDistance(origin entity.Coordinate, candidates []entity.Candidate) []entity.Candidate {
	sorted := make([]entity.Candidate, len(candidates))
	copy(sorted, candidates)

	distanceOf := func(c entity.Candidate) float64 {
		if c.Location == nil {
			return math.Inf(1)
		}

		return haversineDistance(origin.Point(), c.Location.Point())
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return distanceOf(sorted[i]) < distanceOf(sorted[j])
	})

	return sorted
}

// SelectCandidate picks the first candidate the user has not seen yet.
func SelectCandidate(candidates []entity.Candidate, excluded ExclusionSet) (entity.Candidate, bool) {
	for _, candidate := range candidates {
		if !excluded.Contains(candidate.Name) {
			return candidate, true
		}
	}

	return entity.Candidate{}, false
}
