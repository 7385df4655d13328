package search

import (
	"strings"

	"achaperto/internal/domain/entity"
)

// NoiseRule lists markers of false positives for one category, e.g. veterinary clinics
// showing up under a pharmacy search.
type NoiseRule struct {
	Category    Category `json:"category" yaml:"category" validate:"required"`
	NameMarkers []string `json:"nameMarkers" yaml:"nameMarkers"`
	TypeMarkers []string `json:"typeMarkers" yaml:"typeMarkers"`
}

type foldedRule struct {
	nameMarkers []string
	typeMarkers map[string]struct{}
}

// NoiseFilter is a deterministic allow/deny pass over provider results. It never reorders.
type NoiseFilter struct {
	rules map[Category]foldedRule
}

// NewNoiseFilter indexes the rules by category; rules sharing a category are merged.
func NewNoiseFilter(rules []NoiseRule) *NoiseFilter {
	indexed := make(map[Category]foldedRule, len(rules))

	for _, rule := range rules {
		folded, ok := indexed[rule.Category]
		if !ok {
			folded = foldedRule{typeMarkers: make(map[string]struct{})}
		}

		for _, marker := range rule.NameMarkers {
			if m := Fold(marker); m != "" {
				folded.nameMarkers = append(folded.nameMarkers, m)
			}
		}
		for _, marker := range rule.TypeMarkers {
			if m := Fold(marker); m != "" {
				folded.typeMarkers[m] = struct{}{}
			}
		}

		indexed[rule.Category] = folded
	}

	return &NoiseFilter{rules: indexed}
}

// IsNoise reports whether the candidate matches a false-positive marker of the category.
func (f *NoiseFilter) IsNoise(category Category, candidate entity.Candidate) bool {
	if f == nil {
		return false
	}

	rule, ok := f.rules[category]
	if !ok {
		return false
	}

	name := Fold(candidate.Name)
	for _, marker := range rule.nameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}

	for _, placeType := range candidate.Types {
		if _, denied := rule.typeMarkers[Fold(placeType)]; denied {
			return true
		}
	}

	return false
}

// Apply returns the candidates that are not noise, preserving order.
func (f *NoiseFilter) Apply(category Category, candidates []entity.Candidate) []entity.Candidate {
	kept := make([]entity.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if !f.IsNoise(category, candidate) {
			kept = append(kept, candidate)
		}
	}

	return kept
}
