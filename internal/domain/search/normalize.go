// Package search holds the pure decision rules of the place search: category
// detection, partner matching, noise filtering, distance and opening hours.
// Nothing here performs I/O; the orchestrator in usecase/impl wires it to providers.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s, trims it and strips diacritics so "Farmácia" and "farmacia" compare equal.
func Fold(s string) string {
	// transform.Chain keeps state, so one is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(strings.TrimSpace(folded))
}

// ExclusionSet answers "was this name already shown to the user?".
type ExclusionSet map[string]struct{}

// NewExclusionSet indexes the client's exclusion list. The list itself is left untouched.
func NewExclusionSet(names []string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, name := range names {
		if key := Fold(name); key != "" {
			set[key] = struct{}{}
		}
	}

	return set
}

// Contains reports whether name is excluded, ignoring case and accents.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[Fold(name)]

	return ok
}
