package search

import (
	"testing"

	"achaperto/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry([]entity.PartnerEntry{
		{
			Category:     "Farmácia",
			MatchTerm:    "farmácia",
			Name:         "Drogaria Parceira Burits",
			Neighborhood: "Burits",
			Status:       entity.StatusOpenNow,
		},
		{
			Category:     "Farmácia",
			MatchTerm:    "farmácia",
			Name:         "Farmácia Popular Burits",
			Neighborhood: "Burits",
			Status:       entity.StatusOpenNow,
		},
		{
			Category:     "Borracharia",
			MatchTerm:    "pneu",
			Name:         "Borracharia do Zé",
			Neighborhood: "Centro",
		},
	})
}

func TestFindPartner_MatchesTermAndNeighborhood(t *testing.T) {
	t.Parallel()

	entry, ok := testRegistry().FindPartner(CategoryPharmacy, "farmácia", "Burits", nil)

	require.True(t, ok)
	assert.Equal(t, "Drogaria Parceira Burits", entry.Name)
}

func TestFindPartner_OtherNeighborhoodDoesNotMatch(t *testing.T) {
	t.Parallel()

	_, ok := testRegistry().FindPartner(CategoryPharmacy, "farmácia", "Centro", nil)

	assert.False(t, ok)
}

func TestFindPartner_NeighborhoodIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	_, ok := testRegistry().FindPartner(CategoryPharmacy, "farmácia", " burits ", nil)

	assert.True(t, ok)
}

func TestFindPartner_CategoryEqualityMatchesWithoutTerm(t *testing.T) {
	t.Parallel()

	// "remédio" does not contain the match term but maps to the partner's category.
	entry, ok := testRegistry().FindPartner(MapCategory("remédio"), "remédio", "Burits", nil)

	require.True(t, ok)
	assert.Equal(t, "Drogaria Parceira Burits", entry.Name)
}

func TestFindPartner_TermWithoutCategory(t *testing.T) {
	t.Parallel()

	entry, ok := testRegistry().FindPartner(CategoryOther, "calibrar pneu", "Centro", nil)

	require.True(t, ok)
	assert.Equal(t, "Borracharia do Zé", entry.Name)
}

func TestFindPartner_ExclusionsSkipToNextPartner(t *testing.T) {
	t.Parallel()

	registry := testRegistry()

	entry, ok := registry.FindPartner(CategoryPharmacy, "farmácia", "Burits",
		NewExclusionSet([]string{"Drogaria Parceira Burits"}))
	require.True(t, ok)
	assert.Equal(t, "Farmácia Popular Burits", entry.Name)

	_, ok = registry.FindPartner(CategoryPharmacy, "farmácia", "Burits",
		NewExclusionSet([]string{"Drogaria Parceira Burits", "farmacia popular burits"}))
	assert.False(t, ok)
}

func TestFindPartner_UnrelatedQuery(t *testing.T) {
	t.Parallel()

	_, ok := testRegistry().FindPartner(CategoryMarket, "mercado", "Burits", nil)

	assert.False(t, ok)
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	t.Parallel()

	entries := []entity.PartnerEntry{{Name: "A", MatchTerm: "a", Neighborhood: "X"}}
	registry := NewRegistry(entries)
	entries[0].Name = "mutated"

	entry, ok := registry.FindPartner(CategoryOther, "a", "X", nil)
	require.True(t, ok)
	assert.Equal(t, "A", entry.Name)
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, 0, (*Registry)(nil).Len())
}
