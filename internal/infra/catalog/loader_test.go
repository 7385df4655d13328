package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `
partners:
  - category: Farmácia
    matchTerm: farmacia
    name: Farmácia Popular Burits
    street: Rua das Flores
    number: 120
    neighborhood: Burits
    city: Curitiba
    state: PR
    status: Aberto agora
    closingTime: "22:00"
noise:
  - category: Farmácia
    nameMarkers: [veterinária]
    typeMarkers: [veterinary_care]
`)

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Registry.Len())

	entry, ok := catalog.Registry.FindPartner(search.CategoryPharmacy, "farmacia", "burits", nil)
	require.True(t, ok)
	assert.Equal(t, "120", entry.Number)
	assert.Equal(t, "22:00", entry.ClosingTime)

	assert.True(t, catalog.Noise.IsNoise(search.CategoryPharmacy, entity.Candidate{Name: "Clínica Veterinária"}))
}

func TestLoad_ShippedCatalog(t *testing.T) {
	catalog, err := Load(filepath.Join("..", "..", "..", "config", "catalog.yaml"))
	require.NoError(t, err)
	assert.Positive(t, catalog.Registry.Len())

	assert.True(t, catalog.Noise.IsNoise(search.CategoryMarket, entity.Candidate{Name: "Contabilidade Mercado Silva"}))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "partner without name",
			content: "partners:\n  - category: Farmácia\n    neighborhood: Centro\n    status: Aberto agora\n",
			wantErr: "Name",
		},
		{
			name:    "unknown partner category",
			content: "partners:\n  - category: Sorveteria\n    name: Gelato\n    neighborhood: Centro\n    status: Aberto agora\n",
			wantErr: "unknown category",
		},
		{
			name:    "unknown noise category",
			content: "noise:\n  - category: Sorveteria\n    nameMarkers: [x]\n",
			wantErr: "unknown category",
		},
		{
			name:    "malformed yaml",
			content: "partners: [",
			wantErr: "read catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
