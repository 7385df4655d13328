package geoip

import (
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"

	"achaperto/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOpen_MissingDatabase(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	require.Error(t, err)
}

func TestNewCountryResolver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		gate    *config.CountryGateConfig
		wantErr bool
	}{
		{name: "not configured"},
		{name: "disabled", gate: &config.CountryGateConfig{DatabasePath: "/nowhere.mmdb"}},
		{name: "enabled without database", gate: &config.CountryGateConfig{Enabled: true}, wantErr: true},
		{name: "enabled with missing database", gate: &config.CountryGateConfig{Enabled: true, DatabasePath: "/nowhere.mmdb"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewCountryResolver(ResolverParams{
				Lc:     fxtest.NewLifecycle(t),
				Config: &config.Config{CountryGate: tt.gate},
				Logger: logger,
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			code, err := resolver.CountryCode(net.ParseIP("200.160.2.3"))
			require.NoError(t, err)
			assert.Empty(t, code)
			assert.NoError(t, resolver.Close())
		})
	}
}
