package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigTOMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(DefaultConfigTOML))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[host]
region_id = "main"

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Host.RegionID)
	assert.Equal(t, "loading", cfg.Host.IndicatorID)
	assert.Equal(t, "data-route", cfg.Host.RouteAttr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "[host\nregion_id = 1", "parse config"},
		{"unknown key", "[host]\nregion = \"x\"", "unknown key \"host.region\""},
		{"empty region", "[host]\nregion_id = \"\"", "host.region_id is required"},
		{"empty route attr", "[host]\nroute_attr = \"\"", "host.route_attr is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "waypoint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestConfig_EncodeIsLoadable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18n.Language = "de"
	data, err := cfg.Encode()
	require.NoError(t, err)

	back, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "de", back.I18n.Language)
}
