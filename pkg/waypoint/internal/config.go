package internal

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
)

// Config is the waypoint.toml document.
type Config struct {
	Host   HostConfig   `toml:"host"`
	Log    LogConfig    `toml:"log"`
	I18n   I18nConfig   `toml:"i18n"`
	Server ServerConfig `toml:"server"`
}

// HostConfig names the document elements the router binds to.
type HostConfig struct {
	RegionID    string `toml:"region_id"`
	IndicatorID string `toml:"indicator_id"`
	RouteAttr   string `toml:"route_attr"`
	ActiveClass string `toml:"active_class"`
}

type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn" or "error"
	Path  string `toml:"path"`  // Optional log file; console only when empty
}

type I18nConfig struct {
	Language string `toml:"language"` // Fallback when the browser language has no catalogue
}

type ServerConfig struct {
	Addr string `toml:"addr"`
	Root string `toml:"root"` // Directory holding index.html and the wasm bundle
}

// DefaultConfigTOML is embedded in the browser build, which has no file
// system to read a config from.
const DefaultConfigTOML = `# Waypoint configuration

[host]
region_id = "app"
indicator_id = "loading"
route_attr = "data-route"
active_class = "active"

[log]
level = "info"
path = ""

[i18n]
language = "en"

[server]
addr = "127.0.0.1:8080"
root = "web"
`

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Host: HostConfig{
			RegionID:    constants.DefaultRegionID,
			IndicatorID: constants.DefaultIndicatorID,
			RouteAttr:   constants.DefaultRouteAttr,
			ActiveClass: constants.DefaultActiveClass,
		},
		Log:  LogConfig{Level: "info"},
		I18n: I18nConfig{Language: constants.DefaultLanguage},
		Server: ServerConfig{
			Addr: constants.DefaultServerAddr,
			Root: constants.DefaultServerRoot,
		},
	}
}

// ParseConfig decodes a TOML document over the defaults, so a file only
// needs the keys it changes. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a config file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks the settings the router cannot start without.
func (c Config) Validate() error {
	switch {
	case c.Host.RegionID == "":
		return errors.New("config: host.region_id is required")
	case c.Host.IndicatorID == "":
		return errors.New("config: host.indicator_id is required")
	case c.Host.RouteAttr == "":
		return errors.New("config: host.route_attr is required")
	}
	return nil
}

// Encode writes the config back out as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
