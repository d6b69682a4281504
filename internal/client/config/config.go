// Package config handles configuration for the CLI client: defaults, an
// optional JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the idea vault CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - MaxFileSizeBytes: local size cap checked before requesting an upload URL.
type Config struct {
	ServerEndpointAddr string
	MaxFileSizeBytes   int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.MaxFileSizeBytes = 10 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
