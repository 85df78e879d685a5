package transform

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
)

const (
	// DefaultImportSource is the runtime package used when the host does not
	// configure one.
	DefaultImportSource = "rask-ui"

	// FrameworkModule is the module the upstream JSX lowering imports its
	// element factories from. Imports of it are redirected to the runtime's
	// compiler entry.
	FrameworkModule = "inferno"
)

// Config is the plugin configuration supplied by the host.
type Config struct {
	// ImportSource is the package the runtime base classes are imported from.
	// Nil means DefaultImportSource; an explicit empty string is kept.
	ImportSource *string `json:"importSource,omitzero"`
}

// NewConfig returns a configuration importing from importSource.
func NewConfig(importSource string) Config {
	return Config{ImportSource: &importSource}
}

// DefaultConfig returns the configuration used when the host sends none.
func DefaultConfig() Config {
	return Config{}
}

// ImportSourceOrDefault returns the configured import source, falling back
// to DefaultImportSource when none was given.
func (c Config) ImportSourceOrDefault() string {
	if c.ImportSource == nil {
		return DefaultImportSource
	}
	return *c.ImportSource
}

// CompilerSource is the module that framework imports are rewritten to.
func (c Config) CompilerSource() string {
	return c.ImportSourceOrDefault() + "/compiler"
}

// DecodeConfig decodes a JSON configuration payload. Unknown members are
// ignored and an empty payload decodes to the default configuration.
func DecodeConfig(payload []byte) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(payload)) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes a configuration payload, falling back to the default
// configuration when the payload is missing or invalid. A bad configuration
// never fails a build.
func ParseConfig(payload []byte) Config {
	cfg, err := DecodeConfig(payload)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
