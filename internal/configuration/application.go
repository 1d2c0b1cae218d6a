package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
)

const (
	// KeyLogLevel selects the log level (debug, info, warn, error).
	KeyLogLevel = "DIRENTLS_LOG_LEVEL"

	// KeyDigest enables printing the listing fingerprint.
	KeyDigest = "DIRENTLS_DIGEST"

	// KeyRaw enables dumping the fixed-layout records.
	KeyRaw = "DIRENTLS_RAW"
)

// AppConfiguration is the principal structure holding the application configuration.
type AppConfiguration struct {
	LogLevel slog.Level
	Digest   bool
	Raw      bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the defaults.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		LogLevel: slog.LevelInfo,
	}
}

// Load overlays the values of the configuration file at filename onto c. A
// missing file leaves the defaults in place and is not an error.
func (c *AppConfiguration) Load(provider *ConfigProviderImpl, filename string) error {
	envMap, err := provider.ReadGeneric(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No configuration file found, using defaults", "path", filename)

			return nil
		}

		return fmt.Errorf("(config-load) %w", err)
	}

	if v := provider.MapKeyToString(envMap, KeyLogLevel); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return fmt.Errorf("(config-load) %s: %w", KeyLogLevel, err)
		}
		c.LogLevel = level
	}

	if v, ok := provider.MapKeyToBool(envMap, KeyDigest); ok {
		c.Digest = v
	}

	if v, ok := provider.MapKeyToBool(envMap, KeyRaw); ok {
		c.Raw = v
	}

	return nil
}
