package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "GCMT"

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetLevel parses the configured level, falling back to info.
func (l LogConfig) GetLevel() zerolog.Level {
	value := strings.TrimSpace(l.Level)
	if value == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// GetFormat returns the configured format, falling back to console.
func (l LogConfig) GetFormat() string {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case FormatJSON:
		return FormatJSON
	default:
		return FormatConsole
	}
}

// Load reads the configuration from GCMT_* environment variables.
// No configuration file is consulted.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", zerolog.InfoLevel.String())
	v.SetDefault("log.format", FormatConsole)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}
