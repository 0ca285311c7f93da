package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogConfig_GetLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{
			name:     "debug",
			level:    "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "error",
			level:    "error",
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "upper case",
			level:    "WARN",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "surrounding whitespace",
			level:    "  trace ",
			expected: zerolog.TraceLevel,
		},
		{
			name:     "disabled",
			level:    "disabled",
			expected: zerolog.Disabled,
		},
		{
			name:     "empty - use default",
			level:    "",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "whitespace only - use default",
			level:    "   ",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "invalid - use default",
			level:    "verbose",
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LogConfig{Level: tt.level}
			assert.Equal(t, tt.expected, cfg.GetLevel())
		})
	}
}

func TestLogConfig_GetFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "json",
			format:   "json",
			expected: FormatJSON,
		},
		{
			name:     "json upper case",
			format:   "JSON",
			expected: FormatJSON,
		},
		{
			name:     "console",
			format:   "console",
			expected: FormatConsole,
		},
		{
			name:     "empty - use default",
			format:   "",
			expected: FormatConsole,
		},
		{
			name:     "unknown - use default",
			format:   "xml",
			expected: FormatConsole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LogConfig{Format: tt.format}
			assert.Equal(t, tt.expected, cfg.GetFormat())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GCMT_LOG_LEVEL", "")
	t.Setenv("GCMT_LOG_FORMAT", "")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.GetLevel())
	assert.Equal(t, FormatConsole, cfg.Log.GetFormat())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GCMT_LOG_LEVEL", "debug")
	t.Setenv("GCMT_LOG_FORMAT", "json")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, zerolog.DebugLevel, cfg.Log.GetLevel())
	assert.Equal(t, FormatJSON, cfg.Log.GetFormat())
}

func TestLoad_IgnoresUnprefixedEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GCMT_LOG_LEVEL", "")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.GetLevel())
}
