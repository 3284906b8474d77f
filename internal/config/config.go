// Package config is for app wide settings resolved through Viper:
// built-in defaults, then GFFX_-prefixed environment variables, with
// command-line flags applied on top by the cli package.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gffx/internal/output"
)

// OutputConfig is settings for FASTA rendering.
type OutputConfig struct {
	// characters of sequence per emitted line
	LineWidth int `mapstructure:"line-width"`
}

// Config is the root-level settings struct. Flags default to these values,
// so a set environment variable changes the default rather than overriding
// an explicit flag.
type Config struct {
	// FASTA rendering settings
	Output OutputConfig `mapstructure:"output"`

	// log debug diagnostics to stderr
	Verbose bool `mapstructure:"verbose"`
}

// Load returns a Config populated from defaults and the environment
// (GFFX_OUTPUT_LINE_WIDTH, GFFX_VERBOSE).
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("output.line-width", output.DefaultLineWidth)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("GFFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}
	return c, nil
}
