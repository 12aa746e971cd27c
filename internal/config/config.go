// Package config loads run configuration from flags, environment variables,
// and an optional config file, in that order of precedence, using Viper
// the way the teacher's driver/go.mod already depends on it.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything a run needs beyond the trace/input path itself.
type Config struct {
	Concurrency int
	TraceStdFD  bool
	ArchivePath string
	Filter      string
	Format      string
	Debug       bool
}

const (
	keyConcurrency = "concurrency"
	keyTraceStdFD  = "trace-stdfd"
	keyArchive     = "archive"
	keyFilter      = "filter"
	keyFormat      = "format"
	keyDebug       = "debug"
)

// Defaults returns the baseline configuration applied before flags, env, and
// config file overrides.
func Defaults() Config {
	return Config{
		Concurrency: 1,
		TraceStdFD:  false,
		Format:      "text",
	}
}

// New builds a Viper instance pre-loaded with defaults, the FDTRACE_ env
// prefix, and (if present) a config file named fdtrace.{yaml,json,toml} on
// the usual search path.
func New() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault(keyConcurrency, d.Concurrency)
	v.SetDefault(keyTraceStdFD, d.TraceStdFD)
	v.SetDefault(keyFormat, d.Format)

	v.SetEnvPrefix("FDTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("fdtrace")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/fdtrace")

	return v
}

// Load reads v into a Config, returning an error only if the optional config
// file exists but is malformed; a missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return Config{
		Concurrency: v.GetInt(keyConcurrency),
		TraceStdFD:  v.GetBool(keyTraceStdFD),
		ArchivePath: v.GetString(keyArchive),
		Filter:      v.GetString(keyFilter),
		Format:      v.GetString(keyFormat),
		Debug:       v.GetBool(keyDebug),
	}, nil
}
