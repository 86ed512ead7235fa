package main

import (
	"os"

	"github.com/spf13/pflag"
)

// Source records where a setting came from
type Source int

const (
	SourceDefault Source = iota
	SourceEnv
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourceEnv:
		return "env"
	default:
		return "default"
	}
}

// config is the resolved demo configuration. Precedence: flag > env > default.
type config struct {
	Schema       string
	SchemaSource Source
	JSON         bool
	LogFormat    string
	LogFile      string
	NoColor      bool
	Verbose      bool
}

const (
	envSchema    = "ARGS_SCHEMA"
	envLogFormat = "ARGS_LOG_FORMAT"
	envLogFile   = "ARGS_LOG_FILE"
	envNoColor   = "NO_COLOR"
)

func resolveConfig(flags *pflag.FlagSet) config {
	var cfg config
	cfg.Schema, cfg.SchemaSource = resolveString(flags, "schema", envSchema)
	cfg.LogFormat, _ = resolveString(flags, "log-format", envLogFormat)
	cfg.LogFile, _ = resolveString(flags, "log-file", envLogFile)
	cfg.NoColor = resolveBool(flags, "no-color", envNoColor)
	cfg.JSON, _ = flags.GetBool("json")
	cfg.Verbose, _ = flags.GetBool("verbose")
	return cfg
}

func resolveString(flags *pflag.FlagSet, name, env string) (string, Source) {
	value, _ := flags.GetString(name)
	if flags.Changed(name) {
		return value, SourceFlag
	}
	if v, ok := os.LookupEnv(env); ok {
		return v, SourceEnv
	}
	return value, SourceDefault
}

// resolveBool treats any non-empty env value as true, following NO_COLOR.
func resolveBool(flags *pflag.FlagSet, name, env string) bool {
	value, _ := flags.GetBool(name)
	if flags.Changed(name) {
		return value
	}
	if os.Getenv(env) != "" {
		return true
	}
	return value
}
