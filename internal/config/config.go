// Package config holds the settings of the iota command that can be set from the environment.
package config

import (
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/env"
)

type Config struct {
	// Type is the name of the value type of the sequence.
	Type string `env:"IOTA_TYPE" default:"int" enum:"int;int8;int16;int32;int64;uint;uint8;uint16;uint32;uint64;float64;rune;date;weekday;semver;"`
	// Format is the output format of the values.
	Format string `env:"IOTA_FORMAT" default:"text" enum:"text;json;yaml;"`
	// Separator is written between the values in text format.
	Separator string `env:"IOTA_SEPARATOR" default:"\n"`
	// TTYLimit caps the length of an infinite sequence when the output is a terminal.
	TTYLimit int `env:"IOTA_TTY_LIMIT" default:"100"`
	// LogLevel is the lowest level that the command logs.
	LogLevel string `env:"IOTA_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated fields, so values that came from somewhere else than the environment,
// like command line flags, follow the same rules.
func (c Config) Validate() error {
	return enum.ValidateStruct(c)
}
