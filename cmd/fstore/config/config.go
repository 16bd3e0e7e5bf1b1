// Package config provides access to fstore configuration tree read from
// a file and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
type Config struct {
	v *viper.Viper

	path []string
}

const (
	separator = "."

	// EnvPrefix is a prefix of ENV variables related to fstore configuration.
	EnvPrefix = "fstore"
	// EnvSeparator is a section separator in ENV variables.
	EnvSeparator = "_"
)

// New creates a new Config instance.
//
// If path is not empty, configuration values are read from the file (YAML,
// JSON or any other format viper supports). Values can be overridden by
// environment variables like FSTORE_STORAGE_PATH.
func New(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, EnvSeparator))

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		v: v,
	}, nil
}

// Sub returns subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path[:len(x.path):len(x.path)], name),
	}
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. String).
func (x *Config) Value(name string) any {
	return x.v.Get(strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator))
}
