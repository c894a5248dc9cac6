// Copyright (c) 2026 Jeremy Hahn
// Copyright (c) 2026 Automate The Things, LLC
//
// This file is part of go-pqkey.
//
// go-pqkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// DefaultAlgorithm is used when a command is invoked without an
	// algorithm argument
	DefaultAlgorithm string

	// KeyDir is the default output directory for generated key files
	KeyDir string

	// Verbose enables verbose logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		DefaultAlgorithm: "ML-KEM-768",
		KeyDir:           ".",
		Verbose:          false,
	}
}

// Load merges the config file (if any) and environment into the Config.
// Flag values already set on the struct win over file values only when
// the file omits the key, matching viper's precedence.
func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("default_algorithm", c.DefaultAlgorithm)
	v.SetDefault("key_dir", c.KeyDir)
	v.SetEnvPrefix("PQKEY")
	v.AutomaticEnv()

	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
	} else {
		v.SetConfigName(".pqkey")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("cli: reading config: %w", err)
		}
	}

	c.DefaultAlgorithm = v.GetString("default_algorithm")
	c.KeyDir = v.GetString("key_dir")
	return nil
}
