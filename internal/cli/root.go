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

// Package cli implements the pqkey command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pqkey/pkg/logging"
	"github.com/jeremyhahn/go-pqkey/pkg/pqkey"
)

var (
	// Global configuration
	globalConfig *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pqkey",
	Short: "pqkey - post-quantum key container tool",
	Long: `pqkey manages post-quantum key containers for both algorithm
families: key encapsulation mechanisms (ML-KEM) and digital
signatures (ML-DSA). Key material is held in locked, wipe-on-free
memory for the lifetime of the container.

Generation requires a binary built with the quantum build tag and
liboqs installed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := globalConfig.Load(); err != nil {
			return err
		}
		if globalConfig.Verbose {
			pqkey.SetLogger(logging.NewLogger(true))
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	globalConfig = NewConfig()

	rootCmd.PersistentFlags().StringVar(&globalConfig.ConfigFile, "config", "",
		"config file (default is $HOME/.pqkey.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Verbose, "verbose", "v", false,
		"verbose output (enables the refcount trace)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(keygenCmd)
}
