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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pqkey/pkg/pqkey"
	"github.com/jeremyhahn/go-pqkey/pkg/provider"
)

var (
	keygenPubOut  string
	keygenPrivOut string
)

// keygenCmd writes raw key octets; any PEM/DER framing is up to the
// consumer.
var keygenCmd = &cobra.Command{
	Use:   "keygen [algorithm]",
	Short: "Generate a keypair and write the raw key bytes to disk",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := globalConfig.DefaultAlgorithm
		if len(args) == 1 {
			algorithm = args[0]
		}

		family, err := pqkey.FamilyForAlgorithm(algorithm)
		if err != nil {
			return err
		}

		key, err := pqkey.New(provider.NewContext(nil, nil), algorithm, algorithm, family, "")
		if err != nil {
			return err
		}
		defer pqkey.Release(key)

		if err := key.GenerateKeyPair(); err != nil {
			return err
		}

		pubOut := keygenPubOut
		if pubOut == "" {
			pubOut = filepath.Join(globalConfig.KeyDir, algorithm+".pub")
		}
		privOut := keygenPrivOut
		if privOut == "" {
			privOut = filepath.Join(globalConfig.KeyDir, algorithm+".key")
		}

		if err := os.WriteFile(pubOut, key.PublicBytes(), 0644); err != nil {
			return fmt.Errorf("writing public key: %w", err)
		}
		if err := os.WriteFile(privOut, key.PrivateBytes(), 0600); err != nil {
			return fmt.Errorf("writing private key: %w", err)
		}

		fmt.Printf("public key:  %s (%d bytes)\n", pubOut, key.PublicKeyLen())
		fmt.Printf("private key: %s (%d bytes)\n", privOut, key.PrivateKeyLen())
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenPubOut, "pub", "", "public key output path")
	keygenCmd.Flags().StringVar(&keygenPrivOut, "priv", "", "private key output path")
}
