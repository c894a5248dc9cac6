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

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pqkey/pkg/pqkey"
	"github.com/jeremyhahn/go-pqkey/pkg/provider"
)

var infoCmd = &cobra.Command{
	Use:   "info [algorithm]",
	Short: "Show sizes and security level for an algorithm",
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

		fmt.Printf("algorithm:        %s\n", key.Algorithm())
		fmt.Printf("family:           %s\n", key.Family())
		fmt.Printf("public key:       %d bytes\n", key.PublicKeyLen())
		fmt.Printf("private key:      %d bytes\n", key.PrivateKeyLen())
		fmt.Printf("max output:       %d bytes\n", key.MaxOutputSize())
		fmt.Printf("security bits:    %d\n", key.SecurityBits())
		return nil
	},
}
