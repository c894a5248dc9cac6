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

	"github.com/jeremyhahn/go-pqkey/pkg/quantum"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported post-quantum algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("KEM:")
		for _, name := range quantum.KEMAlgorithms() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("SIG:")
		for _, name := range quantum.SignatureAlgorithms() {
			fmt.Printf("  %s\n", name)
		}
		if !quantum.Enabled() {
			fmt.Println("\nquantum support not compiled in; info and keygen are unavailable")
		}
	},
}
