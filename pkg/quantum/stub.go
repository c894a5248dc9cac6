//go:build !quantum

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

package quantum

// NewKEM is a stub when quantum support is not enabled.
func NewKEM(algorithm string) (Mechanism, error) {
	return nil, ErrQuantumDisabled
}

// NewSignature is a stub when quantum support is not enabled.
func NewSignature(algorithm string) (Mechanism, error) {
	return nil, ErrQuantumDisabled
}

// Enabled reports whether liboqs support is compiled in.
func Enabled() bool {
	return false
}
