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

package pqkey

import (
	"fmt"
	"strings"
)

// Family identifies the algorithm family of a key container. It is fixed
// at construction and selects which primitive capability (KEM or signature)
// the container delegates to.
type Family int

const (
	// FamilyKEM is the key encapsulation mechanism family
	FamilyKEM Family = 1 + iota
	// FamilySIG is the digital signature family
	FamilySIG
)

// String returns the string representation of the family
func (f Family) String() string {
	switch f {
	case FamilyKEM:
		return "KEM"
	case FamilySIG:
		return "SIG"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is a known family
func (f Family) Valid() bool {
	return f == FamilyKEM || f == FamilySIG
}

// FamilyForAlgorithm infers the family from a liboqs algorithm name.
func FamilyForAlgorithm(algorithm string) (Family, error) {
	switch {
	case strings.HasPrefix(algorithm, "ML-KEM"),
		strings.HasPrefix(algorithm, "Kyber"),
		strings.HasPrefix(algorithm, "FrodoKEM"),
		strings.HasPrefix(algorithm, "BIKE"),
		strings.HasPrefix(algorithm, "HQC"):
		return FamilyKEM, nil
	case strings.HasPrefix(algorithm, "ML-DSA"),
		strings.HasPrefix(algorithm, "Dilithium"),
		strings.HasPrefix(algorithm, "Falcon"),
		strings.HasPrefix(algorithm, "SLH-DSA"),
		strings.HasPrefix(algorithm, "SPHINCS+"),
		strings.HasPrefix(algorithm, "MAYO"),
		strings.HasPrefix(algorithm, "cross-"):
		return FamilySIG, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFamily, algorithm)
	}
}
