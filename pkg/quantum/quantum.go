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

// Package quantum exposes the post-quantum primitives consumed by the key
// container as two narrow capability constructors, NewKEM and NewSignature.
// Both return the family-agnostic Mechanism interface so that everything
// past construction runs the same code path for either family.
//
// The real implementations wrap liboqs and are compiled in with the
// "quantum" build tag; without it the constructors return
// ErrQuantumDisabled.
package quantum

import "errors"

// OQS algorithm identifiers accepted by NewKEM.
// ML-KEM is the NIST FIPS 203 standardization of Kyber.
const (
	MLKEM512  = "ML-KEM-512"
	MLKEM768  = "ML-KEM-768"
	MLKEM1024 = "ML-KEM-1024"
)

// OQS algorithm identifiers accepted by NewSignature.
// ML-DSA is the NIST FIPS 204 standardization of Dilithium.
const (
	MLDSA44 = "ML-DSA-44"
	MLDSA65 = "ML-DSA-65"
	MLDSA87 = "ML-DSA-87"
)

var (
	// ErrQuantumDisabled indicates the binary was built without liboqs support
	ErrQuantumDisabled = errors.New("quantum: support not enabled: rebuild with the quantum build tag")

	// ErrUnknownAlgorithm indicates the primitive library does not recognize the algorithm name
	ErrUnknownAlgorithm = errors.New("quantum: unknown algorithm")
)

// Mechanism is one resolved algorithm handle from the primitive library.
// The handle owns native library state; Clean must be called exactly once
// when the holder is done with it.
//
// MaxOutputLength is the family-specific output ceiling: the shared-secret
// length for a KEM, the maximum signature length for a signature scheme.
type Mechanism interface {
	Algorithm() string
	GenerateKeyPair() (pub, priv []byte, err error)
	ClaimedNISTLevel() int
	PublicKeyLength() int
	SecretKeyLength() int
	MaxOutputLength() int
	Clean()
}

// KEMAlgorithms returns the KEM algorithm names this package knows about.
func KEMAlgorithms() []string {
	return []string{MLKEM512, MLKEM768, MLKEM1024}
}

// SignatureAlgorithms returns the signature algorithm names this package
// knows about.
func SignatureAlgorithms() []string {
	return []string{MLDSA44, MLDSA65, MLDSA87}
}
