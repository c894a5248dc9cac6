//go:build quantum

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

import (
	"fmt"

	"github.com/open-quantum-safe/liboqs-go/oqs"
)

// sigMechanism wraps a liboqs Signature handle.
type sigMechanism struct {
	signer  *oqs.Signature
	details oqs.SignatureDetails
}

// NewSignature resolves a signature algorithm handle from liboqs.
func NewSignature(algorithm string) (Mechanism, error) {
	signer := oqs.Signature{}
	if err := signer.Init(algorithm, nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownAlgorithm, algorithm, err)
	}
	return &sigMechanism{signer: &signer, details: signer.Details()}, nil
}

func (m *sigMechanism) Algorithm() string {
	return m.details.Name
}

// GenerateKeyPair produces a fresh keypair. The returned slices are plain
// heap memory; the caller is responsible for moving them into secure
// storage and wiping them.
func (m *sigMechanism) GenerateKeyPair() ([]byte, []byte, error) {
	pub, err := m.signer.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("quantum: %s keypair generation: %w", m.details.Name, err)
	}
	return pub, m.signer.ExportSecretKey(), nil
}

func (m *sigMechanism) ClaimedNISTLevel() int {
	return m.details.ClaimedNISTLevel
}

func (m *sigMechanism) PublicKeyLength() int {
	return m.details.LengthPublicKey
}

func (m *sigMechanism) SecretKeyLength() int {
	return m.details.LengthSecretKey
}

// MaxOutputLength for a signature scheme is the maximum signature length.
func (m *sigMechanism) MaxOutputLength() int {
	return m.details.MaxLengthSignature
}

func (m *sigMechanism) Clean() {
	if m.signer != nil {
		m.signer.Clean()
		m.signer = nil
	}
}
