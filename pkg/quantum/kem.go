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

// kemMechanism wraps a liboqs KeyEncapsulation handle.
type kemMechanism struct {
	kem     *oqs.KeyEncapsulation
	details oqs.KeyEncapsulationDetails
}

// NewKEM resolves a KEM algorithm handle from liboqs.
func NewKEM(algorithm string) (Mechanism, error) {
	kem := oqs.KeyEncapsulation{}
	if err := kem.Init(algorithm, nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownAlgorithm, algorithm, err)
	}
	return &kemMechanism{kem: &kem, details: kem.Details()}, nil
}

func (m *kemMechanism) Algorithm() string {
	return m.details.Name
}

// GenerateKeyPair produces a fresh keypair. The returned slices are plain
// heap memory; the caller is responsible for moving them into secure
// storage and wiping them.
func (m *kemMechanism) GenerateKeyPair() ([]byte, []byte, error) {
	pub, err := m.kem.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("quantum: %s keypair generation: %w", m.details.Name, err)
	}
	return pub, m.kem.ExportSecretKey(), nil
}

func (m *kemMechanism) ClaimedNISTLevel() int {
	return m.details.ClaimedNISTLevel
}

func (m *kemMechanism) PublicKeyLength() int {
	return m.details.LengthPublicKey
}

func (m *kemMechanism) SecretKeyLength() int {
	return m.details.LengthSecretKey
}

// MaxOutputLength for a KEM is the shared-secret length.
func (m *kemMechanism) MaxOutputLength() int {
	return m.details.LengthSharedSecret
}

func (m *kemMechanism) Clean() {
	if m.kem != nil {
		m.kem.Clean()
		m.kem = nil
	}
}
