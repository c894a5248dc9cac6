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

package pqkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pqkey/pkg/provider"
	"github.com/jeremyhahn/go-pqkey/pkg/quantum"
)

func TestNewAndReleaseLibOQS(t *testing.T) {
	tests := []struct {
		algorithm string
		family    Family
	}{
		{quantum.MLKEM512, FamilyKEM},
		{quantum.MLKEM768, FamilyKEM},
		{quantum.MLKEM1024, FamilyKEM},
		{quantum.MLDSA44, FamilySIG},
		{quantum.MLDSA65, FamilySIG},
		{quantum.MLDSA87, FamilySIG},
	}

	ctx := provider.NewContext(nil, nil)
	for _, tt := range tests {
		k, err := New(ctx, tt.algorithm, tt.algorithm, tt.family, "")
		require.NoError(t, err, tt.algorithm)

		assert.Equal(t, tt.family, k.Family())
		assert.Greater(t, k.PublicKeyLen(), 0)
		assert.Greater(t, k.PrivateKeyLen(), 0)
		assert.Greater(t, k.MaxOutputSize(), 0)
		assert.Contains(t, []int{128, 192, 256}, k.SecurityBits())

		Release(k)
	}
}

func TestNewUnknownAlgorithmLibOQS(t *testing.T) {
	_, err := New(nil, "NOT-AN-ALGORITHM", "x", FamilyKEM, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrUnknownAlgorithm)
}

func TestGenerateKeyPairLibOQS(t *testing.T) {
	k, err := New(nil, quantum.MLKEM768, "mlkem768", FamilyKEM, "")
	require.NoError(t, err)
	defer Release(k)

	require.NoError(t, k.GenerateKeyPair())

	assert.Len(t, k.PublicBytes(), k.PublicKeyLen())
	assert.Len(t, k.PrivateBytes(), k.PrivateKeyLen())

	// Generated material is overwhelmingly unlikely to be all zero.
	assert.NotEqual(t, make([]byte, k.PublicKeyLen()), k.PublicBytes())
	assert.NotEqual(t, make([]byte, k.PrivateKeyLen()), k.PrivateBytes())
}

func TestGenerateSignatureKeyPairLibOQS(t *testing.T) {
	k, err := New(nil, quantum.MLDSA65, "mldsa65", FamilySIG, "")
	require.NoError(t, err)
	defer Release(k)

	require.NoError(t, k.GenerateKeyPair())
	assert.Equal(t, 192, k.SecurityBits())
	assert.NotEqual(t, make([]byte, k.PrivateKeyLen()), k.PrivateBytes())
}
