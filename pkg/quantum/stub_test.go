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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubNewKEM(t *testing.T) {
	m, err := NewKEM(MLKEM768)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuantumDisabled)
	assert.Nil(t, m)
}

func TestStubNewSignature(t *testing.T) {
	m, err := NewSignature(MLDSA65)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuantumDisabled)
	assert.Nil(t, m)
}

func TestStubEnabled(t *testing.T) {
	assert.False(t, Enabled())
}
