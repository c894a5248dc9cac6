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

package pqkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pqkey/pkg/quantum"
)

func TestNewWithoutQuantumSupport(t *testing.T) {
	_, err := New(nil, quantum.MLKEM768, "mlkem768", FamilyKEM, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrQuantumDisabled)

	_, err = New(nil, quantum.MLDSA65, "mldsa65", FamilySIG, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrQuantumDisabled)
}
