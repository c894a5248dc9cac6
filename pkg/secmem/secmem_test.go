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

package secmem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocZeroFilled(t *testing.T) {
	b, err := Alloc(64)
	require.NoError(t, err)
	defer b.Destroy()

	assert.Equal(t, 64, b.Len())
	assert.True(t, bytes.Equal(b.Bytes(), make([]byte, 64)))
}

func TestAllocZeroLength(t *testing.T) {
	b, err := Alloc(0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Bytes())
	b.Destroy()
}

func TestAllocNegative(t *testing.T) {
	b, err := Alloc(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, b)
}

func TestImportCopies(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	b, err := Import(src)
	require.NoError(t, err)
	defer b.Destroy()

	assert.Equal(t, src, b.Bytes())

	// Mutating the source must not reach the secure copy.
	src[0] = 0xff
	assert.Equal(t, byte(1), b.Bytes()[0])
}

func TestDestroyIdempotent(t *testing.T) {
	b, err := Alloc(16)
	require.NoError(t, err)

	b.Destroy()
	b.Destroy()
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Bytes())
}

func TestDestroyNil(t *testing.T) {
	var b *Buffer
	b.Destroy()
	assert.Equal(t, 0, b.Len())
}

func TestWipe(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	Wipe(data)
	assert.Equal(t, make([]byte, 4), data)

	Wipe(nil)
}
