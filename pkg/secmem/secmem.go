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

// Package secmem provides hardened buffers for cryptographic key material.
// Buffers are backed by memguard: the pages are locked against swapping,
// zero-filled on allocation, guarded by canaries, and wiped before being
// returned to the system. Destroy is idempotent and safe on a nil buffer,
// so the wipe step runs on every exit path without bookkeeping.
package secmem

import (
	"errors"
	"fmt"

	"github.com/awnumar/memguard"
)

// ErrInvalidSize indicates a negative buffer size was requested
var ErrInvalidSize = errors.New("secmem: invalid buffer size")

// Buffer is a fixed-size region of locked, wipe-on-free memory.
// A zero-length Buffer is valid and holds no protected pages.
type Buffer struct {
	inner *memguard.LockedBuffer
}

// Alloc returns a zero-filled secure buffer of size n. memguard treats
// allocation failure as fatal and panics; the panic is recovered here and
// surfaced as an error so callers keep the usual error-return contract.
func Alloc(n int) (b *Buffer, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n == 0 {
		return &Buffer{}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("secmem: secure allocation of %d bytes failed: %v", n, r)
		}
	}()
	return &Buffer{inner: memguard.NewBuffer(n)}, nil
}

// Import allocates a secure buffer sized exactly to data and copies data
// into it. The caller retains ownership of data; wipe it separately if it
// holds secrets.
func Import(data []byte) (*Buffer, error) {
	b, err := Alloc(len(data))
	if err != nil {
		return nil, err
	}
	copy(b.Bytes(), data)
	return b, nil
}

// Bytes returns the underlying memory. The slice aliases the protected
// pages and must not be retained past Destroy.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.inner == nil {
		return nil
	}
	return b.inner.Bytes()
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	if b == nil || b.inner == nil {
		return 0
	}
	return b.inner.Size()
}

// Destroy wipes the buffer contents and releases the pages. It is a no-op
// on a nil, empty, or already-destroyed buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.inner == nil {
		return
	}
	b.inner.Destroy()
	b.inner = nil
}

// Wipe overwrites a plain byte slice with zeros. Used for transient copies
// of secrets that live outside secure buffers.
func Wipe(data []byte) {
	memguard.WipeBytes(data)
}
