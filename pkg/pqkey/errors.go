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

import "errors"

var (
	// ErrInvalidFamily indicates an algorithm family other than KEM or SIG
	ErrInvalidFamily = errors.New("pqkey: invalid algorithm family")

	// ErrUnknownFamily indicates the family could not be inferred from an algorithm name
	ErrUnknownFamily = errors.New("pqkey: cannot infer family from algorithm name")

	// ErrNilMechanism indicates key construction without a primitive mechanism
	ErrNilMechanism = errors.New("pqkey: nil mechanism")

	// ErrInvalidParamType indicates a key material field whose type tag is
	// not an octet string
	ErrInvalidParamType = errors.New("pqkey: key material field is not an octet string")

	// ErrNotInitialized indicates an operation on a container whose
	// mechanism handle is gone (already released)
	ErrNotInitialized = errors.New("pqkey: key container not initialized or already released")
)
