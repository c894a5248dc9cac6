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

// Package provider holds the opaque context a host framework hands to the
// key container at bootstrap. The container never inspects it; it only
// carries the pair back to the framework's own callbacks.
package provider

// Context pairs the host framework's library context with its core
// handle. Both are opaque here.
type Context struct {
	libCtx     any
	coreHandle any
}

// NewContext allocates a provider context around the framework's library
// context and core handle.
func NewContext(libCtx, coreHandle any) *Context {
	return &Context{
		libCtx:     libCtx,
		coreHandle: coreHandle,
	}
}

// LibraryContext returns the framework's library context.
func (c *Context) LibraryContext() any {
	if c == nil {
		return nil
	}
	return c.libCtx
}

// CoreHandle returns the framework's core handle.
func (c *Context) CoreHandle() any {
	if c == nil {
		return nil
	}
	return c.coreHandle
}
