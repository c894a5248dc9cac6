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

// ParamType tags the wire type of an imported key material field. Key
// bytes are untyped octet strings; any external encoding is handled
// before they reach this package.
type ParamType int

const (
	// ParamTypeOctetString marks a raw byte string field
	ParamTypeOctetString ParamType = 1 + iota
	// ParamTypeUTF8String marks a text field; not valid for key material
	ParamTypeUTF8String
)

// Field names recognized by ImportKeyMaterial.
const (
	ParamPrivateKey = "priv"
	ParamPublicKey  = "pub"
)

// KeyParam is one named key material field presented for import.
type KeyParam struct {
	Name string
	Type ParamType
	Data []byte
}

// locateParam returns the first param named name, or nil when absent.
func locateParam(params []KeyParam, name string) *KeyParam {
	for i := range params {
		if params[i].Name == name {
			return &params[i]
		}
	}
	return nil
}
