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

// Package pqkey implements a reference-counted container for post-quantum
// key material. One container type serves both algorithm families (KEM and
// signature); the family-specific primitive is selected once at
// construction behind the quantum.Mechanism interface, so every operation
// past construction runs the same code path for either family.
//
// Key material lives in secmem buffers: locked pages, zeroed on
// allocation, wiped before release. Cloning a logical key means acquiring
// another reference to the same container, never duplicating buffers. The
// container is destroyed exactly when the count drops from one to zero.
//
// Concurrency: only the reference count is synchronized. All other fields
// are effectively immutable once the constructing goroutine publishes the
// container; mutating operations (AllocateKeyMaterial, ImportKeyMaterial,
// GenerateKeyPair) require caller-side exclusivity.
package pqkey

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-pqkey/pkg/logging"
	"github.com/jeremyhahn/go-pqkey/pkg/metrics"
	"github.com/jeremyhahn/go-pqkey/pkg/provider"
	"github.com/jeremyhahn/go-pqkey/pkg/quantum"
	"github.com/jeremyhahn/go-pqkey/pkg/secmem"
)

// logger, when set, receives a debug trace of every reference count
// transition. Off by default.
var logger atomic.Pointer[logging.Logger]

// SetLogger installs a logger for the reference count trace. Pass nil to
// disable tracing again.
func SetLogger(l *logging.Logger) {
	logger.Store(l)
}

// Key is a shared, reference-counted container for one post-quantum key.
// Construct with New or NewWithMechanism, share with AcquireRef, and drop
// with Release. All exported methods other than AcquireRef assume the
// caller holds a live reference.
type Key struct {
	id        uuid.UUID
	ctx       *provider.Context
	family    Family
	algorithm string
	tlsName   string
	propq     string

	mech quantum.Mechanism

	pub     *secmem.Buffer
	priv    *secmem.Buffer
	pubLen  int
	privLen int

	refs        atomic.Int32
	destroyHook func()
}

// New constructs a key container for algorithm, resolving the
// family-specific primitive handle and recording its native key lengths.
// The returned container holds one reference. No key material is
// allocated yet; attach it with AllocateKeyMaterial, ImportKeyMaterial,
// or GenerateKeyPair. On failure nothing is leaked: the handle is the
// only resource acquired and it is only kept on success.
func New(ctx *provider.Context, algorithm, tlsName string, family Family, propq string) (*Key, error) {
	var (
		mech quantum.Mechanism
		err  error
	)
	switch family {
	case FamilyKEM:
		mech, err = quantum.NewKEM(algorithm)
	case FamilySIG:
		mech, err = quantum.NewSignature(algorithm)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFamily, int(family))
	}
	if err != nil {
		return nil, fmt.Errorf("pqkey: resolving %s handle for %q: %w", family, algorithm, err)
	}
	return newKey(ctx, mech, tlsName, family, propq), nil
}

// NewWithMechanism constructs a key container around an already-resolved
// mechanism. The container takes exclusive ownership of mech and will
// Clean it at destruction. Intended for tests and for callers supplying
// an alternative primitive provider.
func NewWithMechanism(ctx *provider.Context, mech quantum.Mechanism, tlsName string, family Family, propq string) (*Key, error) {
	if !family.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFamily, int(family))
	}
	if mech == nil {
		return nil, ErrNilMechanism
	}
	return newKey(ctx, mech, tlsName, family, propq), nil
}

func newKey(ctx *provider.Context, mech quantum.Mechanism, tlsName string, family Family, propq string) *Key {
	k := &Key{
		id:        uuid.New(),
		ctx:       ctx,
		family:    family,
		algorithm: mech.Algorithm(),
		tlsName:   tlsName,
		propq:     propq,
		mech:      mech,
		pubLen:    mech.PublicKeyLength(),
		privLen:   mech.SecretKeyLength(),
	}
	k.refs.Store(1)
	metrics.KeysActive.WithLabelValues(family.String()).Inc()
	k.trace(1)
	return k
}

// AcquireRef adds an owner to the container. It reports whether the
// resulting count is greater than one, which always holds for a caller
// with a valid reference; false means the count was corrupted.
func (k *Key) AcquireRef() bool {
	n := k.refs.Add(1)
	k.trace(n)
	return n > 1
}

// Release drops one reference. A nil container is a no-op. When the last
// reference is dropped the container is destroyed: both buffers are wiped
// and freed, the mechanism handle is cleaned, and the destroy hook runs.
// Releasing past zero is a guarded no-op, never a second free.
//
// Go's sequentially consistent atomics subsume the relaxed-decrement with
// acquire-fence-on-zero protocol the destruction ordering needs: all
// writes made by other releasing goroutines are visible before the final
// frees run.
func Release(k *Key) {
	if k == nil {
		return
	}
	n := k.refs.Add(-1)
	k.trace(n)
	if n > 0 {
		return
	}
	if n < 0 {
		if l := logger.Load(); l != nil {
			l.Warnf("pqkey: release after zero on %s (%s)", k.id, k.algorithm)
		}
		return
	}
	k.destroy()
}

// destroy runs exactly once, on the 1->0 transition.
func (k *Key) destroy() {
	k.priv.Destroy()
	k.pub.Destroy()
	k.priv, k.pub = nil, nil
	if k.mech != nil {
		k.mech.Clean()
		k.mech = nil
	}
	metrics.KeysActive.WithLabelValues(k.family.String()).Dec()
	metrics.KeyDestructions.WithLabelValues(k.family.String()).Inc()
	if k.destroyHook != nil {
		k.destroyHook()
	}
}

// AllocateKeyMaterial allocates zero-filled secure buffers for both keys,
// sized to the algorithm's native lengths. Buffers that already exist are
// left alone. If the second allocation fails the first stays attached, so
// the caller can retry or Release the whole container.
func (k *Key) AllocateKeyMaterial() error {
	if k.priv == nil {
		buf, err := secmem.Alloc(k.privLen)
		if err != nil {
			return fmt.Errorf("pqkey: allocating private key material: %w", err)
		}
		k.priv = buf
	}
	if k.pub == nil {
		buf, err := secmem.Alloc(k.pubLen)
		if err != nil {
			return fmt.Errorf("pqkey: allocating public key material: %w", err)
		}
		k.pub = buf
	}
	return nil
}

// ImportKeyMaterial replaces key material from raw octet-string fields.
// The private field is consumed only when includePrivate is set; fields
// absent from params are left untouched, and an empty params slice
// succeeds. A field with any type tag other than octet string fails the
// whole call before either buffer is mutated. Each imported field gets a
// fresh secure buffer sized exactly to the incoming bytes and the
// recorded length is updated to match, even when that differs from the
// algorithm's native length; validate against the primitive's
// expectations before generating or signing with such a key.
func (k *Key) ImportKeyMaterial(params []KeyParam, includePrivate bool) error {
	var privParam *KeyParam
	if includePrivate {
		privParam = locateParam(params, ParamPrivateKey)
	}
	pubParam := locateParam(params, ParamPublicKey)

	// Validate every present field before mutating anything.
	for _, p := range []*KeyParam{privParam, pubParam} {
		if p != nil && p.Type != ParamTypeOctetString {
			return fmt.Errorf("%w: field %q", ErrInvalidParamType, p.Name)
		}
	}

	if privParam != nil {
		if err := k.setPrivate(privParam.Data); err != nil {
			return fmt.Errorf("pqkey: importing private key: %w", err)
		}
	}
	if pubParam != nil {
		if err := k.setPublic(pubParam.Data); err != nil {
			return fmt.Errorf("pqkey: importing public key: %w", err)
		}
	}
	return nil
}

// setPrivate installs data as the private key. The replacement buffer is
// allocated before the old one is wiped and freed, so an allocation
// failure leaves the previous material intact. When the incoming length
// matches the current buffer the bytes are copied in place instead of
// reallocating; the buffer is already secure memory and existing views
// stay valid.
func (k *Key) setPrivate(data []byte) error {
	if k.priv != nil && k.priv.Len() == len(data) {
		copy(k.priv.Bytes(), data)
	} else {
		buf, err := secmem.Import(data)
		if err != nil {
			return err
		}
		k.priv.Destroy()
		k.priv = buf
	}
	k.privLen = len(data)
	return nil
}

// setPublic installs data as the public key. Same replacement and
// in-place copy discipline as setPrivate.
func (k *Key) setPublic(data []byte) error {
	if k.pub != nil && k.pub.Len() == len(data) {
		copy(k.pub.Bytes(), data)
	} else {
		buf, err := secmem.Import(data)
		if err != nil {
			return err
		}
		k.pub.Destroy()
		k.pub = buf
	}
	k.pubLen = len(data)
	return nil
}

// GenerateKeyPair generates a fresh keypair into the container's secure
// buffers, allocating them first if either is missing. The primitive's
// status is surfaced verbatim (wrapped, never reinterpreted). Buffers
// whose length no longer matches the generated material, for example
// after a permissive import, are reallocated to fit. The private half is
// installed before the public half, so an allocation failure midway can
// leave old material in both buffers or a fully new private key, but
// never a new public key paired with a stale private key.
func (k *Key) GenerateKeyPair() error {
	if k.mech == nil {
		return ErrNotInitialized
	}
	if k.priv == nil || k.pub == nil {
		if err := k.AllocateKeyMaterial(); err != nil {
			return err
		}
	}

	pub, priv, err := k.mech.GenerateKeyPair()
	metrics.RecordGeneration(k.algorithm, err)
	if err != nil {
		return fmt.Errorf("pqkey: keypair generation: %w", err)
	}
	defer secmem.Wipe(priv)

	if err := k.setPrivate(priv); err != nil {
		return fmt.Errorf("pqkey: storing generated private key: %w", err)
	}
	if err := k.setPublic(pub); err != nil {
		return fmt.Errorf("pqkey: storing generated public key: %w", err)
	}
	return nil
}

// SecurityBits maps the algorithm's claimed NIST security category (1-5)
// to the conventional classical-equivalent bit strength: category 1 is
// 128, category 3 is 192, category 5 is 256. The formula is shared by
// both families.
func (k *Key) SecurityBits() int {
	if k.mech == nil {
		return 0
	}
	return 128 + (k.mech.ClaimedNISTLevel()-1)/2*64
}

// MaxOutputSize returns the output ceiling callers should size buffers
// for: the shared-secret length for a KEM key, the maximum signature
// length for a signature key. Purely descriptive.
func (k *Key) MaxOutputSize() int {
	if k.mech == nil {
		return 0
	}
	return k.mech.MaxOutputLength()
}

// ID returns the container's identifier, used in traces and metrics
// labels only.
func (k *Key) ID() uuid.UUID {
	return k.id
}

// Context returns the provider context the container was created under.
func (k *Key) Context() *provider.Context {
	return k.ctx
}

// Family returns the container's algorithm family.
func (k *Key) Family() Family {
	return k.family
}

// Algorithm returns the resolved algorithm name.
func (k *Key) Algorithm() string {
	return k.algorithm
}

// TLSName returns the TLS identity name supplied at construction.
func (k *Key) TLSName() string {
	return k.tlsName
}

// PropQ returns the optional property query string, empty when absent.
func (k *Key) PropQ() string {
	return k.propq
}

// PublicKeyLen returns the recorded public key length in bytes.
func (k *Key) PublicKeyLen() int {
	return k.pubLen
}

// PrivateKeyLen returns the recorded private key length in bytes.
func (k *Key) PrivateKeyLen() int {
	return k.privLen
}

// PublicBytes returns a view of the public key buffer, nil when
// unallocated. The slice aliases secure memory; do not retain it past
// Release.
func (k *Key) PublicBytes() []byte {
	return k.pub.Bytes()
}

// PrivateBytes returns a view of the private key buffer, nil when
// unallocated. The slice aliases secure memory; do not retain it past
// Release.
func (k *Key) PrivateBytes() []byte {
	return k.priv.Bytes()
}

// HasPublicKey reports whether a public key buffer is attached.
func (k *Key) HasPublicKey() bool {
	return k.pub != nil
}

// HasPrivateKey reports whether a private key buffer is attached.
func (k *Key) HasPrivateKey() bool {
	return k.priv != nil
}

// SetDestroyHook installs a callback that runs at the end of the
// destruction sequence. Set it before the container is shared.
func (k *Key) SetDestroyHook(hook func()) {
	k.destroyHook = hook
}

func (k *Key) trace(refs int32) {
	if l := logger.Load(); l != nil {
		l.Debugf("pqkey: %s refs=%d alg=%s", k.id, refs, k.algorithm)
	}
}
