package painttypes

import (
	"fmt"
	"sync/atomic"
)

// BlobID uniquely identifies a shared resource within the current process.
//
// IDs are minted by a process-wide counter and are never reused or reset for
// the life of the process. They are comparable, totally ordered, and usable
// directly as map keys, which is how caches are expected to key on blobs.
//
// A BlobID carries no meaning outside the process that created it: it must
// never be persisted or sent over the wire.
type BlobID uint64

// blobIDCounter mints BlobIDs. Package-level so that every Blob in the
// process draws from the same ID space. Never reset.
var blobIDCounter atomic.Uint64

// nextBlobID returns a BlobID never returned before in this process.
// Safe for concurrent use; a single atomic increment, no locking.
func nextBlobID() BlobID {
	id := blobIDCounter.Add(1)
	if id == 0 {
		// The counter wrapped. Every equality and caching guarantee in this
		// package assumes IDs are unique, so reuse must never be silent.
		panic("painttypes: BlobID space exhausted")
	}
	return BlobID(id)
}

// blobShared is the reference-counted allocation behind one or more blob
// handles. The payload is immutable for its entire life; only the strong
// counter needs atomic discipline.
type blobShared[T any] struct {
	// strong counts live Blob handles. When it reaches zero the payload is
	// dropped and can never be revived: WeakBlob.Upgrade only increments
	// the counter while it is still nonzero.
	strong atomic.Int64
	data   []T
}

// Blob is a shared immutable resource with a process-unique identity.
//
// A Blob pairs a payload (font bytes, pixel data, any element slice) with a
// [BlobID]. Cloning shares the payload and preserves the ID at O(1) cost;
// constructing a new Blob always mints a fresh ID, even from identical
// bytes. Equality and map keys derive from the ID, never from payload
// content, so comparing blobs is O(1) regardless of payload size.
//
// Ownership is explicit: every Blob obtained from [NewBlob], [Blob.Clone]
// or a successful [WeakBlob.Upgrade] must be balanced by exactly one call
// to [Blob.Release]. Releasing the last handle drops the payload; this
// transition is irreversible.
//
// All Blob operations are safe for concurrent use from any number of
// goroutines and never block.
type Blob[T any] struct {
	shared *blobShared[T]
	id     BlobID
}

// NewBlob creates a blob that takes ownership of data and mints a fresh
// identity. The payload is never copied: callers hand over the slice and
// must not mutate it afterwards. This also covers data that is already
// shared with other parts of the process (for example a memory-mapped
// region); the blob wraps the same backing store without an element-wise
// copy.
//
// A nil or empty slice is valid and yields an empty blob with its own
// unique identity.
//
// Two calls with byte-identical payloads produce blobs that are NOT equal:
//
//	a := painttypes.NewBlob([]byte{1, 2, 3})
//	b := painttypes.NewBlob([]byte{1, 2, 3})
//	a.Equal(b) // false: distinct identities
func NewBlob[T any](data []T) Blob[T] {
	s := &blobShared[T]{data: data}
	s.strong.Store(1)
	return Blob[T]{shared: s, id: nextBlobID()}
}

// NewBlobCopy creates a blob from a copy of data, for callers that need to
// keep mutating their slice after construction. Mints a fresh identity.
func NewBlobCopy[T any](data []T) Blob[T] {
	owned := make([]T, len(data))
	copy(owned, data)
	return NewBlob(owned)
}

// deref returns the shared allocation, rejecting the zero Blob.
func (b Blob[T]) deref() *blobShared[T] {
	if b.shared == nil {
		panic("painttypes: use of zero Blob")
	}
	return b.shared
}

// ID returns the process-unique identity of the blob. The ID is valid as a
// cache or map key for the life of the process, including after the payload
// has been released.
func (b Blob[T]) ID() BlobID {
	b.deref()
	return b.id
}

// Data returns a read-only view of the payload. The returned slice must not
// be mutated; it remains valid for as long as the caller holds a live
// handle. Panics if called on a released blob.
func (b Blob[T]) Data() []T {
	s := b.deref()
	if s.strong.Load() <= 0 {
		panic("painttypes: access to released Blob")
	}
	return s.data
}

// Len returns the number of elements in the payload.
func (b Blob[T]) Len() int {
	return len(b.Data())
}

// IsEmpty reports whether the payload has no elements.
func (b Blob[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Clone returns a new handle sharing the payload and identity of b. O(1):
// the payload is never copied and no new identity is allocated. The clone
// must be balanced by its own [Blob.Release].
func (b Blob[T]) Clone() Blob[T] {
	s := b.deref()
	if s.strong.Add(1) <= 1 {
		panic("painttypes: Clone of released Blob")
	}
	return b
}

// Release drops this handle's share of the payload. When the last handle is
// released the payload is freed exactly once; weak handles observing it
// will fail to upgrade from that point on. Releasing more handles than were
// acquired panics.
func (b Blob[T]) Release() {
	s := b.deref()
	n := s.strong.Add(-1)
	switch {
	case n == 0:
		// Last owner. Drop the payload so the GC can reclaim it even while
		// WeakBlobs still reference this allocation.
		s.data = nil
	case n < 0:
		panic("painttypes: Blob released more times than acquired")
	}
}

// Downgrade returns a weak handle carrying the same identity. O(1); does
// not extend the payload's lifetime and never allocates a new identity.
func (b Blob[T]) Downgrade() WeakBlob[T] {
	return WeakBlob[T]{shared: b.deref(), id: b.id}
}

// Equal reports whether two blobs refer to the same resource. Equality is
// identity-based: payload content is never inspected, so byte-identical
// blobs constructed independently are not equal.
func (b Blob[T]) Equal(other Blob[T]) bool {
	b.deref()
	return b.id == other.id
}

// String returns a debug representation showing only the identity, never
// the payload.
func (b Blob[T]) String() string {
	return fmt.Sprintf("Blob(%d)", b.id)
}

// WeakBlob is a non-owning observer of a [Blob].
//
// A WeakBlob carries the blob's identity but does not keep the payload
// alive: it is the right handle for cache bookkeeping that must not pin
// resources in memory. The payload is reachable only through a successful
// [WeakBlob.Upgrade].
//
// WeakBlob values may be freely copied; copies observe the same resource.
// Equality is identity-based and keeps holding after the payload has been
// released: a weak handle stays equal to the strong handle it was
// downgraded from for its entire life.
type WeakBlob[T any] struct {
	shared *blobShared[T]
	id     BlobID
}

// ID returns the identity of the observed resource. Valid for the life of
// the process, whether or not the payload is still alive.
func (w WeakBlob[T]) ID() BlobID {
	if w.shared == nil {
		panic("painttypes: use of zero WeakBlob")
	}
	return w.id
}

// Upgrade attempts to produce a strong handle sharing the observed payload.
//
// It succeeds while at least one strong handle is still live anywhere in
// the process, returning a blob that must be balanced by its own
// [Blob.Release]. Once the last strong handle has been released, Upgrade
// returns false, permanently: a released resource never comes back.
//
// A false result is an expected outcome, not an error; callers branch on it
// routinely (for example to evict a dead cache entry and re-fetch).
//
// Upgrade is a lock-free try-acquire on the shared counter: it increments
// the strong count only if the count is still nonzero. It is safe to race
// with concurrent Clone and Release; a successful upgrade yields a handle
// valid for as long as the caller holds it.
func (w WeakBlob[T]) Upgrade() (Blob[T], bool) {
	s := w.shared
	if s == nil {
		panic("painttypes: use of zero WeakBlob")
	}
	for {
		n := s.strong.Load()
		if n <= 0 {
			return Blob[T]{}, false
		}
		if s.strong.CompareAndSwap(n, n+1) {
			return Blob[T]{shared: s, id: w.id}, true
		}
	}
}

// Equal reports whether two weak handles observe the same resource.
// Identity-based; remains true after the payload has been released.
func (w WeakBlob[T]) Equal(other WeakBlob[T]) bool {
	return w.id == other.id && w.shared != nil
}

// EqualBlob reports whether the weak handle observes the same resource as
// the given strong handle. A weak handle is always equal to the blob it was
// downgraded from and to all of that blob's clones.
func (w WeakBlob[T]) EqualBlob(b Blob[T]) bool {
	return w.shared != nil && w.id == b.id
}

// String returns a debug representation showing only the identity.
func (w WeakBlob[T]) String() string {
	return fmt.Sprintf("WeakBlob(%d)", w.id)
}
