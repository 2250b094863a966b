// Package painttypes provides the shared vocabulary types used across the
// GoGPU rendering ecosystem.
//
// # Overview
//
// painttypes is a leaf library: renderers and text stacks import it, it
// imports no renderer. It defines the types that independent pipeline
// components need to agree on without sharing an allocator or copying data:
//
//   - Blob / WeakBlob: shared immutable resources (font files, pixel
//     buffers) with O(1) identity-based equality
//   - Font, ImageData: resource wrappers built on Blob
//   - Brush, Gradient, ColorStop: paint descriptions
//   - Stroke, Fill, Style: shape styling
//   - BlendMode, Mix, Compose: layer compositing
//
// # Resource sharing
//
// Large resources are wrapped in a [Blob], which pairs the payload with a
// process-unique [BlobID]. Components compare and cache blobs by ID in O(1)
// rather than hashing megabytes of payload:
//
//	data, _ := os.ReadFile("font.ttf")
//	blob := painttypes.NewBlob(data)
//	font := painttypes.NewFont(blob, 0)
//
//	// Cheap to share: Clone never copies the payload.
//	other := blob.Clone()
//	defer other.Release()
//
// Caches that must not keep a resource alive hold a [WeakBlob] and upgrade
// it on access:
//
//	weak := blob.Downgrade()
//	if strong, ok := weak.Upgrade(); ok {
//	    defer strong.Release()
//	    // resource still alive
//	}
//
// # Identity, not content
//
// Two blobs constructed independently from identical bytes are distinct:
// equality and map keys are derived from the BlobID, never from payload
// content. This makes "have I processed this resource already?" an O(1)
// question regardless of resource size.
//
// # Logging
//
// painttypes produces no log output by default. Call [SetLogger] to enable
// structured logging via log/slog.
package painttypes
