package painttypes

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Serialization round-trips the value, not the identity. A BlobID is only
// meaningful inside the process that minted it, so encoding writes the
// payload content and decoding always mints a fresh identity: the decoded
// blob is never equal to the blob that was encoded, even though their
// payloads compare equal element-wise.

// MarshalJSON encodes the payload content. For byte blobs this produces a
// base64 string, matching encoding/json's []byte convention. The identity
// is deliberately not encoded.
func (b Blob[T]) MarshalJSON() ([]byte, error) {
	if b.shared == nil {
		return nil, errors.New("painttypes: marshal of zero Blob")
	}
	if b.shared.strong.Load() <= 0 {
		return nil, errors.New("painttypes: marshal of released Blob")
	}
	return json.Marshal(b.shared.data)
}

// UnmarshalJSON decodes payload content and mints a fresh identity. The
// resulting blob owns one strong reference and must be balanced by
// [Blob.Release], like any other newly constructed blob.
func (b *Blob[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("painttypes: unmarshal Blob: %w", err)
	}
	*b = NewBlob(elems)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler for byte blobs: the
// result is a copy of the payload. Blobs with non-byte elements have no
// canonical binary form and return an error; use JSON for those.
func (b Blob[T]) MarshalBinary() ([]byte, error) {
	if b.shared == nil {
		return nil, errors.New("painttypes: marshal of zero Blob")
	}
	if b.shared.strong.Load() <= 0 {
		return nil, errors.New("painttypes: marshal of released Blob")
	}
	payload, ok := any(b.shared.data).([]byte)
	if !ok {
		return nil, fmt.Errorf("painttypes: binary marshal of Blob with %T payload", b.shared.data)
	}
	return append([]byte(nil), payload...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for byte blobs,
// copying data into a fresh resource with its own identity.
func (b *Blob[T]) UnmarshalBinary(data []byte) error {
	elems, ok := any(append([]byte(nil), data...)).([]T)
	if !ok {
		var zero []T
		return fmt.Errorf("painttypes: binary unmarshal into Blob with %T payload", zero)
	}
	*b = NewBlob(elems)
	return nil
}
