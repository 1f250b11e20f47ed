package domain

import "bytes"

// Blob is an opaque payload owned by the caller. The store persists Data
// byte-for-byte and never interprets it; SchemaVersion lets callers evolve
// their own encoding.
type Blob struct {
	Data          []byte `json:"data,omitempty"`
	SchemaVersion int    `json:"schema_version"`
}

// NewBlob wraps data with the given schema version
func NewBlob(version int, data []byte) Blob {
	return Blob{Data: data, SchemaVersion: version}
}

// Equal reports whether two blobs carry the same version and bytes
func (b Blob) Equal(other Blob) bool {
	return b.SchemaVersion == other.SchemaVersion && bytes.Equal(b.Data, other.Data)
}

// IsEmpty reports whether the blob carries no data
func (b Blob) IsEmpty() bool {
	return len(b.Data) == 0
}
