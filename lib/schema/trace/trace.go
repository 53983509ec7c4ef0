// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"encoding/hex"
	"fmt"

	"github.com/skein-foundation/skein/lib/codec"
)

// TraceID is a 16-byte globally unique trace identifier. All spans
// derived from the same content hash carry the same TraceID, even when
// they were created by independent processes on different machines.
//
// Encoding: JSON uses 32-character lowercase hex text (via
// encoding.TextMarshaler). CBOR uses a 16-byte binary string (via
// cbor.Marshaler), saving 17 bytes per ID compared to hex text.
type TraceID [16]byte

// MarshalText implements encoding.TextMarshaler. Returns a 32-character
// lowercase hex string. A zero-value TraceID marshals as all zeros.
func (id TraceID) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(id[:])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parses a
// 32-character hex string into a TraceID.
func (id *TraceID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = TraceID{}
		return nil
	}
	decoded, err := hex.DecodeString(string(data))
	if err != nil {
		return fmt.Errorf("invalid TraceID hex: %w", err)
	}
	if len(decoded) != 16 {
		return fmt.Errorf("invalid TraceID: expected 16 bytes, got %d", len(decoded))
	}
	copy(id[:], decoded)
	return nil
}

// MarshalCBOR implements cbor.Marshaler. Encodes as a CBOR byte string
// (major type 2) containing the raw 16 bytes.
func (id TraceID) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(id[:])
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decodes a CBOR byte string
// into the 16-byte array.
func (id *TraceID) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := codec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid TraceID CBOR: %w", err)
	}
	if len(raw) != 16 {
		return fmt.Errorf("invalid TraceID: expected 16 bytes, got %d", len(raw))
	}
	copy(id[:], raw)
	return nil
}

// IsZero reports whether this is an uninitialized zero-value TraceID.
func (id TraceID) IsZero() bool { return id == TraceID{} }

// String returns the 32-character lowercase hex representation.
func (id TraceID) String() string { return hex.EncodeToString(id[:]) }

// SpanID is an 8-byte span identifier, unique within a trace.
//
// Encoding: JSON uses 16-character lowercase hex text (via
// encoding.TextMarshaler). CBOR uses an 8-byte binary string (via
// cbor.Marshaler), saving 9 bytes per ID compared to hex text.
type SpanID [8]byte

// MarshalText implements encoding.TextMarshaler. Returns a 16-character
// lowercase hex string. A zero-value SpanID marshals as all zeros.
func (id SpanID) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(id[:])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parses a
// 16-character hex string into a SpanID.
func (id *SpanID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = SpanID{}
		return nil
	}
	decoded, err := hex.DecodeString(string(data))
	if err != nil {
		return fmt.Errorf("invalid SpanID hex: %w", err)
	}
	if len(decoded) != 8 {
		return fmt.Errorf("invalid SpanID: expected 8 bytes, got %d", len(decoded))
	}
	copy(id[:], decoded)
	return nil
}

// MarshalCBOR implements cbor.Marshaler. Encodes as a CBOR byte string
// (major type 2) containing the raw 8 bytes.
func (id SpanID) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(id[:])
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decodes a CBOR byte string
// into the 8-byte array.
func (id *SpanID) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := codec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid SpanID CBOR: %w", err)
	}
	if len(raw) != 8 {
		return fmt.Errorf("invalid SpanID: expected 8 bytes, got %d", len(raw))
	}
	copy(id[:], raw)
	return nil
}

// IsZero reports whether this is an uninitialized zero-value SpanID.
func (id SpanID) IsZero() bool { return id == SpanID{} }

// String returns the 16-character lowercase hex representation.
func (id SpanID) String() string { return hex.EncodeToString(id[:]) }

// Span is one completed unit of work. The background sender encodes
// each Span as a single CBOR datagram and writes it to the agent; the
// agent groups received spans by TraceID to render a trace.
type Span struct {
	// TraceID is the content-derived identifier for the trace this
	// span belongs to.
	TraceID TraceID `json:"trace_id" cbor:"trace_id"`

	// SpanID uniquely identifies this span within its trace.
	SpanID SpanID `json:"span_id" cbor:"span_id"`

	// ParentSpanID identifies this span's parent. Zero for root spans.
	ParentSpanID SpanID `json:"parent_span_id" cbor:"parent_span_id"`

	// Node is the human-readable name of the node that emitted this
	// span, from the tracing configuration.
	Node string `json:"node" cbor:"node"`

	// Operation names the work this span represents, scoped by
	// convention: "candidate.validate", "blob.fetch", "import".
	Operation string `json:"operation" cbor:"operation"`

	// StartTime is when the operation began, as Unix nanoseconds.
	StartTime int64 `json:"start_time" cbor:"start_time"`

	// Duration is how long the operation took, in nanoseconds. Zero
	// when the span was emitted without an explicit end (the agent
	// renders such spans as instantaneous).
	Duration int64 `json:"duration" cbor:"duration,omitempty"`

	// Tags are operation-specific string annotations ("role":
	// "collator", "peer": "…"). Purely observational: nothing in the
	// emitting process ever reads them back.
	Tags map[string]string `json:"tags,omitempty" cbor:"tags,omitempty"`
}
