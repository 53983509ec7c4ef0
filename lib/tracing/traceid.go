// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"github.com/skein-foundation/skein/lib/content"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

// DeriveTraceID maps a content hash to the trace identifier all spans
// for that content share. The identifier is the leading 16 bytes of
// the hash, read as a big-endian 128-bit integer; the trailing 16
// bytes are discarded. The truncation is part of the wire contract;
// every implementation that derives trace identifiers from content
// hashes truncates the same way, or independently emitted spans stop
// merging into one trace.
//
// The derived identifier must be non-zero. A hash whose leading 16
// bytes are all zero cannot occur for real BLAKE3 output, so the
// condition is treated as a fatal invariant violation: DeriveTraceID
// panics rather than returning an error no caller could meaningfully
// handle.
func DeriveTraceID(hash content.Hash) trace.TraceID {
	var id trace.TraceID
	copy(id[:], hash[:16])
	if id.IsZero() {
		panic("tracing: content hash has all-zero leading 16 bytes")
	}
	return id
}
