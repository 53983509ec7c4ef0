// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package trace defines the wire schema for span records.
//
// A [Span] is the unit of traffic between an emitting node and the
// trace agent: one CBOR-encoded Span per UDP datagram, nothing else on
// the wire. [TraceID] correlates spans across nodes (it is derived
// from a content hash, see lib/tracing); [SpanID] identifies a span
// within its trace.
//
// Identifier encoding follows the usual split: JSON uses lowercase hex
// text for human-facing output, CBOR uses raw binary strings to keep
// datagrams compact.
package trace
