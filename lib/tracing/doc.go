// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracing implements Skein's process-wide span manager:
// content-correlated trace spans, forwarded to a trace agent as UDP
// datagrams by a background sender that never blocks callers.
//
// # Lifecycle
//
// A [Manager] moves through three states: uninitialized, configured,
// launched. [Manager.Configure] stores a [Config] (pure, no I/O);
// [Manager.Launch] binds a local UDP socket, spawns the background
// sender, and transitions to launched. The transition is one-way:
// there is no shutdown path, the sender runs for the life of the
// process. Launching twice returns [ErrAlreadyLaunched]; launching
// without configuration returns [ErrMissingConfiguration]. A failed
// launch leaves the manager configured, so startup logic may retry or
// proceed without tracing.
//
// Most programs use the package-level default manager:
//
//	config, err := tracing.NewConfig().Named("alice").Agent("127.0.0.1:6831").Build()
//	if err != nil { ... }
//	tracing.Configure(config)
//	if err := tracing.Launch(); err != nil {
//	    // host keeps running; all spans come back inactive
//	}
//
// # Spans
//
// [Manager.SpanForHash] (and the [SpanForCandidate] and [SpanForBlob]
// variants) derives a 128-bit trace identifier from the leading 16
// bytes of a content hash, so every process that touches the same
// content emits spans into the same trace. When the manager is not
// launched the returned [Span] is an inactive no-op with the identical
// method set, so call sites never branch on whether tracing is enabled:
//
//	span := tracing.SpanForCandidate(candidate, "candidate.validate")
//	defer span.End()
//	span.Tag("role", "collator")
//	child := span.Child("fetch.blob")
//	// ...
//	child.End()
//
// Span creation, tagging, and ending are synchronous and non-blocking:
// ending an active span enqueues its record onto a buffered queue and
// returns. If the queue is full the record is dropped; tracing never
// applies backpressure to the traced system. The background sender
// drains the queue, CBOR-encodes each record, and writes one datagram
// per span to the agent address; send failures are logged at debug
// severity and the loop continues. Delivery is strictly best-effort.
package tracing
