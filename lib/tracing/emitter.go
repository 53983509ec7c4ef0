// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"

	"github.com/skein-foundation/skein/lib/clock"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

// emitter is the producer handle shared between the launched manager
// and every active span it creates. It owns the span queue feeding the
// background sender. The emitter never blocks: a full queue means the
// record is dropped and counted, not that the caller waits.
type emitter struct {
	node    string
	clock   clock.Clock
	queue   chan trace.Span
	dropped atomic.Uint64
}

func newEmitter(node string, queueSize int, clk clock.Clock) *emitter {
	return &emitter{
		node:  node,
		clock: clk,
		queue: make(chan trace.Span, queueSize),
	}
}

// startSpan creates a live span bound to the given trace identifier.
// parentSpanID is zero for root spans.
func (e *emitter) startSpan(traceID trace.TraceID, parentSpanID trace.SpanID, operation string) *activeSpan {
	return &activeSpan{
		emitter:      e,
		traceID:      traceID,
		spanID:       e.newSpanID(),
		parentSpanID: parentSpanID,
		operation:    operation,
		start:        e.clock.Now(),
	}
}

// enqueue hands a completed span record to the background sender.
// Non-blocking: when the queue is full the record is dropped and the
// drop counter incremented, because a slow agent must never slow the
// traced system.
func (e *emitter) enqueue(record trace.Span) {
	select {
	case e.queue <- record:
	default:
		e.dropped.Add(1)
	}
}

// droppedCount returns the number of span records dropped because the
// queue was full.
func (e *emitter) droppedCount() uint64 {
	return e.dropped.Load()
}

// newSpanID returns a random non-zero 8-byte span identifier. Reading
// crypto/rand only fails when the operating system's entropy source is
// broken; the clock-based fallback keeps span creation infallible even
// then.
func (e *emitter) newSpanID() trace.SpanID {
	var id trace.SpanID
	if _, err := rand.Read(id[:]); err != nil {
		binary.BigEndian.PutUint64(id[:], uint64(e.clock.Now().UnixNano()))
	}
	if id.IsZero() {
		id[7] = 1
	}
	return id
}
