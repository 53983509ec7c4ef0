// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"testing"
	"time"

	"github.com/skein-foundation/skein/lib/clock"
	"github.com/skein-foundation/skein/lib/content"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

var spanTestEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testEmitter(queueSize int) (*emitter, *clock.FakeClock) {
	fakeClock := clock.Fake(spanTestEpoch)
	return newEmitter("alice", queueSize, fakeClock), fakeClock
}

func TestNoopSpanIsInert(t *testing.T) {
	var span Span = noopSpan{}

	// None of these may panic, allocate queues, or otherwise matter.
	span.Tag("role", "collator")
	span.End()
	span.End()

	child := span.Child("sub-operation")
	if _, ok := child.(noopSpan); !ok {
		t.Errorf("child of inactive span is %T, want noopSpan", child)
	}
	child.Tag("k", "v")
	child.End()
}

func TestActiveSpanChildSharesTrace(t *testing.T) {
	e, _ := testEmitter(8)
	traceID := DeriveTraceID(content.HashBlob([]byte("candidate")))

	parent := e.startSpan(traceID, trace.SpanID{}, "parent")
	child := parent.Child("child").(*activeSpan)

	if child.traceID != parent.traceID {
		t.Errorf("child trace id %s, want parent's %s", child.traceID, parent.traceID)
	}
	if child.parentSpanID != parent.spanID {
		t.Errorf("child parent link %s, want %s", child.parentSpanID, parent.spanID)
	}
	if child.spanID == parent.spanID {
		t.Error("child must have its own span id")
	}
}

func TestActiveSpanEndEnqueuesRecord(t *testing.T) {
	e, fakeClock := testEmitter(8)
	traceID := DeriveTraceID(content.HashBlob([]byte("candidate")))

	span := e.startSpan(traceID, trace.SpanID{}, "candidate.validate")
	span.Tag("role", "collator")
	fakeClock.Advance(5 * time.Second)
	span.End()

	select {
	case record := <-e.queue:
		if record.TraceID != traceID {
			t.Errorf("TraceID = %s, want %s", record.TraceID, traceID)
		}
		if record.Node != "alice" {
			t.Errorf("Node = %q, want alice", record.Node)
		}
		if record.Operation != "candidate.validate" {
			t.Errorf("Operation = %q, want candidate.validate", record.Operation)
		}
		if record.StartTime != spanTestEpoch.UnixNano() {
			t.Errorf("StartTime = %d, want %d", record.StartTime, spanTestEpoch.UnixNano())
		}
		if record.Duration != int64(5*time.Second) {
			t.Errorf("Duration = %d, want %d", record.Duration, int64(5*time.Second))
		}
		if record.Tags["role"] != "collator" {
			t.Errorf("Tags = %v, want role=collator", record.Tags)
		}
	default:
		t.Fatal("End did not enqueue a record")
	}
}

func TestActiveSpanEndIdempotent(t *testing.T) {
	e, _ := testEmitter(8)
	span := e.startSpan(DeriveTraceID(content.HashBlob([]byte("x"))), trace.SpanID{}, "op")

	span.End()
	span.End()
	span.End()

	if got := len(e.queue); got != 1 {
		t.Errorf("queue holds %d records after repeated End, want 1", got)
	}
}

func TestActiveSpanTagAfterEndIgnored(t *testing.T) {
	e, _ := testEmitter(8)
	span := e.startSpan(DeriveTraceID(content.HashBlob([]byte("x"))), trace.SpanID{}, "op")

	span.End()
	span.Tag("late", "tag")

	record := <-e.queue
	if _, ok := record.Tags["late"]; ok {
		t.Error("tag attached after End leaked into the record")
	}
}

func TestActiveSpanConcurrentTags(t *testing.T) {
	e, _ := testEmitter(8)
	span := e.startSpan(DeriveTraceID(content.HashBlob([]byte("x"))), trace.SpanID{}, "op")

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			span.Tag("a", "1")
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		span.Tag("b", "2")
	}
	<-done
	span.End()

	record := <-e.queue
	if record.Tags["a"] != "1" || record.Tags["b"] != "2" {
		t.Errorf("Tags = %v, want both a and b present", record.Tags)
	}
}
