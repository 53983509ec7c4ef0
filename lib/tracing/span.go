// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"sync"
	"time"

	"github.com/skein-foundation/skein/lib/schema/trace"
)

// Span is a handle on one unit of traced work. It has exactly two
// implementations: the live span returned by a launched manager, and
// the inactive no-op returned everywhere else. Both expose the same
// methods, so call sites instrument unconditionally; disabling
// tracing changes nothing but the absence of datagrams.
type Span interface {
	// Child derives a descendant span for a sub-operation. The child
	// preserves the parent's variant: children of inactive spans are
	// inactive, children of active spans share the parent's trace
	// identifier and record the parent link.
	Child(operation string) Span

	// Tag attaches a string key/value annotation. Tags are purely
	// observational: they are visible in the agent UI and nowhere
	// else. On an inactive span Tag does nothing.
	Tag(key, value string)

	// End completes the span: it stamps the duration and hands the
	// record to the background sender. End is idempotent; calls after
	// the first are no-ops, as is any Tag after End. On an inactive
	// span End does nothing.
	End()
}

// noopSpan is the inactive variant. Zero-size, allocation-free, and
// safe to use from any number of goroutines.
type noopSpan struct{}

func (noopSpan) Child(string) Span  { return noopSpan{} }
func (noopSpan) Tag(string, string) {}
func (noopSpan) End()               {}

// activeSpan is the live variant, backed by the launched manager's
// emitter. The mutex guards tags and the ended flag; Child and the
// identifier fields are immutable after construction.
type activeSpan struct {
	emitter      *emitter
	traceID      trace.TraceID
	spanID       trace.SpanID
	parentSpanID trace.SpanID
	operation    string
	start        time.Time

	mu    sync.Mutex
	tags  map[string]string
	ended bool
}

func (s *activeSpan) Child(operation string) Span {
	return s.emitter.startSpan(s.traceID, s.spanID, operation)
}

func (s *activeSpan) Tag(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	if s.tags == nil {
		s.tags = make(map[string]string)
	}
	s.tags[key] = value
}

func (s *activeSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.ended = true

	s.emitter.enqueue(trace.Span{
		TraceID:      s.traceID,
		SpanID:       s.spanID,
		ParentSpanID: s.parentSpanID,
		Node:         s.emitter.node,
		Operation:    s.operation,
		StartTime:    s.start.UnixNano(),
		Duration:     int64(s.emitter.clock.Now().Sub(s.start)),
		Tags:         s.tags,
	})
}
