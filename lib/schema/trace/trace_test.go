// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"encoding/json"
	"testing"

	"github.com/skein-foundation/skein/lib/codec"
)

func TestTraceIDTextRoundTrip(t *testing.T) {
	original := TraceID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	want := "0123456789abcdeffedcba9876543210"
	if string(text) != want {
		t.Errorf("MarshalText = %q, want %q", text, want)
	}

	var decoded TraceID
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip mismatch: got %x, want %x", decoded, original)
	}
}

func TestTraceIDCBORCompact(t *testing.T) {
	original := TraceID{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88,
		0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// 1-byte byte-string header plus 16 raw bytes.
	if len(data) != 17 {
		t.Errorf("CBOR encoding is %d bytes, want 17", len(data))
	}

	var decoded TraceID
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip mismatch: got %x, want %x", decoded, original)
	}
}

func TestTraceIDInvalid(t *testing.T) {
	var id TraceID
	if err := id.UnmarshalText([]byte("not-hex")); err == nil {
		t.Error("expected error for invalid hex, got nil")
	}
	if err := id.UnmarshalText([]byte("0123456789abcdef")); err == nil {
		t.Error("expected error for wrong-length hex, got nil")
	}
	if err := id.UnmarshalText(nil); err != nil {
		t.Errorf("UnmarshalText(nil): %v", err)
	}
	if !id.IsZero() {
		t.Error("UnmarshalText(nil) should produce the zero value")
	}
}

func TestSpanIDRoundTrip(t *testing.T) {
	original := SpanID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "0123456789abcdef" {
		t.Errorf("MarshalText = %q, want 0123456789abcdef", text)
	}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// 1-byte byte-string header plus 8 raw bytes.
	if len(data) != 9 {
		t.Errorf("CBOR encoding is %d bytes, want 9", len(data))
	}

	var decoded SpanID
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip mismatch: got %x, want %x", decoded, original)
	}
}

func TestSpanCBORRoundTrip(t *testing.T) {
	original := Span{
		TraceID:      TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:       SpanID{1, 1, 1, 1, 1, 1, 1, 1},
		ParentSpanID: SpanID{2, 2, 2, 2, 2, 2, 2, 2},
		Node:         "alice",
		Operation:    "candidate.validate",
		StartTime:    1_700_000_000_000_000_000,
		Duration:     42_000_000,
		Tags:         map[string]string{"role": "collator"},
	}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Span
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.TraceID != original.TraceID {
		t.Errorf("TraceID = %s, want %s", decoded.TraceID, original.TraceID)
	}
	if decoded.SpanID != original.SpanID {
		t.Errorf("SpanID = %s, want %s", decoded.SpanID, original.SpanID)
	}
	if decoded.ParentSpanID != original.ParentSpanID {
		t.Errorf("ParentSpanID = %s, want %s", decoded.ParentSpanID, original.ParentSpanID)
	}
	if decoded.Node != original.Node {
		t.Errorf("Node = %q, want %q", decoded.Node, original.Node)
	}
	if decoded.Operation != original.Operation {
		t.Errorf("Operation = %q, want %q", decoded.Operation, original.Operation)
	}
	if decoded.StartTime != original.StartTime {
		t.Errorf("StartTime = %d, want %d", decoded.StartTime, original.StartTime)
	}
	if decoded.Duration != original.Duration {
		t.Errorf("Duration = %d, want %d", decoded.Duration, original.Duration)
	}
	if decoded.Tags["role"] != "collator" {
		t.Errorf("Tags = %v, want role=collator", decoded.Tags)
	}
}

func TestSpanJSONUsesHexIDs(t *testing.T) {
	span := Span{
		TraceID:   TraceID{0xde, 0xad, 0xbe, 0xef},
		SpanID:    SpanID{0xca, 0xfe},
		Node:      "alice",
		Operation: "import",
	}

	data, err := json.Marshal(span)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var object map[string]any
	if err := json.Unmarshal(data, &object); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	traceID, ok := object["trace_id"].(string)
	if !ok || traceID != "deadbeef000000000000000000000000" {
		t.Errorf("trace_id = %v, want deadbeef hex text", object["trace_id"])
	}
	spanID, ok := object["span_id"].(string)
	if !ok || spanID != "cafe000000000000" {
		t.Errorf("span_id = %v, want cafe hex text", object["span_id"])
	}
}
