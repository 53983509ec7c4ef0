// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"log/slog"
	"testing"
	"time"

	"github.com/skein-foundation/skein/lib/clock"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if config.NodeName() != "unknown_" {
		t.Errorf("NodeName = %q, want unknown_", config.NodeName())
	}
	if got := config.AgentAddr().String(); got != "127.0.0.1:6831" {
		t.Errorf("AgentAddr = %q, want 127.0.0.1:6831", got)
	}
	if config.portBase != 49000 {
		t.Errorf("portBase = %d, want 49000", config.portBase)
	}
	if config.queueSize != 1024 {
		t.Errorf("queueSize = %d, want 1024", config.queueSize)
	}
	if config.logger == nil {
		t.Error("logger default missing")
	}
	if config.clock == nil {
		t.Error("clock default missing")
	}
}

func TestNewConfigOverrides(t *testing.T) {
	logger := slog.Default()
	fakeClock := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	config, err := NewConfig().
		Named("alice").
		Agent("10.0.0.7:7831").
		PortBase(50000).
		QueueSize(16).
		Logger(logger).
		Clock(fakeClock).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if config.NodeName() != "alice" {
		t.Errorf("NodeName = %q, want alice", config.NodeName())
	}
	if got := config.AgentAddr().String(); got != "10.0.0.7:7831" {
		t.Errorf("AgentAddr = %q, want 10.0.0.7:7831", got)
	}
	if config.portBase != 50000 {
		t.Errorf("portBase = %d, want 50000", config.portBase)
	}
	if config.queueSize != 16 {
		t.Errorf("queueSize = %d, want 16", config.queueSize)
	}
	if config.clock != clock.Clock(fakeClock) {
		t.Error("clock override not applied")
	}
}

func TestNewConfigInvalidAgent(t *testing.T) {
	if _, err := NewConfig().Agent("not-an-address").Build(); err == nil {
		t.Error("expected error for malformed agent address, got nil")
	}
	// A hostname is not accepted either: the agent address is a
	// literal IP so launch never does name resolution.
	if _, err := NewConfig().Agent("collector.example.com:6831").Build(); err == nil {
		t.Error("expected error for hostname agent address, got nil")
	}
}

func TestNewConfigInvalidQueueSize(t *testing.T) {
	if _, err := NewConfig().QueueSize(0).Build(); err == nil {
		t.Error("expected error for zero queue size, got nil")
	}
	if _, err := NewConfig().QueueSize(-5).Build(); err == nil {
		t.Error("expected error for negative queue size, got nil")
	}
}

func TestNewConfigFirstErrorWins(t *testing.T) {
	_, err := NewConfig().Agent("bad").QueueSize(-1).Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	want := `tracing: invalid agent address "bad"`
	if got := err.Error(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("error = %q, want prefix %q", got, want)
	}
}
