// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/skein-foundation/skein/lib/clock"
)

// Defaults applied by NewConfig. The node name deliberately looks
// unfinished: an operator seeing "unknown_" spans in the agent UI
// knows the deployment forgot to set a name.
const (
	DefaultNodeName  = "unknown_"
	DefaultAgentAddr = "127.0.0.1:6831"
	DefaultPortBase  = 49000
	DefaultQueueSize = 1024
)

// Config is the immutable tracing configuration, consumed once by
// [Manager.Launch]. Build one with [NewConfig].
type Config struct {
	nodeName  string
	agentAddr netip.AddrPort
	portBase  uint16
	queueSize int
	logger    *slog.Logger
	clock     clock.Clock
}

// NodeName returns the human-readable node identifier stamped on every
// emitted span.
func (c Config) NodeName() string { return c.nodeName }

// AgentAddr returns the trace agent address span datagrams are sent to.
func (c Config) AgentAddr() netip.AddrPort { return c.agentAddr }

// ConfigBuilder assembles a Config. Obtain one from [NewConfig], chain
// the setters, then call [ConfigBuilder.Build]. Every field has a
// default, so the empty chain is valid.
type ConfigBuilder struct {
	config Config
	err    error
}

// NewConfig returns a ConfigBuilder populated with defaults: node name
// "unknown_", agent 127.0.0.1:6831, local port scan starting at 49000,
// queue capacity 1024, slog default logger, real clock.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			nodeName:  DefaultNodeName,
			agentAddr: netip.MustParseAddrPort(DefaultAgentAddr),
			portBase:  DefaultPortBase,
			queueSize: DefaultQueueSize,
		},
	}
}

// Named sets the node name for this process.
func (b *ConfigBuilder) Named(name string) *ConfigBuilder {
	b.config.nodeName = name
	return b
}

// Agent sets the trace agent address ("host:port") to send spans to.
// A malformed address surfaces as an error from Build.
func (b *ConfigBuilder) Agent(addr string) *ConfigBuilder {
	parsed, err := netip.ParseAddrPort(addr)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("tracing: invalid agent address %q: %w", addr, err)
		}
		return b
	}
	b.config.agentAddr = parsed
	return b
}

// PortBase sets the first local port the sender tries to bind. The
// scan walks upward from here, so a cluster of skein processes on one
// machine each land on the next free port.
func (b *ConfigBuilder) PortBase(port uint16) *ConfigBuilder {
	b.config.portBase = port
	return b
}

// QueueSize sets the span queue capacity. When the background sender
// falls behind by more than this many spans, further records are
// dropped rather than blocking span creators.
func (b *ConfigBuilder) QueueSize(size int) *ConfigBuilder {
	if size <= 0 {
		if b.err == nil {
			b.err = fmt.Errorf("tracing: queue size must be positive, got %d", size)
		}
		return b
	}
	b.config.queueSize = size
	return b
}

// Logger sets the logger for the manager and the background sender.
func (b *ConfigBuilder) Logger(logger *slog.Logger) *ConfigBuilder {
	b.config.logger = logger
	return b
}

// Clock sets the time source for span timestamps. Tests pass
// clock.Fake() for deterministic durations.
func (b *ConfigBuilder) Clock(clk clock.Clock) *ConfigBuilder {
	b.config.clock = clk
	return b
}

// Build finalizes the configuration, filling in the logger and clock
// defaults that cannot be constants. Returns the first error recorded
// by a setter.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	config := b.config
	if config.logger == nil {
		config.logger = slog.Default()
	}
	if config.clock == nil {
		config.clock = clock.Real()
	}
	return config, nil
}
