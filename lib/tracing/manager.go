// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"log/slog"
	"sync"

	"github.com/skein-foundation/skein/lib/clock"
	"github.com/skein-foundation/skein/lib/content"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

// managerState is the lifecycle position of a Manager. Exactly one
// state is observable at any instant; the launched state is terminal.
type managerState uint8

const (
	stateUninitialized managerState = iota
	stateConfigured
	stateLaunched
)

// Manager owns the tracing lifecycle for a process: it holds the
// configuration before launch and the shared emitter after. All state
// transitions and span requests go through one mutex; the critical
// section covers only state inspection and span construction, never
// network I/O or the queue wait.
//
// Most programs use the package-level default manager via [Configure],
// [Launch], and the SpanFor functions rather than constructing their
// own.
type Manager struct {
	mu      sync.Mutex
	state   managerState
	config  Config
	emitter *emitter
}

// NewManager returns a Manager in the uninitialized state. Span
// requests against it yield inactive spans until it is configured and
// launched.
func NewManager() *Manager {
	return &Manager{}
}

// Configure stores the configuration and moves an uninitialized
// manager to the configured state. Pure construction: no sockets are
// bound and no goroutines started until Launch. Reconfiguring before
// launch replaces the pending configuration; a launched manager keeps
// the configuration it launched with and ignores further Configure
// calls.
func (m *Manager) Configure(config Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateLaunched {
		m.config.logger.Warn("tracing already launched, ignoring reconfiguration")
		return
	}
	// A Config assembled outside the builder may be missing the
	// non-constant defaults.
	if config.logger == nil {
		config.logger = slog.Default()
	}
	if config.clock == nil {
		config.clock = clock.Real()
	}
	if config.queueSize <= 0 {
		config.queueSize = DefaultQueueSize
	}
	m.config = config
	m.state = stateConfigured
}

// Launch consumes the stored configuration: it binds a local UDP
// socket (scanning upward from the configured base port), spawns the
// background sender, and transitions the manager to the launched
// state. The transition is one-way: there is no shutdown path, and
// the sender goroutine runs for the life of the process.
//
// Returns ErrAlreadyLaunched on a launched manager and
// ErrMissingConfiguration on an uninitialized one. A bind failure
// returns a *PortAllocationError and leaves the manager configured.
//
// Launch runs once at process startup, so holding the manager lock
// across the socket bind is deliberate: it makes concurrent Launch
// calls race-free (exactly one wins, the rest get ErrAlreadyLaunched).
func (m *Manager) Launch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case stateLaunched:
		return ErrAlreadyLaunched
	case stateUninitialized:
		return ErrMissingConfiguration
	}

	socket, err := bindLocalSocket(m.config.portBase)
	if err != nil {
		return err
	}

	m.config.logger.Info("collecting trace spans",
		"node", m.config.nodeName,
		"agent", m.config.agentAddr,
		"local", socket.LocalAddr(),
	)

	m.emitter = newEmitter(m.config.nodeName, m.config.queueSize, m.config.clock)
	go runSender(socket, m.config.agentAddr, m.emitter.queue, m.config.logger)
	m.state = stateLaunched
	return nil
}

// Launched reports whether the manager has reached the terminal
// launched state.
func (m *Manager) Launched() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == stateLaunched
}

// SpanForHash creates a span for the trace identified by the given
// content hash. On a launched manager the span is active and shares
// its trace with every other span derived from the same hash, on any
// node; otherwise the inactive no-op span is returned.
func (m *Manager) SpanForHash(hash content.Hash, operation string) Span {
	m.mu.Lock()
	e := m.emitter
	m.mu.Unlock()

	if e == nil {
		return noopSpan{}
	}
	return e.startSpan(DeriveTraceID(hash), trace.SpanID{}, operation)
}

// SpanForCandidate is SpanForHash for a candidate identifier.
func (m *Manager) SpanForCandidate(candidate content.CandidateHash, operation string) Span {
	return m.SpanForHash(candidate.Hash, operation)
}

// SpanForBlob hashes the blob and creates a span for the resulting
// trace. Use this when only the raw content is at hand; nodes holding
// the pre-computed hash join the same trace via SpanForHash.
func (m *Manager) SpanForBlob(blob []byte, operation string) Span {
	return m.SpanForHash(content.HashBlob(blob), operation)
}

// DroppedSpans returns the number of span records dropped because the
// queue was full. Zero before launch.
func (m *Manager) DroppedSpans() uint64 {
	m.mu.Lock()
	e := m.emitter
	m.mu.Unlock()

	if e == nil {
		return 0
	}
	return e.droppedCount()
}

// defaultManager is the process-wide manager behind the package-level
// functions. Call sites that want to emit spans without threading a
// handle through every signature go through it; everything else can
// construct an explicit Manager.
var defaultManager = NewManager()

// Default returns the process-wide manager.
func Default() *Manager { return defaultManager }

// Configure stores the configuration on the process-wide manager.
func Configure(config Config) { defaultManager.Configure(config) }

// Launch launches the process-wide manager.
func Launch() error { return defaultManager.Launch() }

// SpanForHash creates a span on the process-wide manager.
func SpanForHash(hash content.Hash, operation string) Span {
	return defaultManager.SpanForHash(hash, operation)
}

// SpanForCandidate creates a span on the process-wide manager.
func SpanForCandidate(candidate content.CandidateHash, operation string) Span {
	return defaultManager.SpanForCandidate(candidate, operation)
}

// SpanForBlob creates a span on the process-wide manager.
func SpanForBlob(blob []byte, operation string) Span {
	return defaultManager.SpanForBlob(blob, operation)
}
