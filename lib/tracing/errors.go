// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrAlreadyLaunched is returned by Launch on a manager that is
// already launched. The launched state is terminal; the first launch
// wins and keeps its configuration.
var ErrAlreadyLaunched = errors.New("tracing: already launched")

// ErrMissingConfiguration is returned by Launch on a manager that was
// never configured. It usually indicates wrong startup ordering.
var ErrMissingConfiguration = errors.New("tracing: launch without configuration")

// PortAllocationError is returned by Launch when no local UDP port
// could be bound: every port from the configured base to the top of
// the 16-bit port space was taken. Err holds the last bind failure.
type PortAllocationError struct {
	Base uint16
	Err  error
}

func (e *PortAllocationError) Error() string {
	return fmt.Sprintf("tracing: no local UDP port available in %d-65535: %v", e.Base, e.Err)
}

func (e *PortAllocationError) Unwrap() error { return e.Err }

// SendError records a failed datagram write to the agent. It never
// propagates to span creators: the background sender logs it and moves
// on to the next record.
type SendError struct {
	Agent netip.AddrPort
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("tracing: sending span datagram to %s: %v", e.Agent, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
