// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"log/slog"
	"math"
	"net"
	"net/netip"

	"github.com/skein-foundation/skein/lib/codec"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

// bindLocalSocket binds the loopback UDP socket the sender transmits
// from. Starting at base, it walks the port space upward until a bind
// succeeds; other local processes holding nearby ports are simply
// stepped over. The scan runs once per process at startup, so the slow
// worst case is acceptable. Returns *PortAllocationError only after
// the entire range up to 65535 is exhausted.
func bindLocalSocket(base uint16) (*net.UDPConn, error) {
	var lastErr error
	for port := int(base); port <= math.MaxUint16; port++ {
		socket, err := net.ListenUDP("udp", &net.UDPAddr{
			IP:   net.IPv4(127, 0, 0, 1),
			Port: port,
		})
		if err == nil {
			return socket, nil
		}
		lastErr = err
	}
	return nil, &PortAllocationError{Base: base, Err: lastErr}
}

// runSender is the background dispatch loop: it blocks on the span
// queue, CBOR-encodes each record, and writes it to the agent as a
// single datagram. It holds no locks and never communicates back to
// span creators. Send failures are expected operational noise
// (agent down, ICMP refused, missing privilege): they are logged at
// debug severity and the loop moves to the next record. The queue is
// never closed, so the loop runs for the life of the process.
func runSender(socket *net.UDPConn, agent netip.AddrPort, queue <-chan trace.Span, logger *slog.Logger) {
	for record := range queue {
		payload, err := codec.Marshal(record)
		if err != nil {
			// Span records are plain data; encoding one can only fail
			// if the schema itself is broken.
			logger.Error("encoding span record", "error", err, "operation", record.Operation)
			continue
		}
		if _, err := socket.WriteToUDPAddrPort(payload, agent); err != nil {
			sendErr := &SendError{Agent: agent, Err: err}
			logger.Debug("span datagram dropped", "error", sendErr)
		}
	}
}
