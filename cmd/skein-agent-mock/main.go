// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Skein-agent-mock is a drop-in replacement for a trace agent in
// development and integration tests. It listens on the agent UDP port,
// decodes every datagram as a span record, stores everything in
// memory, and prints each span as it arrives. Periodic stats go to the
// structured log so a long-running soak can be watched from journald.
//
// With --diag each datagram is also printed in CBOR diagnostic
// notation, which is the fastest way to debug a wire-format mismatch.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/skein-foundation/skein/lib/clock"
	"github.com/skein-foundation/skein/lib/codec"
	"github.com/skein-foundation/skein/lib/config"
	"github.com/skein-foundation/skein/lib/process"
	"github.com/skein-foundation/skein/lib/schema/trace"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		listenAddr    string
		configPath    string
		statsInterval time.Duration
		diag          bool
	)

	flagSet := pflag.NewFlagSet("skein-agent-mock", pflag.ContinueOnError)
	flagSet.StringVar(&listenAddr, "listen", "", "UDP address to listen on (default: the configured agent address)")
	flagSet.StringVar(&configPath, "config", "", "path to skein.yaml (default: $SKEIN_CONFIG)")
	flagSet.DurationVar(&statsInterval, "stats-interval", 30*time.Second, "how often to log receive statistics")
	flagSet.BoolVar(&diag, "diag", false, "print each datagram in CBOR diagnostic notation")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if listenAddr == "" {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		} else if os.Getenv("SKEIN_CONFIG") != "" {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		listenAddr = cfg.Agent.Address
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	udpAddr, err := net.ResolveUDPAddr("udp", listenAddr)
	if err != nil {
		return fmt.Errorf("resolving listen address %q: %w", listenAddr, err)
	}
	socket, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", listenAddr, err)
	}
	defer socket.Close()

	logger.Info("mock agent listening", "addr", socket.LocalAddr())

	var received, malformed atomic.Uint64

	go func() {
		<-ctx.Done()
		socket.Close()
	}()

	go logStats(ctx, clock.Real(), logger, statsInterval, &received, &malformed)

	buf := make([]byte, 64*1024)
	for {
		n, sender, err := socket.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("shutting down",
					"received", received.Load(),
					"malformed", malformed.Load(),
				)
				return nil
			}
			return fmt.Errorf("reading datagram: %w", err)
		}

		if diag {
			notation, err := codec.Diagnose(buf[:n])
			if err != nil {
				notation = fmt.Sprintf("(undecodable: %v)", err)
			}
			fmt.Printf("%s %s\n", sender, notation)
		}

		var span trace.Span
		if err := codec.Unmarshal(buf[:n], &span); err != nil {
			malformed.Add(1)
			logger.Warn("malformed span datagram", "sender", sender, "bytes", n, "error", err)
			continue
		}
		received.Add(1)

		fmt.Printf("trace=%s span=%s parent=%s node=%s op=%s duration=%s tags=%v\n",
			span.TraceID, span.SpanID, span.ParentSpanID,
			span.Node, span.Operation,
			time.Duration(span.Duration)*time.Nanosecond, span.Tags,
		)
	}
}

// logStats periodically logs receive counters until ctx is cancelled.
func logStats(ctx context.Context, clk clock.Clock, logger *slog.Logger, interval time.Duration, received, malformed *atomic.Uint64) {
	if interval <= 0 {
		return
	}
	ticker := clk.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Info("receive stats",
				"received", received.Load(),
				"malformed", malformed.Load(),
			)
		}
	}
}
