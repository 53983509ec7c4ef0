// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Skein-emit sends a burst of synthetic trace spans to the configured
// agent. Each iteration hashes a distinct blob, opens a root span for
// it, and closes a small tree of child spans underneath, so the agent
// side sees realistic trace topology. Point it at skein-agent-mock to
// exercise the full emit path end to end.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/skein-foundation/skein/lib/config"
	"github.com/skein-foundation/skein/lib/process"
	"github.com/skein-foundation/skein/lib/tracing"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		configPath string
		nodeName   string
		agentAddr  string
		count      int
	)

	flagSet := pflag.NewFlagSet("skein-emit", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to skein.yaml (default: $SKEIN_CONFIG)")
	flagSet.StringVar(&nodeName, "node", "", "node name override")
	flagSet.StringVar(&agentAddr, "agent", "", "agent address override (host:port)")
	flagSet.IntVar(&count, "count", 10, "number of trace trees to emit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

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
	if nodeName != "" {
		cfg.Node.Name = nodeName
	}
	if agentAddr != "" {
		cfg.Agent.Address = agentAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	built, err := tracing.NewConfig().
		Named(cfg.Node.Name).
		Agent(cfg.Agent.Address).
		PortBase(cfg.Agent.PortBase).
		QueueSize(cfg.Queue.Size).
		Logger(logger).
		Build()
	if err != nil {
		return err
	}

	tracing.Configure(built)
	if err := tracing.Launch(); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		blob := fmt.Appendf(nil, "synthetic-candidate-%d", i)

		root := tracing.SpanForBlob(blob, "candidate.import")
		root.Tag("iteration", fmt.Sprintf("%d", i))

		fetch := root.Child("blob.fetch")
		time.Sleep(time.Millisecond)
		fetch.End()

		check := root.Child("blob.check")
		check.Tag("result", "valid")
		time.Sleep(time.Millisecond)
		check.End()

		root.End()
	}

	// Spans travel through a buffered queue to a background sender.
	// Give it a moment to drain before the process exits.
	time.Sleep(200 * time.Millisecond)

	if dropped := tracing.Default().DroppedSpans(); dropped > 0 {
		logger.Warn("spans dropped before send", "count", dropped)
	}
	logger.Info("emitted", "traces", count)
	return nil
}
