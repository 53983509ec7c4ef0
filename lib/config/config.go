// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Skein components.
//
// Configuration is loaded from a single file specified by:
//   - SKEIN_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures deterministic,
// auditable configuration with no hidden overrides.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skein-foundation/skein/lib/tracing"
)

// Config is the file-level configuration for a Skein process.
type Config struct {
	// Node configures how this process identifies itself in trace
	// records.
	Node NodeConfig `yaml:"node"`

	// Agent configures the trace agent endpoint and local socket
	// allocation.
	Agent AgentConfig `yaml:"agent"`

	// Queue configures the in-process span queue.
	Queue QueueConfig `yaml:"queue"`
}

// NodeConfig identifies the local node.
type NodeConfig struct {
	// Name is attached to every span emitted by this process.
	// Default: unknown_
	Name string `yaml:"name"`
}

// AgentConfig configures span delivery.
type AgentConfig struct {
	// Address is the UDP host:port of the trace agent.
	// Default: 127.0.0.1:6831
	Address string `yaml:"address"`

	// PortBase is the first local port tried when binding the
	// outbound socket. Higher ports are scanned if it is taken.
	// Default: 49000
	PortBase uint16 `yaml:"port_base"`
}

// QueueConfig configures span buffering between producers and the
// background sender.
type QueueConfig struct {
	// Size is the span queue capacity. Spans beyond it are dropped.
	Size int `yaml:"size"`
}

// Default returns the default configuration. These defaults are used
// as a base before loading the config file, so every field has a
// usable zero-value even when the file omits its section.
func Default() *Config {
	return &Config{
		Node: NodeConfig{
			Name: tracing.DefaultNodeName,
		},
		Agent: AgentConfig{
			Address:  tracing.DefaultAgentAddr,
			PortBase: tracing.DefaultPortBase,
		},
		Queue: QueueConfig{
			Size: tracing.DefaultQueueSize,
		},
	}
}

// Load loads configuration from the SKEIN_CONFIG environment variable.
//
// This is the only way to load configuration without an explicit path.
// There are no fallbacks or defaults, so if SKEIN_CONFIG is not set
// this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("SKEIN_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("SKEIN_CONFIG environment variable not set; " +
			"set it to the path of your skein.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Node.Name == "" {
		errs = append(errs, fmt.Errorf("node.name is required"))
	}
	if _, err := netip.ParseAddrPort(c.Agent.Address); err != nil {
		errs = append(errs, fmt.Errorf("agent.address: %w", err))
	}
	if c.Queue.Size <= 0 {
		errs = append(errs, fmt.Errorf("queue.size must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Tracing converts the file configuration into a built tracing
// configuration.
func (c *Config) Tracing() (tracing.Config, error) {
	return tracing.NewConfig().
		Named(c.Node.Name).
		Agent(c.Agent.Address).
		PortBase(c.Agent.PortBase).
		QueueSize(c.Queue.Size).
		Build()
}
