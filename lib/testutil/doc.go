// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Skein packages.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls. These are the only place
// in the test suite where real wall-clock timeouts are used; all other
// timing goes through lib/clock's FakeClock.
package testutil
