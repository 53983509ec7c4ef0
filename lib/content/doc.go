// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package content defines the content-addressed identifiers that
// Skein traces are correlated by.
//
// A [Hash] is a keyed BLAKE3 digest of a content blob. Hashing is
// deterministic across processes and machines, which is the property
// the whole tracing design rests on: independent nodes working on the
// same content derive the same trace identifier and their spans merge
// into a single trace view at the agent.
//
// [CandidateHash] wraps a Hash identifying a unit of candidate work,
// keeping candidate identities type-distinct from plain content
// hashes.
//
// This package depends on no other Skein packages.
package content
