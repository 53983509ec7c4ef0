// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Skein's standard CBOR encoding.
//
// All span traffic between an emitting node and a trace agent is CBOR
// using Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. Deterministic
// encoding means the same span record always produces identical
// datagram bytes, which keeps wire-level comparisons and golden tests
// trivial.
//
// Consumers import only this package, never fxamacker/cbor directly.
package codec
