// Copyright 2026 The Skein Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest identifying a piece of content. It
// is the correlation key of the tracing system: two independently
// running nodes that hash the same bytes obtain the same Hash, and
// spans derived from it land in the same trace.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures the same input bytes produce different hashes in
// different contexts, preventing cross-domain collisions.
type domainKey [32]byte

// blobDomainKey is the domain key for content blob hashes. This is a
// fixed constant: changing it changes every blob hash and therefore
// every derived trace identifier. The byte values are the ASCII
// encoding of the domain name, zero-padded to 32 bytes, so the key is
// inspectable in hex dumps without sacrificing any cryptographic
// property.
var blobDomainKey = domainKey{
	's', 'k', 'e', 'i', 'n', '.', 'c', 'o', 'n', 't', 'e', 'n', 't', '.',
	'b', 'l', 'o', 'b', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashBlob computes the blob-domain BLAKE3 keyed hash of the given
// data. This is the hash used when a span is requested for a raw
// content blob rather than a pre-computed hash.
func HashBlob(data []byte) Hash {
	return keyedHash(blobDomainKey, data)
}

// ParseHash decodes a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing content hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("content hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// IsZero reports whether this is an uninitialized zero-value Hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// String returns the 64-character lowercase hex representation.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// CandidateHash wraps a Hash that identifies a unit of candidate work.
// The wrapper is a distinct type so a candidate identity and a plain
// content hash cannot be swapped at a call site.
type CandidateHash struct {
	Hash Hash
}

// String returns the hex representation of the wrapped hash.
func (c CandidateHash) String() string { return c.Hash.String() }

func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed requires exactly 32 bytes, which domainKey guarantees.
	// The error is only returned for wrong key length, so this cannot
	// fail with our fixed-size type.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("content: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
