// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package crypto wraps the hash primitives the prolly tree is built on: a
// 256-bit digest and the boundary classifier that turns digests into a
// content-defined chunking decision.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Digest is a 256-bit collision-resistant hash output.
type Digest [32]byte

// String renders the digest as lowercase hex, matching the reference's
// hexdigest representation.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d is the zero digest (never produced by Sum).
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Sum hashes the concatenation of parts, in order, with no separators —
// the same framing the tree uses for both node_hash (key/value encoding)
// and merkel_hash (bucket concatenation).
func Sum(parts ...[]byte) Digest {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// SumDigests hashes the concatenation of a sequence of digests, left to
// right. This is the merkel_hash composition for an internal node's bucket.
func SumDigests(digests []Digest) Digest {
	h := sha256.New()
	for _, d := range digests {
		h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Config fixes the boundary classifier's threshold. Two peers must agree on
// this value or their trees, even over identical key sets, become
// structurally incomparable.
type Config struct {
	// Threshold out of 16: a digest is a boundary when its low nibble,
	// read as an integer in [0,15], is less than Threshold.
	Threshold int
}

// DefaultConfig is the spec's canonical policy: T=7 out of 16, giving an
// expected fan-out of 16/7 ≈ 2.3 children per internal node.
var DefaultConfig = Config{Threshold: 7}

var (
	configMu     sync.Mutex
	activeConfig = DefaultConfig
)

// SetConfig overrides the process-wide boundary configuration. It must be
// called, if at all, before any tree is built — changing it afterwards makes
// previously cached boundary flags (spec.md invariant 6) stale.
func SetConfig(c Config) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = c
}

func currentConfig() Config {
	configMu.Lock()
	defer configMu.Unlock()
	return activeConfig
}

// IsBoundary classifies a digest as a bucket boundary: the low 4 bits of its
// last byte, interpreted as an integer in [0,15], compared against the
// configured threshold. This is bit-identical to reading the last hex
// nibble of the lowercase hex digest, per spec.md §4.1.
func IsBoundary(d Digest) bool {
	cfg := currentConfig()
	nibble := int(d[len(d)-1] & 0x0f)
	return nibble < cfg.Threshold
}
