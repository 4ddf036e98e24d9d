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

package prollytree

import "github.com/prollytree/prollytree/crypto"

// Node is a single tree cell: a key, its value (level 0 only), its level,
// four neighbour links, a cached boundary flag, and the two hashes described
// in the data model — node_hash (a one-shot digest over the node's own
// payload or its child's node_hash) and merkel_hash (a recursive digest over
// the node's bucket).
//
// Fields mirror the reference implementation's Node class field for field;
// see original_source/prolly_tree.py. Only accessors are exported: the
// pointer graph itself is mutated exclusively by Tree's operations.
type Node[K any, V any] struct {
	key      K
	value    V
	hasValue bool
	level    int
	isTail   bool

	nodeHash   crypto.Digest
	merkelHash crypto.Digest

	// boundary caches is_boundary_node's result. nil means unfilled. Once
	// set it never changes, because node_hash never changes after the node
	// is constructed (invariant 6).
	boundary *bool

	up, down, left, right *Node[K, V]
}

// newLeaf builds a level-0 node for a record. node_hash = H(encode(value) ‖
// encode(key)), per spec.md §3; encode is left to the caller's key/value
// encoders so the tree stays generic over K and V.
func newLeaf[K any, V any](key K, value V, encodeKey func(K) []byte, encodeValue func(V) []byte) *Node[K, V] {
	n := &Node[K, V]{key: key, value: value, hasValue: true, level: 0}
	n.nodeHash = crypto.Sum(encodeValue(value), encodeKey(key))
	n.merkelHash = n.nodeHash
	return n
}

// newTail builds the sentinel node for a fresh, empty level.
func newTail[K any, V any](level int) *Node[K, V] {
	return &Node[K, V]{level: level, isTail: true}
}

// promote creates a higher-level copy of n sharing n.key and n.isTail, per
// spec.md §4.2. merkelHash is left unfilled (the zero digest); fillMerkel
// computes it once the new node's bucket exists.
func (n *Node[K, V]) promote() *Node[K, V] {
	p := &Node[K, V]{
		key:    n.key,
		level:  n.level + 1,
		isTail: n.isTail,
		down:   n,
	}
	p.nodeHash = crypto.Sum(n.nodeHash[:])
	n.up = p
	return p
}

// isBoundaryNode reports whether n closes a bucket: true for every tail, and
// for any other node whose node_hash classifies as a boundary. The result is
// memoised in n.boundary on first call.
func (n *Node[K, V]) isBoundaryNode() bool {
	if n.boundary != nil {
		return *n.boundary
	}
	b := n.isTail || crypto.IsBoundary(n.nodeHash)
	n.boundary = &b
	return b
}

// nextBoundaryRight walks right from n until it finds a boundary node,
// inclusive of n's own level tail, which always terminates the walk.
func (n *Node[K, V]) nextBoundaryRight() *Node[K, V] {
	cur := n
	for cur.right != nil {
		if cur.right.isBoundaryNode() {
			return cur.right
		}
		cur = cur.right
	}
	return cur
}

// Key returns the node's sort key. Calling Key on a tail node returns the
// zero value of K; check IsTail first.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's value and whether one is present (only level-0,
// non-tail nodes carry a value).
func (n *Node[K, V]) Value() (V, bool) { return n.value, n.hasValue }

// Level returns the node's height, 0 at the leaves.
func (n *Node[K, V]) Level() int { return n.level }

// IsTail reports whether n is a level's rightmost sentinel.
func (n *Node[K, V]) IsTail() bool { return n.isTail }

// Hash returns node_hash.
func (n *Node[K, V]) Hash() crypto.Digest { return n.nodeHash }

// MerkelHash returns merkel_hash.
func (n *Node[K, V]) MerkelHash() crypto.Digest { return n.merkelHash }

// Up, Down, Left, Right are read-only accessors to the node's neighbours,
// the only interface the diff engine (C5) needs into C2/C3.
func (n *Node[K, V]) Up() *Node[K, V]    { return n.up }
func (n *Node[K, V]) Down() *Node[K, V]  { return n.down }
func (n *Node[K, V]) Left() *Node[K, V]  { return n.left }
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }
