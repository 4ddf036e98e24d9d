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

// bucket returns the contiguous run of level-(L-1) nodes that belong to
// internal node p (at level L>0): starting at p.down, walk left while the
// left neighbour is non-boundary, then reverse so the result reads
// left-to-right. Every level-0 node belongs to exactly one bucket, since
// boundaries partition a level into contiguous runs (spec.md §4.3).
func bucket[K any, V any](p *Node[K, V]) []*Node[K, V] {
	n := p.down
	if n == nil {
		invariantViolated("bucket requested for a level-0 node")
	}
	members := []*Node[K, V]{n}
	for n.left != nil && !n.left.isBoundaryNode() {
		n = n.left
		members = append(members, n)
	}
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}
	return members
}

// fillMerkel ensures every member of p's bucket has its merkel hash set,
// recursing only where missing, then sets p.merkel_hash to the digest of the
// bucket's merkel hashes, concatenated left to right. At level 0 merkel_hash
// equals node_hash by construction, so recursion bottoms out there.
func fillMerkel[K any, V any](p *Node[K, V]) {
	members := bucket(p)
	hashes := make([]crypto.Digest, len(members))
	for i, m := range members {
		if m.level > 0 && m.merkelHash.IsZero() {
			fillMerkel(m)
		}
		hashes[i] = m.merkelHash
	}
	p.merkelHash = crypto.SumDigests(hashes)
}

// propagate walks the Merkle hash upward from the bucket owner of a changed
// node: fill the node's own bucket hash, then move to its up neighbour; when
// up is nil and the node is not a tail, jump to the next boundary to the
// right on the current level and continue from its up neighbour. This
// mirrors _update_propagate_merkel_hash in the reference, and is the
// mechanism that satisfies invariant 5 after insert and delete.
func propagate[K any, V any](start *Node[K, V]) {
	n := start
	for {
		fillMerkel(n)
		if n.up != nil {
			n = n.up
			continue
		}
		if n.isTail {
			return
		}
		n = n.nextBoundaryRight().up
		if n == nil {
			invariantViolated("next boundary right has no up neighbour during propagation")
		}
	}
}
