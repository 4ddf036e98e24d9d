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

import "github.com/bits-and-blooms/bitset"

// level is a doubly-linked, key-ascending chain of nodes at one height,
// terminated by a tail sentinel. Only the tail is kept directly; the rest of
// the chain is reached by walking left, matching the reference Level class
// (original_source/prolly_tree.py), whose to_list() does the same walk.
type level[K any, V any] struct {
	height int
	tail   *Node[K, V]
}

// linkNodes wires left/right pointers across nodes in left-to-right order,
// mirroring Level.link_nodes in the reference.
func linkNodes[K any, V any](nodes []*Node[K, V]) {
	for i := 0; i+1 < len(nodes); i++ {
		nodes[i].right = nodes[i+1]
		nodes[i+1].left = nodes[i]
	}
}

// buildBaseLevel wraps each record in a level-0 node in the order given,
// appends a tail, and links the chain. It does not sort and does not consult
// less; Build sorts the records before calling it.
func buildBaseLevel[K any, V any](records []Record[K, V], less func(a, b K) bool, encodeKey func(K) []byte, encodeValue func(V) []byte) *level[K, V] {
	nodes := make([]*Node[K, V], 0, len(records)+1)
	for _, r := range records {
		nodes = append(nodes, newLeaf(r.Key, r.Value, encodeKey, encodeValue))
	}
	nodes = append(nodes, newTail[K, V](0))
	linkNodes(nodes)
	return &level[K, V]{height: 0, tail: nodes[len(nodes)-1]}
}

// nodesLeftToRight walks left from the tail and returns the chain in
// ascending order, tail included. Used by construction, diagnostics, and
// tests; hot paths (find/insert/delete) walk the links directly instead.
func (lv *level[K, V]) nodesLeftToRight() []*Node[K, V] {
	var reversed []*Node[K, V]
	for n := lv.tail; n != nil; n = n.left {
		reversed = append(reversed, n)
	}
	out := make([]*Node[K, V], len(reversed))
	for i, n := range reversed {
		out[len(out)-1-i] = n
	}
	return out
}

// buildNextLevel promotes every boundary node of prev (always including its
// tail, since tails are boundaries by definition), links the promotions into
// a new chain, and fills each promoted node's merkel hash.
//
// A bitset flags which positions in prev's left-to-right node list are
// boundaries before promotion, so the eligible set is computed with a single
// left-to-right scan rather than a second pass over is_boundary_node (whose
// result is already memoised, but whose call sites would otherwise be
// scattered across two loops).
func buildNextLevel[K any, V any](prev *level[K, V]) *level[K, V] {
	prevNodes := prev.nodesLeftToRight()
	boundaries := bitset.New(uint(len(prevNodes)))
	for i, n := range prevNodes {
		if n.isBoundaryNode() {
			boundaries.Set(uint(i))
		}
	}

	promoted := make([]*Node[K, V], 0, boundaries.Count())
	for i, n := range prevNodes {
		if boundaries.Test(uint(i)) {
			promoted = append(promoted, n.promote())
		}
	}
	linkNodes(promoted)
	for _, p := range promoted {
		fillMerkel(p)
	}

	return &level[K, V]{height: prev.height + 1, tail: promoted[len(promoted)-1]}
}

// appendEmptyLevel grows the tree one step in height: the new level's only
// node is a promotion of the current top tail, which is always a boundary,
// preserving invariant 2 at the new top (spec.md §4.6). The promoted tail's
// merkel hash is left unfilled, per promote's contract — the caller's
// subsequent Merkle propagation pass fills it, exactly as the reference's
// _add_empty_level leaves it for a later fill_merkel_hash call.
func appendEmptyLevel[K any, V any](top *level[K, V]) *level[K, V] {
	newTailNode := top.tail.promote()
	return &level[K, V]{height: top.height + 1, tail: newTailNode}
}
