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

import "sort"

// Tree is an ordered stack of levels, index 0 at the leaves. The root is the
// top level's tail, exactly as the reference's get_root returns self[-1].tail
// rather than that tail's non-tail left neighbour: construction keeps
// promoting boundary nodes until the top level has no non-tail member left,
// so a non-tail "lone survivor" never persists at the top once Build or
// Insert settles (original_source/prolly_tree.py's ProllyTree.__init__ loops
// while len(level.to_list()) > 1, i.e. while any non-tail node remains).
type Tree[K any, V any] struct {
	levels []*level[K, V]

	less        func(a, b K) bool
	encodeKey   func(K) []byte
	encodeValue func(V) []byte
}

// Codec supplies the byte encodings node_hash is built from (spec.md §3:
// node_hash = H(encode(value) ‖ encode(key))) along with the strict total
// order over K. It is the only domain-specific knowledge the tree needs
// about K and V.
type Codec[K any, V any] struct {
	Less        func(a, b K) bool
	EncodeKey   func(K) []byte
	EncodeValue func(V) []byte
}

// Build constructs a tree from records: the base level is sorted ascending
// by codec.Less, then levels are promoted repeatedly until the current
// level holds no non-tail node at all (spec.md §4.5, resolved per the
// reference's literal loop condition rather than its English paraphrase —
// see Tree's doc comment). Build does not deduplicate keys; callers must
// supply distinct keys, exactly as the reference's bulk constructor does.
func Build[K any, V any](records []Record[K, V], codec Codec[K, V]) *Tree[K, V] {
	sorted := make([]Record[K, V], len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return codec.Less(sorted[i].Key, sorted[j].Key) })

	base := buildBaseLevel(sorted, codec.Less, codec.EncodeKey, codec.EncodeValue)
	levels := []*level[K, V]{base}
	cur := base
	for topNonTailCount(cur) > 0 {
		cur = buildNextLevel(cur)
		levels = append(levels, cur)
	}

	return &Tree[K, V]{
		levels:      levels,
		less:        codec.Less,
		encodeKey:   codec.EncodeKey,
		encodeValue: codec.EncodeValue,
	}
}

// topNonTailCount counts a level's non-tail members by walking left from
// its tail.
func topNonTailCount[K any, V any](lv *level[K, V]) int {
	count := 0
	for n := lv.tail.left; n != nil; n = n.left {
		count++
	}
	return count
}

func (t *Tree[K, V]) top() *level[K, V] {
	return t.levels[len(t.levels)-1]
}

// Height returns the tree's current height: the number of levels above the
// leaves.
func (t *Tree[K, V]) Height() int {
	return len(t.levels) - 1
}

// Root returns the top level's tail. Construction always settles with the
// top level holding nothing but its tail (see Tree's doc comment), so this
// never has a non-tail node to return instead — matching the reference's
// get_root, which returns self[-1].tail unconditionally.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.top().tail
}

// RootAtHeightBelow steps down from the root delta times, per spec.md §6.
// It is the height-alignment primitive the diff engine uses when the two
// trees being compared have unequal height.
func (t *Tree[K, V]) RootAtHeightBelow(delta int) *Node[K, V] {
	n := t.Root()
	for i := 0; i < delta; i++ {
		if n.down == nil {
			invariantViolated("root_at_height_below: delta exceeds tree height")
		}
		n = n.down
	}
	return n
}

// equalKeys reports whether a and b compare equal under less: neither is
// strictly less than the other.
func equalKeys[K any](less func(a, b K) bool, a, b K) bool {
	return !less(a, b) && !less(b, a)
}

// greaterThanKey reports whether n's key is strictly greater than k. A tail
// always compares greater, regardless of key (spec.md §3).
func greaterThanKey[K any, V any](less func(a, b K) bool, n *Node[K, V], k K) bool {
	return n.isTail || less(k, n.key)
}

// findRight returns the successor sentinel for k: the node with the
// smallest key strictly greater than k (spec.md §4.5). Cost is expected
// O(log N): a single descent from the top tail, stepping left whenever
// the left neighbour is still greater than k, down otherwise; then a final
// leftward sweep at level 0.
func (t *Tree[K, V]) findRight(k K) *Node[K, V] {
	n := t.top().tail
	for n.down != nil {
		if n.left != nil && greaterThanKey(t.less, n.left, k) {
			n = n.left
		} else {
			n = n.down
		}
	}
	for n.left != nil && greaterThanKey(t.less, n.left, k) {
		n = n.left
	}
	return n
}

// Search returns the level-0 node for k, or ErrKeyNotFound.
func (t *Tree[K, V]) Search(k K) (*Node[K, V], error) {
	r := t.findRight(k)
	if r.left != nil && !r.left.isTail && equalKeys(t.less, r.left.key, k) {
		return r.left, nil
	}
	return nil, ErrKeyNotFound
}
