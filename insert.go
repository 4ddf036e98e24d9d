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

// spliceLeftOf links x immediately to the left of right, within a single
// level's doubly-linked chain.
func spliceLeftOf[K any, V any](right, x *Node[K, V]) {
	left := right.left
	right.left = x
	x.right = right
	x.left = left
	if left != nil {
		left.right = x
	}
}

// Insert adds a record to the tree (spec.md §4.5). It rejects an
// already-present key with ErrDuplicateKey: the reference admits duplicate
// keys silently, which would violate invariant 1 (strictly increasing keys
// within a level); spec.md §7 calls this out as a deliberate correction.
func (t *Tree[K, V]) Insert(r Record[K, V]) (*Node[K, V], error) {
	if _, err := t.Search(r.Key); err == nil {
		return nil, ErrDuplicateKey
	}

	x := newLeaf(r.Key, r.Value, t.encodeKey, t.encodeValue)
	right := t.findRight(r.Key)
	spliceLeftOf(right, x)

	// b is captured immediately after splicing x in, before any promotion,
	// so it is unaffected by whatever this insert does above level 0. b is
	// a pre-existing boundary node (it is strictly to x's right, so it is
	// never x itself), and invariant 2 guarantees a pre-existing boundary
	// node already has an up neighbour — unless b sits at the tree's
	// current top, in which case the promotion below gives it one.
	b := x.nextBoundaryRight()

	t.promoteIfBoundary(x, 0)
	t.settleTop()

	// Merkle propagation is mandatory here even when x was never promoted
	// (spec.md §4.5's Open Question / §9's called-out deviation): the
	// reference's class-form insert skips this call for the non-promoted
	// case, leaving invariant 5 violated. This implementation always
	// propagates.
	propagate(b.up)

	return x, nil
}

// promoteIfBoundary is the recursive half of insert (spec.md §4.5 step 3):
// if x closes a bucket, promote it, make room for the promotion at the
// level above if that level doesn't exist yet, splice it in to the left of
// its bucket owner's existing promoted sibling, and recurse.
func (t *Tree[K, V]) promoteIfBoundary(x *Node[K, V], levelIdx int) {
	if !x.isBoundaryNode() {
		return
	}

	higher := x.promote()
	nextBoundary := x.nextBoundaryRight()

	if levelIdx == len(t.levels)-1 {
		t.levels = append(t.levels, appendEmptyLevel(t.levels[levelIdx]))
	}

	anchor := t.anchorFor(nextBoundary, levelIdx)
	spliceLeftOf(anchor, higher)

	t.promoteIfBoundary(higher, levelIdx+1)
}

// anchorFor returns n's promoted copy at levelIdx+1, creating one first if
// necessary. Ordinarily invariant 2 guarantees a pre-existing boundary node
// already has an up neighbour, but one case falls outside that invariant:
// when n is the tail of what was, until this call, the tree's top level.
// Nothing obligates a top-level tail to have a promoted copy of itself
// (invariant 2 constrains consecutive existing levels, not what sits above
// the top, and the top level never carries a non-tail node of its own —
// see Tree's doc comment), yet this insert is about to make that level
// non-top, so n now needs an anchor too. The caller's appendEmptyLevel
// call already gives n that anchor before reaching here whenever levelIdx
// was the top, and every non-top level's tail carries an up pointer by
// construction, so a tail still lacking one here is an invariant
// violation. The promote-and-splice path below is a fallback for a
// non-tail node only: it promotes n and splices the copy in immediately
// left of the level-above tail.
func (t *Tree[K, V]) anchorFor(n *Node[K, V], levelIdx int) *Node[K, V] {
	if n.up != nil {
		return n.up
	}
	if n.isTail {
		invariantViolated("tail has no promoted copy after level-above was ensured")
	}
	p := n.promote()
	spliceLeftOf(t.levels[levelIdx+1].tail, p)
	return p
}

// settleTop restores Build's terminal invariant after insert touches the
// top level: while the top level holds any non-tail node, a full next
// level is built above it (promoting every current boundary node, not
// only the tail), exactly as the bulk constructor does, until the top is
// nothing but its tail. This is stronger than the reference's single
// tail-only _add_empty_level call guarded by a plain `if` (which can leave
// the top level with non-tail nodes whenever none of them happen to be a
// boundary on that one attempt); looping buildNextLevel here is what makes
// Insert produce the same root hash as a from-scratch build over the same
// key set (spec.md §8 property 2).
func (t *Tree[K, V]) settleTop() {
	for topNonTailCount(t.top()) > 0 {
		t.levels = append(t.levels, buildNextLevel(t.top()))
	}
}
