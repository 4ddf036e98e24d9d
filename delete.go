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

// Delete removes k from the tree (spec.md §4.5): locate it, unlink its
// entire promotion column (its node at every level it was ever promoted
// to), collapse any levels left with nothing but a tail, then propagate
// Merkle hashes from the bucket that used to hold it.
func (t *Tree[K, V]) Delete(k K) (*Node[K, V], error) {
	x, err := t.Search(k)
	if err != nil {
		return nil, err
	}

	// b is captured before any unlinking, at level 0, exactly as insert
	// captures its own boundary neighbour up front.
	b := x.nextBoundaryRight()

	for n := x; n != nil; n = n.up {
		left := n.left
		right := n.right
		right.left = left
		if left != nil {
			left.right = right
		}
	}

	t.collapseEmptyLevels()

	if b.up != nil {
		propagate(b.up)
	}

	return x, nil
}

// collapseEmptyLevels strips trailing levels left with no non-tail nodes
// after a delete. A level built from an empty level below it is itself
// always empty (buildNextLevel and appendEmptyLevel promote only a lone
// tail when there is nothing else to promote), so empty levels always form
// a contiguous run at the top; stripping while the second-from-top level
// is tail-only removes exactly that run and nothing else.
//
// The reference's equivalent cleanup only ever pops levels whose index is
// 2 or higher, so deleting every record down to zero never strips the
// lone level built over the now-empty base level. That gap is not
// reproduced here: an emptied tree is left as a single tail-only level,
// the same shape Build produces from no records.
//
// Popping a level from the slice does not itself touch any node's up
// pointer, so the new top's tail can be left pointing at the tail of the
// level just discarded. That pointer is cleared explicitly, since a later
// insert's anchorFor call trusts a non-nil up pointer to mean a promoted
// copy genuinely still exists above.
func (t *Tree[K, V]) collapseEmptyLevels() {
	for len(t.levels) >= 2 && t.levels[len(t.levels)-2].tail.left == nil {
		t.levels = t.levels[:len(t.levels)-1]
	}
	t.top().tail.up = nil
}
