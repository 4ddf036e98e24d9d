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

// Stats is a point-in-time snapshot of a tree's shape, gathered by walking
// every level once. It exists for diagnostics and tests, not for any
// operation the tree relies on internally.
type Stats struct {
	Height int

	// NodeCountByLevel[i] is the number of non-tail nodes at level i.
	NodeCountByLevel []int

	// BucketSizes[i] holds the bucket size (number of level-(i-1) children)
	// of every non-tail level-i node, in left-to-right order; the tail's
	// bucket is not included. Empty at level 0, which has no buckets of its
	// own.
	BucketSizes [][]int

	// BoundaryHitRate is the fraction of level-0 non-tail nodes classified
	// as a boundary, i.e. the empirical rate the chunking policy actually
	// produced over this tree's content.
	BoundaryHitRate float64
}

// CollectStats walks t's levels and assembles a Stats snapshot, mirroring
// the teacher's pattern of a single recursive/iterative pass returning
// aggregate counts (see analytics.go's TreeWitness) rather than computing
// each field with a separate traversal.
func (t *Tree[K, V]) CollectStats() Stats {
	s := Stats{
		Height:           t.Height(),
		NodeCountByLevel: make([]int, len(t.levels)),
		BucketSizes:      make([][]int, len(t.levels)),
	}

	var boundaryCount, total int
	for i, lv := range t.levels {
		nodes := lv.nodesLeftToRight()
		count := 0
		var sizes []int
		for _, n := range nodes {
			if n.isTail {
				continue
			}
			count++
			if i == 0 {
				total++
				if n.isBoundaryNode() {
					boundaryCount++
				}
			} else {
				sizes = append(sizes, len(bucket(n)))
			}
		}
		s.NodeCountByLevel[i] = count
		s.BucketSizes[i] = sizes
	}

	if total > 0 {
		s.BoundaryHitRate = float64(boundaryCount) / float64(total)
	}
	return s
}
