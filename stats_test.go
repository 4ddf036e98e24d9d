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

import "testing"

func TestCollectStats(t *testing.T) {
	t.Parallel()

	tr := Build(rangeRecords(0, 1000), intCodec)
	stats := tr.CollectStats()

	if stats.Height != tr.Height() {
		t.Fatalf("stats.Height = %d, want %d", stats.Height, tr.Height())
	}
	if len(stats.NodeCountByLevel) != tr.Height()+1 {
		t.Fatalf("len(NodeCountByLevel) = %d, want %d", len(stats.NodeCountByLevel), tr.Height()+1)
	}
	if stats.NodeCountByLevel[0] != 1000 {
		t.Fatalf("level-0 node count = %d, want 1000", stats.NodeCountByLevel[0])
	}
	if stats.NodeCountByLevel[tr.Height()] != 0 {
		t.Fatalf("top level node count = %d, want 0 (construction always settles to a tail-only top; Root() returns that tail)", stats.NodeCountByLevel[tr.Height()])
	}
	if stats.BoundaryHitRate <= 0 || stats.BoundaryHitRate >= 1 {
		t.Fatalf("boundary hit rate = %.4f, want strictly between 0 and 1 over 1000 distinct keys", stats.BoundaryHitRate)
	}

	for level := 1; level <= tr.Height(); level++ {
		if len(stats.BucketSizes[level]) != stats.NodeCountByLevel[level] {
			t.Fatalf("level %d: got %d bucket sizes, want %d (one per node)",
				level, len(stats.BucketSizes[level]), stats.NodeCountByLevel[level])
		}
		sum := 0
		for _, size := range stats.BucketSizes[level] {
			sum += size
		}
		// The tail's bucket is not in BucketSizes; its non-tail members
		// (all but the lower tail) make up the rest of the level below.
		tailBucket := len(bucket(tr.levels[level].tail)) - 1
		if sum+tailBucket != stats.NodeCountByLevel[level-1] {
			t.Fatalf("level %d bucket sizes sum to %d plus %d in the tail's bucket, want %d (the level below's node count)",
				level, sum, tailBucket, stats.NodeCountByLevel[level-1])
		}
	}
}

func TestCollectStatsEmptyTree(t *testing.T) {
	t.Parallel()

	tr := Build(nil, intCodec)
	stats := tr.CollectStats()

	if stats.BoundaryHitRate != 0 {
		t.Fatalf("boundary hit rate on an empty tree = %.4f, want 0", stats.BoundaryHitRate)
	}
	if stats.NodeCountByLevel[0] != 0 {
		t.Fatalf("level-0 node count on an empty tree = %d, want 0", stats.NodeCountByLevel[0])
	}
}
