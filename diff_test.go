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

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

func assertKeySet(t *testing.T, got []int, want []int) {
	t.Helper()

	gotSorted := append([]int{}, got...)
	sort.Ints(gotSorted)
	wantSorted := append([]int{}, want...)
	sort.Ints(wantSorted)

	if len(gotSorted) != len(wantSorted) {
		t.Fatalf("diff returned %v, want %v", gotSorted, wantSorted)
	}
	for i := range gotSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Fatalf("diff returned %v, want %v", gotSorted, wantSorted)
		}
	}
}

// S5: diff subset.
func TestDiffSubset(t *testing.T) {
	t.Parallel()

	local := Build(rangeRecords(0, 11), intCodec)
	remote := Build(rangeRecords(0, 15), intCodec)

	got := Diff(local.Root(), remote.Root(), intCodec.Less)
	assertKeySet(t, got, keysFromRange(11, 15))
}

// S6: diff superset.
func TestDiffSuperset(t *testing.T) {
	t.Parallel()

	local := Build(rangeRecords(0, 11), intCodec)
	remote := Build(rangeRecords(0, 10), intCodec)

	got := Diff(local.Root(), remote.Root(), intCodec.Less)
	assertKeySet(t, got, nil)
}

// S7: diff partial, with gaps on the local side.
func TestDiffPartial(t *testing.T) {
	t.Parallel()

	localKeys := []int{0, 1, 2, 3, 4, 6, 7}
	localRecords := make([]Record[int, string], len(localKeys))
	for i, k := range localKeys {
		localRecords[i] = Record[int, string]{Key: k, Value: strconv.Itoa(k)}
	}

	local := Build(localRecords, intCodec)
	remote := Build(rangeRecords(0, 18), intCodec)

	got := Diff(local.Root(), remote.Root(), intCodec.Less)
	assertKeySet(t, got, []int{5, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17})
}

func TestDiffIdenticalTreesReportNothing(t *testing.T) {
	t.Parallel()

	a := Build(rangeRecords(0, 30), intCodec)
	b := Build(rangeRecords(0, 30), intCodec)

	got := Diff(a.Root(), b.Root(), intCodec.Less)
	assertKeySet(t, got, nil)
}

func TestDiffUnequalHeights(t *testing.T) {
	t.Parallel()

	local := Build(rangeRecords(0, 3), intCodec)
	remote := Build(rangeRecords(0, 5000), intCodec)

	got := Diff(local.Root(), remote.Root(), intCodec.Less)
	assertKeySet(t, got, keysFromRange(3, 5000))
}

// property 5: diff correctness over random, possibly-overlapping record
// sets, fuzzed in the spirit of the reference's test_prolly_tree_diff.py.
func TestQuickDiffCorrectness(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		universe := 400
		localKeys := map[int]struct{}{}
		remoteKeys := map[int]struct{}{}
		for k := 0; k < universe; k++ {
			if rnd.Intn(2) == 0 {
				localKeys[k] = struct{}{}
			}
			if rnd.Intn(2) == 0 {
				remoteKeys[k] = struct{}{}
			}
		}

		var localRecords, remoteRecords []Record[int, string]
		var wantMissing []int
		for k := 0; k < universe; k++ {
			_, inLocal := localKeys[k]
			_, inRemote := remoteKeys[k]
			if inLocal {
				localRecords = append(localRecords, Record[int, string]{Key: k, Value: strconv.Itoa(k)})
			}
			if inRemote {
				remoteRecords = append(remoteRecords, Record[int, string]{Key: k, Value: strconv.Itoa(k)})
			}
			if inRemote && !inLocal {
				wantMissing = append(wantMissing, k)
			}
		}
		if len(localRecords) == 0 || len(remoteRecords) == 0 {
			continue
		}

		local := Build(localRecords, intCodec)
		remote := Build(remoteRecords, intCodec)

		got := Diff(local.Root(), remote.Root(), intCodec.Less)
		assertKeySet(t, got, wantMissing)
	}
}
