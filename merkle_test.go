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
	"testing"

	"github.com/prollytree/prollytree/crypto"
)

func TestBucketIsContiguousAndLeftToRight(t *testing.T) {
	t.Parallel()

	tr := Build(rangeRecords(0, 300), intCodec)
	root := tr.Root()
	if root.level == 0 {
		t.Skip("tree too small to have an internal root for this test")
	}

	members := bucket(root)
	if len(members) == 0 {
		t.Fatalf("root's bucket is empty")
	}
	for i := 0; i+1 < len(members); i++ {
		if !greaterThanKey(intCodec.Less, members[i+1], members[i].key) {
			t.Fatalf("bucket members are not strictly increasing by key at position %d", i)
		}
	}
	// Every member but the last must be non-boundary; the last closes the
	// bucket.
	for i := 0; i < len(members)-1; i++ {
		if members[i].isBoundaryNode() {
			t.Fatalf("bucket member %d is a boundary, but only the last member should close the bucket", i)
		}
	}
	if !members[len(members)-1].isBoundaryNode() {
		t.Fatalf("bucket's last member must be a boundary node")
	}
}

func less(a, b int) bool { return a < b }

func TestFillMerkelMatchesBucketDigest(t *testing.T) {
	t.Parallel()

	tr := Build(rangeRecords(0, 300), intCodec)
	root := tr.Root()
	if root.level == 0 {
		t.Skip("tree too small to have an internal root for this test")
	}

	members := bucket(root)
	hashes := make([]crypto.Digest, len(members))
	for i, m := range members {
		hashes[i] = m.merkelHash
	}
	want := crypto.SumDigests(hashes)
	if root.merkelHash != want {
		t.Fatalf("root merkel_hash does not match the digest of its bucket's merkel hashes")
	}
}
