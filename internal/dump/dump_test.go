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

package dump

import (
	"strconv"
	"strings"
	"testing"

	prollytree "github.com/prollytree/prollytree"
)

var testCodec = prollytree.Codec[int, string]{
	Less:        func(a, b int) bool { return a < b },
	EncodeKey:   func(k int) []byte { return []byte(strconv.Itoa(k)) },
	EncodeValue: func(v string) []byte { return []byte(v) },
}

func TestLevelIncludesTail(t *testing.T) {
	t.Parallel()

	var records []prollytree.Record[int, string]
	for k := 0; k < 50; k++ {
		records = append(records, prollytree.Record[int, string]{Key: k, Value: strconv.Itoa(k)})
	}
	tree := prollytree.Build(records, testCodec)

	rows := Level(tree.Root())
	if !rows[len(rows)-1].IsTail {
		t.Fatalf("last row is not the tail")
	}
	for i := 0; i+1 < len(rows)-1; i++ {
		if rows[i].Key >= rows[i+1].Key {
			t.Fatalf("rows not strictly increasing by key at position %d", i)
		}
	}
}

func TestSdumpCoversEveryLevel(t *testing.T) {
	t.Parallel()

	var records []prollytree.Record[int, string]
	for k := 0; k < 200; k++ {
		records = append(records, prollytree.Record[int, string]{Key: k, Value: strconv.Itoa(k)})
	}
	tree := prollytree.Build(records, testCodec)

	out := Sdump(tree.Root())
	for level := 0; level <= tree.Height(); level++ {
		want := "level " + strconv.Itoa(level) + ":"
		if !strings.Contains(out, want) {
			t.Fatalf("Sdump output missing %q", want)
		}
	}
}
