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

import "strconv"

// intCodec is the Codec every test in this package builds trees with:
// int keys, string values, matching the reference test suite's integer
// timestamp keys (original_source/test_prolly_tree_insertion.py and
// friends).
var intCodec = Codec[int, string]{
	Less:        func(a, b int) bool { return a < b },
	EncodeKey:   func(k int) []byte { return []byte(strconv.Itoa(k)) },
	EncodeValue: func(v string) []byte { return []byte(v) },
}

// rangeRecords builds records for the half-open integer range [lo, hi),
// value equal to the decimal string of the key.
func rangeRecords(lo, hi int) []Record[int, string] {
	records := make([]Record[int, string], 0, hi-lo)
	for k := lo; k < hi; k++ {
		records = append(records, Record[int, string]{Key: k, Value: strconv.Itoa(k)})
	}
	return records
}

// keysFromRange returns the half-open integer range [lo, hi) as a slice,
// for comparing against diff output.
func keysFromRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, k)
	}
	return out
}
