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

// Package dump renders a tree's structure into a form safe to hand to
// spew.Sdump: flat per-level rows instead of the node graph's own
// four-way linked pointers, which spew would otherwise walk in circles
// trying to print. Used only by tests and the prollydump command.
package dump

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	prollytree "github.com/prollytree/prollytree"
)

// Row is one node's worth of structural detail.
type Row[K any, V any] struct {
	Level    int
	Key      K
	HasValue bool
	Value    V
	IsTail   bool
	Hash     string
	Merkel   string
}

// Level renders every node at n's level, left to right ending in the
// tail, regardless of which node in that level n happens to be.
func Level[K any, V any](n *prollytree.Node[K, V]) []Row[K, V] {
	tail := n
	for !tail.IsTail() {
		tail = tail.Right()
	}

	var rows []Row[K, V]
	for cur := tail; cur != nil; cur = cur.Left() {
		v, hasValue := cur.Value()
		row := Row[K, V]{
			Level:    cur.Level(),
			Key:      cur.Key(),
			HasValue: hasValue,
			Value:    v,
			IsTail:   cur.IsTail(),
			Hash:     cur.Hash().String(),
			Merkel:   cur.MerkelHash().String(),
		}
		rows = append([]Row[K, V]{row}, rows...)
	}
	return rows
}

// Sdump renders every level from root down to the base.
func Sdump[K any, V any](root *prollytree.Node[K, V]) string {
	var b strings.Builder
	for n := root; n != nil; n = n.Down() {
		fmt.Fprintf(&b, "level %d:\n%s", n.Level(), spew.Sdump(Level(n)))
	}
	return b.String()
}
