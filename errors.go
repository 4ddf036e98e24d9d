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

import "errors"

var (
	// ErrKeyNotFound is returned by Search and Delete when the requested key
	// is absent from the tree.
	ErrKeyNotFound = errors.New("prollytree: key not found")

	// ErrDuplicateKey is returned by Insert when the key is already present.
	// The Python reference admits duplicate keys silently, producing two
	// equal-key nodes at level 0 and violating the strictly-increasing-key
	// invariant; this is a deliberate correction, not an omission.
	ErrDuplicateKey = errors.New("prollytree: duplicate key")
)

// invariantViolated panics with a descriptive message. Internal consistency
// failures are programmer errors: always fatal, never surfaced as a
// returned error, matching the teacher's own panic("stems are equal") /
// panic("node width not supported") style for conditions that should be
// impossible if the tree's invariants hold.
func invariantViolated(msg string) {
	panic("prollytree: invariant violated: " + msg)
}
