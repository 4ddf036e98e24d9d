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

// Diff returns the level-0 keys present under rootRemote but absent under
// rootLocal (spec.md §4.7). Semantics are asymmetric: keys only on the
// local side are never reported. less must be the same total order both
// trees were built with.
func Diff[K any, V any](rootLocal, rootRemote *Node[K, V], less func(a, b K) bool) []K {
	local, remote := alignHeights(rootLocal, rootRemote)

	// Each side's first candidate list is its whole aligned level, left to
	// right, ending at the aligned node: a lowered root's own bucket would
	// leave out every node to its left on that level.
	var localNodes, remoteNodes []*Node[K, V]
	for n := local; n != nil; n = n.left {
		localNodes = append(localNodes, n)
	}
	for n := remote; n != nil; n = n.left {
		remoteNodes = append(remoteNodes, n)
	}
	reverseNodes(localNodes)
	reverseNodes(remoteNodes)

	var missing []K
	descend(localNodes, remoteNodes, less, &missing)
	return missing
}

// alignHeights lowers the taller root by stepping down until both sides
// sit at the same level, so the recursive descent always compares
// same-height candidates (spec.md §4.7, "Height alignment").
func alignHeights[K any, V any](local, remote *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	for local.level > remote.level {
		local = local.down
	}
	for remote.level > local.level {
		remote = remote.down
	}
	return local, remote
}

// descend implements the level-by-level sweep: at each level both sides
// hold a candidate list ordered left-to-right; rightmost pointers sweep
// left in lockstep, keys found only on the remote side are reported (once
// they reach level 0), and every node except an equal-key, equal-hash pair
// is marked for descent into its bucket at the next level down. Local-only
// nodes are descended too (never reported): their buckets can hold keys
// that sit under a differently-bounded remote node.
func descend[K any, V any](localNodes, remoteNodes []*Node[K, V], less func(a, b K) bool, missing *[]K) {
	if len(localNodes) == 0 && len(remoteNodes) == 0 {
		return
	}
	if len(localNodes) == 0 {
		for _, n := range remoteNodes {
			collectAllKeys(n, missing)
		}
		return
	}
	if len(remoteNodes) == 0 {
		return
	}

	li, ri := len(localNodes)-1, len(remoteNodes)-1
	var descendLocal, descendRemote []*Node[K, V]

	for li >= 0 && ri >= 0 {
		l, r := localNodes[li], remoteNodes[ri]
		switch {
		case equalKeys(less, l.key, r.key):
			if l.merkelHash != r.merkelHash {
				descendLocal = append(descendLocal, l)
				descendRemote = append(descendRemote, r)
			}
			li--
			ri--
		case less(l.key, r.key):
			// Remote holds a key unknown locally at this position.
			if r.level == 0 {
				*missing = append(*missing, r.key)
			}
			descendRemote = append(descendRemote, r)
			ri--
		default:
			// Local holds an extra key; never reported (asymmetric semantics).
			descendLocal = append(descendLocal, l)
			li--
		}
	}
	// Any remaining remote candidates once local is exhausted are still
	// unmatched remote-only keys at this level.
	for ; ri >= 0; ri-- {
		r := remoteNodes[ri]
		if r.level == 0 {
			*missing = append(*missing, r.key)
		}
		descendRemote = append(descendRemote, r)
	}
	for ; li >= 0; li-- {
		descendLocal = append(descendLocal, localNodes[li])
	}

	// A mismatch discovered between two level-0 nodes means the key is
	// present on both sides with different values; there is no level -1
	// bucket to expand into, so recursion simply stops (spec.md §4.7,
	// "at level < 0, stop").
	if localNodes[0].level == 0 {
		return
	}

	// The sweep above walked right-to-left, so descendLocal/descendRemote
	// were built in descending key order; children expects its marks
	// left-to-right, like every other candidate list in this file.
	reverseNodes(descendLocal)
	reverseNodes(descendRemote)

	nextLocal := children(descendLocal)
	nextRemote := children(descendRemote)
	descend(nextLocal, nextRemote, less, missing)
}

// reverseNodes reverses a node slice in place.
func reverseNodes[K any, V any](nodes []*Node[K, V]) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

// children expands a level's "descend here" marks into the next level
// down: each marked node's bucket (spec.md §4.3), collected via the same
// left-to-right walk the Merkle propagation pass uses.
func children[K any, V any](marked []*Node[K, V]) []*Node[K, V] {
	var out []*Node[K, V]
	for _, n := range marked {
		out = append(out, bucket(n)...)
	}
	return out
}

// collectAllKeys walks a subtree entirely absent locally down to level 0,
// recording every key it heads. Used once the local candidate list runs
// dry while remote candidates remain (spec.md §4.7, "Termination").
func collectAllKeys[K any, V any](n *Node[K, V], missing *[]K) {
	if n.level == 0 {
		*missing = append(*missing, n.key)
		return
	}
	for _, child := range bucket(n) {
		collectAllKeys(child, missing)
	}
}
