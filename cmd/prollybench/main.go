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

// Command prollybench builds many random local/remote tree pairs
// concurrently, diffs each pair, and reports throughput. Grounded in the teacher's
// benchs/main.go (CPU-bound loop, coarse timing around the operation under
// measurement) generalized from a single-goroutine loop to a fan-out over
// golang.org/x/sync/errgroup, since this command's trials are independent
// and the core tree itself is intentionally single-threaded (spec.md §5).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	prollytree "github.com/prollytree/prollytree"
)

func main() {
	pairs := flag.Int("pairs", 8, "number of local/remote tree pairs to build and diff")
	perTree := flag.Int("n", 20000, "records per tree")
	overlap := flag.Float64("overlap", 0.8, "fraction of remote's keys also present locally")
	flag.Parse()

	codec := prollytree.Codec[int64, int64]{
		Less:        func(a, b int64) bool { return a < b },
		EncodeKey:   func(k int64) []byte { return encodeInt64(k) },
		EncodeValue: func(v int64) []byte { return encodeInt64(v) },
	}

	start := time.Now()
	var g errgroup.Group
	totalMissing := make([]int, *pairs)

	for i := 0; i < *pairs; i++ {
		i := i
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(i) + 1))
			localN := int(float64(*perTree) * *overlap)

			remoteKeys := distinctKeys(rnd, *perTree)
			local := buildTree(remoteKeys[:localN], codec)
			remote := buildTree(remoteKeys, codec)

			missing := prollytree.Diff(local.Root(), remote.Root(), codec.Less)
			totalMissing[i] = len(missing)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	elapsed := time.Since(start)

	sum := 0
	for _, m := range totalMissing {
		sum += m
	}
	fmt.Printf("pairs=%d perTree=%d overlap=%.2f elapsed=%v avg_missing=%.1f\n",
		*pairs, *perTree, *overlap, elapsed, float64(sum)/float64(*pairs))
}

// distinctKeys draws n distinct random keys; local's tree in each pair is
// built from a prefix of remote's keys, so the two sides share a genuine
// subset relationship and Diff's output is actually meaningful.
func distinctKeys(rnd *rand.Rand, n int) []int64 {
	seen := make(map[int64]struct{}, n)
	keys := make([]int64, 0, n)
	for len(keys) < n {
		k := rnd.Int63()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func buildTree(keys []int64, codec prollytree.Codec[int64, int64]) *prollytree.Tree[int64, int64] {
	records := make([]prollytree.Record[int64, int64], len(keys))
	for i, k := range keys {
		records[i] = prollytree.Record[int64, int64]{Key: k, Value: k}
	}
	return prollytree.Build(records, codec)
}

func encodeInt64(v int64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
