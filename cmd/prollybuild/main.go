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

// Command prollybuild reads a newline-delimited "key,value" corpus from
// stdin or a file and builds a tree over it, printing its height and root
// hash. Grounded in the teacher's benchs/main.go and
// cmd/fuzzinsertstemordered command-line harness shape: a plain main,
// panic on a malformed input line rather than threading an error back up
// through a non-existent caller.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	prollytree "github.com/prollytree/prollytree"
)

func main() {
	path := flag.String("f", "", "corpus file (default: stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		r = f
	}

	var records []prollytree.Record[int64, string]
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ",")
		if !ok {
			panic(fmt.Sprintf("malformed line %q: want key,value", line))
		}
		k, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			panic(err)
		}
		records = append(records, prollytree.Record[int64, string]{Key: k, Value: value})
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}

	tree := prollytree.Build(records, int64Codec)
	root := tree.Root()
	stats := tree.CollectStats()

	fmt.Printf("records:  %d\n", len(records))
	fmt.Printf("height:   %d\n", tree.Height())
	fmt.Printf("root:     %s\n", root.Hash())
	fmt.Printf("merkel:   %s\n", root.MerkelHash())
	fmt.Printf("boundary hit rate (level 0): %.4f\n", stats.BoundaryHitRate)
}

var int64Codec = prollytree.Codec[int64, string]{
	Less:        func(a, b int64) bool { return a < b },
	EncodeKey:   func(k int64) []byte { return []byte(strconv.FormatInt(k, 10)) },
	EncodeValue: func(v string) []byte { return []byte(v) },
}
