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

// Command prollydump builds a tree from a small generated or file-supplied
// key set and prints its level-by-level structure via internal/dump, the
// way stateless_test.go inspects a proof interactively.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prollytree/prollytree/internal/dump"

	prollytree "github.com/prollytree/prollytree"
)

func main() {
	path := flag.String("f", "", "corpus file (default: generate 0..n)")
	n := flag.Int("n", 40, "record count when generating")
	flag.Parse()

	codec := prollytree.Codec[int64, string]{
		Less:        func(a, b int64) bool { return a < b },
		EncodeKey:   func(k int64) []byte { return []byte(strconv.FormatInt(k, 10)) },
		EncodeValue: func(v string) []byte { return []byte(v) },
	}

	var records []prollytree.Record[int64, string]
	if *path == "" {
		for i := int64(0); i < int64(*n); i++ {
			records = append(records, prollytree.Record[int64, string]{Key: i, Value: strconv.FormatInt(i, 10)})
		}
	} else {
		records = readCorpus(*path)
	}

	tree := prollytree.Build(records, codec)
	fmt.Println(dump.Sdump(tree.Root()))
}

func readCorpus(path string) []prollytree.Record[int64, string] {
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var records []prollytree.Record[int64, string]
	scanner := bufio.NewScanner(io.Reader(f))
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
	return records
}
