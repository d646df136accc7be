// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quicksort

import (
	"context"
	"fmt"
	"slices"
	"testing"
)

var benchSizes = []int{100, 1000, 10000, 100000}

func BenchmarkSlice(b *testing.B) {
	for _, n := range benchSizes {
		src := randomInts(n, 1<<30, 42)
		data := make([]int, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				copy(data, src)
				Slice(data)
			}
		})
	}
}

func BenchmarkSortIterative(b *testing.B) {
	for _, n := range benchSizes {
		src := randomInts(n, 1<<30, 42)
		data := make([]int, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				copy(data, src)
				SortIterative(data, 0, n-1)
			}
		})
	}
}

func BenchmarkParallelSlice(b *testing.B) {
	for _, n := range benchSizes {
		src := randomInts(n, 1<<30, 42)
		data := make([]int, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				copy(data, src)
				_ = ParallelSlice(context.Background(), data)
			}
		})
	}
}

func BenchmarkStdlib(b *testing.B) {
	for _, n := range benchSizes {
		src := randomInts(n, 1<<30, 42)
		data := make([]int, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				copy(data, src)
				slices.Sort(data)
			}
		})
	}
}
