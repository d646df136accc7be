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

import "cmp"

//go:generate go run ../cmd/qsortgen -output . -variants ordered,func

// bounds is a closed index range [low, high] awaiting partitioning.
type bounds struct {
	low, high int
}

// Sort sorts data[low:high+1] in place into non-decreasing order.
// Elements outside the range are not touched.
//
// A range with low >= high is already sorted. Indices outside data panic.
func Sort[T cmp.Ordered](data []T, low, high int) {
	sortOrdered(data, low, high)
}

// Slice sorts all of data in place.
func Slice[T cmp.Ordered](data []T) {
	sortOrdered(data, 0, len(data)-1)
}

// Partition moves the midpoint element of data[low:high+1] to its final
// sorted position within the range and returns that index. Afterwards every
// element in [low, p) is <= data[p] and every element in (p, high] is > data[p].
//
// Requires low <= high.
func Partition[T cmp.Ordered](data []T, low, high int) int {
	return partitionOrdered(data, low, high)
}

// SortFunc is Sort with a three-way comparator in the style of cmp.Compare:
// cmp(a, b) is negative when a < b, zero when equal and positive when a > b.
func SortFunc[T any](data []T, low, high int, cmp func(a, b T) int) {
	sortCmpFunc(data, low, high, cmp)
}

// SliceFunc sorts all of data in place using cmp.
func SliceFunc[T any](data []T, cmp func(a, b T) int) {
	sortCmpFunc(data, 0, len(data)-1, cmp)
}

// PartitionFunc is Partition with a three-way comparator.
func PartitionFunc[T any](data []T, low, high int, cmp func(a, b T) int) int {
	return partitionCmpFunc(data, low, high, cmp)
}

// SortIterative produces the same result as Sort, performing the same
// partitions in the same order, but keeps pending ranges on a heap-allocated
// stack so deep inputs cannot exhaust the goroutine stack.
func SortIterative[T cmp.Ordered](data []T, low, high int) {
	sortIterOrdered(data, low, high)
}

// SortIterativeFunc is SortIterative with a three-way comparator.
func SortIterativeFunc[T any](data []T, low, high int, cmp func(a, b T) int) {
	sortIterCmpFunc(data, low, high, cmp)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
