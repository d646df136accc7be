// Package quicksort provides an in-place, partition-based sort over slices.
//
// The sort picks the midpoint of each range as pivot, moves it to the end of
// the range and partitions with a single forward scan: every element not
// greater than the pivot is swapped to the front, then the pivot is swapped
// into its final position and both sides are sorted recursively.
//
// # Variants
//
//   - Sort, Slice, Partition: elements of any cmp.Ordered type
//   - SortFunc, SliceFunc, PartitionFunc: any element type with a three-way comparator
//   - SortIterative, SortIterativeFunc: explicit range stack instead of recursion
//   - SortChecked: validates the range before sorting
//   - ParallelSlice: partitions large ranges concurrently
//   - SortEach: sorts many independent slices on a worker pool
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/quicksort"
//
//	func Process(data []int) {
//	    quicksort.Sort(data, 0, len(data)-1)
//	}
//
// # Complexity
//
// Average O(n log n) time and O(log n) stack. There is no randomized pivot,
// no median-of-three and no heapsort fallback, so inputs built against the
// midpoint rule still take O(n²) time. Use SortIterative when stack depth
// matters more than call overhead.
//
// Elements must be totally ordered by <=. Floating point input must not
// contain NaN: NaN compares false against everything, so a slice holding
// one comes back unsorted. Use SortFunc with cmp.Compare for such data.
//
// # Ranges
//
// Sort and friends do not validate their range. Indices outside the slice
// trip Go's bounds check and panic; a range with low >= high is a no-op.
// SortChecked reports bad ranges as errors instead.
//
// # Configuration
//
// ParallelSlice honors two environment variables, read once at startup:
//   - QSORT_NO_PARALLEL: any true value makes ParallelSlice sort sequentially
//   - QSORT_PARALLEL_CUTOFF: ranges of at most this many elements are not split
//     across goroutines (default 2048)
package quicksort
