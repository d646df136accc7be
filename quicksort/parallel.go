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
	"cmp"
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-quicksort/workerpool"
)

// ParallelSlice sorts all of data in place like Slice. After a range larger
// than ParallelCutoff is partitioned, its left side is handed to another
// goroutine when one of GOMAXPROCS slots is free and sorted inline otherwise.
// The two sides of a partition never overlap, so no locking is involved.
//
// If ctx is cancelled the remaining work is abandoned and ctx.Err() is
// returned; data is then a permutation of the input but not sorted.
func ParallelSlice[T cmp.Ordered](ctx context.Context, data []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if parallelDisabled || len(data) <= parallelCutoff || runtime.GOMAXPROCS(0) == 1 {
		sortOrdered(data, 0, len(data)-1)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	g.Go(func() error {
		return parallelSort(gctx, g, data, 0, len(data)-1, parallelCutoff)
	})
	return g.Wait()
}

func parallelSort[T cmp.Ordered](ctx context.Context, g *errgroup.Group, data []T, low, high, cutoff int) error {
	for high-low+1 > cutoff {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := partitionOrdered(data, low, high)
		left, right := low, p-1
		spawned := g.TryGo(func() error {
			return parallelSort(ctx, g, data, left, right, cutoff)
		})
		if !spawned {
			if err := parallelSort(ctx, g, data, left, right, cutoff); err != nil {
				return err
			}
		}
		low = p + 1
	}

	sortOrdered(data, low, high)
	return nil
}

// SortEach sorts every slice in batches independently, spreading the
// slices over pool. A nil pool sorts them one after another on the calling
// goroutine.
func SortEach[T cmp.Ordered](pool *workerpool.Pool, batches [][]T) {
	if pool == nil {
		for _, b := range batches {
			sortOrdered(b, 0, len(b)-1)
		}
		return
	}

	pool.ParallelForAtomic(len(batches), func(i int) {
		sortOrdered(batches[i], 0, len(batches[i])-1)
	})
}
