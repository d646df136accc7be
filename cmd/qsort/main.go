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

// Command qsort sorts sequences of numbers with the quicksort package.
//
// Usage:
//
//	qsort 5 2 9 3 7 6 1          # prints 1 2 3 5 6 7 9
//	qsort -- -3 10 -7            # "--" before negative numbers
//	printf '3 1 2\n9 8\n' | qsort --mode iterative
//	qsort --float --unique 2.5 1 2.5
//
// With no positional arguments every non-empty line of stdin is an
// independent sequence; lines are sorted concurrently and printed in order.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
