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
	"os"
	"strconv"
)

// DefaultParallelCutoff is the range size at or below which ParallelSlice
// stops handing work to other goroutines.
const DefaultParallelCutoff = 2048

var (
	// parallelDisabled is set from QSORT_NO_PARALLEL.
	parallelDisabled = envBool("QSORT_NO_PARALLEL")

	// parallelCutoff is set from QSORT_PARALLEL_CUTOFF, never below 1.
	parallelCutoff = envInt("QSORT_PARALLEL_CUTOFF", DefaultParallelCutoff)
)

// ParallelEnabled reports whether ParallelSlice may use more than one goroutine.
func ParallelEnabled() bool {
	return !parallelDisabled
}

// ParallelCutoff returns the range size at or below which ParallelSlice
// sorts sequentially.
func ParallelCutoff() int {
	return parallelCutoff
}

// envBool checks if the named environment variable is set.
// Any non-empty value is considered true, but it is also parsed as a bool so
// that "0" or "false" turn the flag off.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// envInt parses the named environment variable as a positive int, falling
// back to def when unset or malformed.
func envInt(name string, def int) int {
	val := os.Getenv(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return max(n, 1)
}
