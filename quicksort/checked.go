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

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned, wrapped, by CheckRange and SortChecked.
var ErrInvalidRange = errors.New("quicksort: invalid range")

// CheckRange reports whether [low, high] is a usable range for a slice of
// length n. Empty ranges (high == low-1) are accepted anywhere from the
// start to one past the end, so CheckRange(0, 0, -1) is nil.
func CheckRange(n, low, high int) error {
	if low < 0 || high >= n || low > high+1 {
		return errors.Wrapf(ErrInvalidRange, "low=%d high=%d len=%d", low, high, n)
	}
	return nil
}

// SortChecked validates the range and then sorts it like Sort.
// On error data is left untouched.
func SortChecked[T cmp.Ordered](data []T, low, high int) error {
	if err := CheckRange(len(data), low, high); err != nil {
		return err
	}
	sortOrdered(data, low, high)
	return nil
}
