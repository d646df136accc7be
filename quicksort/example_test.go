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

package quicksort_test

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/ajroetker/go-quicksort/quicksort"
)

func ExampleSort() {
	data := []int{5, 2, 9, 3, 7, 6, 1}
	quicksort.Sort(data, 0, len(data)-1)
	fmt.Println(data)
	// Output: [1 2 3 5 6 7 9]
}

func ExampleSortFunc() {
	words := []string{"Banana", "apple", "Cherry"}
	quicksort.SortFunc(words, 0, len(words)-1, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	fmt.Println(words)
	// Output: [apple Banana Cherry]
}

func ExampleSortChecked() {
	data := []int{3, 1, 2}
	err := quicksort.SortChecked(data, 0, 3)
	fmt.Println(err)
	// Output: low=0 high=3 len=3: quicksort: invalid range
}
