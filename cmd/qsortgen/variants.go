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

package main

import (
	"fmt"
	"strings"
)

// Variant describes one type-specialized rendition of the quicksort template.
type Variant struct {
	Name      string // "ordered", "func"
	Suffix    string // appended to every generated function name
	TypeParam string // type parameter list of every generated function
	Param     string // extra trailing parameter, "" for none
	Arg       string // forwards Param in recursive calls
	LessEq    string // printf format for "a is not greater than b"
	Import    string // import path required by TypeParam, "" for none
}

// OrderedVariant compares elements with the built-in <= operator.
func OrderedVariant() Variant {
	return Variant{
		Name:      "ordered",
		Suffix:    "Ordered",
		TypeParam: "T cmp.Ordered",
		LessEq:    "%s <= %s",
		Import:    "cmp",
	}
}

// FuncVariant compares elements with a caller-supplied three-way comparator.
func FuncVariant() Variant {
	return Variant{
		Name:      "func",
		Suffix:    "CmpFunc",
		TypeParam: "T any",
		Param:     ", cmp func(a, b T) int",
		Arg:       ", cmp",
		LessEq:    "cmp(%s, %s) <= 0",
	}
}

// GetVariant returns the variant registered under name.
func GetVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "ordered":
		return OrderedVariant(), nil
	case "func":
		return FuncVariant(), nil
	default:
		return Variant{}, fmt.Errorf("unknown variant %q", name)
	}
}

// AvailableVariants lists the variant names accepted by -variants.
func AvailableVariants() []string {
	return []string{"ordered", "func"}
}

func parseVariants(s string) ([]Variant, error) {
	var result []Variant
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return parseVariants(strings.Join(AvailableVariants(), ","))
		}
		v, err := GetVariant(p)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no valid variants specified")
	}
	return result, nil
}
