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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// The template uses << >> delimiters so Go composite literals stay readable.
var sortTemplate = template.Must(template.New("zsort").Delims("<<", ">>").Parse(`// Code generated by qsortgen. DO NOT EDIT.

package <<.Package>>
<<if .Import>>
import "<<.Import>>"
<<end>>
// partition<<.Suffix>> swaps the midpoint of data[low:high+1] into position
// high and moves every element not greater than it in front of it.
// It returns the final index of the pivot.
func partition<<.Suffix>>[<<.TypeParam>>](data []T, low, high int<<.Param>>) int {
	mid := low + (high-low)/2
	data[mid], data[high] = data[high], data[mid]
	pivot := data[high]

	i := low - 1
	for j := low; j < high; j++ {
		if <<printf .LessEq "data[j]" "pivot">> {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

func sort<<.Suffix>>[<<.TypeParam>>](data []T, low, high int<<.Param>>) {
	if low >= high {
		return
	}

	p := partition<<.Suffix>>(data, low, high<<.Arg>>)
	sort<<.Suffix>>(data, low, p-1<<.Arg>>)
	sort<<.Suffix>>(data, p+1, high<<.Arg>>)
}

// sortIter<<.Suffix>> visits ranges in the same order as sort<<.Suffix>>,
// keeping pending ranges on an explicit stack instead of the call stack.
func sortIter<<.Suffix>>[<<.TypeParam>>](data []T, low, high int<<.Param>>) {
	stack := []bounds{{low, high}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.low >= r.high {
			continue
		}

		p := partition<<.Suffix>>(data, r.low, r.high<<.Arg>>)
		// Left on top so it is partitioned first.
		stack = append(stack, bounds{p + 1, r.high}, bounds{r.low, p - 1})
	}
}
`))

// Generator renders the requested variants into OutputDir.
type Generator struct {
	OutputDir string
	Package   string
	Variants  []Variant
}

// Run writes one zsort_<variant>.go file per variant.
func (g *Generator) Run() error {
	for _, v := range g.Variants {
		filename := filepath.Join(g.OutputDir, "zsort_"+v.Name+".go")
		src, err := g.Render(v, filename)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}
	return nil
}

// Render executes the template for v and formats the result.
// filename is only used for import resolution and error messages.
func (g *Generator) Render(v Variant, filename string) ([]byte, error) {
	data := struct {
		Variant
		Package string
	}{v, g.Package}

	var buf bytes.Buffer
	if err := sortTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Name, err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("variant %s: formatting generated code: %w\n%s", v.Name, err, buf.String())
	}
	return formatted, nil
}
