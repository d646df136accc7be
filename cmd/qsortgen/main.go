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

// Command qsortgen generates the type-specialized quicksort variants of the
// quicksort package from a single template.
//
// Usage:
//
//	qsortgen -output . -variants ordered,func
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/qsortgen -output .
//
// Each variant is written to zsort_<variant>.go in the output directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir   = flag.String("output", ".", "Output directory (default: current directory)")
	packageName = flag.String("pkg", "quicksort", "Output package name")
	variantList = flag.String("variants", "ordered,func", "Comma-separated variants ("+strings.Join(AvailableVariants(), ",")+")")
)

func main() {
	flag.Parse()

	variants, err := parseVariants(*variantList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageName,
		Variants:  variants,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
