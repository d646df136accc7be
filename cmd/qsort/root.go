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
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quicksort/quicksort"
	"github.com/ajroetker/go-quicksort/workerpool"
)

// Sorting modes accepted by --mode.
const (
	modeRecursive = "recursive"
	modeIterative = "iterative"
	modeParallel  = "parallel"
)

type options struct {
	float   bool
	unique  bool
	check   bool
	verbose bool
	mode    string
	workers int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "qsort [flags] [numbers...]",
		Short: "Sort sequences of numbers with midpoint-pivot quicksort",
		Long: `qsort sorts the numbers given as arguments, or each line of stdin when
no arguments are given, and prints them space separated in ascending order.

Put "--" before the numbers when the first one is negative.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.float, "float", false, "parse values as float64 instead of int64")
	f.BoolVar(&opts.unique, "unique", false, "drop duplicate values after sorting")
	f.BoolVar(&opts.check, "check", false, "print sorted or unsorted for each sequence instead of sorting it")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	f.StringVar(&opts.mode, "mode", modeRecursive, "sorting mode: recursive, iterative or parallel")
	f.IntVar(&opts.workers, "workers", 0, "number of lines sorted concurrently (0 means GOMAXPROCS)")

	return cmd
}

func run(ctx context.Context, opts *options, args []string, in io.Reader, out, errOut io.Writer) error {
	log := logger.NewWriter("ns=qsort", io.Discard)
	if opts.verbose {
		log = logger.NewWriter("ns=qsort", errOut)
	}

	switch opts.mode {
	case modeRecursive, modeIterative, modeParallel:
	default:
		return errors.Errorf("unknown mode %q (want %s, %s or %s)", opts.mode, modeRecursive, modeIterative, modeParallel)
	}

	lines, err := readSequences(args, in)
	if err != nil {
		return log.Error(err)
	}
	log.At("read").Logf("sequences=%d", len(lines))

	if opts.float {
		return process(ctx, opts, lines, parseFloat, formatFloat, out, log)
	}
	return process(ctx, opts, lines, parseInt, formatInt, out, log)
}

// readSequences returns the tokens of each sequence: args as one sequence,
// or one sequence per non-empty line of in.
func readSequences(args []string, in io.Reader) ([][]string, error) {
	if len(args) > 0 {
		return [][]string{args}, nil
	}

	var lines [][]string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}

	return lo.Filter(lines, func(tokens []string, _ int) bool {
		return len(tokens) > 0
	}), nil
}

func process[T cmp.Ordered](ctx context.Context, opts *options, lines [][]string, parse func(string) (T, error), format func(T) string, out io.Writer, log *logger.Logger) error {
	seqs := make([][]T, len(lines))
	for i, tokens := range lines {
		seq := make([]T, len(tokens))
		for j, tok := range tokens {
			v, err := parse(tok)
			if err != nil {
				return log.Error(errors.Wrapf(err, "sequence %d: invalid number %q", i+1, tok))
			}
			seq[j] = v
		}
		seqs[i] = seq
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	sortLog := log.At("sort").Start()
	results := make([]string, len(seqs))
	switch {
	case opts.check:
		pool.ParallelForAtomic(len(seqs), func(i int) {
			results[i] = "unsorted"
			if quicksort.IsSorted(seqs[i]) {
				results[i] = "sorted"
			}
		})
	case opts.mode == modeRecursive:
		quicksort.SortEach(pool, seqs)
	default:
		errs := make([]error, len(seqs))
		pool.ParallelForAtomic(len(seqs), func(i int) {
			errs[i] = sortSequence(ctx, opts.mode, seqs[i])
		})
		for i, err := range errs {
			if err != nil {
				return sortLog.Error(errors.Wrapf(err, "sequence %d", i+1))
			}
		}
	}
	sortLog.Successf("sequences=%d mode=%s workers=%d", len(seqs), opts.mode, pool.NumWorkers())

	if !opts.check {
		pool.ParallelFor(len(seqs), func(start, end int) {
			for i := start; i < end; i++ {
				results[i] = render(seqs[i], opts.unique, format)
			}
		})
	}

	w := bufio.NewWriter(out)
	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	return errors.Wrap(w.Flush(), "writing output")
}

// sortSequence sorts seq with the iterative or parallel sorter.
func sortSequence[T cmp.Ordered](ctx context.Context, mode string, seq []T) error {
	if mode == modeParallel {
		return quicksort.ParallelSlice(ctx, seq)
	}
	quicksort.SortIterative(seq, 0, len(seq)-1)
	return nil
}

// render joins a sorted sequence into an output line. With unique, runs of
// equal values collapse to one; seq must already be sorted.
func render[T cmp.Ordered](seq []T, unique bool, format func(T) string) string {
	if unique {
		seq = lo.Uniq(seq)
	}
	return strings.Join(lo.Map(seq, func(v T, _ int) string {
		return format(v)
	}), " ")
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// errNaN rejects NaN, which has no place in an ascending order under <=.
var errNaN = errors.New("NaN is not ordered")

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, errNaN
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
