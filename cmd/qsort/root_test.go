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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSortArgs(t *testing.T) {
	out, _, err := execute(t, "", "5", "2", "9", "3", "7", "6", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 5 6 7 9\n", out)
}

func TestSortNegativeArgs(t *testing.T) {
	out, _, err := execute(t, "", "--", "-3", "10", "-7", "0")
	require.NoError(t, err)
	assert.Equal(t, "-7 -3 0 10\n", out)
}

func TestSortStdinLines(t *testing.T) {
	stdin := "4 3 2 1\n\n3 1 3 2 3\n1\n   \n1 2 3 4\n"
	for _, mode := range []string{modeRecursive, modeIterative, modeParallel} {
		t.Run(mode, func(t *testing.T) {
			out, _, err := execute(t, stdin, "--mode", mode, "--workers", "3")
			require.NoError(t, err)
			assert.Equal(t, "1 2 3 4\n1 2 3 3 3\n1\n1 2 3 4\n", out)
		})
	}
}

func TestSortEmptyStdin(t *testing.T) {
	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSortFloat(t *testing.T) {
	out, _, err := execute(t, "", "--float", "--", "2.5", "1", "-0.25", "1e3")
	require.NoError(t, err)
	assert.Equal(t, "-0.25 1 2.5 1000\n", out)
}

func TestSortUnique(t *testing.T) {
	out, _, err := execute(t, "3 1 3 2 3\n7 7 7\n", "--unique")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n7\n", out)
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "1 2 2 3\n3 1\n5\n", "--check")
	require.NoError(t, err)
	assert.Equal(t, "sorted\nunsorted\nsorted\n", out)
}

func TestInvalidNumber(t *testing.T) {
	_, stderr, err := execute(t, "1 2\n3 x 4\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sequence 2: invalid number "x"`)
	assert.Contains(t, stderr, "Error:")
}

func TestFloatRejectedAsInt(t *testing.T) {
	_, _, err := execute(t, "", "1", "2.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid number "2.5"`)
}

func TestUnknownMode(t *testing.T) {
	_, _, err := execute(t, "", "--mode", "bogo", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "bogo"`)
}

func TestVerboseLogs(t *testing.T) {
	out, stderr, err := execute(t, "", "-v", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 2\n", out)
	assert.Contains(t, stderr, "ns=qsort at=read sequences=1")
	assert.Contains(t, stderr, "ns=qsort at=sort state=success sequences=1 mode=recursive")
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "", "2", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestFloatRejectsNaN(t *testing.T) {
	for _, args := range [][]string{
		{"--float", "--", "3", "NaN", "1", "2", "NaN", "0"},
		{"--float", "--unique", "--", "NaN", "NaN", "1"},
		{"--float", "--check", "--", "1", "nan"},
	} {
		_, _, err := execute(t, "", args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "sequence 1: invalid number")
		assert.Contains(t, err.Error(), "NaN is not ordered")
	}
}

func TestFloatAcceptsInfinities(t *testing.T) {
	out, _, err := execute(t, "", "--float", "--", "1", "-Inf", "+Inf", "0")
	require.NoError(t, err)
	assert.Equal(t, "-Inf 0 1 +Inf\n", out)
}

func TestUniqueKeepsEveryDistinctValue(t *testing.T) {
	stdin := "5 1 5 3 1 3 9\n2 2\n"
	for _, mode := range []string{modeRecursive, modeIterative, modeParallel} {
		t.Run(mode, func(t *testing.T) {
			out, _, err := execute(t, stdin, "--unique", "--mode", mode)
			require.NoError(t, err)
			assert.Equal(t, "1 3 5 9\n2\n", out)
		})
	}
}

func TestUniqueFloat(t *testing.T) {
	out, _, err := execute(t, "", "--float", "--unique", "--", "2.5", "1", "2.5", "-1", "1")
	require.NoError(t, err)
	assert.Equal(t, "-1 1 2.5\n", out)
}
