// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It handles the boilerplate of parsing source fragments and locating nodes in the result.
package testsource

import (
	"bytes"
	"context"
	"testing"

	"fillmore-labs.com/ngprovide/jsast"
	"fillmore-labs.com/ngprovide/jsparse"
)

// Parse parses JavaScript source code into a [jsast.Program], failing the test on errors.
func Parse(tb testing.TB, src string) *jsast.Program {
	tb.Helper()

	prog, err := jsparse.Parse(context.Background(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return prog
}

// Suite parses a statement-level fragment.
// The provided source `src` is wrapped in a test suite callback `describe("test", function() { ... });`,
// the usual position of annotated controllers.
//
// Returns:
//   - *jsast.Program: The parsed program.
//   - *jsast.FuncExpr: The callback wrapping the source code.
func Suite(tb testing.TB, src string) (prog *jsast.Program, fn *jsast.FuncExpr) {
	tb.Helper()

	prog = Parse(tb, wrapSource(src))

	return prog, First[*jsast.FuncExpr](tb, prog)
}

// First returns the first node of type T in depth-first order below root.
func First[T jsast.Node](tb testing.TB, root jsast.Node) T {
	tb.Helper()

	var (
		found T
		ok    bool
	)

	jsast.Inspect(root, func(n jsast.Node) bool {
		if ok {
			return false
		}

		found, ok = n.(T)

		return !ok
	})

	if !ok {
		tb.Fatalf("Can't find %T", found)
	}

	return found
}

func wrapSource(src string) string {
	const (
		header     = "describe(\"test\", function() {\n"
		suffix     = "\n});\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.String()
}
