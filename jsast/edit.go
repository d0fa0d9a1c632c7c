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

package jsast

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrNoExtent is returned by [Apply] for a statement without a valid source range.
var ErrNoExtent = errors.New("statement has no source range")

// Edit replaces a parsed statement by new statements.
type Edit struct {
	Old Stmt
	New []Stmt
}

// Apply returns a copy of src with the source of every Old statement replaced by the
// printed New statements, leaving all other bytes untouched.
//
// The replaced range reaches from the start of Old to the end of its last trailing
// comment. Leading comments of Old stay in place, so the first new statement is
// printed without leading comments. New statements are indented like the line Old
// starts on. An edit within the range of another edit is skipped; its result is
// part of the enclosing replacement.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	type replacement struct {
		Span
		stmts []Stmt
	}

	rs := make([]replacement, 0, len(edits))

	for _, e := range edits {
		sp := e.Old.Extent()
		if !sp.IsValid() || sp.End > len(src) {
			return nil, fmt.Errorf("%w: %T at %d:%d", ErrNoExtent, e.Old, e.Old.Position().Line, e.Old.Position().Column)
		}

		for _, c := range e.Old.Attached().Trailing {
			sp.End = max(sp.End, min(c.Span.End, len(src)))
		}

		rs = append(rs, replacement{Span: sp, stmts: e.New})
	}

	slices.SortStableFunc(rs, func(a, b replacement) int { return cmp.Compare(a.Start, b.Start) })

	out := make([]byte, 0, len(src))

	var last int

	for _, r := range rs {
		if r.Start < last {
			continue
		}

		out = append(out, src[last:r.Start]...)
		lineStart := bytes.LastIndexByte(src[:r.Start], '\n') + 1
		out = append(out, printReplacement(r.stmts, lastIndent(string(src[lineStart:r.Start])))...)
		last = r.End
	}

	return append(out, src[last:]...), nil
}

func printReplacement(stmts []Stmt, prefix string) string {
	p := printer{prefix: prefix}

	for i, s := range stmts {
		if i == 0 {
			p.stmtTail(s)
			continue
		}

		p.newline()
		p.stmt(s)
	}

	return p.String()
}
