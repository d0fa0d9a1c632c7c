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

package jsparse_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/ngprovide/jsast"
	. "fillmore-labs.com/ngprovide/jsparse"
)

func texts(cs []*jsast.Comment) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Text)
	}

	return out
}

func TestComments(t *testing.T) {
	t.Parallel()

	const src = `// a
var x = 1; // b
// c
/* d */ foo();
/* e */
`

	prog, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(prog.Body), 2; got != want {
		t.Fatalf("Got %d statements, want %d", got, want)
	}

	tests := []struct {
		name string
		got  []*jsast.Comment
		want []string
	}{
		{"VarLeading", prog.Body[0].Attached().Leading, []string{"// a"}},
		{"VarTrailing", prog.Body[0].Attached().Trailing, []string{"// b"}},
		{"CallLeading", prog.Body[1].Attached().Leading, []string{"// c", "/* d */"}},
		{"CallTrailing", prog.Body[1].Attached().Trailing, []string{}},
		{"Dangling", prog.Dangling, []string{"/* e */"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, texts(tt.got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestSameLineComments(t *testing.T) {
	t.Parallel()

	const src = "a(); /* b */ c(); /* d */\ne();\n"

	prog, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(prog.Body), 3; got != want {
		t.Fatalf("Got %d statements, want %d", got, want)
	}

	tests := []struct {
		name string
		got  []*jsast.Comment
		want []string
	}{
		{"FirstTrailing", prog.Body[0].Attached().Trailing, []string{}},
		{"SecondLeading", prog.Body[1].Attached().Leading, []string{"/* b */"}},
		{"SecondTrailing", prog.Body[1].Attached().Trailing, []string{"/* d */"}},
		{"ThirdLeading", prog.Body[2].Attached().Leading, []string{}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, texts(tt.got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestExtent(t *testing.T) {
	t.Parallel()

	const src = "// lead\nfunction f() {} // tail\n"

	prog, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	fn := prog.Body[0]
	if got, want := src[fn.Extent().Start:fn.Extent().End], "function f() {}"; got != want {
		t.Errorf("Got statement source %q, want %q", got, want)
	}

	tail := fn.Attached().Trailing[0]
	if got, want := src[tail.Span.Start:tail.Span.End], "// tail"; got != want {
		t.Errorf("Got comment source %q, want %q", got, want)
	}
}

func TestNested(t *testing.T) {
	t.Parallel()

	const src = `for (;;) {
  a();
}
try {
  b();
} catch (e) {} finally {
  c();
}
switch (x) {
  case 1:
    d();
  default:
}
class A {
  m() {
    e();
  }
}
`

	prog, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	var calls []string

	jsast.Inspect(prog, func(n jsast.Node) bool {
		if call, ok := n.(*jsast.CallExpr); ok {
			calls = append(calls, jsast.Print(call.Fun))
		}

		return true
	})

	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, calls); diff != "" {
		t.Errorf("Parsed calls mismatch (-want +got):\n%s", diff)
	}

	if got := jsast.Print(prog); got != src {
		t.Errorf("Got printed program %q, want %q", got, src)
	}
}

func TestStatements(t *testing.T) {
	t.Parallel()

	const src = `class A {}
function* gen() {}
let y;
`

	prog, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	raw, ok := prog.Body[0].(*jsast.RawStmt)
	if !ok || raw.Text != "class A {}" {
		t.Errorf("Got %#v, want raw class declaration", prog.Body[0])
	}

	fn, ok := prog.Body[1].(*jsast.FuncDecl)
	if !ok || !fn.Generator || fn.ID.Name != "gen" {
		t.Errorf("Got %#v, want generator declaration", prog.Body[1])
	}

	if got, want := prog.Body[1].Position(), (jsast.Pos{Line: 2, Column: 1}); got != want {
		t.Errorf("Got position %v, want %v", got, want)
	}

	decl, ok := prog.Body[2].(*jsast.VarDecl)
	if !ok || decl.Kind != "let" || len(decl.Decls) != 1 || decl.Decls[0].Init != nil {
		t.Errorf("Got %#v, want uninitialized let declaration", prog.Body[2])
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), []byte("var ok = 1;\nfunction (\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, ErrSyntax)
	}

	if !strings.Contains(err.Error(), "at line ") {
		t.Errorf("Got error %q, want position", err)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	prog, err := Parse(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(prog.Body) != 0 || len(prog.Dangling) != 0 {
		t.Errorf("Got %#v, want empty program", prog)
	}
}
