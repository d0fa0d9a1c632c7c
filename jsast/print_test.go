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

package jsast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/ngprovide/internal/testsource"
	. "fillmore-labs.com/ngprovide/jsast"
)

func id(name string) *Ident { return &Ident{Name: name} }

func commented(s Stmt, c Comments) Stmt {
	*s.Attached() = c

	return s
}

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "CallOfFunction",
			node: &ExprStmt{X: &CallExpr{Fun: &FuncExpr{Body: &Block{}}}},
			want: "(function() {})();",
		},
		{
			name: "ObjectStatement",
			node: &ExprStmt{X: &ObjectLit{}},
			want: "({});",
		},
		{
			name: "AssignObject",
			node: &ExprStmt{X: &AssignExpr{Op: "=", LHS: &ObjectLit{}, RHS: id("x")}},
			want: "({} = x);",
		},
		{
			name: "MemberOfNew",
			node: &MemberExpr{X: &NewExpr{Fun: id("Foo")}, Sel: id("bar")},
			want: "(new Foo()).bar",
		},
		{
			name: "Computed",
			node: &MemberExpr{X: id("a"), Sel: &Literal{Raw: "0"}, Computed: true},
			want: "a[0]",
		},
		{
			name: "Typeof",
			node: &UnaryExpr{Op: "typeof", X: id("x")},
			want: "typeof x",
		},
		{
			name: "NotBinary",
			node: &UnaryExpr{Op: "!", X: &BinaryExpr{Op: "&&", X: id("a"), Y: id("b")}},
			want: "!(a && b)",
		},
		{
			name: "ArrowObject",
			node: &ArrowFunc{Body: &ObjectLit{Props: []*Property{{Key: id("a"), Value: &Literal{Raw: "1"}}}}},
			want: "() => ({\n  a: 1\n})",
		},
		{
			name: "AsyncGenerator",
			node: &FuncExpr{ID: id("g"), Body: &Block{}, Async: true, Generator: true},
			want: "async function* g() {}",
		},
		{
			name: "VarDecl",
			node: &VarDecl{Kind: "let", Decls: []*Declarator{{ID: id("a"), Init: &Literal{Raw: "1"}}, {ID: id("b")}}},
			want: "let a = 1, b;",
		},
		{
			name: "IfElse",
			node: &IfStmt{Cond: id("a"), Then: &ExprStmt{X: &CallExpr{Fun: id("b")}}, Else: &Block{}},
			want: "if (a) b(); else {}",
		},
		{
			name: "Comments",
			node: commented(&ReturnStmt{}, Comments{
				Leading:  []*Comment{LineComment(" one"), BlockComment(" two ")},
				Trailing: []*Comment{LineComment(" three")},
			}),
			want: "// one\n/* two */\nreturn; // three",
		},
		{
			name: "Dangling",
			node: &Program{Body: []Stmt{&EmptyStmt{}}, Dangling: []*Comment{LineComment(" end")}},
			want: ";\n// end\n",
		},
		{
			name: "BlockDangling",
			node: &Block{Dangling: []*Comment{LineComment(" empty")}},
			want: "{\n  // empty\n}",
		},
		{
			name: "EmptyProgram",
			node: &Program{},
			want: "",
		},
		{
			name: "Property",
			node: &Property{Key: id("k"), Value: id("v"), Computed: true},
			want: "[k]: v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Print(tt.node)); diff != "" {
				t.Errorf("Print mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// canonical is printed unchanged after parsing.
const canonical = `"use strict";
// leading
const x = {
  a: 1,
  [b]: c,
  d
}; // trailing
function f(a, b) {
  if (a === b) {
    return;
  } else if (a) {
    return a;
  }
  for (let i = 0; i < 3; i++) {}
  return typeof a;
}
var g = async (y) => await y;
var h = () => ({
  k: 1
});
obj.method(1, "two", 'three').then(function(v) {
  return !v;
});
new Foo(a, b);
x += 1;
(function() {})();
/* end */
`

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	prog := testsource.Parse(t, canonical)

	var out strings.Builder
	if err := Fprint(&out, prog); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(canonical, out.String()); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment *Comment
		block   bool
		value   string
	}{
		{LineComment(" @ngProvide"), false, " @ngProvide"},
		{BlockComment(" @ngProvide "), true, " @ngProvide "},
		{&Comment{Text: "/**/"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.comment.Text, func(t *testing.T) {
			t.Parallel()

			if got := tt.comment.IsBlock(); got != tt.block {
				t.Errorf("Got IsBlock() = %v, want %v", got, tt.block)
			}

			if got := tt.comment.Value(); got != tt.value {
				t.Errorf("Got Value() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestCommentsClone(t *testing.T) {
	t.Parallel()

	c := Comments{Leading: []*Comment{LineComment("a")}, Trailing: []*Comment{LineComment("b")}}
	clone := c.Clone()
	clone.Leading = append(clone.Leading[:0], LineComment("x"))

	if got := c.Leading[0].Text; got != "//a" {
		t.Errorf("Got %q after modifying clone, want %q", got, "//a")
	}

	if got, want := c.Len(), 2; got != want {
		t.Errorf("Got Len() = %d, want %d", got, want)
	}
}

func TestPrintVerbatim(t *testing.T) {
	t.Parallel()

	call := func(name string) Stmt { return &ExprStmt{X: &CallExpr{Fun: id(name)}} }

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "Plain",
			node: &RawStmt{Text: "class A {}"},
			want: "class A {}",
		},
		{
			name: "Loop",
			node: &RawStmt{
				Text:   "while (x) { old }",
				Nested: []Nested{{Block: &Block{Body: []Stmt{call("f")}}, Start: 10, End: 17}},
			},
			want: "while (x) {\n  f();\n}",
		},
		{
			name: "Case",
			node: &RawStmt{
				Text:   "case 1: old",
				Nested: []Nested{{Block: &Block{Body: []Stmt{call("f"), call("g")}, Bare: true}, Start: 7, End: 11}},
			},
			want: "case 1:\n  f();\n  g();",
		},
		{
			name: "Method",
			node: &RawExpr{
				Text:   "class { m() {} }",
				Nested: []Nested{{Block: &Block{Body: []Stmt{&ReturnStmt{}}}, Start: 12, End: 14}},
			},
			want: "class { m() {\n  return;\n} }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Print(tt.node)); diff != "" {
				t.Errorf("Print mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
