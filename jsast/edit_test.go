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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/ngprovide/internal/testsource"
	. "fillmore-labs.com/ngprovide/jsast"
)

func holderDecl(name string) *VarDecl {
	return &VarDecl{Kind: "var", Decls: []*Declarator{{ID: id(name), Init: &ArrayLit{}}}}
}

func callStmt(name string) *ExprStmt { return &ExprStmt{X: &CallExpr{Fun: id(name)}} }

func TestApply(t *testing.T) {
	t.Parallel()

	const src = `var cfg = {
  // timeout in ms
  timeout: 10 /* keep */
};
foo(/* why */ 1);


describe("x", function() {
  /* @ngProvide */
  function Foo() {} // done

  if (a) b(); // why
  else c();
});
`

	const want = `var cfg = {
  // timeout in ms
  timeout: 10 /* keep */
};
foo(/* why */ 1);


describe("x", function() {
  /* @ngProvide */
  var Foo = []; // done
  register();

  if (a) b(); // why
  else c();
});
`

	prog := testsource.Parse(t, src)
	fn := testsource.First[*FuncDecl](t, prog)

	holder := commented(holderDecl("Foo"), fn.Comments.Clone())

	got, err := Apply([]byte(src), []Edit{{Old: fn, New: []Stmt{holder, callStmt("register")}}})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNested(t *testing.T) {
	t.Parallel()

	const src = "function a() {\n  function b() {}\n}\nx();\n"

	prog := testsource.Parse(t, src)
	outer := prog.Body[0].(*FuncDecl)
	inner := outer.Body.Body[0]

	edits := []Edit{
		{Old: inner, New: []Stmt{callStmt("y")}},
		{Old: outer, New: []Stmt{callStmt("z")}},
	}

	got, err := Apply([]byte(src), edits)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff("z();\nx();\n", string(got)); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNone(t *testing.T) {
	t.Parallel()

	const src = "a();\n\n// b\n"

	got, err := Apply([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != src {
		t.Errorf("Got %q, want %q", got, src)
	}
}

func TestApplyUnparsed(t *testing.T) {
	t.Parallel()

	_, err := Apply([]byte("a();\n"), []Edit{{Old: callStmt("a"), New: nil}})
	if !errors.Is(err, ErrNoExtent) {
		t.Errorf("Got error %v, want %v", err, ErrNoExtent)
	}
}
