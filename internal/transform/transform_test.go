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

package transform_test

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/internal/testsource"
	. "fillmore-labs.com/ngprovide/internal/transform"
	"fillmore-labs.com/ngprovide/jsast"
)

var variants = map[string]config.Variant{
	"replace.js": config.Replace,
	"proxy.js":   config.Proxy,
}

// TestGolden runs the archives in testdata. Each archive has an input.js and the
// expected output per variant; an archive with no expected output must be left unchanged.
// Replacements are spliced into the input, leaving the rest of the source as is.
func TestGolden(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	if len(files) == 0 {
		t.Fatal("No test archives found")
	}

	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}

		var input string

		want := make(map[string]string)

		for _, f := range ar.Files {
			if f.Name == "input.js" {
				input = string(f.Data)
				continue
			}

			if _, ok := variants[f.Name]; !ok {
				t.Fatalf("Unexpected file %s in %s", f.Name, file)
			}

			want[f.Name] = string(f.Data)
		}

		if len(want) == 0 {
			for name := range variants {
				want[name] = input
			}
		}

		for name, expected := range want {
			t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar")+"/"+name, func(t *testing.T) {
				t.Parallel()

				prog := testsource.Parse(t, input)
				edits := New(Options{Variant: variants[name]}).Edits(prog)

				got, err := jsast.Apply([]byte(input), edits)
				if err != nil {
					t.Fatal(err)
				}

				if diff := cmp.Diff(expected, string(got)); diff != "" {
					t.Errorf("Transform mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestRewriteCount(t *testing.T) {
	t.Parallel()

	const src = `/* @ngProvide */
function A() {}
function B() {
  // @ngProvide
  function C() {}
}
`

	prog := testsource.Parse(t, src)

	if got, want := New(Options{}).Rewrite(prog), 2; got != want {
		t.Errorf("Got %d replacements, want %d", got, want)
	}
}

func TestDescendReplaced(t *testing.T) {
	t.Parallel()

	const src = `/* @ngProvide */
function Outer() {
  /* @ngProvide */
  function Inner() {}
}
`

	tests := []struct {
		name     string
		behavior config.BitMask[config.Behavior]
		want     int
	}{
		{"Default", config.BitMask[config.Behavior]{}, 1},
		{"Descend", config.NewBitMask(config.DescendReplaced), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog := testsource.Parse(t, src)

			got := New(Options{Behavior: tt.behavior}).Rewrite(prog)
			if got != tt.want {
				t.Errorf("Got %d replacements, want %d", got, tt.want)
			}

			if inner := strings.Contains(jsast.Print(prog), "function Inner()"); inner != (tt.want == 1) {
				t.Errorf("Got inner declaration kept = %v, want %v", inner, tt.want == 1)
			}
		})
	}
}

func TestEditsDescendReplaced(t *testing.T) {
	t.Parallel()

	const src = `/* @ngProvide */
function Outer() {
  /* @ngProvide */
  function Inner() {}
}
`

	prog := testsource.Parse(t, src)

	edits := New(Options{Behavior: config.NewBitMask(config.DescendReplaced)}).Edits(prog)
	if got, want := len(edits), 2; got != want {
		t.Fatalf("Got %d edits, want %d", got, want)
	}

	out, err := jsast.Apply([]byte(src), edits)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(out); !strings.Contains(got, `"InnerDirective"`) || strings.Contains(got, "function Inner()") {
		t.Errorf("Got nested declaration not rewritten:\n%s", got)
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	const src = "// Code generated by fixture. DO NOT EDIT.\n/* @ngProvide */\nfunction Foo() {}\n"

	tests := []struct {
		name     string
		behavior config.BitMask[config.Behavior]
		want     int
	}{
		{"Skipped", config.BitMask[config.Behavior]{}, 0},
		{"Included", config.NewBitMask(config.IncludeGenerated), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New(Options{Behavior: tt.behavior}).Rewrite(testsource.Parse(t, src)); got != tt.want {
				t.Errorf("Got %d replacements, want %d", got, tt.want)
			}
		})
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	const src = "/* @inject */\nfunction Foo() {}\n/* @ngProvide */\nfunction Bar() {}\n"

	prog := testsource.Parse(t, src)

	tr := New(Options{Pattern: regexp.MustCompile(`^\s*@inject\s*$`)})
	if got, want := tr.Rewrite(prog), 1; got != want {
		t.Fatalf("Got %d replacements, want %d", got, want)
	}

	out := jsast.Print(prog)
	if !strings.Contains(out, `"FooDirective"`) || !strings.Contains(out, "function Bar() {}") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

type recorder struct {
	accepted, rejected []string
}

func (r *recorder) AcceptedNode(n jsast.Node) {
	r.accepted = append(r.accepted, jsast.Print(n))
}

func (r *recorder) RejectedNode(reason string, _ jsast.Node) {
	r.rejected = append(r.rejected, reason)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	const src = `/* @ngProvide */
var a = 1, b;
/* @ngProvide */
var c = 2;
var d = 3;
`

	var r recorder

	New(Options{Logger: &r}).Transform(testsource.Parse(t, src))

	wantAccepted := []string{"/* @ngProvide */\nvar c = 2;"}
	if diff := cmp.Diff(wantAccepted, r.accepted); diff != "" {
		t.Errorf("Accepted mismatch (-want +got):\n%s", diff)
	}

	wantRejected := []string{
		"at least one variable is missing an initialization",
		"does not contain an NgProvide comment",
	}
	if diff := cmp.Diff(wantRejected, r.rejected); diff != "" {
		t.Errorf("Rejected mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformIsolation(t *testing.T) {
	t.Parallel()

	const src = "/* @ngProvide */\nfunction Foo() {}\n"

	tr := New(Options{})
	a, b := tr.Transform(testsource.Parse(t, src)), tr.Transform(testsource.Parse(t, src))

	if diff := cmp.Diff(jsast.Print(a), jsast.Print(b)); diff != "" {
		t.Errorf("Repeated transformation differs (-first +second):\n%s", diff)
	}
}

func TestCommentsPreserved(t *testing.T) {
	t.Parallel()

	prog, suite := testsource.Suite(t, "// first\n/* @ngProvide */\nfunction Foo() {} // last")

	New(Options{}).Transform(prog)

	if got, want := len(suite.Body.Body), 2; got != want {
		t.Fatalf("Got %d statements, want %d", got, want)
	}

	holder, ok := suite.Body.Body[0].(*jsast.VarDecl)
	if !ok {
		t.Fatalf("Got %T, want holder declaration", suite.Body.Body[0])
	}

	var got []string
	for c := range holder.Attached().All() {
		got = append(got, c.Text)
	}

	want := []string{"// first", "/* @ngProvide */", "// last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}

	if got, want := holder.Position().Line, 4; got != want {
		t.Errorf("Got holder line %d, want %d", got, want)
	}
}
