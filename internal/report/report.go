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

// Package report lists the annotated declarations of a program and what the transformer does with them.
package report

import (
	"context"
	"fmt"
	"runtime/trace"
	"slices"
	"strings"

	"fillmore-labs.com/ngprovide/internal/annotation"
	"fillmore-labs.com/ngprovide/internal/astutil"
	"fillmore-labs.com/ngprovide/internal/build"
	"fillmore-labs.com/ngprovide/internal/validate"
	"fillmore-labs.com/ngprovide/jsast"
)

// Finding describes one annotated declaration.
type Finding struct {
	Kind      Kind
	Line      int
	Names     []string
	Directive string // the decorated directive, for [Rewrite]
	Reason    string // why the declaration is not eligible, for [Rejected]
}

// Message returns a human-readable description of the finding.
func (f Finding) Message() string {
	noun, verb := "variable", "is"
	if len(f.Names) > 1 {
		noun, verb = "variables", "are"
	}

	names := concatNames(f.Names)

	switch f.Kind {
	case Rewrite:
		return fmt.Sprintf("function %s decorates the controller of %q", names, f.Directive)

	case Eligible:
		return fmt.Sprintf("%s %s %s eligible for injection", noun, names, verb)

	case Rejected:
		return fmt.Sprintf("%s %s %s not eligible for injection: %s", noun, names, verb, f.Reason)

	default:
		return fmt.Sprintf("unknown finding %s", f.Kind)
	}
}

// Findings is the list of findings of a program, in source order.
type Findings []Finding

// Rejected returns the number of annotated variable declarations that are not eligible.
func (fs Findings) Rejected() int {
	var n int

	for _, f := range fs {
		if f.Kind == Rejected {
			n++
		}
	}

	return n
}

// Check collects the findings of prog. Function declarations nested in an annotated
// function are only reported when descend is set, mirroring the transformer.
func Check(ctx context.Context, prog *jsast.Program, matches annotation.Matcher, descend bool) Findings {
	defer trace.StartRegion(ctx, "Check").End()

	var findings Findings

	jsast.Inspect(prog, func(n jsast.Node) bool {
		switch n := n.(type) {
		case *jsast.FuncDecl:
			if n.ID == nil || !matches(n) {
				return true
			}

			findings = append(findings, Finding{
				Kind:      Rewrite,
				Line:      astutil.Line(n),
				Names:     []string{n.ID.Name},
				Directive: build.DirectiveName(n.ID.Name),
			})

			return descend

		case *jsast.VarDecl:
			status := validate.Check(matches, n)
			if status == validate.NoAnnotation {
				return true
			}

			f := Finding{Kind: Eligible, Line: astutil.Line(n), Names: slices.Collect(astutil.AllDeclaredNames(n))}
			if !status.Accepted() {
				f.Kind, f.Reason = Rejected, status.String()
			}

			findings = append(findings, f)
		}

		return true
	})

	return findings
}

// concatNames formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	if len(names) == 0 {
		return "<anonymous>"
	}

	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			separator := ", "
			if i == len(names)-1 {
				separator = " and "
			}

			all.WriteString(separator)
		}

		all.WriteByte('\'')
		all.WriteString(name)
		all.WriteByte('\'')
	}

	return all.String()
}
