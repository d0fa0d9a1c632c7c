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

// Package transform rewrites annotated controller functions into directive decorators.
package transform

import (
	"regexp"
	"slices"

	"fillmore-labs.com/ngprovide/internal/annotation"
	"fillmore-labs.com/ngprovide/internal/astutil"
	"fillmore-labs.com/ngprovide/internal/build"
	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/internal/diag"
	"fillmore-labs.com/ngprovide/internal/validate"
	"fillmore-labs.com/ngprovide/jsast"
)

// Options configure a [Transformer].
type Options struct {
	Variant  config.Variant
	Pattern  *regexp.Regexp // nil selects annotation.DefaultPattern
	Logger   diag.Logger    // nil selects diag.Silent
	Behavior config.BitMask[config.Behavior]
}

// Transformer rewrites annotated function declarations of a program.
// It is immutable and safe for concurrent use on distinct programs.
type Transformer struct {
	variant  config.Variant
	matches  annotation.Matcher
	eligible validate.Predicate
	logger   diag.Logger
	behavior config.BitMask[config.Behavior]
}

// New creates a [Transformer].
func New(o Options) *Transformer {
	pattern, logger := o.Pattern, o.Logger
	if pattern == nil {
		pattern = annotation.DefaultPattern
	}

	if logger == nil {
		logger = diag.Silent
	}

	return &Transformer{
		variant:  o.Variant,
		matches:  annotation.New(pattern),
		eligible: validate.New(pattern, logger),
		logger:   logger,
		behavior: o.Behavior,
	}
}

// Transform rewrites prog in place and returns it.
func (t *Transformer) Transform(prog *jsast.Program) *jsast.Program {
	t.Rewrite(prog)

	return prog
}

// Rewrite rewrites prog in place and returns the number of replaced function declarations.
// Generated programs are left unchanged unless [config.IncludeGenerated] is set.
func (t *Transformer) Rewrite(prog *jsast.Program) int {
	return len(t.Edits(prog))
}

// Edits rewrites prog in place and returns every replaced function declaration with
// its replacement, in traversal order. With [config.DescendReplaced] an edit may lie
// within the body of an earlier one.
func (t *Transformer) Edits(prog *jsast.Program) []jsast.Edit {
	if !t.behavior.Enabled(config.IncludeGenerated) && astutil.IsGenerated(prog) {
		return nil
	}

	descendReplaced := t.behavior.Enabled(config.DescendReplaced)

	var edits []jsast.Edit

	jsast.Walk(jsast.VisitorFunc(func(c *jsast.Cursor) bool {
		switch node := c.Node().(type) {
		case *jsast.FuncDecl:
			if node.ID == nil || !t.matches(node) {
				return true
			}

			t.logger.AcceptedNode(node)

			stmts := t.replacement(node)
			c.Replace(stmts...)
			edits = append(edits, jsast.Edit{Old: node, New: stmts})

			return descendReplaced

		case *jsast.VarDecl:
			t.eligible(node)
		}

		return true
	}), prog)

	return edits
}

// replacement builds the holder declaration and the decorator registration for fn.
// The body of fn is reused.
func (t *Transformer) replacement(fn *jsast.FuncDecl) []jsast.Stmt {
	name := fn.ID.Name

	// The function is anonymous so its name does not shadow the holder.
	impl := &jsast.FuncExpr{Params: fn.Params, Body: fn.Body, Async: fn.Async, Generator: fn.Generator}

	holder := build.EmptyArrayDecl(ident(name))
	holder.Comments = fn.Comments.Clone()
	holder.SetPosition(fn.Position())

	var registration jsast.Stmt

	switch t.variant {
	case config.Proxy:
		registration = build.Mocking(ident(name), impl)

	default:
		impl.Body.Body = slices.Insert(impl.Body.Body, 0, jsast.Stmt(build.PushThisStmt(ident(name))))
		registration = build.Replacement(build.DirectiveName(name), impl, nil)
	}

	return []jsast.Stmt{holder, registration}
}

func ident(name string) *jsast.Ident { return &jsast.Ident{Name: name} }
