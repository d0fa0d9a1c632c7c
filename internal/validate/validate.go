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

// Package validate decides whether annotated variable declarations are eligible for injection.
package validate

import (
	"fmt"
	"regexp"

	"fillmore-labs.com/ngprovide/internal/annotation"
	"fillmore-labs.com/ngprovide/internal/astutil"
	"fillmore-labs.com/ngprovide/internal/diag"
	"fillmore-labs.com/ngprovide/jsast"
)

// Predicate reports whether a node is eligible for injection.
type Predicate func(node jsast.Node) bool

// New returns a [Predicate] accepting annotated variable declarations where every
// declarator has an initializer. Every decision is reported to logger.
//
// A nil pattern selects [annotation.DefaultPattern], a nil logger [diag.Silent].
func New(pattern *regexp.Regexp, logger diag.Logger) Predicate {
	if pattern == nil {
		pattern = annotation.DefaultPattern
	}

	if logger == nil {
		logger = diag.Silent
	}

	matches := annotation.New(pattern)

	return func(node jsast.Node) bool {
		if status := Check(matches, node); !status.Accepted() {
			logger.RejectedNode(status.String(), node)

			return false
		}

		logger.AcceptedNode(node)

		return true
	}
}

// Check returns the eligibility [Status] of node.
func Check(matches annotation.Matcher, node jsast.Node) Status {
	decl, ok := node.(*jsast.VarDecl)
	if !ok {
		return NotDeclaration
	}

	if !matches(decl) {
		return NoAnnotation
	}

	if MissingInit(decl) {
		return MissingInitializer
	}

	return Eligible
}

// MissingInit reports whether any declarator of a variable declaration lacks an initializer.
// Initializer expressions are not inspected.
//
// MissingInit panics when node is not a *[jsast.VarDecl].
func MissingInit(node jsast.Node) bool {
	decl, ok := node.(*jsast.VarDecl)
	if !ok {
		panic(fmt.Sprintf("validate: variable declaration required, got %T", node))
	}

	for _, d := range astutil.AllDeclarators(decl) {
		if d.Init == nil {
			return true
		}
	}

	return false
}
