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

// Package astutil provides helpers for inspecting syntax tree nodes.
package astutil

import (
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/ngprovide/jsast"
)

// Kind returns a short description of the node type, e.g. "FunctionDeclaration".
func Kind(node jsast.Node) string {
	switch node.(type) {
	case *jsast.FuncDecl:
		return "FunctionDeclaration"

	case *jsast.VarDecl:
		return "VariableDeclaration"

	case *jsast.ExprStmt:
		return "ExpressionStatement"

	case *jsast.FuncExpr:
		return "FunctionExpression"

	case *jsast.ArrowFunc:
		return "ArrowFunctionExpression"

	default:
		name := fmt.Sprintf("%T", node)

		return name[strings.LastIndexByte(name, '.')+1:]
	}
}

// Name returns the name bound by a declaration, or the empty string.
// Multiple names of a variable declaration are joined by commas.
func Name(node jsast.Node) string {
	switch n := node.(type) {
	case *jsast.FuncDecl:
		if n.ID == nil {
			return ""
		}

		return n.ID.Name

	case *jsast.VarDecl:
		return strings.Join(slices.Collect(AllDeclaredNames(n)), ",")

	default:
		return ""
	}
}

// Line returns the source line of a statement, 0 when unknown.
func Line(node jsast.Node) int {
	s, ok := node.(jsast.Stmt)
	if !ok {
		return 0
	}

	return s.Position().Line
}
