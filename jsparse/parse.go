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

// Package jsparse converts JavaScript source into a [jsast] syntax tree.
//
// Parsing is done by tree-sitter. Statements and expressions the tree does not model
// are kept verbatim as [jsast.RawStmt] and [jsast.RawExpr]; the blocks within them,
// like loop bodies, are parsed. Statements and comments record their byte range in
// the source, so [jsast.Apply] can replace statements without reprinting the rest.
package jsparse

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/ngprovide/jsast"
)

// ErrSyntax is returned when the source contains syntax errors.
var ErrSyntax = errors.New("syntax error")

// Parse parses JavaScript source code into a [jsast.Program].
func Parse(ctx context.Context, src []byte) (*jsast.Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		p := errorPos(root)
		return nil, fmt.Errorf("%w at line %d, column %d", ErrSyntax, p.Line, p.Column)
	}

	c := converter{src: src}

	return c.program(root), nil
}

// errorPos returns the position of the first error or missing node.
func errorPos(n *sitter.Node) jsast.Pos {
	if n.IsError() || n.IsMissing() {
		return pos(n)
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child.HasError() || child.IsMissing() {
			return errorPos(child)
		}
	}

	return pos(n)
}

func span(n *sitter.Node) jsast.Span {
	return jsast.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func pos(n *sitter.Node) jsast.Pos {
	p := n.StartPoint()

	return jsast.Pos{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
