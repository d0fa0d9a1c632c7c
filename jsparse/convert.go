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

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/ngprovide/jsast"
)

// tree-sitter-javascript node types.
const (
	nodeComment       = "comment"
	nodeFunctionDecl  = "function_declaration"
	nodeGeneratorDecl = "generator_function_declaration"
	nodeVarDecl       = "variable_declaration"
	nodeLexicalDecl   = "lexical_declaration"
	nodeDeclarator    = "variable_declarator"
	nodeExprStmt      = "expression_statement"
	nodeReturnStmt    = "return_statement"
	nodeBlock         = "statement_block"
	nodeIfStmt        = "if_statement"
	nodeEmptyStmt     = "empty_statement"
	nodeSwitchCase    = "switch_case"
	nodeSwitchDefault = "switch_default"

	nodeIdentifier      = "identifier"
	nodeThis            = "this"
	nodeArray           = "array"
	nodeObject          = "object"
	nodePair            = "pair"
	nodeShorthand       = "shorthand_property_identifier"
	nodeComputedKey     = "computed_property_name"
	nodeMember          = "member_expression"
	nodeSubscript       = "subscript_expression"
	nodeCall            = "call_expression"
	nodeNew             = "new_expression"
	nodeArguments       = "arguments"
	nodeAssign          = "assignment_expression"
	nodeAugmentedAssign = "augmented_assignment_expression"
	nodeBinary          = "binary_expression"
	nodeUnary           = "unary_expression"
	nodeAwait           = "await_expression"
	nodeParenthesized   = "parenthesized_expression"
	nodeFunction        = "function"
	nodeFunctionExpr    = "function_expression"
	nodeGeneratorExpr   = "generator_function"
	nodeArrow           = "arrow_function"
	nodeOptionalChain   = "optional_chain"
)

type converter struct {
	src []byte
}

func (c converter) text(n *sitter.Node) string { return n.Content(c.src) }

func (c converter) program(n *sitter.Node) *jsast.Program {
	body, dangling := c.statements(n)

	return &jsast.Program{Body: body, Dangling: dangling}
}

// statements converts the named children of n.
func (c converter) statements(n *sitter.Node) ([]jsast.Stmt, []*jsast.Comment) {
	children := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := range int(n.NamedChildCount()) {
		children = append(children, n.NamedChild(i))
	}

	return c.statementList(children)
}

// statementList converts a list of statements. Comments on the lines before a
// statement become its leading comments. A comment on the line where the previous
// statement ends is a trailing comment of that statement, unless the next statement
// starts on the line where the comment ends.
func (c converter) statementList(children []*sitter.Node) ([]jsast.Stmt, []*jsast.Comment) {
	var (
		stmts   []jsast.Stmt
		pending []*jsast.Comment
		lastRow = -1
	)

	for i, child := range children {
		if child.Type() == nodeComment {
			cm := &jsast.Comment{Text: c.text(child), Pos: pos(child), Span: span(child)}

			if len(pending) == 0 && len(stmts) > 0 && int(child.StartPoint().Row) == lastRow &&
				!followedOnLine(child, children[i+1:]) {
				prev := stmts[len(stmts)-1].Attached()
				prev.Trailing = append(prev.Trailing, cm)

				continue
			}

			pending = append(pending, cm)

			continue
		}

		s := c.stmt(child)
		s.Attached().Leading = pending
		pending = nil

		stmts = append(stmts, s)
		lastRow = int(child.EndPoint().Row)
	}

	return stmts, pending
}

// followedOnLine reports whether the first statement of rest starts on the line
// where comment ends.
func followedOnLine(comment *sitter.Node, rest []*sitter.Node) bool {
	for _, n := range rest {
		if n.Type() != nodeComment {
			return n.StartPoint().Row == comment.EndPoint().Row
		}
	}

	return false
}

func (c converter) stmt(n *sitter.Node) jsast.Stmt {
	var s jsast.Stmt

	switch n.Type() {
	case nodeFunctionDecl, nodeGeneratorDecl:
		s = &jsast.FuncDecl{
			ID:        c.ident(n.ChildByFieldName("name")),
			Params:    c.params(n),
			Body:      c.block(n.ChildByFieldName("body")),
			Async:     hasChild(n, "async"),
			Generator: n.Type() == nodeGeneratorDecl,
		}

	case nodeVarDecl, nodeLexicalDecl:
		s = c.varDecl(n)

	case nodeExprStmt:
		x := firstNamed(n)
		if x == nil {
			s = c.raw(n)
			break
		}

		s = &jsast.ExprStmt{X: c.expr(x)}

	case nodeReturnStmt:
		r := &jsast.ReturnStmt{}
		if x := firstNamed(n); x != nil {
			r.Result = c.expr(x)
		}

		s = r

	case nodeBlock:
		s = c.block(n)

	case nodeIfStmt:
		s = c.ifStmt(n)

	case nodeEmptyStmt:
		s = &jsast.EmptyStmt{}

	default:
		s = c.raw(n)
	}

	s.SetPosition(pos(n))
	s.SetExtent(span(n))

	return s
}

func (c converter) varDecl(n *sitter.Node) *jsast.VarDecl {
	d := &jsast.VarDecl{Kind: n.Child(0).Type()}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() != nodeDeclarator {
			continue
		}

		decl := &jsast.Declarator{ID: c.expr(child.ChildByFieldName("name"))}
		if value := child.ChildByFieldName("value"); value != nil {
			decl.Init = c.expr(value)
		}

		d.Decls = append(d.Decls, decl)
	}

	return d
}

func (c converter) block(n *sitter.Node) *jsast.Block {
	body, dangling := c.statements(n)

	b := &jsast.Block{Body: body, Dangling: dangling}
	b.SetPosition(pos(n))
	b.SetExtent(span(n))

	return b
}

func (c converter) ifStmt(n *sitter.Node) *jsast.IfStmt {
	cond := n.ChildByFieldName("condition")
	if cond.Type() == nodeParenthesized {
		if inner := firstNamed(cond); inner != nil {
			cond = inner
		}
	}

	s := &jsast.IfStmt{
		Cond: c.expr(cond),
		Then: c.stmt(n.ChildByFieldName("consequence")),
	}

	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if e := firstNamed(alt); e != nil {
			s.Else = c.stmt(e)
		}
	}

	return s
}

func (c converter) ident(n *sitter.Node) *jsast.Ident {
	if n == nil {
		return nil
	}

	return &jsast.Ident{Name: c.text(n)}
}

// params converts the parameters of a function or arrow function.
func (c converter) params(n *sitter.Node) []jsast.Expr {
	if p := n.ChildByFieldName("parameter"); p != nil {
		return []jsast.Expr{c.expr(p)}
	}

	return c.exprs(n.ChildByFieldName("parameters"))
}

// exprs converts the named children of n, skipping comments.
func (c converter) exprs(n *sitter.Node) []jsast.Expr {
	if n == nil {
		return nil
	}

	var es []jsast.Expr

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}

		es = append(es, c.expr(child))
	}

	return es
}

func (c converter) expr(n *sitter.Node) jsast.Expr {
	switch n.Type() {
	case nodeIdentifier, "property_identifier", "shorthand_property_identifier_pattern",
		"private_property_identifier", "statement_identifier":
		return &jsast.Ident{Name: c.text(n)}

	case nodeThis:
		return &jsast.ThisExpr{}

	case "number", "string", "regex", "true", "false", "null", "undefined":
		return &jsast.Literal{Raw: c.text(n)}

	case nodeArray:
		return &jsast.ArrayLit{Elems: c.exprs(n)}

	case nodeObject:
		return c.object(n)

	case nodeMember:
		if hasChild(n, nodeOptionalChain) {
			break
		}

		return &jsast.MemberExpr{
			X:   c.expr(n.ChildByFieldName("object")),
			Sel: c.expr(n.ChildByFieldName("property")),
		}

	case nodeSubscript:
		if hasChild(n, nodeOptionalChain) {
			break
		}

		return &jsast.MemberExpr{
			X:        c.expr(n.ChildByFieldName("object")),
			Sel:      c.expr(n.ChildByFieldName("index")),
			Computed: true,
		}

	case nodeCall:
		args := n.ChildByFieldName("arguments")
		if args == nil || args.Type() != nodeArguments || hasChild(n, nodeOptionalChain) {
			break // tagged template or optional call
		}

		return &jsast.CallExpr{Fun: c.expr(n.ChildByFieldName("function")), Args: c.exprs(args)}

	case nodeNew:
		return &jsast.NewExpr{
			Fun:  c.expr(n.ChildByFieldName("constructor")),
			Args: c.exprs(n.ChildByFieldName("arguments")),
		}

	case nodeAssign:
		return &jsast.AssignExpr{
			Op:  "=",
			LHS: c.expr(n.ChildByFieldName("left")),
			RHS: c.expr(n.ChildByFieldName("right")),
		}

	case nodeAugmentedAssign:
		return &jsast.AssignExpr{
			Op:  c.text(n.ChildByFieldName("operator")),
			LHS: c.expr(n.ChildByFieldName("left")),
			RHS: c.expr(n.ChildByFieldName("right")),
		}

	case nodeBinary:
		return &jsast.BinaryExpr{
			Op: c.text(n.ChildByFieldName("operator")),
			X:  c.expr(n.ChildByFieldName("left")),
			Y:  c.expr(n.ChildByFieldName("right")),
		}

	case nodeUnary:
		return &jsast.UnaryExpr{
			Op: c.text(n.ChildByFieldName("operator")),
			X:  c.expr(n.ChildByFieldName("argument")),
		}

	case nodeAwait:
		if x := firstNamed(n); x != nil {
			return &jsast.UnaryExpr{Op: "await", X: c.expr(x)}
		}

	case nodeParenthesized:
		if x := firstNamed(n); x != nil && x.Type() != "sequence_expression" {
			return &jsast.ParenExpr{X: c.expr(x)}
		}

	case nodeFunction, nodeFunctionExpr, nodeGeneratorExpr:
		return &jsast.FuncExpr{
			ID:        c.ident(n.ChildByFieldName("name")),
			Params:    c.params(n),
			Body:      c.block(n.ChildByFieldName("body")),
			Async:     hasChild(n, "async"),
			Generator: n.Type() == nodeGeneratorExpr,
		}

	case nodeArrow:
		return c.arrow(n)
	}

	return &jsast.RawExpr{Text: c.text(n), Nested: c.nested(n)}
}

func (c converter) object(n *sitter.Node) *jsast.ObjectLit {
	o := &jsast.ObjectLit{}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		var p *jsast.Property

		switch child.Type() {
		case nodeComment:
			continue

		case nodePair:
			p = &jsast.Property{Value: c.expr(child.ChildByFieldName("value"))}

			if key := child.ChildByFieldName("key"); key.Type() == nodeComputedKey {
				p.Key, p.Computed = c.expr(firstNamed(key)), true
			} else {
				p.Key = c.expr(key)
			}

		case nodeShorthand:
			p = &jsast.Property{Key: &jsast.Ident{Name: c.text(child)}}

		default: // methods, spread elements
			p = &jsast.Property{Key: &jsast.RawExpr{Text: c.text(child), Nested: c.nested(child)}}
		}

		o.Props = append(o.Props, p)
	}

	return o
}

func (c converter) arrow(n *sitter.Node) *jsast.ArrowFunc {
	a := &jsast.ArrowFunc{
		Params: c.params(n),
		Async:  hasChild(n, "async"),
	}

	if body := n.ChildByFieldName("body"); body.Type() == nodeBlock {
		a.Body = c.block(body)
	} else {
		a.Body = c.expr(body)
	}

	return a
}

func (c converter) raw(n *sitter.Node) *jsast.RawStmt {
	return &jsast.RawStmt{Text: c.text(n), Nested: c.nested(n)}
}

// nested parses the blocks within n, which is kept as verbatim text. These are
// statement blocks, like the bodies of loops and methods, and the statements of
// switch cases.
func (c converter) nested(n *sitter.Node) []jsast.Nested {
	var (
		ns   []jsast.Nested
		base = int(n.StartByte())
	)

	add := func(b *jsast.Block, start, end uint32) {
		ns = append(ns, jsast.Nested{Block: b, Start: int(start) - base, End: int(end) - base})
	}

	var visit func(m *sitter.Node)
	visit = func(m *sitter.Node) {
		switch m.Type() {
		case nodeBlock:
			add(c.block(m), m.StartByte(), m.EndByte())
			return

		case nodeSwitchCase, nodeSwitchDefault:
			if b, start, ok := c.caseBody(m); ok {
				add(b, start, m.EndByte())
				return
			}
		}

		for i := range int(m.NamedChildCount()) {
			visit(m.NamedChild(i))
		}
	}

	for i := range int(n.NamedChildCount()) {
		visit(n.NamedChild(i))
	}

	return ns
}

// caseBody converts the statements of a switch case into a bare block starting
// after the colon.
func (c converter) caseBody(n *sitter.Node) (*jsast.Block, uint32, bool) {
	for i := range int(n.ChildCount()) {
		colon := n.Child(i)
		if colon.Type() != ":" {
			continue
		}

		var children []*sitter.Node
		for j := i + 1; j < int(n.ChildCount()); j++ {
			if child := n.Child(j); child.IsNamed() {
				children = append(children, child)
			}
		}

		body, dangling := c.statementList(children)

		b := &jsast.Block{Body: body, Dangling: dangling, Bare: true}
		b.SetPosition(pos(colon))

		return b, colon.EndByte(), true
	}

	return nil, 0, false
}

// firstNamed returns the first named child of n that is not a comment.
func firstNamed(n *sitter.Node) *sitter.Node {
	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child.Type() != nodeComment {
			return child
		}
	}

	return nil
}

// hasChild reports whether n has a direct child of the given type.
func hasChild(n *sitter.Node, typ string) bool {
	for i := range int(n.ChildCount()) {
		if n.Child(i).Type() == typ {
			return true
		}
	}

	return false
}
