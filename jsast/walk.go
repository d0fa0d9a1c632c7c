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

package jsast

import (
	"fmt"
	"slices"
)

// Visitor is called for each node encountered by [Walk].
// Visit returns whether [Walk] descends into the children of the current node.
type Visitor interface {
	Visit(c *Cursor) (descend bool)
}

// VisitorFunc adapts an ordinary function to the [Visitor] interface.
type VisitorFunc func(c *Cursor) bool

// Visit implements [Visitor].
func (f VisitorFunc) Visit(c *Cursor) bool { return f(c) }

// Cursor describes the node currently visited by [Walk] and its position in the parent.
type Cursor struct {
	node   Node
	parent Node
	list   *[]Stmt // set when node is an element of a statement list
	slot   *Stmt   // set when node fills a single statement field
	index  int

	replaced     bool
	replacements []Stmt
}

// Node returns the current node.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current node, nil for the root.
func (c *Cursor) Parent() Node { return c.parent }

// Index returns the index of the current node in its statement list, or -1.
func (c *Cursor) Index() int {
	if c.list == nil {
		return -1
	}

	return c.index
}

// Replace substitutes stmts for the current statement.
//
// Within a statement list the statements are spliced in place. A single statement
// field (like the branch of an if statement) receives a [Block] when more than one
// statement is given. When [Walk] descends after a replacement it continues with the
// children of the new statements; the replaced node is not visited again.
//
// Replace panics when the current node is not a replaceable statement or has already been replaced.
func (c *Cursor) Replace(stmts ...Stmt) {
	if c.replaced {
		panic("jsast: node already replaced")
	}

	switch {
	case c.list != nil:
		*c.list = slices.Replace(*c.list, c.index, c.index+1, stmts...)
		c.replacements = stmts

	case c.slot != nil:
		var s Stmt
		switch len(stmts) {
		case 0:
			s = &EmptyStmt{}

		case 1:
			s = stmts[0]

		default:
			s = &Block{Body: stmts}
		}

		*c.slot = s
		c.replacements = []Stmt{s}

	default:
		panic(fmt.Sprintf("jsast: cannot replace %T", c.node))
	}

	c.replaced = true
}

// Walk traverses the tree rooted at root in depth-first order, calling v.Visit for each node.
func Walk(v Visitor, root Node) {
	w := walker{v: v}
	w.visit(&Cursor{node: root, index: -1})
}

// Inspect traverses the tree rooted at root, calling f for each node until f returns false.
func Inspect(root Node, f func(Node) bool) {
	Walk(VisitorFunc(func(c *Cursor) bool { return f(c.Node()) }), root)
}

type walker struct {
	v Visitor
}

func (w walker) visit(c *Cursor) {
	if !w.v.Visit(c) {
		return
	}

	if c.replaced {
		for _, s := range c.replacements {
			w.children(s)
		}

		return
	}

	w.children(c.node)
}

func (w walker) node(parent, n Node) {
	w.visit(&Cursor{node: n, parent: parent, index: -1})
}

func (w walker) list(parent Node, list *[]Stmt) {
	for i := 0; i < len(*list); {
		c := &Cursor{node: (*list)[i], parent: parent, list: list, index: i}
		w.visit(c)

		if c.replaced {
			i += len(c.replacements)
		} else {
			i++
		}
	}
}

func (w walker) slot(parent Node, s *Stmt) {
	if *s == nil {
		return
	}

	w.visit(&Cursor{node: *s, parent: parent, slot: s, index: -1})
}

func (w walker) exprs(parent Node, es []Expr) {
	for _, e := range es {
		if e != nil {
			w.node(parent, e)
		}
	}
}

func (w walker) nested(parent Node, ns []Nested) {
	for _, n := range ns {
		w.node(parent, n.Block)
	}
}

func (w walker) children(n Node) {
	switch n := n.(type) {
	case *Program:
		w.list(n, &n.Body)

	case *Block:
		w.list(n, &n.Body)

	case *FuncDecl:
		if n.ID != nil {
			w.node(n, n.ID)
		}

		w.exprs(n, n.Params)
		w.node(n, n.Body)

	case *VarDecl:
		for _, d := range n.Decls {
			w.node(n, d)
		}

	case *Declarator:
		w.node(n, n.ID)

		if n.Init != nil {
			w.node(n, n.Init)
		}

	case *ExprStmt:
		w.node(n, n.X)

	case *ReturnStmt:
		if n.Result != nil {
			w.node(n, n.Result)
		}

	case *IfStmt:
		w.node(n, n.Cond)
		w.slot(n, &n.Then)
		w.slot(n, &n.Else)

	case *RawStmt:
		w.nested(n, n.Nested)

	case *RawExpr:
		w.nested(n, n.Nested)

	case *EmptyStmt, *Ident, *Literal, *ThisExpr:

	case *ArrayLit:
		w.exprs(n, n.Elems)

	case *ObjectLit:
		for _, p := range n.Props {
			w.node(n, p)
		}

	case *Property:
		w.node(n, n.Key)

		if n.Value != nil {
			w.node(n, n.Value)
		}

	case *MemberExpr:
		w.node(n, n.X)
		w.node(n, n.Sel)

	case *CallExpr:
		w.node(n, n.Fun)
		w.exprs(n, n.Args)

	case *NewExpr:
		w.node(n, n.Fun)
		w.exprs(n, n.Args)

	case *AssignExpr:
		w.node(n, n.LHS)
		w.node(n, n.RHS)

	case *BinaryExpr:
		w.node(n, n.X)
		w.node(n, n.Y)

	case *UnaryExpr:
		w.node(n, n.X)

	case *ParenExpr:
		w.node(n, n.X)

	case *FuncExpr:
		if n.ID != nil {
			w.node(n, n.ID)
		}

		w.exprs(n, n.Params)
		w.node(n, n.Body)

	case *ArrowFunc:
		w.exprs(n, n.Params)
		w.node(n, n.Body)

	default:
		panic(fmt.Sprintf("jsast: unexpected node type %T", n))
	}
}
