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
	"io"
	"strings"
)

const indentation = "  "

// Fprint writes the source form of node to w.
func Fprint(w io.Writer, node Node) error {
	_, err := io.WriteString(w, Print(node))

	return err
}

// Print returns the source form of node. A [Program] ends with a newline.
func Print(node Node) string {
	var p printer

	switch n := node.(type) {
	case *Program:
		p.program(n)

	case Stmt:
		p.stmt(n)

	case Expr:
		p.expr(n)

	default:
		p.part(n)
	}

	return p.String()
}

type printer struct {
	strings.Builder
	prefix string // written at the start of every line but the first
	depth  int
}

func (p *printer) newline() {
	p.WriteByte('\n')
	p.WriteString(p.prefix)

	for range p.depth {
		p.WriteString(indentation)
	}
}

func (p *printer) program(n *Program) {
	for i, s := range n.Body {
		if i > 0 {
			p.newline()
		}

		p.stmt(s)
	}

	for i, c := range n.Dangling {
		if i > 0 || len(n.Body) > 0 {
			p.newline()
		}

		p.WriteString(c.Text)
	}

	if len(n.Body) > 0 || len(n.Dangling) > 0 {
		p.WriteByte('\n')
	}
}

// stmt prints a statement with its comments, starting at the current position.
func (p *printer) stmt(s Stmt) {
	for _, c := range s.Attached().Leading {
		p.WriteString(c.Text)
		p.newline()
	}

	p.stmtTail(s)
}

// stmtTail prints a statement with its trailing comments.
func (p *printer) stmtTail(s Stmt) {
	p.stmtBody(s)

	for _, c := range s.Attached().Trailing {
		p.WriteByte(' ')
		p.WriteString(c.Text)
	}
}

func (p *printer) stmtBody(s Stmt) {
	switch s := s.(type) {
	case *FuncDecl:
		p.function(s.Async, s.Generator, s.ID, s.Params, s.Body)

	case *VarDecl:
		p.varDecl(s)
		p.WriteByte(';')

	case *ExprStmt:
		if startsAmbiguous(s.X) {
			p.WriteByte('(')
			p.expr(s.X)
			p.WriteByte(')')
		} else {
			p.expr(s.X)
		}

		p.WriteByte(';')

	case *ReturnStmt:
		p.WriteString("return")

		if s.Result != nil {
			p.WriteByte(' ')
			p.expr(s.Result)
		}

		p.WriteByte(';')

	case *Block:
		p.block(s)

	case *IfStmt:
		p.WriteString("if (")
		p.expr(s.Cond)
		p.WriteString(") ")
		p.stmt(s.Then)

		if s.Else != nil {
			p.WriteString(" else ")
			p.stmt(s.Else)
		}

	case *EmptyStmt:
		p.WriteByte(';')

	case *RawStmt:
		p.verbatim(s.Text, s.Nested)

	default:
		panic(fmt.Sprintf("jsast: unexpected statement type %T", s))
	}
}

func (p *printer) varDecl(s *VarDecl) {
	p.WriteString(s.Kind)
	p.WriteByte(' ')

	for i, d := range s.Decls {
		if i > 0 {
			p.WriteString(", ")
		}

		p.declarator(d)
	}
}

func (p *printer) declarator(d *Declarator) {
	p.expr(d.ID)

	if d.Init != nil {
		p.WriteString(" = ")
		p.expr(d.Init)
	}
}

func (p *printer) block(b *Block) {
	if b.Bare {
		p.bare(b)
		return
	}

	if len(b.Body) == 0 && len(b.Dangling) == 0 {
		p.WriteString("{}")
		return
	}

	p.WriteByte('{')
	p.depth++

	for _, s := range b.Body {
		p.newline()
		p.stmt(s)
	}

	for _, c := range b.Dangling {
		p.newline()
		p.WriteString(c.Text)
	}

	p.depth--
	p.newline()
	p.WriteByte('}')
}

// bare prints the statements of b on separate lines, one level deeper than the
// current line.
func (p *printer) bare(b *Block) {
	p.depth++

	for _, s := range b.Body {
		p.newline()
		p.stmt(s)
	}

	for _, c := range b.Dangling {
		p.newline()
		p.WriteString(c.Text)
	}

	p.depth--
}

// verbatim prints text with the nested blocks printed in place of their source. A
// block starting on a later line of text is indented like that line.
func (p *printer) verbatim(text string, nested []Nested) {
	var last int

	for _, n := range nested {
		p.WriteString(text[last:n.Start])

		if strings.Contains(text[:n.Start], "\n") {
			prefix, depth := p.prefix, p.depth
			p.prefix, p.depth = lastIndent(text[:n.Start]), 0
			p.block(n.Block)
			p.prefix, p.depth = prefix, depth
		} else {
			p.block(n.Block)
		}

		last = n.End
	}

	p.WriteString(text[last:])
}

// lastIndent returns the leading white space of the last line of s.
func lastIndent(s string) string {
	line := s[strings.LastIndexByte(s, '\n')+1:]

	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func (p *printer) function(async, generator bool, id *Ident, params []Expr, body *Block) {
	if async {
		p.WriteString("async ")
	}

	p.WriteString("function")

	if generator {
		p.WriteByte('*')
	}

	if id != nil {
		p.WriteByte(' ')
		p.WriteString(id.Name)
	}

	p.WriteByte('(')
	p.list(params)
	p.WriteString(") ")
	p.block(body)
}

func (p *printer) list(es []Expr) {
	for i, e := range es {
		if i > 0 {
			p.WriteString(", ")
		}

		if e != nil {
			p.expr(e)
		}
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case *Ident:
		p.WriteString(e.Name)

	case *Literal:
		p.WriteString(e.Raw)

	case *ThisExpr:
		p.WriteString("this")

	case *ArrayLit:
		p.WriteByte('[')
		p.list(e.Elems)
		p.WriteByte(']')

	case *ObjectLit:
		p.object(e)

	case *MemberExpr:
		p.operand(e.X)

		if e.Computed {
			p.WriteByte('[')
			p.expr(e.Sel)
			p.WriteByte(']')
		} else {
			p.WriteByte('.')
			p.expr(e.Sel)
		}

	case *CallExpr:
		p.operand(e.Fun)
		p.WriteByte('(')
		p.list(e.Args)
		p.WriteByte(')')

	case *NewExpr:
		p.WriteString("new ")
		p.operand(e.Fun)
		p.WriteByte('(')
		p.list(e.Args)
		p.WriteByte(')')

	case *AssignExpr:
		p.expr(e.LHS)
		p.WriteByte(' ')
		p.WriteString(e.Op)
		p.WriteByte(' ')
		p.expr(e.RHS)

	case *BinaryExpr:
		p.expr(e.X)
		p.WriteByte(' ')
		p.WriteString(e.Op)
		p.WriteByte(' ')
		p.expr(e.Y)

	case *UnaryExpr:
		p.WriteString(e.Op)

		if isWord(e.Op) {
			p.WriteByte(' ')
		}

		p.operand(e.X)

	case *ParenExpr:
		p.WriteByte('(')
		p.expr(e.X)
		p.WriteByte(')')

	case *FuncExpr:
		p.function(e.Async, e.Generator, e.ID, e.Params, e.Body)

	case *ArrowFunc:
		p.arrow(e)

	case *RawExpr:
		p.verbatim(e.Text, e.Nested)

	default:
		panic(fmt.Sprintf("jsast: unexpected expression type %T", e))
	}
}

// operand prints e, parenthesized when it binds looser than a member access or call.
func (p *printer) operand(e Expr) {
	switch e.(type) {
	case *Ident, *Literal, *ThisExpr, *ArrayLit, *MemberExpr, *CallExpr, *ParenExpr, *RawExpr:
		p.expr(e)

	default:
		p.WriteByte('(')
		p.expr(e)
		p.WriteByte(')')
	}
}

func (p *printer) object(o *ObjectLit) {
	if len(o.Props) == 0 {
		p.WriteString("{}")
		return
	}

	p.WriteByte('{')
	p.depth++

	for i, prop := range o.Props {
		if i > 0 {
			p.WriteByte(',')
		}

		p.newline()
		p.property(prop)
	}

	p.depth--
	p.newline()
	p.WriteByte('}')
}

func (p *printer) property(prop *Property) {
	if prop.Computed {
		p.WriteByte('[')
		p.expr(prop.Key)
		p.WriteByte(']')
	} else {
		p.expr(prop.Key)
	}

	if prop.Value != nil {
		p.WriteString(": ")
		p.expr(prop.Value)
	}
}

func (p *printer) arrow(a *ArrowFunc) {
	if a.Async {
		p.WriteString("async ")
	}

	p.WriteByte('(')
	p.list(a.Params)
	p.WriteString(") => ")

	switch body := a.Body.(type) {
	case *Block:
		p.block(body)

	case *ObjectLit:
		p.WriteByte('(')
		p.object(body)
		p.WriteByte(')')

	case Expr:
		p.expr(body)

	default:
		panic(fmt.Sprintf("jsast: unexpected arrow function body %T", body))
	}
}

func (p *printer) part(n Node) {
	switch n := n.(type) {
	case *Declarator:
		p.declarator(n)

	case *Property:
		p.property(n)

	default:
		panic(fmt.Sprintf("jsast: unexpected node type %T", n))
	}
}

// startsAmbiguous reports whether an expression statement starting with e would be
// read as a declaration or block. Operands of calls and member accesses are already
// parenthesized by [printer.operand].
func startsAmbiguous(e Expr) bool {
	for {
		switch x := e.(type) {
		case *FuncExpr, *ObjectLit:
			return true

		case *AssignExpr:
			e = x.LHS

		case *BinaryExpr:
			e = x.X

		default:
			return false
		}
	}
}

func isWord(op string) bool {
	switch op {
	case "typeof", "void", "delete", "await":
		return true

	default:
		return false
	}
}
