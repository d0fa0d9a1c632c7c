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

// Package jsast declares the types used to represent JavaScript syntax trees.
//
// Node kinds form a closed set: statements implement [Stmt], expressions implement
// [Expr]. [Walk] traverses a tree and lets a [Visitor] replace statements in place,
// [Fprint] renders a tree as source code.
package jsast

// Node is the interface implemented by all syntax tree nodes.
type Node interface {
	aNode()
}

// Stmt is the interface for all statement nodes. Statements carry comments.
type Stmt interface {
	Node
	Commented
	Position() Pos
	SetPosition(p Pos)
	Extent() Span
	SetExtent(sp Span)
	aStmt()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Pos is a source position. Line and Column are 1-based; the zero value means unknown,
// as for generated nodes.
type Pos struct {
	Line, Column int
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Span is the byte range [Start, End) of a node in its source. The zero value means
// the node was not parsed.
type Span struct {
	Start, End int
}

// IsValid reports whether the span is known.
func (s Span) IsValid() bool { return s.End > s.Start }

// stmt is embedded in all statement nodes.
type stmt struct {
	Comments
	Pos  Pos
	Span Span
}

func (s *stmt) Position() Pos     { return s.Pos }
func (s *stmt) SetPosition(p Pos) { s.Pos = p }
func (s *stmt) Extent() Span      { return s.Span }
func (s *stmt) SetExtent(sp Span) { s.Span = sp }
func (*stmt) aNode()              {}
func (*stmt) aStmt()              {}

// expr is embedded in all expression nodes.
type expr struct{}

func (*expr) aNode() {}
func (*expr) aExpr() {}

// part is embedded in nodes that are neither statements nor expressions.
type part struct{}

func (*part) aNode() {}

// ----------------------------------------------------------------------------
// Statements

// Program is the root of a parsed source file.
type Program struct {
	Body     []Stmt
	Dangling []*Comment // comments after the last statement
}

func (*Program) aNode() {}

// FuncDecl is a function declaration: function ID(Params) { Body }.
type FuncDecl struct {
	stmt
	ID        *Ident
	Params    []Expr
	Body      *Block
	Async     bool
	Generator bool
}

// VarDecl is a variable declaration with one or more declarators.
type VarDecl struct {
	stmt
	Kind  string // "var", "let" or "const"
	Decls []*Declarator
}

// Declarator binds a single name or pattern. Init is nil when absent.
type Declarator struct {
	part
	ID   Expr
	Init Expr
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// ReturnStmt is a return statement. Result is nil for a bare return.
type ReturnStmt struct {
	stmt
	Result Expr
}

// Block is a braced statement list. A Bare block is printed without braces, as the
// statements of a switch case.
type Block struct {
	stmt
	Body     []Stmt
	Dangling []*Comment // comments before the closing brace
	Bare     bool
}

// IfStmt is an if statement. Else is nil when absent.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	stmt
}

// RawStmt is a statement kept verbatim as source text. Blocks within it, like the
// body of a loop, are parsed into Nested.
type RawStmt struct {
	stmt
	Text   string
	Nested []Nested
}

// Nested is a block parsed from within verbatim source text. Start and End are the
// byte offsets of the block in the enclosing text.
type Nested struct {
	Block      *Block
	Start, End int
}

// ----------------------------------------------------------------------------
// Expressions

// Ident is an identifier.
type Ident struct {
	expr
	Name string
}

// Literal is a literal value in source form, e.g. `0`, `"FooDirective"` or `null`.
type Literal struct {
	expr
	Raw string
}

// ThisExpr is the `this` keyword.
type ThisExpr struct {
	expr
}

// ArrayLit is an array literal.
type ArrayLit struct {
	expr
	Elems []Expr
}

// ObjectLit is an object literal.
type ObjectLit struct {
	expr
	Props []*Property
}

// Property is a key: value pair of an object literal. Value is nil for shorthand
// properties and for members kept verbatim in Key.
type Property struct {
	part
	Key      Expr
	Value    Expr
	Computed bool // [Key]: Value
}

// MemberExpr is a property access, X.Sel or X[Sel] when Computed.
type MemberExpr struct {
	expr
	X        Expr
	Sel      Expr
	Computed bool
}

// CallExpr is a function call.
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// NewExpr is a constructor call.
type NewExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// AssignExpr is an assignment, Op is "=" or a compound operator.
type AssignExpr struct {
	expr
	Op  string
	LHS Expr
	RHS Expr
}

// BinaryExpr is a binary or logical operation.
type BinaryExpr struct {
	expr
	Op   string
	X, Y Expr
}

// UnaryExpr is a prefix unary operation.
type UnaryExpr struct {
	expr
	Op string
	X  Expr
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	expr
	X Expr
}

// FuncExpr is a function expression. ID is nil for anonymous functions.
type FuncExpr struct {
	expr
	ID        *Ident
	Params    []Expr
	Body      *Block
	Async     bool
	Generator bool
}

// ArrowFunc is an arrow function. Body is either a *Block or an expression.
type ArrowFunc struct {
	expr
	Params []Expr
	Body   Node
	Async  bool
}

// RawExpr is an expression kept verbatim as source text, with blocks within it,
// like the body of a method, parsed into Nested.
type RawExpr struct {
	expr
	Text   string
	Nested []Nested
}
