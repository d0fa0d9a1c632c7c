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

// Package build constructs the syntax trees of the controller replacement code.
//
// All builders return freshly allocated statements and expressions. Fixed identifiers
// come from a shared, read-only pool.
package build

import (
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/ngprovide/jsast"
)

const directiveSuffix = "Directive"

// DirectiveName returns name with a "Directive" suffix, appended unless already present.
func DirectiveName(name string) string {
	if strings.HasSuffix(name, directiveSuffix) {
		return name
	}

	return name + directiveSuffix
}

// EmptyArrayDecl builds `var <id> = [];`.
//
// EmptyArrayDecl panics when id is nil.
func EmptyArrayDecl(id *jsast.Ident) *jsast.VarDecl {
	if id == nil {
		panic("build: identifier required")
	}

	return varDecl(id, &jsast.ArrayLit{})
}

// PushStmt builds `<array>.push(<value>);`.
func PushStmt(array *jsast.Ident, value jsast.Expr) *jsast.ExprStmt {
	return exprStmt(call(member(array, idPush), value))
}

// PushThisStmt builds `<id>.push(this);`.
func PushThisStmt(id *jsast.Ident) *jsast.ExprStmt {
	return PushStmt(id, &jsast.ThisExpr{})
}

// InjectorInvoke builds `$injector.invoke(<fn>, <context>, <locals>)`.
func InjectorInvoke(fn, context, locals jsast.Expr) *jsast.CallExpr {
	return call(member(idInjector, idInvoke), fn, context, locals)
}

// NgExtend builds `angular.extend(<args>...)`.
func NgExtend(args ...jsast.Expr) *jsast.CallExpr {
	return call(member(idAngular, idExtend), args...)
}

// FuncExpr builds an anonymous function expression.
func FuncExpr(params []jsast.Expr, body ...jsast.Stmt) *jsast.FuncExpr {
	return &jsast.FuncExpr{Params: params, Body: &jsast.Block{Body: body}}
}

// Replacement builds the statement registering a decorator that swaps the controller
// of the named directive:
//
//	beforeEach(angular.mock.module(function($provide) {
//	  $provide.decorator("<directiveName>", function($delegate) {
//	    var directive = $delegate[0];
//	    var $oldController = directive.controller;
//	    var newController = <impl>;
//	    directive.controller = <wrapper>;
//	    return $delegate;
//	  });
//	}));
//
// A nil wrapper assigns newController. Replacement panics when impl is not a function literal.
func Replacement(directiveName string, impl, wrapper jsast.Expr) *jsast.ExprStmt {
	switch impl.(type) {
	case *jsast.FuncExpr, *jsast.ArrowFunc:

	default:
		panic(fmt.Sprintf("build: function literal required, got %T", impl))
	}

	if wrapper == nil {
		wrapper = idNewController
	}

	directiveController := member(idDirective, idController)

	decorator := FuncExpr([]jsast.Expr{idDelegate},
		varDecl(idDirective, &jsast.MemberExpr{X: idDelegate, Sel: &jsast.Literal{Raw: "0"}, Computed: true}),
		varDecl(idOldController, directiveController),
		varDecl(idNewController, impl),
		exprStmt(&jsast.AssignExpr{Op: "=", LHS: member(idDirective, idController), RHS: wrapper}),
		&jsast.ReturnStmt{Result: idDelegate},
	)

	register := FuncExpr([]jsast.Expr{idProvide},
		exprStmt(call(member(idProvide, idDecorator), stringLit(directiveName), decorator)),
	)

	return exprStmt(call(idBeforeEach, call(member(member(idAngular, idMock), idModule), register)))
}

// ProxyWrapper builds the controller wrapper recording each instance in the array id
// and delegating to newController:
//
//	function($attrs, $element, $scope, $injector, $transclude) {
//	  var self = this;
//	  <id>.push(self);
//	  var locals = {...};
//	  function $super(extendedLocals) {
//	    return $injector.invoke($oldController, self, angular.extend({}, extendedLocals, locals));
//	  }
//	  $injector.invoke(newController, self, locals);
//	}
//
// The locals expose the wrapper parameters together with $oldController and $super.
func ProxyWrapper(id *jsast.Ident) *jsast.FuncExpr {
	params := make([]jsast.Expr, 0, len(wrapperParams))
	props := make([]*jsast.Property, 0, len(wrapperParams)+2)

	for _, p := range wrapperParams {
		params = append(params, p)
		props = append(props, &jsast.Property{Key: p, Value: p})
	}

	props = append(props,
		&jsast.Property{Key: idOldController, Value: idOldController},
		&jsast.Property{Key: idSuper, Value: idSuper},
	)

	super := &jsast.FuncDecl{
		ID:     idSuper,
		Params: []jsast.Expr{idExtendedLocals},
		Body: &jsast.Block{Body: []jsast.Stmt{
			&jsast.ReturnStmt{Result: InjectorInvoke(idOldController, idSelf,
				NgExtend(&jsast.ObjectLit{}, idExtendedLocals, idLocals))},
		}},
	}

	return FuncExpr(params,
		varDecl(idSelf, &jsast.ThisExpr{}),
		PushStmt(id, idSelf),
		varDecl(idLocals, &jsast.ObjectLit{Props: props}),
		super,
		exprStmt(InjectorInvoke(idNewController, idSelf, idLocals)),
	)
}

// Mocking builds the registration statement whose controller is a [ProxyWrapper]
// recording instances in id.
func Mocking(id *jsast.Ident, impl jsast.Expr) *jsast.ExprStmt {
	return Replacement(DirectiveName(id.Name), impl, ProxyWrapper(id))
}

func varDecl(id *jsast.Ident, init jsast.Expr) *jsast.VarDecl {
	return &jsast.VarDecl{Kind: "var", Decls: []*jsast.Declarator{{ID: id, Init: init}}}
}

func exprStmt(x jsast.Expr) *jsast.ExprStmt { return &jsast.ExprStmt{X: x} }

func member(x jsast.Expr, sel *jsast.Ident) *jsast.MemberExpr {
	return &jsast.MemberExpr{X: x, Sel: sel}
}

func call(fun jsast.Expr, args ...jsast.Expr) *jsast.CallExpr {
	return &jsast.CallExpr{Fun: fun, Args: args}
}

func stringLit(s string) *jsast.Literal { return &jsast.Literal{Raw: strconv.Quote(s)} }
