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

package build

import "fillmore-labs.com/ngprovide/jsast"

// Identifiers shared by all builders. They are created once and never mutated,
// so trees built concurrently may reference the same nodes.
var (
	idDirective      = ident("directive")
	idDelegate       = ident("$delegate")
	idController     = ident("controller")
	idProvide        = ident("$provide")
	idAngular        = ident("angular")
	idExtend         = ident("extend")
	idMock           = ident("mock")
	idModule         = ident("module")
	idBeforeEach     = ident("beforeEach")
	idDecorator      = ident("decorator")
	idPush           = ident("push")
	idScope          = ident("$scope")
	idElement        = ident("$element")
	idAttrs          = ident("$attrs")
	idTransclude     = ident("$transclude")
	idInjector       = ident("$injector")
	idInvoke         = ident("invoke")
	idSelf           = ident("self")
	idLocals         = ident("locals")
	idExtendedLocals = ident("extendedLocals")
	idOldController  = ident("$oldController")
	idNewController  = ident("newController")
	idSuper          = ident("$super")
)

// wrapperParams are the controller locals passed to the proxy wrapper, in order.
var wrapperParams = [...]*jsast.Ident{idAttrs, idElement, idScope, idInjector, idTransclude}

func ident(name string) *jsast.Ident { return &jsast.Ident{Name: name} }
