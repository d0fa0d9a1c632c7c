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

package astutil

import (
	"iter"

	"fillmore-labs.com/ngprovide/jsast"
)

// AllDeclaredNames yields all names bound by identifier declarators.
// Destructuring patterns are skipped.
func AllDeclaredNames(decl *jsast.VarDecl) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, d := range decl.Decls {
			id, ok := d.ID.(*jsast.Ident)
			if !ok {
				continue // pattern
			}

			if !yield(id.Name) {
				return
			}
		}
	}
}

// AllDeclarators yields all declarators of a declaration together with their index.
func AllDeclarators(decl *jsast.VarDecl) iter.Seq2[int, *jsast.Declarator] {
	return func(yield func(int, *jsast.Declarator) bool) {
		for i, d := range decl.Decls {
			if !yield(i, d) {
				return
			}
		}
	}
}
