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
	"regexp"

	"fillmore-labs.com/ngprovide/jsast"
)

// generatedPattern is the conventional marker for generated files, see https://go.dev/s/generatedcode.
var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// IsGenerated reports whether the program carries a generated code marker in a line
// comment before its first statement.
func IsGenerated(program *jsast.Program) bool {
	var comments []*jsast.Comment
	if len(program.Body) > 0 {
		comments = program.Body[0].Attached().Leading
	} else {
		comments = program.Dangling
	}

	for _, c := range comments {
		if !c.IsBlock() && generatedPattern.MatchString(c.Text) {
			return true
		}
	}

	return false
}
