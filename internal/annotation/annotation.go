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

// Package annotation detects marker comments on syntax tree nodes.
package annotation

import (
	"regexp"

	"fillmore-labs.com/ngprovide/jsast"
)

// DefaultPattern matches a comment consisting solely of the @ngProvide tag.
var DefaultPattern = regexp.MustCompile(`^\s*@ngProvide\s*$`)

// Matcher reports whether a node carries a marker comment.
type Matcher func(node jsast.Node) bool

// New returns a [Matcher] testing the value of every comment attached to a node against pattern.
// A node matches when any of its comments, leading or trailing, matches.
//
// The pattern controls anchoring; [DefaultPattern] requires the whole comment.
// New panics when pattern is nil.
func New(pattern *regexp.Regexp) Matcher {
	if pattern == nil {
		panic("annotation: pattern required")
	}

	return func(node jsast.Node) bool {
		c, ok := node.(jsast.Commented)
		if !ok {
			return false
		}

		for comment := range c.Attached().All() {
			if pattern.MatchString(comment.Value()) {
				return true
			}
		}

		return false
	}
}
