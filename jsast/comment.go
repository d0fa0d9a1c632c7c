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
	"iter"
	"slices"
	"strings"
)

// Comment is a single `//` or `/* */` comment.
type Comment struct {
	Text string // comment text including the delimiters
	Pos  Pos
	Span Span
}

// LineComment creates a `//` comment with the given value.
func LineComment(value string) *Comment { return &Comment{Text: "//" + value} }

// BlockComment creates a `/* */` comment with the given value.
func BlockComment(value string) *Comment { return &Comment{Text: "/*" + value + "*/"} }

// IsBlock reports whether this is a `/* */` comment.
func (c *Comment) IsBlock() bool { return strings.HasPrefix(c.Text, "/*") }

// Value returns the comment text without delimiters.
func (c *Comment) Value() string {
	if c.IsBlock() {
		return strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
	}

	return strings.TrimPrefix(c.Text, "//")
}

// Comments holds the comments attached to a statement.
type Comments struct {
	Leading  []*Comment // comments on the lines before the statement
	Trailing []*Comment // comments after the statement on the same line
}

// Commented is implemented by nodes that carry comments.
type Commented interface {
	Attached() *Comments
}

// Attached returns the comments attached to the node.
func (c *Comments) Attached() *Comments { return c }

// All yields leading comments, then trailing comments.
func (c *Comments) All() iter.Seq[*Comment] {
	return func(yield func(*Comment) bool) {
		for _, cm := range c.Leading {
			if !yield(cm) {
				return
			}
		}

		for _, cm := range c.Trailing {
			if !yield(cm) {
				return
			}
		}
	}
}

// Len returns the number of attached comments.
func (c *Comments) Len() int { return len(c.Leading) + len(c.Trailing) }

// Clone returns a copy that does not share slices with c.
func (c *Comments) Clone() Comments {
	return Comments{Leading: slices.Clone(c.Leading), Trailing: slices.Clone(c.Trailing)}
}
