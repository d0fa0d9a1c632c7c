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

package validate

// Status indicates whether a declaration is eligible for injection and why not.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Eligible indicates the declaration can be injected.
	Eligible Status = iota // eligible

	// NotDeclaration indicates the node is not a variable declaration.
	NotDeclaration // not a VariableDeclaration

	// NoAnnotation indicates the declaration carries no marker comment.
	NoAnnotation // does not contain an NgProvide comment

	// MissingInitializer indicates at least one declarator has no initializer.
	MissingInitializer // at least one variable is missing an initialization
)

// Accepted reports whether the status permits injection.
func (i Status) Accepted() bool { return i == Eligible }
