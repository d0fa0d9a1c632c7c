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

package ngprovide

import (
	"log/slog"

	"go.uber.org/zap"

	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/internal/diag"
	"fillmore-labs.com/ngprovide/internal/report"
)

// Variant selects the shape of the replacement code.
type Variant = config.Variant

const (
	// Replace substitutes the annotated function for the directive controller.
	Replace = config.Replace

	// Proxy wraps the annotated function, giving it access to the original controller.
	Proxy = config.Proxy
)

// Logger receives the eligibility decision for every visited variable declaration
// and every rewritten function declaration.
type Logger = diag.Logger

// Silent is a [Logger] discarding all decisions.
var Silent Logger = diag.Silent

// SlogLogger returns a [Logger] writing debug records to l.
func SlogLogger(l *slog.Logger) Logger { return diag.NewSlog(l) }

// ZapLogger returns a [Logger] writing debug entries to l.
func ZapLogger(l *zap.Logger) Logger { return diag.NewZap(l) }

type (
	// Finding describes one annotated declaration.
	Finding = report.Finding

	// Findings is the list of findings of a program, in source order.
	Findings = report.Findings

	// FindingKind classifies a [Finding].
	FindingKind = report.Kind
)

const (
	// Rewrite is an annotated function declaration replaced by a decorator.
	Rewrite = report.Rewrite

	// Eligible is an annotated variable declaration eligible for injection.
	Eligible = report.Eligible

	// Rejected is an annotated variable declaration that is not eligible.
	Rejected = report.Rejected
)
