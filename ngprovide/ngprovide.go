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
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/ngprovide/internal/annotation"
	"fillmore-labs.com/ngprovide/internal/astutil"
	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/internal/report"
	"fillmore-labs.com/ngprovide/internal/transform"
	"fillmore-labs.com/ngprovide/jsast"
	"fillmore-labs.com/ngprovide/jsparse"
)

// Transformer rewrites annotated function declarations. It is safe for concurrent use.
type Transformer struct {
	transformer *transform.Transformer
	matches     annotation.Matcher
	behavior    config.BitMask[config.Behavior]
}

// New creates a [Transformer] configured by opts.
func New(opts ...Option) *Transformer {
	r := makeRunOptions(opts)

	return r.transformer()
}

// Transform rewrites prog in place and returns it.
func (t *Transformer) Transform(prog *jsast.Program) *jsast.Program {
	return t.transformer.Transform(prog)
}

// Rewrite rewrites prog in place and returns the number of replaced function declarations.
func (t *Transformer) Rewrite(prog *jsast.Program) int {
	return t.transformer.Rewrite(prog)
}

// Source parses and rewrites JavaScript source. Only the replaced declarations are
// printed anew; all other source text, including comments and blank lines, is kept
// as is. When nothing is replaced, src is returned unchanged.
func (t *Transformer) Source(ctx context.Context, src []byte) ([]byte, int, error) {
	defer trace.StartRegion(ctx, "Source").End()

	prog, err := jsparse.Parse(ctx, src)
	if err != nil {
		return nil, 0, err
	}

	edits := t.transformer.Edits(prog)
	if len(edits) == 0 {
		return src, 0, nil
	}

	out, err := jsast.Apply(src, edits)
	if err != nil {
		return nil, 0, fmt.Errorf("can't apply replacements: %w", err)
	}

	return out, len(edits), nil
}

// Check lists the annotated declarations of prog without modifying it.
// Generated programs have no findings unless generated files are included.
func (t *Transformer) Check(ctx context.Context, prog *jsast.Program) Findings {
	if !t.behavior.Enabled(config.IncludeGenerated) && astutil.IsGenerated(prog) {
		return nil
	}

	return report.Check(ctx, prog, t.matches, t.behavior.Enabled(config.DescendReplaced))
}

// CheckSource parses src and lists its annotated declarations.
func (t *Transformer) CheckSource(ctx context.Context, src []byte) (Findings, error) {
	prog, err := jsparse.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	return t.Check(ctx, prog), nil
}
