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
	"regexp"

	"fillmore-labs.com/ngprovide/internal/annotation"
	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/internal/diag"
	"fillmore-labs.com/ngprovide/internal/transform"
)

// runOptions represent the configuration of a [Transformer].
type runOptions struct {
	variant Variant

	// pattern matches marker comments.
	pattern *regexp.Regexp

	logger Logger

	// behavior holds optional transformer behavior.
	behavior config.BitMask[config.Behavior]
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		variant: Replace,
		pattern: annotation.DefaultPattern,
		logger:  diag.Silent,
	}
}

func (r *runOptions) transformer() *Transformer {
	return &Transformer{
		transformer: transform.New(transform.Options{
			Variant:  r.variant,
			Pattern:  r.pattern,
			Logger:   r.logger,
			Behavior: r.behavior,
		}),
		matches:  annotation.New(r.pattern),
		behavior: r.behavior,
	}
}
