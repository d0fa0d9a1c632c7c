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
	"fmt"
	"log/slog"
	"regexp"

	"fillmore-labs.com/ngprovide/internal/config"
)

// Option configures specific behavior of a [New] transformer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithVariant is an [Option] to select the shape of the replacement code.
func WithVariant(variant Variant) Option { return variantOption{variant: variant} }

type variantOption struct{ variant Variant }

func (o variantOption) apply(r *runOptions) {
	r.variant = o.variant
}

func (o variantOption) LogAttr() slog.Attr {
	return slog.String("variant", o.variant.String())
}

// WithPattern is an [Option] to configure the regular expression matching marker comments.
// The pattern is tested against the comment text without delimiters. A nil pattern
// selects the default, matching a comment consisting of "@ngProvide" only.
func WithPattern(pattern *regexp.Regexp) Option { return patternOption{pattern: pattern} }

type patternOption struct{ pattern *regexp.Regexp }

func (o patternOption) apply(r *runOptions) {
	if o.pattern == nil {
		return
	}

	r.pattern = o.pattern
}

func (o patternOption) LogAttr() slog.Attr {
	if o.pattern == nil {
		return slog.String("pattern", "<default>")
	}

	return slog.String("pattern", o.pattern.String())
}

// WithLogger is an [Option] to receive the eligibility decisions for declarations.
// A nil logger discards them.
func WithLogger(logger Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger == nil {
		r.logger = Silent
		return
	}

	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.String("logger", fmt.Sprintf("%T", o.logger))
}

// WithGenerated is an [Option] to configure transformation of generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDescendReplaced is an [Option] to also rewrite annotated functions nested in a rewritten one.
func WithDescendReplaced(descend bool) Option { return descendOption{descend: descend} }

type descendOption struct{ descend bool }

func (o descendOption) apply(r *runOptions) {
	r.behavior.Set(config.DescendReplaced, o.descend)
}

func (o descendOption) LogAttr() slog.Attr {
	return slog.Bool("descend-replaced", o.descend)
}
