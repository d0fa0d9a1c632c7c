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
	"github.com/spf13/pflag"

	"fillmore-labs.com/ngprovide/internal/config"
)

// Flag names registered by [RegisterFlags].
const (
	FlagVariant         = "variant"
	FlagPattern         = "pattern"
	FlagGenerated       = "generated"
	FlagDescendReplaced = "descend-replaced"
)

var behaviorFlags = [...]struct {
	name  string
	flag  config.Behavior
	usage string
}{
	{FlagGenerated, config.IncludeGenerated, "transform generated files"},
	{FlagDescendReplaced, config.DescendReplaced, "also rewrite annotated functions nested in rewritten ones"},
}

// Config holds transformer settings from a configuration file and the command line.
type Config struct {
	variant  Variant
	pattern  string
	behavior config.BitMask[config.Behavior]
}

// LoadConfig reads a YAML configuration file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := config.Load(path)
	if err != nil {
		return Config{}, err
	}

	return Config{variant: f.Variant, pattern: f.Pattern, behavior: f.Behavior()}, nil
}

// RegisterFlags binds c to command line flags of fs.
func RegisterFlags(fs *pflag.FlagSet, c *Config) {
	fs.Var(&c.variant, FlagVariant, `replacement shape, "replace" or "proxy"`)
	fs.StringVar(&c.pattern, FlagPattern, c.pattern, "regular expression matching marker comments")

	for _, b := range behaviorFlags {
		v := newBehaviorValue(&c.behavior, b.flag)
		fs.VarPF(v, b.name, "", b.usage).NoOptDefVal = "true"
	}
}

// Underlay takes the settings of base for all flags of fs not set on the command line.
func (c *Config) Underlay(base Config, fs *pflag.FlagSet) {
	if !fs.Changed(FlagVariant) {
		c.variant = base.variant
	}

	if !fs.Changed(FlagPattern) {
		c.pattern = base.pattern
	}

	for _, b := range behaviorFlags {
		if !fs.Changed(b.name) {
			c.behavior.Set(b.flag, base.behavior.Enabled(b.flag))
		}
	}
}

// Options returns the [Options] equivalent to c. It fails when the pattern does not compile.
func (c Config) Options() (Options, error) {
	pattern, err := config.CompilePattern(c.pattern)
	if err != nil {
		return nil, err
	}

	return Options{
		WithVariant(c.variant),
		WithPattern(pattern),
		WithGenerated(c.behavior.Enabled(config.IncludeGenerated)),
		WithDescendReplaced(c.behavior.Enabled(config.DescendReplaced)),
	}, nil
}
