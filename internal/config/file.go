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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the configuration file looked up in the working directory.
const DefaultFile = ".ngprovide.yaml"

// ErrInvalidPattern is returned when the configured annotation pattern does not compile.
var ErrInvalidPattern = errors.New("invalid annotation pattern")

// File is the content of a configuration file.
type File struct {
	Variant         Variant `yaml:"variant"`
	Pattern         string  `yaml:"pattern,omitempty"`
	Generated       bool    `yaml:"generated"`
	DescendReplaced bool    `yaml:"descend_replaced"`
}

// Load reads the configuration file at path. A missing file yields the defaults.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}

		return f, fmt.Errorf("can't read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("can't parse config %s: %w", path, err)
	}

	if _, err := f.Regexp(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Regexp compiles the annotation pattern. It returns nil when no pattern is configured.
func (f File) Regexp() (*regexp.Regexp, error) {
	return CompilePattern(f.Pattern)
}

// Behavior returns the enabled behavior flags.
func (f File) Behavior() BitMask[Behavior] {
	var b BitMask[Behavior]
	b.Set(IncludeGenerated, f.Generated)
	b.Set(DescendReplaced, f.DescendReplaced)

	return b
}

// CompilePattern compiles an annotation pattern. The empty pattern yields nil.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	return re, nil
}
