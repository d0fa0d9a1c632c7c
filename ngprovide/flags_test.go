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

package ngprovide_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"fillmore-labs.com/ngprovide/internal/config"
	. "fillmore-labs.com/ngprovide/ngprovide"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	const src = `/* @ngProvide */
function Outer() {
  /* @inject */
  function Inner() {}
}
`

	tests := []struct {
		name    string
		args    []string
		want    int
		contain string
	}{
		{
			name:    "Defaults",
			want:    1,
			contain: "Outer.push(this);",
		},
		{
			name:    "Proxy",
			args:    []string{"--variant=proxy"},
			want:    1,
			contain: "Outer.push(self);",
		},
		{
			name:    "PatternDescend",
			args:    []string{"--pattern", `^\s*@(ngProvide|inject)\s*$`, "--descend-replaced"},
			want:    2,
			contain: `"InnerDirective"`,
		},
		{
			name: "DescendOff",
			args: []string{"--pattern", `@(ngProvide|inject)`, "--descend-replaced=false"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c Config

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			RegisterFlags(fs, &c)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			opts, err := c.Options()
			if err != nil {
				t.Fatalf("Options failed: %v", err)
			}

			out, n, err := New(opts).Source(context.Background(), []byte(src))
			if err != nil {
				t.Fatalf("Source failed: %v", err)
			}

			if n != tt.want {
				t.Errorf("Got %d replacements, want %d", n, tt.want)
			}

			if !strings.Contains(string(out), tt.contain) {
				t.Errorf("Got output without %q:\n%s", tt.contain, out)
			}
		})
	}
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"Variant", []string{"--variant=sideways"}},
		{"Bool", []string{"--generated=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c Config

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.SetOutput(new(strings.Builder))
			RegisterFlags(fs, &c)

			if err := fs.Parse(tt.args); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	t.Parallel()

	var c Config

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, &c)

	if err := fs.Parse([]string{"--pattern=("}); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Options(); !errors.Is(err, config.ErrInvalidPattern) {
		t.Errorf("Got error %v, want %v", err, config.ErrInvalidPattern)
	}
}

func TestUnderlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ngprovide.yaml")

	const file = "variant: proxy\ngenerated: true\ndescend_replaced: true\n"
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatal(err)
	}

	base, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	var c Config

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, &c)

	if err := fs.Parse([]string{"--generated=false"}); err != nil {
		t.Fatal(err)
	}

	c.Underlay(base, fs)

	opts, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, a := range opts.LogValue().Group() {
		got = append(got, a.String())
	}

	want := "variant=proxy pattern=<default> generated=false descend-replaced=true"
	if strings.Join(got, " ") != want {
		t.Errorf("Got %q, want %q", strings.Join(got, " "), want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()

	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts, err := c.Options(); err != nil || len(opts) != 4 {
		t.Errorf("Got %v, %v, want default options", opts, err)
	}
}
