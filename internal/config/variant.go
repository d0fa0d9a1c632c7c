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
	"fmt"
	"strings"
)

// Variant selects the shape of the code replacing an annotated controller.
type Variant uint8

const (
	// Replace substitutes the annotated function for the directive controller.
	Replace Variant = iota

	// Proxy wraps the annotated function, giving it access to the original controller.
	Proxy
)

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case Replace:
		return []byte("replace"), nil

	case Proxy:
		return []byte("proxy"), nil

	default:
		return nil, fmt.Errorf("unknown variant %d", v)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "replace", "direct":
		*v = Replace

	case "proxy", "mock":
		*v = Proxy

	default:
		return fmt.Errorf("unknown variant %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer] and [github.com/spf13/pflag.Value].
func (v Variant) String() string {
	text, err := v.MarshalText()
	if err != nil {
		return fmt.Sprintf("Variant(%d)", v)
	}

	return string(text)
}

// Set implements [github.com/spf13/pflag.Value].
func (v *Variant) Set(s string) error { return v.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Variant) Type() string { return "variant" }
