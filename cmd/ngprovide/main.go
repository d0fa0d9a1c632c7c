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

// Command ngprovide rewrites @ngProvide annotated controller functions in AngularJS test sources.
//
// Usage:
//
//	ngprovide [flags] [files...]
//	ngprovide check [flags] [files...]
//
// Without files, the source is read from standard input. Rewritten sources are written
// to standard output unless --write is given. The check command lists annotated
// declarations and exits with status 1 when an annotated variable declaration is not
// eligible for injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errRejected) {
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "ngprovide:", err)
		os.Exit(2)
	}
}
