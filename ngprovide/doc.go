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

// Package ngprovide rewrites annotated controller functions in AngularJS test sources.
//
// # Overview
//
// A function declaration marked with an @ngProvide comment is replaced by an array
// holding every controller instance and a decorator registration swapping the
// controller of the directive of the same name.
//
// # Example
//
// Before:
//
//	/* @ngProvide */
//	function Foo($scope) {
//	  this.x = 1;
//	}
//
// After:
//
//	/* @ngProvide */
//	var Foo = [];
//	beforeEach(angular.mock.module(function($provide) {
//	  $provide.decorator("FooDirective", function($delegate) {
//	    var directive = $delegate[0];
//	    var $oldController = directive.controller;
//	    var newController = function($scope) {
//	      Foo.push(this);
//	      this.x = 1;
//	    };
//	    directive.controller = newController;
//	    return $delegate;
//	  });
//	}));
//
// # Variants
//
// [Replace] substitutes the annotated function for the controller, as above. [Proxy]
// installs a wrapper that records the instance, exposes the original controller as
// $oldController and $super, and then invokes the annotated function.
package ngprovide
