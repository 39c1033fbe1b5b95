// Copyright (c) 2025, The vocab Authors.  All rights reserved.
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

package version

import (
	"testing"
)

// FuzzCompare verifies that Compare is a total order over arbitrary
// string triples: it never panics, is reflexive and antisymmetric,
// returns zero exactly for identical strings, and is transitive.
func FuzzCompare(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2", "1.10", "1.2a")
	f.Add("", "1", "0")
	f.Add("1.2", "1.2.0", "1.2q")
	f.Add("1.01", "1.1", "01.")
	f.Add("v1.2.3", "v1.2", "v2")
	f.Add("1.103b", "1.1011c", "1.1.b")
	f.Add("0000", "0", "00")
	f.Add("1!", "1.", "1-")
	f.Add("999999999999999999999", "1000000000000000000000", "9")
	f.Add("a.b.c", "a.b", "a")

	f.Fuzz(func(t *testing.T, a, b, c string) {
		ab := Compare(a, b)
		bc := Compare(b, c)
		ac := Compare(a, c)

		if Compare(a, a) != 0 {
			t.Errorf("Compare(%q, %q) != 0", a, a)
		}

		if ab != -Compare(b, a) {
			t.Errorf("antisymmetry violated for %q, %q", a, b)
		}

		if (ab == 0) != (a == b) {
			t.Errorf("Compare(%q, %q) = %d, zero iff equal violated", a, b, ab)
		}

		if ab <= 0 && bc <= 0 && ac > 0 {
			t.Errorf("transitivity violated: %q <= %q <= %q but Compare(%q, %q) = %d",
				a, b, c, a, c, ac)
		}

		if Less(a, b) != (ab < 0) {
			t.Errorf("Less(%q, %q) inconsistent with Compare", a, b)
		}
		if Equal(a, b) != (ab == 0) {
			t.Errorf("Equal(%q, %q) inconsistent with Compare", a, b)
		}
	})
}
