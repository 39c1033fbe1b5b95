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

// Package version orders free-form version-like strings by mixed
// numeric/lexical segment comparison instead of plain byte comparison,
// so "1.10" sorts after "1.2" and "1.2a" before "1.2q".
package version

import (
	"slices"
	"strings"
)

// Compare orders two version-like strings and returns -1, 0, or 1.
//
// The strings are walked in parallel. When both positions sit on a
// decimal digit, the maximal digit runs on each side are compared by
// numeric magnitude (leading zeros do not affect magnitude, and runs of
// any length are supported). Otherwise the bytes at the two positions
// are compared directly, which also fixes the mixed-kind ordering: a
// digit sorts by its code point against any non-digit, so digits order
// after '.' and '-' but before letters.
//
// If the walk finds no difference:
//   - the string whose segments ran out first sorts first, so
//     "1.2" < "1.2.0" and "" < "1";
//   - otherwise the segments were pairwise equal and the tie is broken
//     by plain lexical comparison, so "1.01" < "1.1".
//
// Compare never fails: any string, including empty, is comparable, and
// the resulting relation is a total order (Compare(a, b) == 0 only when
// a == b). Only ASCII digits 0-9 are treated as numeric.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			// number-to-number comparison over the full digit runs
			ea, eb := digitRunEnd(a, i), digitRunEnd(b, j)
			if r := compareNumeric(a[i:ea], b[j:eb]); r != 0 {
				return r
			}
			i, j = ea, eb
			continue
		}

		// simple byte comparison (UTF-8 preserves code point order)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	// no difference found segment-wise; shorter segment sequence first,
	// then lexical tie-break for leading-zero variants
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// Less reports whether a orders before b. Suitable as a sort predicate.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b order the same.
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}

// Sort sorts version strings in place, ascending. The sort is stable,
// although Compare is strict enough that equal elements are identical.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Latest returns the highest-ordering version in the slice, or the
// empty string if the slice is empty.
func Latest(versions []string) string {
	var latest string
	for i, v := range versions {
		if i == 0 || Compare(v, latest) > 0 {
			latest = v
		}
	}
	return latest
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRunEnd returns the index one past the maximal digit run starting at i.
func digitRunEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// compareNumeric compares two all-digit strings by numeric magnitude
// without converting them, so arbitrarily long runs cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
