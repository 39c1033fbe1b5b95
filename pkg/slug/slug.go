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

// Package slug converts free-form text into URL- and file-safe
// identifiers. Path separators become hyphens rather than disappearing,
// so "docs/getting started" and "docsgetting started" produce distinct
// slugs.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes their combining marks,
// so "café" folds to "cafe" before the ASCII pass.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases the input, transliterates accented characters to
// their base form, and collapses every run of non-alphanumeric characters
// (including '/' and '\') into a single hyphen. Leading and trailing
// hyphens are trimmed. The result contains only [a-z0-9-].
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Malformed UTF-8: fall back to the raw input, the ASCII
		// pass below drops anything unrepresentable anyway.
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false // a separator run is open
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}
	return b.String()
}
