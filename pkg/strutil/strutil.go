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

// Package strutil provides small string conversion helpers used where
// optional values meet required-string interfaces.
package strutil

// EmptyIfNil converts an optional string pointer into a plain string,
// mapping nil to the empty string.
func EmptyIfNil(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Coalesce returns the first non-empty string in the given order, or the
// empty string if all are empty.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
