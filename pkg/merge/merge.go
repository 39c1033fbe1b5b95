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

// Package merge overlays decoded JSON/YAML style maps and provides
// tolerant deep lookups into them.
package merge

// Maps overlays src onto dst and returns dst. Keys present in src win;
// when both sides hold a map for the same key the maps are merged
// recursively instead of replaced. dst is mutated in place. A nil dst is
// allocated, a nil src is a no-op.
func Maps(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				dst[k] = Maps(dm, sm)
				continue
			}
		}
		dst[k] = sv
	}
	return dst
}

// Overlay merges the given layers in order into a fresh map, later layers
// winning. The inputs are not mutated at the top level, although nested
// maps from earlier layers may be extended in place.
func Overlay(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		out = Maps(out, layer)
	}
	return out
}

// Extract walks a decoded document along the given path and returns the
// value found there. Each step is either a string key into a map or an
// int index into a list. A missing key, an out-of-range index, a nil
// document, or a step that does not match the shape of the value at that
// point reports ok=false; Extract never panics on shape mismatches.
func Extract(obj map[string]any, path ...any) (any, bool) {
	if obj == nil || len(path) == 0 {
		return nil, false
	}

	var current any = obj
	for _, step := range path {
		switch s := step.(type) {
		case string:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[s]
			if !ok {
				return nil, false
			}
		case int:
			list, ok := current.([]any)
			if !ok || s < 0 || s >= len(list) {
				return nil, false
			}
			current = list[s]
		default:
			return nil, false
		}
	}
	return current, true
}
