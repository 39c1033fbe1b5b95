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

package serializer

import (
	"context"

	"github.com/mchmarny/vocab/pkg/enum"
)

// Serializer is an interface for writing structured data. Implementations
// serialize to various formats such as JSON, YAML, or tables.
//
// The context parameter is used for cancellation and timeouts in
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers implement when they
// hold resources (e.g. file handles).
type Closer interface {
	Close() error
}

// Format identifies an output format.
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

// fieldExtensions is the member field carrying the file extensions
// associated with a format.
const fieldExtensions = "extensions"

// Formats is the closed set of output formats. The definition order is
// the order formats appear in usage text.
var Formats = enum.MustNew(
	enum.M(FormatJSON, "JSON", "JSON (machine readable)").
		With(fieldExtensions, []string{".json"}),
	enum.M(FormatYAML, "YAML", "YAML (human readable)").
		With(fieldExtensions, []string{".yaml", ".yml"}),
	enum.M(FormatTable, "TABLE", "Table (terminal friendly)").
		With(fieldExtensions, []string{".table", ".txt"}),
)

// IsUnknown reports whether f is outside the closed format set.
func (f Format) IsUnknown() bool {
	return !Formats.ContainsValue(f)
}

// SupportedFormats returns the names of all supported output formats in
// definition order.
func SupportedFormats() []string {
	out := make([]string, 0, Formats.Len())
	for m := range Formats.Members() {
		out = append(out, string(m.Value))
	}
	return out
}
