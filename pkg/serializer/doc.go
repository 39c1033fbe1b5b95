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

// Package serializer provides encoding and decoding of structured data in
// multiple formats.
//
// # Overview
//
// The serializer package handles conversion between data structures and
// output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing data) and decoding (reading data) with
// automatic format detection from file extensions.
//
// The closed set of formats is defined with pkg/enum, so format labels,
// lookup, and the supported-format list all come from one definition.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control and configuration
//
// Table:
//   - Flattened key/value text representation
//   - Write-only, suitable for terminal viewing
//
// # Usage
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, data); err != nil {
//	    return err
//	}
//
// Reading:
//
//	cfg, err := serializer.FromFile[Config]("config.yaml")
package serializer
