// Package cli implements the command-line interface for the vocab tool.
//
// # Overview
//
// The vocab CLI exposes the library's version ordering, slug, and
// document merging capabilities for scripting and ad-hoc use.
//
// # Commands
//
// compare - Order two version-like strings:
//
//	vocab compare 1.2 1.10
//
// Prints -1, 0, or 1 (with a human-readable relation) using segment-aware
// ordering, so numeric runs compare by magnitude rather than lexically.
//
// sort - Sort version-like strings:
//
//	vocab sort 1.2q 1.10 1.2a
//	git tag | vocab sort --latest
//
// Sorts arguments (or stdin lines) ascending and reports the highest.
//
// slug - Slugify free-form text:
//
//	vocab slug "Release Notes/2025 Q1"
//
// merge - Recursively overlay JSON/YAML documents:
//
//	vocab merge base.yaml region.yaml overrides.json
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	VOCAB_OUTPUT     Default output path
//	VOCAB_FORMAT     Default output format
//	VOCAB_LOG_LEVEL  Logging verbosity (LOG_LEVEL also honored)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version-string ordering
//   - pkg/slug - Slug generation
//   - pkg/merge - Recursive document overlay
//   - pkg/loader - Independent multi-file loading
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/vocab/pkg/cli.version=1.0.0'"
package cli
