// Package logging provides structured logging utilities shared by all
// vocab components.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions for consistent logging across the CLI and library code. It
// supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vocab", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("loader", "v2.0.0", "debug")
//	logger.Info("batch starting", "units", 12)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vocab", version, "warn")
//
// Converting to a standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug vocab sort 1.2 1.10
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format with module and version
// attributes attached to every record:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "batch complete",
//	    "module": "vocab",
//	    "version": "v1.0.0",
//	    "units": 12
//	}
package logging
