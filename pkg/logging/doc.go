// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package logging provides structured logging utilities shared by the
// project version tooling.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults: structured JSON logging to stderr, environment-based log level
// configuration (LOG_LEVEL), automatic module and version context, and
// source location tracking for debug logs.
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
//	    logging.SetDefaultStructuredLogger("pver", "v1.0.0")
//
//	    slog.Info("resolving version", "core", "1.2.3")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pver", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is supplied. If LOG_LEVEL is not set, INFO is used.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "resolving version",
//	    "module": "pver",
//	    "version": "v1.0.0",
//	    "core": "1.2.3"
//	}
package logging
