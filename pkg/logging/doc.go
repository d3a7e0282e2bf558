/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging for chkr.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module and version attributes on every record,
// level configuration via the LOG_LEVEL environment variable or an
// explicit override, and source location tracking at debug level.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("chkr", version)
//	slog.Info("starting", "manifest", path)
//
// Override the level from a flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("chkr", version, "debug")
//
// Output format:
//
//	{"time":"2026-08-24T10:30:00.123Z","level":"INFO","msg":"starting",
//	 "module":"chkr","version":"v1.0.0","manifest":"checksum.txt"}
//
// Logs go to stderr so that verification output on stdout stays
// machine-consumable.
package logging
