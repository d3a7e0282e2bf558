/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for chkr.
//
// # Overview
//
// chkr verifies file integrity against recorded MD5 digests, either for
// a single file or for every file listed in an md5sum-style checksum
// manifest.
//
// # Commands
//
// file - verify a single file:
//
//	chkr file <file-path> <expected-checksum>
//
// manifest - verify all files listed in a manifest:
//
//	chkr manifest <checksum-path> [--quiet]
//
// Both commands accept --output/-o and --format/-t to write a full
// verification report (header, summary, per-file results) in YAML,
// JSON, or table format. When only --output is given the format is
// inferred from the file extension. The manifest command additionally
// accepts --metrics to dump run metrics in the Prometheus text
// exposition format.
//
// # Exit Codes
//
// The process exit status is the worst observed result severity:
//
//	0  every digest matched
//	1  at least one mismatch, no errors
//	2  at least one error; errors take precedence over mismatches
//
// # Environment Variables
//
//	LOG_LEVEL     Logging verbosity (debug, info, warn, error)
//	CHKR_OUTPUT   Default report output path
//	CHKR_FORMAT   Default report format
//	CHKR_QUIET    Suppress the progress bar
//	CHKR_METRICS  Default metrics dump path (manifest command)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// specialized packages:
//   - pkg/digest - MD5 computation and single-file verification
//   - pkg/manifest - manifest parsing and the verification pipeline
//   - pkg/report - severity aggregation and the serializable report
//   - pkg/serializer - report output formatting
//   - pkg/progress - progress bar rendering
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/GovTechSG/chkr/pkg/cli.version=1.0.0'"
package cli
