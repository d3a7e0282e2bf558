/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/digest"
	"github.com/GovTechSG/chkr/pkg/manifest"
	"github.com/GovTechSG/chkr/pkg/report"
)

func fileCmd() *cli.Command {
	return &cli.Command{
		Name:                  "file",
		EnableShellCompletion: true,
		Usage:                 "Verify a single file against an expected digest",
		ArgsUsage:             "<file-path> <expected-checksum>",
		Description: `Compute the MD5 digest of a single file and compare it against the
expected value. The expected checksum must be lowercase hex, as printed
by the md5sum utility.

# Exit Codes

  0  digest matched
  1  digest mismatched
  2  file unreadable or invalid invocation

# Examples

Verify one file:
  chkr file archive.tar.gz 4d93d51945b88325c213640ef59fc50b

Verify and write a JSON report:
  chkr file archive.tar.gz 4d93d51945b88325c213640ef59fc50b -o result.json -t json`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected <file-path> <expected-checksum>, got %d argument(s)", cmd.NArg())
			}

			path := cmd.Args().Get(0)
			expected := cmd.Args().Get(1)

			slog.Debug("verifying file", "path", path, "expected", expected)

			b := report.NewBuilder(path, version)

			// Single-file verification is the one-record convenience
			// path: it bypasses manifest parsing and calls the digest
			// engine directly.
			res := manifest.Result{File: path}
			outcome, err := digest.VerifyFile(path, expected)
			if err != nil {
				res.Err = &manifest.FileError{File: path, Err: err}
			} else {
				res.Outcome = outcome
			}

			severity := b.Add(res)
			fmt.Fprintln(cmd.Root().Writer, resultLine(res, severity))

			if err := writeReport(ctx, cmd, b.Report()); err != nil {
				return err
			}

			return severityExit(severity)
		},
	}
}

// resultLine renders one verification result the way md5sum -c does,
// with digests or the failure reason appended for non-matches.
func resultLine(res manifest.Result, severity report.Severity) string {
	switch severity {
	case report.SeverityError:
		if res.File == "" {
			return fmt.Sprintf("ERROR: %v", res.Err)
		}
		return fmt.Sprintf("%s: ERROR: %v", res.File, res.Err)
	case report.SeverityMismatch:
		return fmt.Sprintf("%s: FAILED (expected %s, actual %s)",
			res.File, res.Outcome.Expected, res.Outcome.Actual)
	default:
		return fmt.Sprintf("%s: OK", res.File)
	}
}
