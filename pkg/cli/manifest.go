/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/manifest"
	"github.com/GovTechSG/chkr/pkg/progress"
	"github.com/GovTechSG/chkr/pkg/report"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Verify all files listed in a checksum manifest",
		ArgsUsage:             "<checksum-path>",
		Description: `Verify every file listed in a checksum manifest, the two-column
"<digest> <filename>" format written by the md5sum utility. Filenames
resolve relative to the manifest's own directory, so a manifest and the
files it lists can be relocated together.

One result line is printed per record, in manifest order. A malformed
line or an unreadable file is reported and counted as an error but never
stops verification of the remaining records.

# Exit Codes

The run reduces to the worst observed result:

  0  every digest matched
  1  at least one mismatch, no errors
  2  at least one error (unreadable file or malformed line), or the
     manifest itself could not be read

# Examples

Verify a manifest:
  chkr manifest checksums.txt

Verify without the progress bar (for scripts and CI logs):
  chkr manifest checksums.txt --quiet

Verify and write a YAML report:
  chkr manifest checksums.txt -o report.yaml

Verify and dump run metrics in Prometheus text format:
  chkr manifest checksums.txt --metrics metrics.prom`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Sources: cli.EnvVars("CHKR_QUIET"),
				Usage:   "Suppress the progress bar",
			},
			&cli.StringFlag{
				Name:    "metrics",
				Sources: cli.EnvVars("CHKR_METRICS"),
				Usage:   "Write run metrics to this file in Prometheus text exposition format",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected <checksum-path>, got %d argument(s)", cmd.NArg())
			}

			manifestPath := cmd.Args().Get(0)

			slog.Debug("verifying manifest", "manifest", manifestPath)

			p, err := manifest.Verify(manifestPath)
			if err != nil {
				// Whole-run failure: nothing was yielded, nothing to report.
				return err
			}

			b := report.NewBuilder(manifestPath, version)
			bar := progress.New(p.Total(), !cmd.Bool("quiet"))

			total := p.Total()
			i := 0
			for res := range p.Results() {
				if ctx.Err() != nil {
					bar.Finish()
					return fmt.Errorf("verification interrupted: %w", ctx.Err())
				}

				i++
				severity := b.Add(res)
				fmt.Fprintf(cmd.Root().Writer, "(%d/%d %.2f%%) %s\n",
					i, total, float64(i)/float64(total)*100, resultLine(res, severity))
				bar.Increment()
			}
			bar.Finish()

			rep := b.Report()

			slog.Info("verification completed",
				"manifest", manifestPath,
				"matched", rep.Summary.Matched,
				"mismatched", rep.Summary.Mismatched,
				"errors", rep.Summary.Errors,
				"total", rep.Summary.Total,
				"status", rep.Summary.Status,
				"duration", rep.Summary.Duration)

			if err := writeReport(ctx, cmd, rep); err != nil {
				return err
			}

			if path := cmd.String("metrics"); path != "" {
				if err := writeMetricsFile(path); err != nil {
					return err
				}
			}

			return severityExit(rep.Summary.Status)
		},
	}
}

// writeMetricsFile dumps the run's Prometheus metrics to path.
func writeMetricsFile(path string) error {
	f, err := os.Create(path) // #nosec G304 -- metrics path is caller-provided by design of the tool
	if err != nil {
		return fmt.Errorf("failed to create metrics file %s: %w", path, err)
	}

	if err := manifest.WriteMetrics(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
