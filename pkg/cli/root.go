/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/GovTechSG/chkr/pkg/logging"
	"github.com/GovTechSG/chkr/pkg/report"
	"github.com/GovTechSG/chkr/pkg/serializer"
)

const (
	name           = "chkr"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags across commands. Constructed per command because
// urfave/cli stores parsed state on the flag instance itself.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Sources: cli.EnvVars("CHKR_OUTPUT"),
		Usage:   "Write the verification report to this file; format inferred from the extension unless --format is set",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("CHKR_FORMAT"),
		Usage: fmt.Sprintf("Report output format (supported values: %v)",
			serializer.SupportedFormats()),
	}
}

// exitError carries a verification severity out of a command action so
// Run can map it to the process exit contract without urfave/cli
// treating a mismatch as a usage failure.
type exitError struct {
	severity report.Severity
}

// Error implements the error interface.
func (e *exitError) Error() string {
	return string(e.severity)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Verify file integrity against recorded MD5 digests",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			fileCmd(),
			manifestCmd(),
		},
	}
}

// Run executes the CLI and returns the process exit code: 0 when all
// digests matched, 1 when at least one mismatched, 2 for any error.
// This is called by main.main().
func Run(ctx context.Context, args []string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	err := rootCmd().Run(ctx, args)
	if err == nil {
		return report.SeverityMatch.ExitCode()
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.severity.ExitCode()
	}

	fmt.Fprintln(os.Stderr, err)
	return report.SeverityError.ExitCode()
}

// writeReport serializes the verification report when --output or a
// non-default --format was requested. When only --output is given, the
// format is inferred from its file extension.
func writeReport(ctx context.Context, cmd *cli.Command, rep *report.Report) error {
	output := cmd.String("output")
	if output == "" && !cmd.IsSet("format") {
		return nil
	}

	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}
	if !cmd.IsSet("format") {
		format = serializer.FormatFromPath(output)
	}

	var w *serializer.Writer
	if output == "" {
		// Without a destination file the report follows the result
		// lines on the command's writer.
		w = serializer.NewWriter(format, cmd.Root().Writer)
	} else {
		w = serializer.NewFileWriterOrStdout(format, output)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close report writer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, rep); err != nil {
		return fmt.Errorf("failed to serialize verification report: %w", err)
	}
	return nil
}

// severityExit converts a final run severity into the action's return
// value: nil for match so urfave/cli reports success, an exitError
// otherwise.
func severityExit(severity report.Severity) error {
	if severity == report.SeverityMatch {
		return nil
	}
	return &exitError{severity: severity}
}
