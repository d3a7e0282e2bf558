/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package report aggregates per-record verification results into an
// overall run status and a serializable report.
//
// # Severity
//
// Every result classifies to one of three ordered severities, and the
// run status is their worst-wins reduction:
//
//	match (exit 0) < mismatch (exit 1) < error (exit 2)
//
// Worse is associative, so the reduction can be computed incrementally
// while streaming results without buffering:
//
//	status := report.SeverityMatch
//	for res := range p.Results() {
//	    status = report.Worse(status, report.Classify(res))
//	}
//	os.Exit(status.ExitCode())
//
// # Report
//
// Builder produces the full serializable report (header, summary,
// per-file results) while performing the same fold:
//
//	b := report.NewBuilder(manifestPath, version)
//	for res := range p.Results() {
//	    b.Add(res)
//	}
//	rep := b.Report()
package report
