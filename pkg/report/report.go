/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"time"

	"github.com/GovTechSG/chkr/pkg/header"
	"github.com/GovTechSG/chkr/pkg/manifest"
)

const (
	// APIVersion is the API version for verification results.
	APIVersion = "chkr.govtech.sg/v1alpha1"
)

// Severity is the ordered outcome classification of a verification run.
// Severities are totally ordered (match < mismatch < error) and reduce
// over a result stream with Worse, an associative worst-wins fold that
// needs no buffering.
type Severity string

const (
	// SeverityMatch indicates every comparison succeeded and matched.
	SeverityMatch Severity = "match"

	// SeverityMismatch indicates at least one digest mismatch and no errors.
	SeverityMismatch Severity = "mismatch"

	// SeverityError indicates at least one parse or I/O failure. Errors
	// take precedence over mismatches.
	SeverityError Severity = "error"
)

// rank orders severities for the worst-wins fold.
func (s Severity) rank() int {
	switch s {
	case SeverityMismatch:
		return 1
	case SeverityError:
		return 2
	default:
		return 0
	}
}

// ExitCode maps the severity to the process exit contract:
// match 0, mismatch 1, error 2.
func (s Severity) ExitCode() int {
	return s.rank()
}

// Worse returns the more severe of two severities.
func Worse(a, b Severity) Severity {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// Classify maps one pipeline result to its severity.
func Classify(res manifest.Result) Severity {
	switch {
	case res.Err != nil:
		return SeverityError
	case !res.Outcome.Match():
		return SeverityMismatch
	default:
		return SeverityMatch
	}
}

// Report is the complete, serializable outcome of a verification run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Source is the path of the verified manifest or file.
	Source string `json:"source" yaml:"source"`

	// Summary contains aggregate verification statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Results contains per-file verification details in manifest order.
	Results []FileResult `json:"results" yaml:"results"`
}

// Summary contains aggregate statistics about a verification run.
type Summary struct {
	// Matched is the count of files whose digests matched.
	Matched int `json:"matched" yaml:"matched"`

	// Mismatched is the count of files whose digests differed.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	// Errors is the count of records that could not be verified.
	Errors int `json:"errors" yaml:"errors"`

	// Total is the total number of results.
	Total int `json:"total" yaml:"total"`

	// Status is the worst severity observed across all results.
	Status Severity `json:"status" yaml:"status"`

	// Duration is how long the verification took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// FileResult represents the outcome of verifying a single record.
type FileResult struct {
	// File is the record's relative path; empty for manifest lines that
	// failed to parse.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Status is the severity of this single result.
	Status Severity `json:"status" yaml:"status"`

	// Expected is the digest listed in the manifest.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Actual is the digest computed from the file content.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Message provides failure context for error results.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Builder accumulates pipeline results into a Report, folding the
// overall severity as results stream in.
type Builder struct {
	report *Report
	start  time.Time
}

// NewBuilder creates a Builder for a run over the given source, with
// the header initialized to the tool version.
func NewBuilder(source, version string) *Builder {
	r := &Report{
		Source:  source,
		Results: make([]FileResult, 0),
	}
	r.Init(header.KindVerificationResult, APIVersion, version)
	r.Summary.Status = SeverityMatch

	return &Builder{
		report: r,
		start:  time.Now(),
	}
}

// Add folds one pipeline result into the report.
func (b *Builder) Add(res manifest.Result) Severity {
	severity := Classify(res)

	fr := FileResult{
		File:   res.File,
		Status: severity,
	}

	switch severity {
	case SeverityError:
		b.report.Summary.Errors++
		fr.Message = res.Err.Error()
	case SeverityMismatch:
		b.report.Summary.Mismatched++
		fr.Expected = res.Outcome.Expected
		fr.Actual = res.Outcome.Actual
	default:
		b.report.Summary.Matched++
		fr.Expected = res.Outcome.Expected
		fr.Actual = res.Outcome.Actual
	}

	b.report.Results = append(b.report.Results, fr)
	b.report.Summary.Status = Worse(b.report.Summary.Status, severity)

	return severity
}

// Status returns the worst severity folded so far.
func (b *Builder) Status() Severity {
	return b.report.Summary.Status
}

// Report finalizes and returns the accumulated report.
func (b *Builder) Report() *Report {
	b.report.Summary.Total = len(b.report.Results)
	b.report.Summary.Duration = time.Since(b.start)
	return b.report
}
