/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GovTechSG/chkr/pkg/digest"
)

// Record is one parsed (file, expected-digest) pair from a manifest.
type Record struct {
	// File is the path of the file to verify, relative to the
	// manifest's own directory.
	File string `json:"file" yaml:"file"`

	// Checksum is the expected digest as lowercase hex.
	Checksum string `json:"checksum" yaml:"checksum"`
}

// Entry is one retained manifest line: either a Record or a ParseError.
// Lines that are blank, or that split into a single field (an empty
// digest or filename under the md5sum two-space convention), are dropped
// during parsing and never become entries.
type Entry struct {
	// Line is the 1-based manifest line the entry was parsed from.
	Line   int
	Record Record
	Err    *ParseError
}

// Result is the per-record unit yielded by a Pipeline. Exactly one of
// the following holds:
//   - Err is nil: the file was read and hashed; Outcome carries the
//     comparison (match or mismatch).
//   - Err is a *FileError: the record parsed but the file could not be
//     read; File identifies it.
//   - Err is a *ParseError: the manifest line itself was malformed;
//     File is empty and Line locates the offending row.
type Result struct {
	// File is the relative path from the manifest record.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Line is the 1-based manifest line number the result came from.
	// Zero when the result was not produced from a manifest, as in
	// single-file verification.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Outcome holds the digest comparison when Err is nil.
	Outcome digest.Outcome `json:"outcome" yaml:"outcome"`

	// Err is nil for a completed comparison, *ParseError for a
	// malformed line, or *FileError for an unreadable file.
	Err error `json:"-" yaml:"-"`
}

// Parse splits manifest content into retained entries, preserving line
// order. Tokens are whitespace-separated with empty tokens dropped,
// which tolerates the two-space md5sum convention. Lines with zero or
// one tokens are skipped silently; lines with exactly two become
// records; anything else is retained as a ParseError entry.
//
// Filenames containing spaces cannot be represented in this format and
// surface as parse errors.
func Parse(data []byte) []Entry {
	lines := strings.Split(string(data), "\n")
	entries := make([]Entry, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Fields(line)

		switch len(fields) {
		case 0, 1:
			// Blank line, or a row missing its digest or filename.
			continue
		case 2:
			entries = append(entries, Entry{
				Line: i + 1,
				Record: Record{
					Checksum: fields[0],
					File:     fields[1],
				},
			})
		default:
			entries = append(entries, Entry{
				Line: i + 1,
				Err:  &ParseError{Line: i + 1, Text: line},
			})
		}
	}

	return entries
}

// Pipeline drives verification of the records parsed from one manifest.
// Records are parsed eagerly at construction so the total count is known
// up front; digests are computed lazily, one record per advance. A
// Pipeline is a single forward pass and is not restartable: re-verifying
// requires a new Pipeline from Verify.
type Pipeline struct {
	// workingDir is the manifest's directory; record paths resolve
	// against it so a manifest and its files can be relocated together.
	workingDir string

	entries []Entry
	next    int
	started time.Time
	drained bool
}

// Verify canonicalizes the manifest at path and parses it into a
// Pipeline. It returns an error only for whole-run failures: the
// manifest path cannot be resolved or its content cannot be read.
// Per-line and per-file failures are deferred to the result stream.
func Verify(path string) (*Pipeline, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
	}

	data, err := os.ReadFile(resolved) // #nosec G304 -- manifest path is caller-provided by design of the tool
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", resolved, err)
	}

	p := &Pipeline{
		workingDir: filepath.Dir(resolved),
		entries:    Parse(data),
		started:    time.Now(),
	}

	recordGauge.Set(float64(len(p.entries)))

	slog.Debug("manifest parsed",
		"manifest", resolved,
		"workingDir", p.workingDir,
		"records", len(p.entries))

	return p, nil
}

// Total returns the number of results the pipeline will yield: parsed
// records plus parse-error placeholders, excluding dropped blank lines.
func (p *Pipeline) Total() int {
	return len(p.entries)
}

// Next yields the next result in manifest order, computing exactly one
// digest per call. The second return value is false once the stream is
// exhausted.
func (p *Pipeline) Next() (Result, bool) {
	if p.next >= len(p.entries) {
		if !p.drained {
			p.drained = true
			runDuration.Observe(time.Since(p.started).Seconds())
		}
		return Result{}, false
	}

	entry := p.entries[p.next]
	p.next++

	if entry.Err != nil {
		resultTotal.WithLabelValues(statusParseError).Inc()
		return Result{Line: entry.Line, Err: entry.Err}, true
	}

	rec := entry.Record
	outcome, err := digest.VerifyFile(filepath.Join(p.workingDir, rec.File), rec.Checksum)
	if err != nil {
		resultTotal.WithLabelValues(statusIOError).Inc()
		return Result{File: rec.File, Line: entry.Line, Err: &FileError{File: rec.File, Err: err}}, true
	}

	if outcome.Match() {
		resultTotal.WithLabelValues(statusMatch).Inc()
	} else {
		resultTotal.WithLabelValues(statusMismatch).Inc()
	}

	return Result{File: rec.File, Line: entry.Line, Outcome: outcome}, true
}

// Results returns the remaining results as a range-over-func sequence.
// It shares the pipeline's single forward pass: breaking out of the
// range simply stops further hashing.
func (p *Pipeline) Results() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for {
			res, ok := p.Next()
			if !ok {
				return
			}
			if !yield(res) {
				return
			}
		}
	}
}
