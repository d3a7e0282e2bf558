/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import "fmt"

// ParseError reports a structurally malformed manifest line. It is
// carried as an element of the result stream so that one bad line does
// not abort verification of the remaining records.
type ParseError struct {
	// Line is the 1-based line number within the manifest.
	Line int

	// Text is the offending line content.
	Text string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("manifest line %d: malformed entry %q: expected \"<digest> <file>\"", e.Line, e.Text)
}

// FileError reports that a listed file could not be read and hashed.
// Like ParseError it is isolated to a single result-stream element.
type FileError struct {
	// File is the relative path from the manifest record.
	File string

	// Err is the underlying I/O failure.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("failed to verify %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *FileError) Unwrap() error {
	return e.Err
}
