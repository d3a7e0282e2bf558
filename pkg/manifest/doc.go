/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest parses checksum manifests and drives file
// verification one record at a time.
//
// # Manifest Format
//
// Plain text, one entry per line, two whitespace-separated fields in
// order <digest> <filename>, as written by the md5sum utility:
//
//	4d93d51945b88325c213640ef59fc50b  foo.txt
//	ce5188defed222ca612b41580e0d5fe7  sub/dir/bar.txt
//
// Filenames are interpreted relative to the manifest's own directory, so
// a manifest and the files it lists can be relocated together. Blank
// lines and lines missing a digest or filename are skipped; lines that
// are otherwise malformed are retained as parse errors.
//
// # Pipeline
//
// Verify parses a manifest eagerly (so the total count is available for
// progress reporting) and hashes lazily, one file per advance:
//
//	p, err := manifest.Verify("checksums.txt")
//	if err != nil {
//	    return err // manifest missing or unreadable: nothing to report
//	}
//	for res := range p.Results() {
//	    switch {
//	    case res.Err != nil:
//	        fmt.Println("error:", res.Err)
//	    case res.Outcome.Match():
//	        fmt.Println(res.File, "ok")
//	    default:
//	        fmt.Println(res.File, res.Outcome)
//	    }
//	}
//
// # Failure Isolation
//
// A malformed line or an unreadable file never aborts the run. Both
// failure kinds are carried as values in the result stream, with
// distinct types (*ParseError, *FileError) so consumers can tell
// "could not parse this line" from "could not hash this file".
//
// # Metrics
//
// The package records Prometheus metrics (run duration, per-status
// result counts, record count) via the default registry.
package manifest
