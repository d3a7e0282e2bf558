/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes verification reports in various formats.
//
// Three output formats are supported:
//   - JSON: machine-readable, indented
//   - YAML: human-readable, suitable for version control
//   - Table: flattened key/value view for terminal reading
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, rep); err != nil {
//	    return err
//	}
//
// An empty output path writes to stdout. Close releases the underlying
// file handle and is safe to call on stdout-backed writers.
package serializer
