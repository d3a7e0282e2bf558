/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testReport struct {
	Source  string `json:"source" yaml:"source"`
	Matched int    `json:"matched" yaml:"matched"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := testReport{Source: "checksum.txt", Matched: 3}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected round-trip: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testReport{Source: "checksum.txt", Matched: 3}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected round-trip: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testReport{Source: "checksum.txt", Matched: 3}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Source", "checksum.txt", "Matched", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_UnknownFormatDefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testReport{Source: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "source: x") {
		t.Errorf("expected YAML fallback, got:\n%s", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	writer := NewFileWriterOrStdout(FormatJSON, path)
	if err := writer.Serialize(context.Background(), testReport{Source: "checksum.txt"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "checksum.txt") {
		t.Errorf("file output missing payload:\n%s", data)
	}
}

func TestNewFileWriterOrStdout_EmptyPathUsesStdout(t *testing.T) {
	writer := NewFileWriterOrStdout(FormatYAML, "")
	if writer.closer != nil {
		t.Error("stdout writer should have no closer")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "report.json", want: FormatJSON},
		{path: "report.yaml", want: FormatYAML},
		{path: "report.YML", want: FormatYAML},
		{path: "report.table", want: FormatTable},
		{path: "report.txt", want: FormatTable},
		{path: "report.xml", want: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Errorf("expected 3 formats, got %v", formats)
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reports unknown", f)
		}
	}
}
