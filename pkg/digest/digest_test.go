/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package digest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "empty input",
			data: "",
			want: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name: "known vector",
			data: "hello",
			want: "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name: "trailing newline changes digest",
			data: "hello\n",
			want: "b1946ac92492d2347c6235b4d2611184",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compute([]byte(tt.data))
			if got != tt.want {
				t.Errorf("Compute(%q) = %s, want %s", tt.data, got, tt.want)
			}
			if len(got) != Size {
				t.Errorf("digest length = %d, want %d", len(got), Size)
			}
			if got != strings.ToLower(got) {
				t.Errorf("digest %s is not lowercase", got)
			}
		})
	}
}

func TestVerifyFile(t *testing.T) {
	t.Parallel()

	t.Run("matching digest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "foo.txt")
		if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		outcome, err := VerifyFile(path, "5d41402abc4b2a76b9719d911017c592")
		if err != nil {
			t.Fatalf("VerifyFile() error = %v", err)
		}
		if !outcome.Match() {
			t.Errorf("expected match, got %s", outcome)
		}
	})

	t.Run("mismatch is not an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bar.txt")
		if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		outcome, err := VerifyFile(path, "4d93d51945b88325c213640ef59fc50a")
		if err != nil {
			t.Fatalf("VerifyFile() error = %v", err)
		}
		if outcome.Match() {
			t.Error("expected mismatch, got match")
		}
		if outcome.Expected != "4d93d51945b88325c213640ef59fc50a" {
			t.Errorf("Expected = %s, want the caller-supplied digest", outcome.Expected)
		}
		if outcome.Actual != "5d41402abc4b2a76b9719d911017c592" {
			t.Errorf("Actual = %s, want the computed digest", outcome.Actual)
		}
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "baz.txt")
		if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		outcome, err := VerifyFile(path, "5D41402ABC4B2A76B9719D911017C592")
		if err != nil {
			t.Fatalf("VerifyFile() error = %v", err)
		}
		if outcome.Match() {
			t.Error("uppercase expected digest should not match lowercase actual")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "does-not-exist")

		_, err := VerifyFile(path, "ce5188defed222ca612b41580e0d5fe6")
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("verification round-trip", func(t *testing.T) {
		t.Parallel()

		content := []byte("arbitrary content for round-trip")
		path := filepath.Join(t.TempDir(), "roundtrip.bin")
		if err := os.WriteFile(path, content, 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		outcome, err := VerifyFile(path, Compute(content))
		if err != nil {
			t.Fatalf("VerifyFile() error = %v", err)
		}
		if !outcome.Match() {
			t.Errorf("VerifyFile against Compute of same content should match, got %s", outcome)
		}
	})
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	match := Outcome{Expected: "abc", Actual: "abc"}
	if match.String() != "match" {
		t.Errorf("String() = %q, want %q", match.String(), "match")
	}

	mismatch := Outcome{Expected: "abc", Actual: "def"}
	if !strings.Contains(mismatch.String(), "abc") || !strings.Contains(mismatch.String(), "def") {
		t.Errorf("mismatch String() should include both digests, got %q", mismatch.String())
	}
}
