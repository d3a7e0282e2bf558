/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package digest

import (
	"crypto/md5" // #nosec G501 -- used for file integrity verification only
	"encoding/hex"
	"fmt"
	"os"
)

// Size is the length of a hex-encoded MD5 digest.
const Size = md5.Size * 2

// Outcome is the result of comparing a freshly computed digest against an
// expected one. A mismatch is a completed comparison, not an error; only
// the inability to compute a digest is reported as an error.
type Outcome struct {
	// Expected is the digest the file was verified against.
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the digest computed from the file content.
	Actual string `json:"actual" yaml:"actual"`
}

// Match reports whether the computed digest equals the expected one.
// Comparison is case-sensitive: both sides are lowercase hex, and the
// caller is responsible for supplying the expected digest in lowercase.
func (o Outcome) Match() bool {
	return o.Expected == o.Actual
}

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	if o.Match() {
		return "match"
	}
	return fmt.Sprintf("mismatch (expected %s, actual %s)", o.Expected, o.Actual)
}

// Compute returns the canonical lowercase hex MD5 digest of data.
func Compute(data []byte) string {
	sum := md5.Sum(data) // #nosec G401 -- used for file integrity verification only
	return hex.EncodeToString(sum[:])
}

// VerifyFile reads the file at path, computes its digest, and compares it
// against expected. The whole file is read into memory; target files are
// small enough that streaming is not worth the extra machinery.
//
// Returns an error only when the file cannot be read. A digest that does
// not match expected is a successful verification with a negative Outcome.
func VerifyFile(path, expected string) (Outcome, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is caller-provided by design of the tool
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Outcome{
		Expected: expected,
		Actual:   Compute(data),
	}, nil
}
