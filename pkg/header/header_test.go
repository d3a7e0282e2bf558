/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHeaderInit(t *testing.T) {
	t.Parallel()

	var h Header
	h.Init(KindVerificationResult, "chkr.govtech.sg/v1alpha1", "v1.2.3")

	if h.Kind != KindVerificationResult {
		t.Errorf("Kind = %s, want %s", h.Kind, KindVerificationResult)
	}
	if h.APIVersion != "chkr.govtech.sg/v1alpha1" {
		t.Errorf("APIVersion = %s", h.APIVersion)
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("version metadata = %q, want v1.2.3", h.Metadata["version"])
	}

	if _, err := uuid.Parse(h.Metadata["id"]); err != nil {
		t.Errorf("id metadata %q is not a valid UUID: %v", h.Metadata["id"], err)
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("timestamp metadata %q is not RFC3339: %v", h.Metadata["timestamp"], err)
	}
}

func TestHeaderInitOmitsEmptyVersion(t *testing.T) {
	t.Parallel()

	var h Header
	h.Init(KindVerificationResult, "chkr.govtech.sg/v1alpha1", "")

	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version should not be recorded in metadata")
	}
}

func TestKindIsValid(t *testing.T) {
	t.Parallel()

	valid := KindVerificationResult
	if !valid.IsValid() {
		t.Errorf("%s should be valid", valid)
	}

	unknown := Kind("Recipe")
	if unknown.IsValid() {
		t.Errorf("%s should not be valid", unknown)
	}
	if unknown.String() != "Recipe" {
		t.Errorf("String() = %s", unknown.String())
	}
}
