/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common header type carried by serialized
// chkr resources.
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              // resource type (e.g., "VerificationResult")
//	    APIVersion string            // schema version (e.g., "chkr.govtech.sg/v1alpha1")
//	    Metadata   map[string]string // run id, timestamp, tool version
//	}
//
// Init populates the header in one call:
//
//	var h header.Header
//	h.Init(header.KindVerificationResult, "chkr.govtech.sg/v1alpha1", version)
//
// Metadata keys written by Init:
//   - id: unique run identifier (UUID)
//   - timestamp: creation time, RFC3339 UTC
//   - version: tool version, omitted when empty
//
// Headers serialize consistently to JSON and YAML:
//
//	kind: VerificationResult
//	apiVersion: chkr.govtech.sg/v1alpha1
//	metadata:
//	  id: 9bcf51a4-6d27-4f6e-9f8d-0f2d5a3f9a11
//	  timestamp: "2026-08-24T10:30:00Z"
//	  version: v1.0.0
package header
