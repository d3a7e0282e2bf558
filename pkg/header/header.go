/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of chkr resource.
type Kind string

// Valid Kind constants for serialized chkr resources.
const (
	KindVerificationResult Kind = "VerificationResult"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindVerificationResult:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for serialized
// chkr resources. It follows Kubernetes-style resource conventions with
// Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init initializes the Header with the specified kind, apiVersion, and
// tool version, and populates Metadata with a unique run ID and an
// RFC3339 timestamp.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"id":        uuid.New().String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}
