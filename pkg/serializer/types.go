/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import "context"

// Serializer is an interface for serializing verification data.
// Implementations can serialize to various formats such as JSON, YAML,
// or a flattened table.
//
// The context parameter is provided for cancellation and timeouts in
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement if
// they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
