// Copyright 2025 The netshape authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/netshape-ml/netshape/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a blob.
// Example: Shape{2, 3, 4} represents a 3D blob with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType is the element-type tag used for memory accounting.
type DataType = tensor.DataType

// Element-type tag constants. Byte widths: Uint 1, Single 4, Double 8.
const (
	Unset  DataType = tensor.Unset
	Uint   DataType = tensor.Uint
	Single DataType = tensor.Single
	Double DataType = tensor.Double
)

// Blob describes an n-dimensional numeric array by shape alone.
type Blob = tensor.Blob

// NewBlob creates a blob descriptor for the given shape. Every
// dimension must be positive.
//
// Example:
//
//	blob, err := tensor.NewBlob(tensor.Shape{1, 8, 8, 32})
func NewBlob(shape Shape) (*Blob, error) {
	return tensor.NewBlob(shape)
}

// ParseDataType converts one of the tag names "uint", "single" or
// "double" to its DataType.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}
