// Package nn implements layer descriptors for the netshape framework.
//
// A descriptor records a network layer's shape metadata - plane counts,
// window geometry, element types - and derives parameter counts and
// memory footprints from it. No tensor data is stored and no forward or
// backward computation is performed; this is a pure introspection model:
//   - Descriptor interface: the contract every layer descriptor satisfies
//   - Input: raw-data entry point, parameter-free
//   - Layer: shared base carrying validated trainable-layer geometry
//   - Convolution: 2d convolution descriptor
//   - Pooling: 2d pooling descriptor
package nn

import (
	"github.com/netshape-ml/netshape/internal/tensor"
)

// Descriptor is the contract every layer descriptor satisfies.
//
// A descriptor is constructed with immutable name and shape metadata;
// only blob attachment and the element-type tags mutate afterwards.
// Derived quantities (parameter count, output shape, memory usage) are
// computed from the declared geometry alone.
type Descriptor interface {
	// Name returns the identifier given at construction.
	Name() string

	// Type returns the variant tag ("Input", "Convolution", "Pooling", ...).
	Type() string

	// Data returns the attached activation blob, or nil.
	Data() *tensor.Blob

	// AttachData attaches an activation blob after variant-specific
	// shape validation.
	AttachData(data *tensor.Blob) error

	// Params returns the attached parameter blob, or nil.
	Params() *tensor.Blob

	// AttachParams attaches a parameter blob after variant-specific
	// shape validation. Parameter-free variants reject the attachment.
	AttachParams(params *tensor.Blob) error

	// DataType and ParamType return the element-type tags used for
	// memory accounting; the setters reject unrecognized tags.
	DataType() tensor.DataType
	SetDataType(dt tensor.DataType) error
	ParamType() tensor.DataType
	SetParamType(dt tensor.DataType) error

	// NumParam returns the number of learnable scalar parameters.
	NumParam() int

	// OutputShape returns the shape of the blob this layer produces,
	// given the shapes of its upstream blobs. Input ignores bottom;
	// Convolution and Pooling expect exactly one (channels, height,
	// width) shape.
	OutputShape(bottom ...tensor.Shape) (tensor.Shape, error)

	// MemoryUsageParam returns the bytes occupied by the layer's
	// parameters: NumParam times the param-type byte width.
	MemoryUsageParam() (int64, error)

	// MemoryUsageData returns the bytes occupied by the attached data
	// blob; an unattached blob contributes zero.
	MemoryUsageData() (int64, error)

	// MemoryUsage returns MemoryUsageParam plus MemoryUsageData.
	MemoryUsage() (int64, error)
}

// Compile-time interface checks for the built-in variants.
var (
	_ Descriptor = (*Input)(nil)
	_ Descriptor = (*Convolution)(nil)
	_ Descriptor = (*Pooling)(nil)
)

// totalMemoryUsage sums parameter and data memory for a descriptor.
func totalMemoryUsage(d Descriptor) (int64, error) {
	p, err := d.MemoryUsageParam()
	if err != nil {
		return 0, err
	}
	data, err := d.MemoryUsageData()
	if err != nil {
		return 0, err
	}
	return p + data, nil
}
