package nn

import (
	"fmt"

	"github.com/netshape-ml/netshape/internal/tensor"
)

// Dims is a normalized (height, width) pair.
type Dims struct {
	H int
	W int
}

// String renders the pair as "(h, w)".
func (d Dims) String() string {
	return fmt.Sprintf("(%d, %d)", d.H, d.W)
}

// normalizeDims accepts a scalar (duplicated across both axes) or an
// explicit (height, width) pair, and checks both values against min.
func normalizeDims(field string, v []int, min int) (Dims, error) {
	var d Dims
	switch len(v) {
	case 1:
		d = Dims{H: v[0], W: v[0]}
	case 2:
		d = Dims{H: v[0], W: v[1]}
	default:
		return Dims{}, fmt.Errorf("%w: %s must be a scalar or a pair, got %d values", ErrInvalidArgument, field, len(v))
	}
	if d.H < min || d.W < min {
		if min > 0 {
			return Dims{}, fmt.Errorf("%w: %s values must be positive, got %s", ErrInvalidArgument, field, d)
		}
		return Dims{}, fmt.Errorf("%w: %s values must be non-negative, got %s", ErrInvalidArgument, field, d)
	}
	return d, nil
}

// Layer is the shared base for trainable-shape descriptors. It carries
// the plane counts and window geometry common to convolution-style
// layers; all fields are validated and normalized at construction and
// fixed for the lifetime of the value.
//
// Layer itself has no variant tag, parameter count, or output geometry,
// so it does not satisfy Descriptor; Convolution and Pooling embed it.
type Layer struct {
	base

	inPlanes  int
	outPlanes int
	kernel    Dims
	stride    Dims
	padding   Dims
}

// NewLayer validates and normalizes the fields shared by trainable
// layers.
//
// kernel, stride and padding are each given as a scalar (applied to both
// axes) or an explicit (height, width) pair. kernel is required and must
// be positive; stride defaults to (1, 1) and padding to (0, 0) when nil.
// dataType and paramType default to Single, with a notice, when Unset.
func NewLayer(name string, inPlanes, outPlanes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Layer, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	if inPlanes <= 0 {
		return nil, fmt.Errorf("%w: number of input planes must be positive, got %d", ErrInvalidArgument, inPlanes)
	}
	if outPlanes <= 0 {
		return nil, fmt.Errorf("%w: number of output planes must be positive, got %d", ErrInvalidArgument, outPlanes)
	}

	if len(kernel) == 0 {
		return nil, fmt.Errorf("%w: kernel size is required", ErrInvalidArgument)
	}
	k, err := normalizeDims("kernel size", kernel, 1)
	if err != nil {
		return nil, err
	}

	s := Dims{H: 1, W: 1}
	if len(stride) > 0 {
		if s, err = normalizeDims("stride", stride, 1); err != nil {
			return nil, err
		}
	}

	var p Dims
	if len(padding) > 0 {
		if p, err = normalizeDims("padding", padding, 0); err != nil {
			return nil, err
		}
	}

	if b.dataType, err = resolveTag(name, "datatype", dataType); err != nil {
		return nil, err
	}
	if b.paramType, err = resolveTag(name, "paramtype", paramType); err != nil {
		return nil, err
	}

	return &Layer{
		base:      b,
		inPlanes:  inPlanes,
		outPlanes: outPlanes,
		kernel:    k,
		stride:    s,
		padding:   p,
	}, nil
}

// AttachData attaches an activation blob. The shared base accepts any
// blob; concrete variants add their own shape checks.
func (l *Layer) AttachData(data *tensor.Blob) error {
	if data == nil {
		return fmt.Errorf("%w: data blob must not be nil", ErrInvalidArgument)
	}
	l.data = data
	return nil
}

// AttachParams attaches a parameter blob. The shared base accepts any
// blob; concrete variants add their own shape checks.
func (l *Layer) AttachParams(params *tensor.Blob) error {
	if params == nil {
		return fmt.Errorf("%w: params blob must not be nil", ErrInvalidArgument)
	}
	l.params = params
	return nil
}

// InputPlanes returns the number of input channels.
func (l *Layer) InputPlanes() int {
	return l.inPlanes
}

// OutputPlanes returns the number of output channels.
func (l *Layer) OutputPlanes() int {
	return l.outPlanes
}

// KernelSize returns the normalized kernel extent.
func (l *Layer) KernelSize() Dims {
	return l.kernel
}

// Stride returns the normalized stride.
func (l *Layer) Stride() Dims {
	return l.stride
}

// Padding returns the normalized padding.
func (l *Layer) Padding() Dims {
	return l.padding
}

// String returns a string representation of the layer.
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(name=%s, in_planes=%d, out_planes=%d, kernel_size=%s, stride=%s, padding=%s)",
		l.name, l.inPlanes, l.outPlanes, l.kernel, l.stride, l.padding)
}

// outputGeometry applies the window geometry to a single upstream
// (channels, height, width) shape. It returns the upstream channel count
// and the output spatial extent:
//
//	out_h = (h + 2*padding_h - kernel_h) / stride_h + 1
//	out_w = (w + 2*padding_w - kernel_w) / stride_w + 1
func (l *Layer) outputGeometry(bottom []tensor.Shape) (int, Dims, error) {
	if len(bottom) != 1 {
		return 0, Dims{}, fmt.Errorf("%w: expected exactly one upstream shape, got %d", ErrInvalidArgument, len(bottom))
	}
	s := bottom[0]
	if len(s) != 3 {
		return 0, Dims{}, fmt.Errorf("%w: upstream shape must be (channels, height, width), got %s", ErrInvalidArgument, s)
	}
	if err := s.Validate(); err != nil {
		return 0, Dims{}, fmt.Errorf("%w: upstream shape: %v", ErrInvalidArgument, err)
	}

	outH := (s[1]+2*l.padding.H-l.kernel.H)/l.stride.H + 1
	outW := (s[2]+2*l.padding.W-l.kernel.W)/l.stride.W + 1
	if outH <= 0 || outW <= 0 {
		return 0, Dims{}, fmt.Errorf("%w: window %s does not fit input %s with padding %s", ErrInvalidArgument, l.kernel, s, l.padding)
	}
	return s[0], Dims{H: outH, W: outW}, nil
}
