package nn

import (
	"fmt"

	"github.com/netshape-ml/netshape/internal/tensor"
)

// Convolution describes a 2d convolutional layer.
//
// Data shape:   [batch, height, width, out_planes] (4-d, last axis checked)
// Params shape: [in_planes, kernel_h, kernel_w] (3-d, first axis checked)
//
// The output geometry for an upstream (channels, height, width) blob is:
//
//	out_h = (height + 2*padding_h - kernel_h) / stride_h + 1
//	out_w = (width + 2*padding_w - kernel_w) / stride_w + 1
//
// Example:
//
//	// 16 -> 32 planes, 3x3 kernel, stride 1, padding 1
//	conv, err := nn.NewConvolution("conv1", 16, 32, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
//	shape, err := conv.OutputShape(tensor.Shape{16, 32, 32}) // (32, 32, 32)
type Convolution struct {
	*Layer
}

// NewConvolution creates a convolution descriptor. Arguments follow
// NewLayer: kernel is required, stride defaults to (1, 1), padding to
// (0, 0), and Unset element-type tags default to Single.
func NewConvolution(name string, inPlanes, outPlanes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Convolution, error) {
	l, err := NewLayer(name, inPlanes, outPlanes, kernel, stride, padding, dataType, paramType)
	if err != nil {
		return nil, err
	}
	return &Convolution{Layer: l}, nil
}

// AttachData requires a 4-d blob whose last axis equals the number of
// output planes.
func (c *Convolution) AttachData(data *tensor.Blob) error {
	if data == nil {
		return fmt.Errorf("%w: data blob must not be nil", ErrInvalidArgument)
	}
	if data.NDim() != 4 {
		return fmt.Errorf("%w: convolution data must be a 4-d blob, got %d-d", ErrInvalidArgument, data.NDim())
	}
	if data.Dim(3) != c.outPlanes {
		return fmt.Errorf("%w: last axis of convolution data must equal output planes %d, got %d", ErrInvalidArgument, c.outPlanes, data.Dim(3))
	}
	c.data = data
	return nil
}

// AttachParams requires a 3-d blob whose first axis equals the number of
// input planes.
func (c *Convolution) AttachParams(params *tensor.Blob) error {
	if params == nil {
		return fmt.Errorf("%w: params blob must not be nil", ErrInvalidArgument)
	}
	if params.NDim() != 3 {
		return fmt.Errorf("%w: convolution params must be a 3-d blob, got %d-d", ErrInvalidArgument, params.NDim())
	}
	if params.Dim(0) != c.inPlanes {
		return fmt.Errorf("%w: first axis of convolution params must equal input planes %d, got %d", ErrInvalidArgument, c.inPlanes, params.Dim(0))
	}
	c.params = params
	return nil
}

// Type returns the variant tag.
func (c *Convolution) Type() string {
	return "Convolution"
}

// NumParam returns kernel_h * kernel_w * in_planes * out_planes. No bias
// term is modeled.
func (c *Convolution) NumParam() int {
	return c.kernel.H * c.kernel.W * c.inPlanes * c.outPlanes
}

// OutputShape computes the output blob shape for a single upstream
// (channels, height, width) blob: channels become the output plane
// count and the spatial extent follows the window geometry.
func (c *Convolution) OutputShape(bottom ...tensor.Shape) (tensor.Shape, error) {
	chans, out, err := c.outputGeometry(bottom)
	if err != nil {
		return nil, err
	}
	if chans != c.inPlanes {
		return nil, fmt.Errorf("%w: upstream blob has %d channels, layer expects %d", ErrInvalidArgument, chans, c.inPlanes)
	}
	return tensor.Shape{c.outPlanes, out.H, out.W}, nil
}

// MemoryUsageParam returns the bytes occupied by the kernel weights.
func (c *Convolution) MemoryUsageParam() (int64, error) {
	return c.memoryUsageParam(c.NumParam())
}

// MemoryUsage returns the total bytes held by the descriptor's blobs.
func (c *Convolution) MemoryUsage() (int64, error) {
	return totalMemoryUsage(c)
}

// String returns a string representation of the layer.
func (c *Convolution) String() string {
	return fmt.Sprintf("Convolution(name=%s, in_planes=%d, out_planes=%d, kernel_size=%s, stride=%s, padding=%s)",
		c.name, c.inPlanes, c.outPlanes, c.kernel, c.stride, c.padding)
}
