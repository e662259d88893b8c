package nn

import (
	"fmt"

	"github.com/netshape-ml/netshape/internal/tensor"
)

// Pooling describes a 2d pooling layer. Pooling windows carry no
// learnable parameters and preserve the channel count, so a single
// plane count serves as both input and output.
//
// Common configurations:
//   - 2x2 window, stride 2: halves the spatial extent
//   - 3x3 window, stride 2: aggressive downsampling
//
// Example:
//
//	pool, err := nn.NewPooling("pool1", 16, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
//	shape, err := pool.OutputShape(tensor.Shape{16, 32, 32}) // (16, 16, 16)
type Pooling struct {
	*Layer
}

// NewPooling creates a pooling descriptor over the given number of
// planes. Window arguments follow NewLayer: kernel is required, stride
// defaults to (1, 1) and padding to (0, 0).
func NewPooling(name string, planes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Pooling, error) {
	l, err := NewLayer(name, planes, planes, kernel, stride, padding, dataType, paramType)
	if err != nil {
		return nil, err
	}
	return &Pooling{Layer: l}, nil
}

// AttachData requires a 4-d blob whose last axis equals the plane count.
func (p *Pooling) AttachData(data *tensor.Blob) error {
	if data == nil {
		return fmt.Errorf("%w: data blob must not be nil", ErrInvalidArgument)
	}
	if data.NDim() != 4 {
		return fmt.Errorf("%w: pooling data must be a 4-d blob, got %d-d", ErrInvalidArgument, data.NDim())
	}
	if data.Dim(3) != p.outPlanes {
		return fmt.Errorf("%w: last axis of pooling data must equal planes %d, got %d", ErrInvalidArgument, p.outPlanes, data.Dim(3))
	}
	p.data = data
	return nil
}

// AttachParams always fails: pooling layers carry no parameters.
func (p *Pooling) AttachParams(*tensor.Blob) error {
	return fmt.Errorf("%w: pooling layers carry no parameters", ErrInvalidOperation)
}

// Type returns the variant tag.
func (p *Pooling) Type() string {
	return "Pooling"
}

// NumParam returns 0: pooling layers are parameter-free.
func (p *Pooling) NumParam() int {
	return 0
}

// OutputShape computes the output blob shape for a single upstream
// (channels, height, width) blob. The channel count is preserved; the
// spatial extent follows the window geometry.
func (p *Pooling) OutputShape(bottom ...tensor.Shape) (tensor.Shape, error) {
	chans, out, err := p.outputGeometry(bottom)
	if err != nil {
		return nil, err
	}
	if chans != p.inPlanes {
		return nil, fmt.Errorf("%w: upstream blob has %d channels, layer expects %d", ErrInvalidArgument, chans, p.inPlanes)
	}
	return tensor.Shape{chans, out.H, out.W}, nil
}

// MemoryUsageParam returns 0: there are no parameters to account for.
func (p *Pooling) MemoryUsageParam() (int64, error) {
	return p.memoryUsageParam(p.NumParam())
}

// MemoryUsage returns the total bytes held by the descriptor's blobs.
func (p *Pooling) MemoryUsage() (int64, error) {
	return totalMemoryUsage(p)
}

// String returns a string representation of the layer.
func (p *Pooling) String() string {
	return fmt.Sprintf("Pooling(name=%s, planes=%d, kernel_size=%s, stride=%s, padding=%s)",
		p.name, p.inPlanes, p.kernel, p.stride, p.padding)
}
