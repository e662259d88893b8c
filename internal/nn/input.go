package nn

import (
	"fmt"

	"github.com/netshape-ml/netshape/internal/tensor"
)

// Input describes the raw data entering a network. It carries no
// learnable parameters and takes its output shape from the attached
// data blob.
type Input struct {
	base
}

// NewInput creates an input descriptor. Element-type tags start Unset
// and can be assigned later with SetDataType/SetParamType.
func NewInput(name string) (*Input, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	return &Input{base: b}, nil
}

// AttachData attaches the raw input blob. Any shape is accepted.
func (in *Input) AttachData(data *tensor.Blob) error {
	if data == nil {
		return fmt.Errorf("%w: data blob must not be nil", ErrInvalidArgument)
	}
	in.data = data
	return nil
}

// AttachParams always fails: input layers carry no parameters.
func (in *Input) AttachParams(*tensor.Blob) error {
	return fmt.Errorf("%w: input layers carry no parameters", ErrInvalidOperation)
}

// Type returns the variant tag.
func (in *Input) Type() string {
	return "Input"
}

// NumParam returns 0: input layers are parameter-free.
func (in *Input) NumParam() int {
	return 0
}

// OutputShape returns the shape of the attached data blob. Upstream
// shapes are ignored: an input layer has no upstream.
func (in *Input) OutputShape(_ ...tensor.Shape) (tensor.Shape, error) {
	if in.data == nil {
		return nil, fmt.Errorf("%w: no data attached to input layer %q", ErrInvalidState, in.name)
	}
	return in.data.Shape(), nil
}

// MemoryUsageParam returns 0: there are no parameters to account for.
func (in *Input) MemoryUsageParam() (int64, error) {
	return in.memoryUsageParam(in.NumParam())
}

// MemoryUsage returns the total bytes held by the descriptor's blobs.
func (in *Input) MemoryUsage() (int64, error) {
	return totalMemoryUsage(in)
}

// String returns a string representation of the layer.
func (in *Input) String() string {
	if in.data != nil {
		return fmt.Sprintf("Input(name=%s, shape=%s)", in.name, in.data.Shape())
	}
	return fmt.Sprintf("Input(name=%s)", in.name)
}
