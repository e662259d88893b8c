package nn

import (
	"fmt"
	"log/slog"

	"github.com/netshape-ml/netshape/internal/tensor"
)

// logger receives the package's diagnostic notices, such as an
// element-type tag defaulting to Single.
var logger = slog.Default()

// SetLogger routes the package's diagnostic notices to l. Passing a
// logger with a discarding handler suppresses them.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// base holds the state shared by every descriptor variant: the name,
// the attached blobs, and the element-type tags.
type base struct {
	name      string
	data      *tensor.Blob
	params    *tensor.Blob
	dataType  tensor.DataType
	paramType tensor.DataType
}

func newBase(name string) (base, error) {
	if name == "" {
		return base{}, fmt.Errorf("%w: layer name must be a non-empty string", ErrInvalidArgument)
	}
	return base{name: name}, nil
}

// Name returns the identifier given at construction.
func (b *base) Name() string {
	return b.name
}

// Data returns the attached activation blob, or nil.
func (b *base) Data() *tensor.Blob {
	return b.data
}

// Params returns the attached parameter blob, or nil.
func (b *base) Params() *tensor.Blob {
	return b.params
}

// DataType returns the element-type tag for the data blob.
func (b *base) DataType() tensor.DataType {
	return b.dataType
}

// SetDataType sets the element-type tag for the data blob.
func (b *base) SetDataType(dt tensor.DataType) error {
	if !dt.Valid() {
		return fmt.Errorf("%w: data type must be one of uint, single, double", ErrInvalidArgument)
	}
	b.dataType = dt
	return nil
}

// ParamType returns the element-type tag for the parameter blob.
func (b *base) ParamType() tensor.DataType {
	return b.paramType
}

// SetParamType sets the element-type tag for the parameter blob.
func (b *base) SetParamType(dt tensor.DataType) error {
	if !dt.Valid() {
		return fmt.Errorf("%w: param type must be one of uint, single, double", ErrInvalidArgument)
	}
	b.paramType = dt
	return nil
}

// resolveTag validates a constructor-supplied element-type tag,
// defaulting Unset to Single with a notice.
func resolveTag(name, field string, dt tensor.DataType) (tensor.DataType, error) {
	switch {
	case dt == tensor.Unset:
		logger.Info("element type not set, defaulting to single",
			"layer", name, "field", field)
		return tensor.Single, nil
	case !dt.Valid():
		return tensor.Unset, fmt.Errorf("%w: %s must be one of uint, single, double", ErrInvalidArgument, field)
	default:
		return dt, nil
	}
}

// memoryUsageParam converts a parameter count to bytes using the
// param-type tag. A layer with zero parameters occupies zero bytes
// regardless of the tag.
func (b *base) memoryUsageParam(numParam int) (int64, error) {
	if numParam == 0 {
		return 0, nil
	}
	if b.paramType == tensor.Unset {
		return 0, fmt.Errorf("%w: param type not set on layer %q", ErrInvalidState, b.name)
	}
	return int64(numParam) * int64(b.paramType.Size()), nil
}

// MemoryUsageData returns the bytes held by the attached data blob; an
// unattached blob contributes zero.
func (b *base) MemoryUsageData() (int64, error) {
	if b.data == nil {
		return 0, nil
	}
	if b.dataType == tensor.Unset {
		return 0, fmt.Errorf("%w: data type not set on layer %q", ErrInvalidState, b.name)
	}
	return b.data.SizeBytes(b.dataType), nil
}
