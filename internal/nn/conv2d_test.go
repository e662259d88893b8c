package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netshape-ml/netshape/internal/tensor"
)

func newTestConv(t *testing.T, paramType tensor.DataType) *Convolution {
	t.Helper()
	conv, err := NewConvolution("conv1", 16, 32, []int{3}, []int{1}, []int{1}, tensor.Single, paramType)
	require.NoError(t, err)
	return conv
}

func TestConvolution_Creation(t *testing.T) {
	conv := newTestConv(t, tensor.Single)

	assert.Equal(t, "conv1", conv.Name())
	assert.Equal(t, "Convolution", conv.Type())
	assert.Equal(t, 16, conv.InputPlanes())
	assert.Equal(t, 32, conv.OutputPlanes())
	assert.Equal(t, Dims{H: 3, W: 3}, conv.KernelSize())
	assert.Equal(t, Dims{H: 1, W: 1}, conv.Stride())
	assert.Equal(t, Dims{H: 1, W: 1}, conv.Padding())
}

// TestConvolution_NumParam checks 3*3*16*32 = 4608 (no bias modeled).
func TestConvolution_NumParam(t *testing.T) {
	conv := newTestConv(t, tensor.Single)
	assert.Equal(t, 4608, conv.NumParam())
}

func TestConvolution_MemoryUsageParam(t *testing.T) {
	tests := []struct {
		paramType tensor.DataType
		want      int64
	}{
		{tensor.Single, 18432}, // 4608 * 4
		{tensor.Double, 36864}, // 4608 * 8
		{tensor.Uint, 4608},    // 4608 * 1
	}

	for _, tt := range tests {
		conv := newTestConv(t, tt.paramType)
		got, err := conv.MemoryUsageParam()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "paramtype %s", tt.paramType)
	}
}

func TestConvolution_OutputShape(t *testing.T) {
	// 3x3 kernel, stride 1, padding 1 preserves the spatial extent.
	conv := newTestConv(t, tensor.Single)
	shape, err := conv.OutputShape(tensor.Shape{16, 32, 32})
	require.NoError(t, err)
	assert.True(t, shape.Equal(tensor.Shape{32, 32, 32}), "got %s", shape)

	// 3x3 kernel, stride 2, padding 1 halves it.
	strided, err := NewConvolution("conv2", 16, 32, []int{3}, []int{2}, []int{1}, tensor.Single, tensor.Single)
	require.NoError(t, err)
	shape, err = strided.OutputShape(tensor.Shape{16, 32, 32})
	require.NoError(t, err)
	assert.True(t, shape.Equal(tensor.Shape{32, 16, 16}), "got %s", shape)
}

func TestConvolution_OutputShapeErrors(t *testing.T) {
	conv := newTestConv(t, tensor.Single)

	tests := []struct {
		name   string
		bottom []tensor.Shape
	}{
		{"no upstream", nil},
		{"two upstreams", []tensor.Shape{{16, 32, 32}, {16, 32, 32}}},
		{"wrong rank", []tensor.Shape{{32, 32}}},
		{"zero dimension", []tensor.Shape{{16, 0, 32}}},
		{"channel mismatch", []tensor.Shape{{8, 32, 32}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conv.OutputShape(tt.bottom...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	// Window larger than the padded input.
	big, err := NewConvolution("conv3", 16, 32, []int{64}, nil, nil, tensor.Single, tensor.Single)
	require.NoError(t, err)
	_, err = big.OutputShape(tensor.Shape{16, 32, 32})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConvolution_AttachData(t *testing.T) {
	conv := newTestConv(t, tensor.Single)

	ok, err := tensor.NewBlob(tensor.Shape{1, 8, 8, 32})
	require.NoError(t, err)
	require.NoError(t, conv.AttachData(ok))
	assert.Same(t, ok, conv.Data())

	wrongRank, err := tensor.NewBlob(tensor.Shape{8, 8, 32})
	require.NoError(t, err)
	assert.ErrorIs(t, conv.AttachData(wrongRank), ErrInvalidArgument)

	wrongAxis, err := tensor.NewBlob(tensor.Shape{1, 8, 8, 16})
	require.NoError(t, err)
	assert.ErrorIs(t, conv.AttachData(wrongAxis), ErrInvalidArgument)
}

func TestConvolution_AttachParams(t *testing.T) {
	conv := newTestConv(t, tensor.Single)

	ok, err := tensor.NewBlob(tensor.Shape{16, 3, 3})
	require.NoError(t, err)
	require.NoError(t, conv.AttachParams(ok))
	assert.Same(t, ok, conv.Params())

	wrongRank, err := tensor.NewBlob(tensor.Shape{16, 3, 3, 1})
	require.NoError(t, err)
	assert.ErrorIs(t, conv.AttachParams(wrongRank), ErrInvalidArgument)

	wrongAxis, err := tensor.NewBlob(tensor.Shape{32, 3, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, conv.AttachParams(wrongAxis), ErrInvalidArgument)
}

// TestConvolution_MemoryUsage checks the param+data total:
// 4608 params * 4 bytes + 2048 data elements * 4 bytes.
func TestConvolution_MemoryUsage(t *testing.T) {
	conv := newTestConv(t, tensor.Single)

	total, err := conv.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, int64(18432), total)

	data, err := tensor.NewBlob(tensor.Shape{1, 8, 8, 32})
	require.NoError(t, err)
	require.NoError(t, conv.AttachData(data))

	total, err = conv.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, int64(18432+8192), total)
}

func TestConvolution_String(t *testing.T) {
	conv := newTestConv(t, tensor.Single)
	assert.Equal(t,
		"Convolution(name=conv1, in_planes=16, out_planes=32, kernel_size=(3, 3), stride=(1, 1), padding=(1, 1))",
		conv.String())
}
