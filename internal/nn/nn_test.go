package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netshape-ml/netshape/internal/nn"
	"github.com/netshape-ml/netshape/internal/tensor"
)

// TestDescriptorWalk threads a blob shape through a small stack of
// descriptors via the Descriptor interface, the way a network summary
// would: every derived quantity comes from declared geometry alone.
func TestDescriptorWalk(t *testing.T) {
	conv1, err := nn.NewConvolution("conv1", 3, 16, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
	require.NoError(t, err)
	pool1, err := nn.NewPooling("pool1", 16, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
	require.NoError(t, err)
	conv2, err := nn.NewConvolution("conv2", 16, 32, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
	require.NoError(t, err)

	layers := []nn.Descriptor{conv1, pool1, conv2}
	shape := tensor.Shape{3, 32, 32}

	wantShapes := []tensor.Shape{
		{16, 32, 32},
		{16, 16, 16},
		{32, 16, 16},
	}
	totalParams := 0
	for i, layer := range layers {
		shape, err = layer.OutputShape(shape)
		require.NoError(t, err, "layer %s", layer.Name())
		assert.True(t, shape.Equal(wantShapes[i]), "layer %s: got %s, want %s", layer.Name(), shape, wantShapes[i])
		totalParams += layer.NumParam()
	}

	// 3*3*3*16 + 0 + 3*3*16*32
	assert.Equal(t, 432+4608, totalParams)
}

// TestDescriptorFaults checks that faults surface through the interface
// with their taxonomy intact.
func TestDescriptorFaults(t *testing.T) {
	in, err := nn.NewInput("data")
	require.NoError(t, err)

	var d nn.Descriptor = in
	_, err = d.OutputShape()
	assert.ErrorIs(t, err, nn.ErrInvalidState)

	blob, err := tensor.NewBlob(tensor.Shape{1, 1})
	require.NoError(t, err)
	assert.ErrorIs(t, d.AttachParams(blob), nn.ErrInvalidOperation)
	assert.ErrorIs(t, d.SetParamType(tensor.Unset), nn.ErrInvalidArgument)
}
