// Copyright 2025 The netshape authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netshape-ml/netshape/nn"
	"github.com/netshape-ml/netshape/tensor"
)

// TestPublicAPI exercises the re-exported surface end to end.
func TestPublicAPI(t *testing.T) {
	in, err := nn.NewInput("data")
	require.NoError(t, err)

	blob, err := tensor.NewBlob(tensor.Shape{3, 32, 32})
	require.NoError(t, err)
	require.NoError(t, in.AttachData(blob))

	conv, err := nn.NewConvolution("conv1", 3, 16, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
	require.NoError(t, err)
	pool, err := nn.NewPooling("pool1", 16, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
	require.NoError(t, err)

	shape, err := in.OutputShape()
	require.NoError(t, err)
	for _, layer := range []nn.Descriptor{conv, pool} {
		shape, err = layer.OutputShape(shape)
		require.NoError(t, err)
	}
	assert.True(t, shape.Equal(tensor.Shape{16, 16, 16}), "got %s", shape)

	assert.Equal(t, 432, conv.NumParam())
	assert.ErrorIs(t, in.AttachParams(blob), nn.ErrInvalidOperation)
}
