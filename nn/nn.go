// Copyright 2025 The netshape authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"log/slog"

	"github.com/netshape-ml/netshape/internal/nn"
	"github.com/netshape-ml/netshape/internal/tensor"
)

// Descriptor is the interface every layer descriptor satisfies.
type Descriptor = nn.Descriptor

// Dims is a normalized (height, width) pair.
type Dims = nn.Dims

// Fault taxonomy. Every error returned by the package wraps one of
// these sentinels; classify with errors.Is.
var (
	ErrInvalidArgument  = nn.ErrInvalidArgument
	ErrInvalidOperation = nn.ErrInvalidOperation
	ErrInvalidState     = nn.ErrInvalidState
	ErrNotImplemented   = nn.ErrNotImplemented
)

// SetLogger routes the package's diagnostic notices (such as an
// element-type tag defaulting to Single) to l.
func SetLogger(l *slog.Logger) {
	nn.SetLogger(l)
}

// Layers

// Input describes the raw data entering a network.
type Input = nn.Input

// NewInput creates an input descriptor.
//
// Example:
//
//	in, err := nn.NewInput("data")
func NewInput(name string) (*Input, error) {
	return nn.NewInput(name)
}

// Layer is the shared base for trainable-shape descriptors.
type Layer = nn.Layer

// NewLayer validates and normalizes the fields shared by trainable
// layers. kernel, stride and padding are each a scalar (applied to both
// axes) or a (height, width) pair; stride defaults to (1, 1), padding
// to (0, 0), and Unset element-type tags to Single.
func NewLayer(name string, inPlanes, outPlanes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Layer, error) {
	return nn.NewLayer(name, inPlanes, outPlanes, kernel, stride, padding, dataType, paramType)
}

// Convolution describes a 2d convolutional layer.
type Convolution = nn.Convolution

// NewConvolution creates a convolution descriptor.
//
// Example:
//
//	conv, err := nn.NewConvolution("conv1", 16, 32, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
func NewConvolution(name string, inPlanes, outPlanes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Convolution, error) {
	return nn.NewConvolution(name, inPlanes, outPlanes, kernel, stride, padding, dataType, paramType)
}

// Pooling describes a 2d pooling layer.
type Pooling = nn.Pooling

// NewPooling creates a pooling descriptor over the given number of
// planes; pooling preserves the channel count.
//
// Example:
//
//	pool, err := nn.NewPooling("pool1", 16, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
func NewPooling(name string, planes int, kernel, stride, padding []int, dataType, paramType tensor.DataType) (*Pooling, error) {
	return nn.NewPooling(name, planes, kernel, stride, padding, dataType, paramType)
}
