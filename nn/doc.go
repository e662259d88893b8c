// Copyright 2025 The netshape authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides layer descriptors for network introspection.
//
// # Overview
//
// A descriptor records a layer's shape metadata and derives parameter
// counts, output shapes, and memory footprints from it without any
// tensor computation. This package contains:
//   - Descriptor: the interface every layer descriptor satisfies
//   - Input: the raw-data entry point, parameter-free
//   - Layer: the shared trainable-shape base (plane counts, kernel,
//     stride, padding)
//   - Convolution, Pooling: concrete 2d layer descriptors
//   - The fault taxonomy: ErrInvalidArgument, ErrInvalidOperation,
//     ErrInvalidState, ErrNotImplemented
//
// # Basic Usage
//
//	import (
//	    "github.com/netshape-ml/netshape/nn"
//	    "github.com/netshape-ml/netshape/tensor"
//	)
//
//	func main() {
//	    conv, err := nn.NewConvolution("conv1", 16, 32, []int{3}, nil, []int{1},
//	        tensor.Single, tensor.Single)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(conv.NumParam())                       // 4608
//	    mem, _ := conv.MemoryUsageParam()                  // 18432 bytes
//	    out, _ := conv.OutputShape(tensor.Shape{16, 32, 32}) // (32, 32, 32)
//	}
//
// # Validation
//
// All faults are immediate and synchronous: construction and attachment
// reject invalid shape configuration before it can propagate. Every
// error wraps one of the package's sentinel errors, so callers can
// classify failures with errors.Is.
//
// # Diagnostics
//
// When a constructor defaults an unset element-type tag to Single, a
// non-fatal notice is emitted through a log/slog logger configurable
// via SetLogger.
package nn
