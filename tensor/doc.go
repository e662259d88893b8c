// Copyright 2025 The netshape authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shape and blob value types used by
// netshape layer descriptors.
//
// # Overview
//
// Descriptors never store or compute on tensor data; they only reason
// about it. This package therefore carries shape metadata alone:
//   - Shape: the dimensions of an n-d numeric array
//   - Blob: a shape-only stand-in for such an array
//   - DataType: the element-type tag {uint, single, double} that fixes
//     the byte width used for memory accounting (1, 4, 8 bytes)
//
// # Basic Usage
//
//	blob, err := tensor.NewBlob(tensor.Shape{1, 8, 8, 32})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(blob.NDim())                    // 4
//	fmt.Println(blob.SizeBytes(tensor.Single))  // 8192
package tensor
