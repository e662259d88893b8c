// Package main provides the netshape CLI.
package main

import (
	"fmt"
	"os"

	"github.com/netshape-ml/netshape/nn"
	"github.com/netshape-ml/netshape/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("netshape %s\n", version)
			return
		case "describe":
			if err := describe(); err != nil {
				fmt.Fprintln(os.Stderr, "describe:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("netshape - layer shape and memory descriptors")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  describe   Print a sample network description")
}

// describe builds a small LeNet-style stack of descriptors and prints
// per-layer parameter counts and memory.
func describe() error {
	input, err := nn.NewInput("data")
	if err != nil {
		return err
	}
	blob, err := tensor.NewBlob(tensor.Shape{3, 32, 32})
	if err != nil {
		return err
	}
	if err := input.AttachData(blob); err != nil {
		return err
	}

	conv1, err := nn.NewConvolution("conv1", 3, 16, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
	if err != nil {
		return err
	}
	pool1, err := nn.NewPooling("pool1", 16, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
	if err != nil {
		return err
	}
	conv2, err := nn.NewConvolution("conv2", 16, 32, []int{3}, nil, []int{1}, tensor.Single, tensor.Single)
	if err != nil {
		return err
	}
	pool2, err := nn.NewPooling("pool2", 32, []int{2}, []int{2}, nil, tensor.Single, tensor.Single)
	if err != nil {
		return err
	}

	shape, err := input.OutputShape()
	if err != nil {
		return err
	}
	fmt.Printf("%-8s %-12s %12s %14s  %s\n", "name", "type", "params", "param bytes", "output shape")
	fmt.Printf("%-8s %-12s %12d %14d  %s\n", input.Name(), input.Type(), 0, 0, shape)

	totalParams := 0
	var totalBytes int64
	for _, layer := range []nn.Descriptor{conv1, pool1, conv2, pool2} {
		shape, err = layer.OutputShape(shape)
		if err != nil {
			return err
		}
		mem, err := layer.MemoryUsageParam()
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %-12s %12d %14d  %s\n", layer.Name(), layer.Type(), layer.NumParam(), mem, shape)
		totalParams += layer.NumParam()
		totalBytes += mem
	}

	fmt.Printf("\ntotal: %d parameters, %d bytes\n", totalParams, totalBytes)
	return nil
}
