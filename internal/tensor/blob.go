package tensor

import "fmt"

// Blob describes an n-dimensional numeric array by shape alone. The
// descriptor model only ever needs rank, axis lengths, and element
// counts, so no element storage is carried.
type Blob struct {
	shape Shape
}

// NewBlob creates a blob descriptor for the given shape. The shape must
// have at least one axis and every dimension must be positive.
func NewBlob(shape Shape) (*Blob, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("blob shape must have at least one dimension")
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob shape: %w", err)
	}
	return &Blob{shape: shape.Clone()}, nil
}

// Shape returns a copy of the blob's shape.
func (b *Blob) Shape() Shape {
	return b.shape.Clone()
}

// NDim returns the number of axes.
func (b *Blob) NDim() int {
	return len(b.shape)
}

// Dim returns the length of axis i.
func (b *Blob) Dim(i int) int {
	return b.shape[i]
}

// NumElements returns the total number of elements.
func (b *Blob) NumElements() int {
	return b.shape.NumElements()
}

// SizeBytes returns the bytes needed to store the blob's elements with
// the given element type.
func (b *Blob) SizeBytes(dt DataType) int64 {
	return int64(b.shape.NumElements()) * int64(dt.Size())
}

// String returns a human-readable description of the blob.
func (b *Blob) String() string {
	return fmt.Sprintf("Blob%s", b.shape)
}
