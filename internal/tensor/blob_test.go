package tensor

import "testing"

func TestNewBlob(t *testing.T) {
	b, err := NewBlob(Shape{1, 8, 8, 32})
	if err != nil {
		t.Fatalf("NewBlob returned error: %v", err)
	}
	if b.NDim() != 4 {
		t.Errorf("NDim() = %d, want 4", b.NDim())
	}
	if b.Dim(3) != 32 {
		t.Errorf("Dim(3) = %d, want 32", b.Dim(3))
	}
	if b.NumElements() != 2048 {
		t.Errorf("NumElements() = %d, want 2048", b.NumElements())
	}
	if !b.Shape().Equal(Shape{1, 8, 8, 32}) {
		t.Errorf("Shape() = %v", b.Shape())
	}
}

func TestNewBlobInvalid(t *testing.T) {
	for _, shape := range []Shape{nil, {}, {0}, {2, -3}} {
		if _, err := NewBlob(shape); err == nil {
			t.Errorf("NewBlob(%v) succeeded, want error", shape)
		}
	}
}

func TestBlobShapeIsCopy(t *testing.T) {
	src := Shape{2, 3}
	b, err := NewBlob(src)
	if err != nil {
		t.Fatalf("NewBlob returned error: %v", err)
	}

	// Neither the constructor argument nor the accessor result may
	// alias the blob's own shape.
	src[0] = 9
	got := b.Shape()
	got[1] = 9
	if !b.Shape().Equal(Shape{2, 3}) {
		t.Errorf("blob shape mutated through an alias: %v", b.Shape())
	}
}

func TestBlobSizeBytes(t *testing.T) {
	b, err := NewBlob(Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("NewBlob returned error: %v", err)
	}

	tests := []struct {
		dtype DataType
		want  int64
	}{
		{Uint, 24},
		{Single, 96},
		{Double, 192},
	}
	for _, tt := range tests {
		if got := b.SizeBytes(tt.dtype); got != tt.want {
			t.Errorf("SizeBytes(%s) = %d, want %d", tt.dtype, got, tt.want)
		}
	}
}

func TestBlobString(t *testing.T) {
	b, err := NewBlob(Shape{2, 3})
	if err != nil {
		t.Fatalf("NewBlob returned error: %v", err)
	}
	if got := b.String(); got != "Blob(2, 3)" {
		t.Errorf("String() = %q, want %q", got, "Blob(2, 3)")
	}
}
