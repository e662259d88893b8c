// Package tensor provides the shape and blob value types for the netshape
// descriptor model.
package tensor

import "fmt"

// DataType is the element-type tag used for memory accounting.
type DataType int

// Recognized element-type tags. The zero value is Unset so that a
// descriptor can be created before a tag is chosen.
const (
	Unset DataType = iota
	Uint
	Single
	Double
)

// Size returns the byte width of one element. Unset has no width.
func (dt DataType) Size() int {
	switch dt {
	case Uint:
		return 1
	case Single:
		return 4
	case Double:
		return 8
	case Unset:
		return 0
	default:
		panic("unknown data type")
	}
}

// Valid reports whether dt is one of the recognized tags.
func (dt DataType) Valid() bool {
	return dt == Uint || dt == Single || dt == Double
}

// String returns the tag name.
func (dt DataType) String() string {
	switch dt {
	case Uint:
		return "uint"
	case Single:
		return "single"
	case Double:
		return "double"
	case Unset:
		return "unset"
	default:
		return "unknown"
	}
}

// ParseDataType converts a tag name to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "uint":
		return Uint, nil
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	default:
		return Unset, fmt.Errorf("unrecognized element type %q (want uint, single, or double)", s)
	}
}
