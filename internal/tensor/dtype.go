// Package tensor implements the storage and layout core for multidimensional
// numeric buffers: reference-counted Storage over pluggable Allocators,
// non-owning Views, and the RawTensor shape/stride orchestration on top.
package tensor

// DType is a constraint for supported tensor element types.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType is the runtime element-type tag. The core treats it as opaque
// apart from its byte width.
type DataType int

// Supported element-type tags.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

var (
	dataTypeSize = [...]int{
		Float32: 4,
		Float64: 8,
		Int32:   4,
		Int64:   8,
		Uint8:   1,
		Bool:    1,
	}
	dataTypeName = [...]string{
		Float32: "float32",
		Float64: "float64",
		Int32:   "int32",
		Int64:   "int64",
		Uint8:   "uint8",
		Bool:    "bool",
	}
)

// Size returns the element width in bytes.
func (dt DataType) Size() int {
	if dt < 0 || int(dt) >= len(dataTypeSize) {
		panic("unknown data type")
	}
	return dataTypeSize[dt]
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeName) {
		return "unknown"
	}
	return dataTypeName[dt]
}

// inferDataType maps a generic type T to its runtime tag.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
