package texel

// Component identifies a single channel of a texel.
type Component uint8

// Texel components.
const (
	// R is the red channel.
	R Component = iota

	// G is the green channel.
	G

	// B is the blue channel.
	B

	// A is the alpha channel.
	A

	// Depth is the depth channel of a depth or depth/stencil format.
	Depth

	// Stencil is the stencil channel of a stencil or depth/stencil format.
	Stencil
)

// String returns the channel name.
func (c Component) String() string {
	switch c {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	case A:
		return "A"
	case Depth:
		return "Depth"
	case Stencil:
		return "Stencil"
	}
	return "Component(?)"
}

// DataType describes the numeric representation of one texel component.
type DataType uint8

// Component data types.
const (
	// DataTypeNone marks a component with no encodable representation,
	// such as the opaque depth channel of depth24plus.
	DataTypeNone DataType = iota

	// DataTypeUnorm is an unsigned normalized integer mapping to [0, 1].
	DataTypeUnorm

	// DataTypeSnorm is a signed normalized integer mapping to [-1, 1].
	DataTypeSnorm

	// DataTypeUint is an unsigned integer.
	DataTypeUint

	// DataTypeSint is a signed (two's complement) integer.
	DataTypeSint

	// DataTypeFloat is a signed IEEE-style float (16 or 32 bit).
	DataTypeFloat

	// DataTypeUFloat is an unsigned float (11/10-bit channels, or the
	// shared-exponent components of rgb9e5ufloat).
	DataTypeUFloat
)

// String returns the WebGPU-style name of the data type.
func (t DataType) String() string {
	switch t {
	case DataTypeNone:
		return "none"
	case DataTypeUnorm:
		return "unorm"
	case DataTypeSnorm:
		return "snorm"
	case DataTypeUint:
		return "uint"
	case DataTypeSint:
		return "sint"
	case DataTypeFloat:
		return "float"
	case DataTypeUFloat:
		return "ufloat"
	}
	return "DataType(?)"
}

// ComponentInfo describes the representation of one component within a
// texel block.
type ComponentInfo struct {
	// DataType is the numeric representation of the component.
	DataType DataType

	// BitLength is the width of the component's field. It is -1 for the
	// shared-exponent components of rgb9e5ufloat, whose per-component bit
	// patterns are UFloat9e5 patterns rather than fixed fields.
	BitLength int
}
