// Package pod implements the decoder's plain-old-data primitive model: the
// 14-member Kind enum, the (Kind, extent) DataType pair, and the saturating
// cross-POD conversion kernel (component C1 of the decoder).
package pod

// Kind identifies one of the archive's 14 primitive data kinds. The numeric
// values match the 4-bit "pod" field of the property header info word
// (spec.md §4.6) exactly, so a Kind can be constructed directly from those
// bits without a translation table.
type Kind uint8

const (
	Bool Kind = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float16
	Float32
	Float64
	String
	Wstring

	numKinds = 14
)

// IsValid reports whether k is one of the 14 known POD kinds.
func (k Kind) IsValid() bool {
	return k < numKinds
}

// IsString reports whether k is String or Wstring. String/wstring payloads
// are never passed through the numeric conversion kernel.
func (k Kind) IsString() bool {
	return k == String || k == Wstring
}

// ByteSize returns the per-element byte size of k. String and Wstring have
// no fixed per-element size (they are variable-length slot arrays) and
// return 0.
func (k Kind) ByteSize() int {
	switch k {
	case Bool, Uint8, Int8:
		return 1
	case Uint16, Int16, Float16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Uint8:
		return "Uint8"
	case Int8:
		return "Int8"
	case Uint16:
		return "Uint16"
	case Int16:
		return "Int16"
	case Uint32:
		return "Uint32"
	case Int32:
		return "Int32"
	case Uint64:
		return "Uint64"
	case Int64:
		return "Int64"
	case Float16:
		return "Float16"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case String:
		return "String"
	case Wstring:
		return "Wstring"
	default:
		return "Unknown"
	}
}
