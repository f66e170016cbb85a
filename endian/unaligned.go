package endian

import "math"

// ReadFloat64 decodes an IEEE-754 float64 from b using engine's byte order.
//
// encoding/binary's ByteOrder already reads byte-by-byte rather than through
// a pointer cast, so this is unaligned-safe by construction; it exists
// because binary.ByteOrder has no native float accessor.
func ReadFloat64(b []byte, engine EndianEngine) float64 {
	return math.Float64frombits(engine.Uint64(b))
}

// PutFloat64 encodes v into b using engine's byte order.
func PutFloat64(b []byte, v float64, engine EndianEngine) {
	engine.PutUint64(b, math.Float64bits(v))
}
