package pod

import (
	"encoding/binary"
	"math"
)

// numeric is the set of Go types the conversion kernel operates on directly.
// Bool and Float16 are not members: bool has no natural ordering and
// float16's wire representation (a uint16 bit pattern) doesn't match its
// value domain, so both get dedicated code paths below instead of an
// instantiation of this constraint.
type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// bounds returns T's own min and max, with the float cases returning the
// finite max (not +/-Inf) per the clamp contract.
func bounds[T numeric]() (T, T) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(math.MinInt8)), T(int8(math.MaxInt8))
	case uint8:
		return T(uint8(0)), T(uint8(math.MaxUint8))
	case int16:
		return T(int16(math.MinInt16)), T(int16(math.MaxInt16))
	case uint16:
		return T(uint16(0)), T(uint16(math.MaxUint16))
	case int32:
		return T(int32(math.MinInt32)), T(int32(math.MaxInt32))
	case uint32:
		return T(uint32(0)), T(uint32(math.MaxUint32))
	case int64:
		return T(int64(math.MinInt64)), T(int64(math.MaxInt64))
	case uint64:
		return T(uint64(0)), T(uint64(math.MaxUint64))
	case float32:
		return T(float32(-math.MaxFloat32)), T(float32(math.MaxFloat32))
	case float64:
		return T(float64(-math.MaxFloat64)), T(float64(math.MaxFloat64))
	default:
		panic("pod: bounds: unsupported numeric type")
	}
}

func byteSize[T numeric]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		panic("pod: byteSize: unsupported numeric type")
	}
}

// load decodes one little-endian element of type T from the front of b.
func load[T numeric](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(b[0]))
	case uint8:
		return T(uint8(b[0]))
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	case uint64:
		return T(binary.LittleEndian.Uint64(b))
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	default:
		panic("pod: load: unsupported numeric type")
	}
}

// store encodes one little-endian element of type T to the front of b.
func store[T numeric](b []byte, v T) {
	switch any(v).(type) {
	case int8:
		b[0] = byte(int8(v))
	case uint8:
		b[0] = byte(uint8(v))
	case int16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case uint16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	case uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case int64:
		binary.LittleEndian.PutUint64(b, uint64(int64(v)))
	case uint64:
		binary.LittleEndian.PutUint64(b, uint64(v))
	case float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	case float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v)))
	default:
		panic("pod: store: unsupported numeric type")
	}
}

// convertNumeric reinterprets src as a packed array of From and writes the
// element-wise saturating conversion into dst as To. src and dst may be the
// same backing array (in-place aliasing): when sizeof(To) < sizeof(From) the
// loop advances forward, otherwise backward, so a partially-overwritten
// element is never read after being clobbered.
//
// Clamp bounds: when From is strictly wider than To, the destination's own
// min/max are cast into From (this can invert — casting a negative bound
// into a wider unsigned From wraps to a huge value — in which case the
// floor is reset to zero, the signed-narrowed-from-unsigned case). Otherwise
// (same width or widening) the source's own bounds are used, with the floor
// forced to zero when the source is signed and the destination unsigned, and
// the ceiling pulled down to the destination's cast-back max when same-width
// unsigned source feeds a signed destination.
func convertNumeric[From, To numeric](src, dst []byte) {
	fs, ts := byteSize[From](), byteSize[To]()
	n := len(src) / fs
	toMin, toMax := bounds[To]()

	if fs > ts {
		srcLo := From(toMin)
		srcHi := From(toMax)
		if srcLo > srcHi {
			srcLo = 0
		}
		for i := 0; i < n; i++ {
			v := load[From](src[i*fs:])
			if v < srcLo {
				v = srcLo
			} else if v > srcHi {
				v = srcHi
			}
			store[To](dst[i*ts:], To(v))
		}
		return
	}

	srcLo, srcHi := bounds[From]()
	if srcLo != 0 && toMin == 0 {
		srcLo = 0
	} else if srcLo == 0 && toMin != 0 && fs == ts {
		srcHi = From(toMax)
	}

	for i := n - 1; i >= 0; i-- {
		v := load[From](src[i*fs:])
		if v < srcLo {
			v = srcLo
		} else if v > srcHi {
			v = srcHi
		}
		store[To](dst[i*ts:], To(v))
	}
}

// convertToBool writes (src[i] != 0) for each From element, forward (bool is
// never wider than From, so a forward pass never reads a clobbered byte).
func convertToBool[From numeric](src, dst []byte) {
	fs := byteSize[From]()
	n := len(src) / fs
	var zero From
	for i := 0; i < n; i++ {
		v := load[From](src[i*fs:])
		if v != zero {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// convertFromBool writes 0/1 widened to To for each source byte, backward
// (To is never narrower than bool's single byte).
func convertFromBool[To numeric](src, dst []byte) {
	ts := byteSize[To]()
	n := len(src)
	for i := n - 1; i >= 0; i-- {
		var v To
		if src[i] != 0 {
			v = 1
		}
		store[To](dst[i*ts:], v)
	}
}

// convertToFloat16 decodes each From element, clamps it into half's range
// and direction (From's own bounds if From is narrower-or-equal, otherwise
// half's own range cast back into From, with the floor reset to zero if that
// cast inverts), then encodes the half bit pattern.
func convertToFloat16[From numeric](src, dst []byte) {
	fs := byteSize[From]()
	n := len(src) / fs

	if fs > 2 {
		lo, hi := float64(-halfMax), float64(halfMax)
		srcLo := From(lo)
		srcHi := From(hi)
		if srcLo > srcHi {
			srcLo = 0
		}
		for i := 0; i < n; i++ {
			v := load[From](src[i*fs:])
			if v < srcLo {
				v = srcLo
			} else if v > srcHi {
				v = srcHi
			}
			binary.LittleEndian.PutUint16(dst[i*2:], float16Bits(float32(v)))
		}
		return
	}

	srcLo, srcHi := bounds[From]()
	for i := n - 1; i >= 0; i-- {
		v := load[From](src[i*fs:])
		if v < srcLo {
			v = srcLo
		} else if v > srcHi {
			v = srcHi
		}
		binary.LittleEndian.PutUint16(dst[i*2:], float16Bits(clampToHalfRange(float32(v))))
	}
}

// convertFromFloat16 widens each half element to float32, clamps it into To's
// range and direction, then encodes as To.
func convertFromFloat16[To numeric](src, dst []byte) {
	ts := byteSize[To]()
	n := len(src) / 2
	toMin, toMax := bounds[To]()

	if 2 > ts {
		lo := float32(toMin)
		hi := float32(toMax)
		for i := 0; i < n; i++ {
			v := float16ToFloat32(binary.LittleEndian.Uint16(src[i*2:]))
			if v < lo {
				v = lo
			} else if v > hi {
				v = hi
			}
			store[To](dst[i*ts:], To(v))
		}
		return
	}

	lo, hi := float32(-halfMax), float32(halfMax)
	if l := float32(toMin); l > lo {
		lo = l
	}
	if h := float32(toMax); h < hi {
		hi = h
	}
	for i := n - 1; i >= 0; i-- {
		v := float16ToFloat32(binary.LittleEndian.Uint16(src[i*2:]))
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		store[To](dst[i*ts:], To(v))
	}
}
