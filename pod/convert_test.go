package pod

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func u32le(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
	return b
}

func i32le(vals ...int32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
	}
	return b
}

func f32le(vals ...float32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

func TestConvert_S1_WidenUint8ToUint32(t *testing.T) {
	src := []byte{0x01, 0xFF, 0x00, 0x80}
	dst := make([]byte, 4*4)

	err := Convert(Uint8, Uint32, src, dst)
	require.NoError(t, err)

	got := make([]uint32, 4)
	for i := range got {
		got[i] = binary.LittleEndian.Uint32(dst[i*4:])
	}
	require.Equal(t, []uint32{1, 255, 0, 128}, got)
}

func TestConvert_S2_NarrowInt32ToInt8Clamp(t *testing.T) {
	src := i32le(300, -200, 42, -1)
	dst := make([]byte, 4)

	err := Convert(Int32, Int8, src, dst)
	require.NoError(t, err)
	require.Equal(t, []byte{127, 0x80, 42, 0xFF}, dst) // 0x80 = -128, 0xFF = -1 as int8
}

func TestConvert_S3_Float32ToUint8Saturate(t *testing.T) {
	src := f32le(-1.5, 0.25, 255.9, 300.0)
	dst := make([]byte, 4)

	err := Convert(Float32, Uint8, src, dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 255, 255}, dst)
}

func TestConvert_S4_BoolToUint16(t *testing.T) {
	src := []byte{0x00, 0x03, 0x01}
	dst := make([]byte, 3*2)

	err := Convert(Bool, Uint16, src, dst)
	require.NoError(t, err)

	got := make([]uint16, 3)
	for i := range got {
		got[i] = binary.LittleEndian.Uint16(dst[i*2:])
	}
	require.Equal(t, []uint16{0, 1, 1}, got)
}

func TestConvert_ToBool(t *testing.T) {
	src := u32le(0, 5, 0)
	dst := make([]byte, 3)

	err := Convert(Uint32, Bool, src, dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 0}, dst)
}

func TestConvert_IdentityRejected(t *testing.T) {
	err := Convert(Int32, Int32, make([]byte, 4), make([]byte, 4))
	require.Error(t, err)
}

func TestConvert_StringRejected(t *testing.T) {
	err := Convert(String, Uint32, nil, nil)
	require.Error(t, err)

	err = Convert(Uint32, Wstring, nil, nil)
	require.Error(t, err)
}

func TestConvert_UnsignedNarrowIntoSignedSameWidth(t *testing.T) {
	// uint16 max should clamp to int16 max, not wrap negative.
	src := make([]byte, 2)
	binary.LittleEndian.PutUint16(src, 0xFFFF)
	dst := make([]byte, 2)

	err := Convert(Uint16, Int16, src, dst)
	require.NoError(t, err)
	require.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(dst)))
}

func TestConvert_SignedWidenIntoUnsignedClampsFloor(t *testing.T) {
	// Negative int8 widened into uint32 clamps to 0, not a huge wrapped value.
	src := []byte{0xFF} // -1 as int8
	dst := make([]byte, 4)

	err := Convert(Int8, Uint32, src, dst)
	require.NoError(t, err)
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(dst))
}

func TestConvert_Float16RoundTrip(t *testing.T) {
	src := f32le(1.5, -65504.0, 1e9, 0.0)
	dst := make([]byte, 4*2)

	err := Convert(Float32, Float16, src, dst)
	require.NoError(t, err)

	back := make([]byte, 4*4)
	err = Convert(Float16, Float32, dst, back)
	require.NoError(t, err)

	var got [4]float32
	for i := range got {
		bits := binary.LittleEndian.Uint32(back[i*4:])
		got[i] = math.Float32frombits(bits)
	}

	require.InDelta(t, 1.5, got[0], 0.01)
	require.Equal(t, float32(-65504.0), got[1])
	require.Equal(t, float32(65504.0), got[2]) // 1e9 clamps to half max
	require.Equal(t, float32(0.0), got[3])
}

func TestConvert_OverlappingAliasWidening(t *testing.T) {
	// Simulate in-place widening: dst is a larger buffer whose first half
	// holds the source bytes (as the array reader does before dispatch).
	buf := make([]byte, 16)
	copy(buf, []byte{1, 2, 3, 4})

	err := Convert(Uint8, Uint32, buf[:4], buf)
	require.NoError(t, err)

	for i, want := range []uint32{1, 2, 3, 4} {
		require.Equal(t, want, binary.LittleEndian.Uint32(buf[i*4:]))
	}
}
