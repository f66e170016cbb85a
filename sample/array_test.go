package sample

import (
	"context"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/alembic-ogawa/ogawadecode/compress"
	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/errs"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

func zstdCompress(t *testing.T, plain []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(plain, nil)
}

// buildArrayBlob prepends the 8-byte little-endian decompressedSize header
// that every array data blob carries ahead of its zstd stream.
func buildArrayBlob(t *testing.T, plain []byte) []byte {
	t.Helper()
	compressed := zstdCompress(t, plain)
	header := appendU64LE(nil, uint64(len(plain)))
	return append(header, compressed...)
}

func appendU64LE(buf []byte, v uint64) []byte {
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

func TestReadArrayNumericData_SamePod(t *testing.T) {
	plain := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	data := container.NewMemData(buildArrayBlob(t, plain))
	dst := make([]byte, len(plain))

	err := ReadArrayNumericData(context.Background(), data, 0, pod.Uint8, pod.Uint8, dst, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	require.Equal(t, plain, dst)
}

func TestReadArrayNumericData_Widening(t *testing.T) {
	plain := []byte{1, 2, 3}
	data := container.NewMemData(buildArrayBlob(t, plain))
	dst := make([]byte, 3*2) // uint8 -> uint16

	err := ReadArrayNumericData(context.Background(), data, 0, pod.Uint8, pod.Uint16, dst, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	for i, want := range []byte{1, 2, 3} {
		require.Equal(t, want, dst[i*2])
		require.Equal(t, byte(0), dst[i*2+1])
	}
}

func TestReadArrayNumericData_EmptyIsNoop(t *testing.T) {
	data := container.NewMemData(nil)
	err := ReadArrayNumericData(context.Background(), data, 0, pod.Uint8, pod.Uint8, nil, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
}

func TestReadArrayNumericData_DecompressBombRejected(t *testing.T) {
	plain := []byte{1, 2, 3, 4}
	data := container.NewMemData(buildArrayBlob(t, plain))
	dst := make([]byte, len(plain))

	err := ReadArrayNumericData(context.Background(), data, 0, pod.Uint8, pod.Uint8, dst, compress.NewZstdDecompressor(), 2)
	require.ErrorIs(t, err, errs.ErrDecompressBombSuspected)
}

func TestReadArrayNumericData_TruncatedHeaderRejected(t *testing.T) {
	data := container.NewMemData([]byte{1, 2, 3})
	dst := make([]byte, 0)

	err := ReadArrayNumericData(context.Background(), data, 0, pod.Uint8, pod.Uint8, dst, compress.NewZstdDecompressor(), 0)
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}

func TestReadArrayStringData_SplitsOnNul(t *testing.T) {
	plain := []byte("foo\x00bar\x00")
	data := container.NewMemData(buildArrayBlob(t, plain))
	slots := make([]string, 2)

	err := ReadArrayStringData(context.Background(), data, 0, compress.NewZstdDecompressor(), 0, slots)
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar"}, slots)
}

func TestReadArrayWstringData_SplitsOnZeroCodepoint(t *testing.T) {
	var plain []byte
	for _, r := range "ab" {
		plain = appendU32LE(plain, uint32(r))
	}
	plain = appendU32LE(plain, 0)

	data := container.NewMemData(buildArrayBlob(t, plain))
	slots := make([]string, 1)

	err := ReadArrayWstringData(context.Background(), data, 0, compress.NewZstdDecompressor(), 0, slots)
	require.NoError(t, err)
	require.Equal(t, []string{"ab"}, slots)
}
