package sample

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alembic-ogawa/ogawadecode/compress"
	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

func TestReadArraySample_NumericInferredRank1(t *testing.T) {
	plain := []byte{1, 2, 3, 4, 5, 6, 7, 8} // 2 x float64... use uint8 extent 1 for simplicity
	data := container.NewMemData(buildArrayBlob(t, plain))

	s, err := ReadArraySample(context.Background(), data, nil, 0, pod.DataType{Kind: pod.Uint8, Extent: 1}, container.MemAllocator{}, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	require.Equal(t, plain, s.Data)
	require.Nil(t, s.Strings)
}

func TestReadArraySample_NumericExplicitShape(t *testing.T) {
	plain := []byte{1, 2, 3, 4}
	data := container.NewMemData(buildArrayBlob(t, plain))
	dimsBlob := appendU64LE(nil, 4) // rank 1, shape [4]
	dims := container.NewMemData(dimsBlob)

	s, err := ReadArraySample(context.Background(), data, dims, 0, pod.DataType{Kind: pod.Uint8, Extent: 1}, container.MemAllocator{}, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	require.Equal(t, plain, s.Data)
}

func TestReadArraySample_String(t *testing.T) {
	// String/wstring samples always carry an explicit dims blob: byte length
	// alone can't infer a slot count for variable-length strings.
	plain := []byte("ab\x00cd\x00")
	data := container.NewMemData(buildArrayBlob(t, plain))
	dims := container.NewMemData(appendU64LE(nil, 2))

	s, err := ReadArraySample(context.Background(), data, dims, 0, pod.DataType{Kind: pod.String, Extent: 1}, container.MemAllocator{}, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "cd"}, s.Strings)
	require.Nil(t, s.Data)
}

func TestReadArraySample_EmptyData(t *testing.T) {
	data := container.NewMemData(nil)

	s, err := ReadArraySample(context.Background(), data, nil, 0, pod.DataType{Kind: pod.Float64, Extent: 1}, container.MemAllocator{}, compress.NewZstdDecompressor(), 0)
	require.NoError(t, err)
	require.Empty(t, s.Data)
}
