package sample

import (
	"context"
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/compress"
	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/pod"
	"github.com/alembic-ogawa/ogawadecode/wire"
)

// ReadArraySample composes dimension inference, allocation and the array
// payload read into a single call: it infers dims from dimsData/data (the
// tagged/TDR variant, §4.2), allocates a Sample sized for dims via alloc,
// and fills it by reading data at its stored POD. dimsData may be nil to
// denote an empty dimensions blob (rank-1 inference).
func ReadArraySample(ctx context.Context, data container.Data, dimsData container.Data, threadID int, dt pod.DataType, alloc container.Allocator, decompressor compress.Decompressor, maxDecompressedBytes uint64) (container.Sample, error) {
	headerLen := data.Size()
	if headerLen > 8 {
		headerLen = 8
	}
	header := make([]byte, headerLen)
	if headerLen > 0 {
		if err := data.Read(ctx, header, 0, threadID); err != nil {
			return container.Sample{}, fmt.Errorf("array sample header: %w", err)
		}
	}

	var dimsBlob []byte
	if dimsData != nil && dimsData.Size() > 0 {
		dimsBlob = make([]byte, dimsData.Size())
		if err := dimsData.Read(ctx, dimsBlob, 0, threadID); err != nil {
			return container.Sample{}, fmt.Errorf("array sample dimensions: %w", err)
		}
	}

	dims, err := wire.ReadTDRDimensions(header, dimsBlob, dt.Kind.ByteSize(), dt.Kind.IsString())
	if err != nil {
		return container.Sample{}, err
	}

	s, err := alloc.AllocateArraySample(dt, dims)
	if err != nil {
		return container.Sample{}, err
	}

	switch dt.Kind {
	case pod.String:
		if err := ReadArrayStringData(ctx, data, threadID, decompressor, maxDecompressedBytes, s.Strings); err != nil {
			return container.Sample{}, err
		}
	case pod.Wstring:
		if err := ReadArrayWstringData(ctx, data, threadID, decompressor, maxDecompressedBytes, s.Strings); err != nil {
			return container.Sample{}, err
		}
	default:
		if err := ReadArrayNumericData(ctx, data, threadID, dt.Kind, dt.Kind, s.Data, decompressor, maxDecompressedBytes); err != nil {
			return container.Sample{}, err
		}
	}

	return s, nil
}
