package sample

import (
	"context"
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/compress"
	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
	"github.com/alembic-ogawa/ogawadecode/internal/pool"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

const arrayHeaderSize = 8

// readArrayHeader reads data's 8-byte decompressedDataSize header and
// returns it along with the blob's total size. A blob shorter than 8 bytes
// is only valid if it's entirely empty (a legitimately empty sample); any
// other short blob is a truncation fault.
func readArrayHeader(ctx context.Context, data container.Data, threadID int) (dataSize, decompressedSize uint64, empty bool, err error) {
	dataSize = data.Size()
	if dataSize == 0 {
		return 0, 0, true, nil
	}
	if dataSize < arrayHeaderSize {
		return 0, 0, false, fmt.Errorf("array payload size %d: %w", dataSize, errs.ErrTruncatedData)
	}

	header := make([]byte, arrayHeaderSize)
	if err := data.Read(ctx, header, 0, threadID); err != nil {
		return 0, 0, false, fmt.Errorf("array payload header: %w", err)
	}
	return dataSize, endian.GetLittleEndianEngine().Uint64(header), false, nil
}

// ReadArrayNumericData reads a zstd-compressed array numeric sample from
// data into dst, converting from storedPod to requestedPod if they differ.
// maxDecompressedBytes caps the declared decompressed size as a
// decompression-bomb guard; 0 disables the cap.
func ReadArrayNumericData(ctx context.Context, data container.Data, threadID int, storedPod, requestedPod pod.Kind, dst []byte, decompressor compress.Decompressor, maxDecompressedBytes uint64) error {
	if err := checkPodCompatible(storedPod, requestedPod); err != nil {
		return err
	}

	dataSize, decompressedSize, empty, err := readArrayHeader(ctx, data, threadID)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := checkDecompressedBound(decompressedSize, maxDecompressedBytes); err != nil {
		return err
	}

	compressed, done := pool.GetByteSlice(int(dataSize - arrayHeaderSize))
	defer done()
	if err := data.Read(ctx, compressed, arrayHeaderSize, threadID); err != nil {
		return fmt.Errorf("array payload body: %w", err)
	}

	if storedPod == requestedPod {
		if uint64(len(dst)) != decompressedSize {
			return fmt.Errorf("array payload destination %d bytes, want %d: %w", len(dst), decompressedSize, errs.ErrDecompressSizeMismatch)
		}
		return decompressor.DecompressInto(dst, compressed)
	}

	scratch, doneScratch := pool.GetByteSlice(int(decompressedSize))
	defer doneScratch()
	if err := decompressor.DecompressInto(scratch, compressed); err != nil {
		return err
	}
	return pod.Convert(storedPod, requestedPod, scratch, dst)
}

// ReadArrayStringData reads a zstd-compressed array string sample from data,
// splitting the decompressed payload on NUL terminators into slots.
func ReadArrayStringData(ctx context.Context, data container.Data, threadID int, decompressor compress.Decompressor, maxDecompressedBytes uint64, slots []string) error {
	dataSize, decompressedSize, empty, err := readArrayHeader(ctx, data, threadID)
	if err != nil {
		return err
	}
	if empty || decompressedSize == 0 {
		return nil
	}
	if err := checkDecompressedBound(decompressedSize, maxDecompressedBytes); err != nil {
		return err
	}

	compressed, done := pool.GetByteSlice(int(dataSize - arrayHeaderSize))
	defer done()
	if err := data.Read(ctx, compressed, arrayHeaderSize, threadID); err != nil {
		return fmt.Errorf("array string payload body: %w", err)
	}

	plain, donePlain := pool.GetByteSlice(int(decompressedSize))
	defer donePlain()
	if err := decompressor.DecompressInto(plain, compressed); err != nil {
		return err
	}

	return splitNulTerminated(plain, slots)
}

// ReadArrayWstringData reads a zstd-compressed array wstring sample from
// data, splitting the decompressed codepoint stream on zero codepoints into
// slots.
func ReadArrayWstringData(ctx context.Context, data container.Data, threadID int, decompressor compress.Decompressor, maxDecompressedBytes uint64, slots []string) error {
	dataSize, decompressedSize, empty, err := readArrayHeader(ctx, data, threadID)
	if err != nil {
		return err
	}
	if empty || decompressedSize == 0 {
		return nil
	}
	if err := checkDecompressedBound(decompressedSize, maxDecompressedBytes); err != nil {
		return err
	}

	compressed, done := pool.GetByteSlice(int(dataSize - arrayHeaderSize))
	defer done()
	if err := data.Read(ctx, compressed, arrayHeaderSize, threadID); err != nil {
		return fmt.Errorf("array wstring payload body: %w", err)
	}

	plain, donePlain := pool.GetByteSlice(int(decompressedSize))
	defer donePlain()
	if err := decompressor.DecompressInto(plain, compressed); err != nil {
		return err
	}

	return splitZeroCodepoint(plain, slots)
}
