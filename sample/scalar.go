package sample

import (
	"context"
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/internal/pool"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

// ReadNumericData reads an uncompressed scalar numeric sample from data into
// dst, converting from storedPod to requestedPod if they differ. dst must be
// sized requestedPod.ByteSize() * extent; the caller owns sizing it.
//
// A zero-size blob is a no-op: dst is left untouched, matching the source's
// "empty sample" convention rather than treating it as an error.
func ReadNumericData(ctx context.Context, data container.Data, threadID int, storedPod, requestedPod pod.Kind, dst []byte) error {
	if err := checkPodCompatible(storedPod, requestedPod); err != nil {
		return err
	}

	dataSize := data.Size()
	if dataSize == 0 {
		return nil
	}

	if storedPod == requestedPod {
		if uint64(len(dst)) != dataSize {
			return fmt.Errorf("numeric payload destination %d bytes, stored %d bytes", len(dst), dataSize)
		}
		return data.Read(ctx, dst, 0, threadID)
	}

	// Stored and requested PODs differ: always read into a scratch buffer
	// first, then convert scratch into dst. This sidesteps the source's
	// widening-conversion in-place aliasing trick entirely.
	scratch, done := pool.GetByteSlice(int(dataSize))
	defer done()
	if err := data.Read(ctx, scratch, 0, threadID); err != nil {
		return fmt.Errorf("numeric payload: %w", err)
	}
	return pod.Convert(storedPod, requestedPod, scratch, dst)
}

// ReadStringData reads an uncompressed scalar string sample from data,
// splitting it on NUL terminators into slots. len(slots) must equal the
// number of NUL-terminated runs found in the payload exactly.
func ReadStringData(ctx context.Context, data container.Data, threadID int, slots []string) error {
	dataSize := data.Size()
	if dataSize == 0 {
		return nil
	}

	buf, done := pool.GetByteSlice(int(dataSize))
	defer done()
	if err := data.Read(ctx, buf, 0, threadID); err != nil {
		return fmt.Errorf("string payload: %w", err)
	}

	return splitNulTerminated(buf, slots)
}

// ReadWstringData reads an uncompressed scalar wstring sample from data,
// splitting it (as a little-endian uint32 codepoint stream) on zero
// codepoints into slots. len(slots) must equal the number of zero codepoints
// found exactly.
func ReadWstringData(ctx context.Context, data container.Data, threadID int, slots []string) error {
	dataSize := data.Size()
	if dataSize == 0 {
		return nil
	}

	buf, done := pool.GetByteSlice(int(dataSize))
	defer done()
	if err := data.Read(ctx, buf, 0, threadID); err != nil {
		return fmt.Errorf("wstring payload: %w", err)
	}

	return splitZeroCodepoint(buf, slots)
}
