package container

import (
	"context"

	"github.com/alembic-ogawa/ogawadecode/pod"
	"github.com/alembic-ogawa/ogawadecode/wire"
)

// Data is one random-access blob within the archive: a property's sample
// data, a dimensions blob, or a fixed section (time samplings, headers,
// indexed metadata).
type Data interface {
	// Size returns the blob's total byte size, key/header bytes included.
	Size() uint64
	// Read copies len(dst) bytes starting at offset into dst. threadID identifies
	// which internal reader slot the container should use, allowing
	// concurrent reads against distinct thread ids to proceed independently.
	Read(ctx context.Context, dst []byte, offset uint64, threadID int) error
}

// Group is a named collection of Data blobs — an object's or a compound
// property's children.
type Group interface {
	// GetData returns the Data handle at index, or an error if index is out
	// of range.
	GetData(ctx context.Context, index int, threadID int) (Data, error)
}

// Sample is a mutable, caller-owned destination buffer for one array
// sample's payload. Exactly one field is populated, selected by the
// requested pod.DataType.Kind: Data for every numeric kind, sized
// dt.NumBytes()*dims.NumPoints() bytes; Strings for String/Wstring, with one
// slot per point (dims.NumPoints() slots).
type Sample struct {
	Data    []byte
	Strings []string
}

// Allocator provides caller-owned destination buffers for array samples.
// Decoupling allocation from decode lets the caller pool, reuse, or
// memory-map sample storage.
type Allocator interface {
	AllocateArraySample(dt pod.DataType, dims wire.Dimensions) (Sample, error)
}

// TimeSamplingSource resolves a time-sampling index (as recorded in a
// property header) to its decoded descriptor. Index 0 must resolve to the
// archive's default time sampling.
type TimeSamplingSource interface {
	GetTimeSampling(index int) (wire.TimeSampling, error)
}
