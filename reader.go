// Package ogawadecode ties the decoder's components together into a single
// entry point: Open reads an archive's three fixed tables (time samplings,
// indexed metadata, root object headers) in the order component C4/C7 must
// complete before any C5/C6 call that references them, then exposes the
// result as an Archive — a container.TimeSamplingSource plus a root object
// index, ready to drive further container.Group/container.Data lookups.
//
// The wire/, sample/, container/ and headerindex/ packages remain usable
// directly for callers who want finer control (e.g. decoding a subtree
// without the whole-archive bookkeeping Open performs); Archive is a thin
// convenience composition over them.
package ogawadecode

import (
	"context"
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/compress"
	"github.com/alembic-ogawa/ogawadecode/container"
	"github.com/alembic-ogawa/ogawadecode/headerindex"
	"github.com/alembic-ogawa/ogawadecode/internal/options"
	"github.com/alembic-ogawa/ogawadecode/pod"
	"github.com/alembic-ogawa/ogawadecode/sample"
	"github.com/alembic-ogawa/ogawadecode/wire"
)

// config holds the archive-wide policy knobs every sample read shares.
type config struct {
	decompressor         compress.Decompressor
	maxDecompressedBytes uint64
}

func defaultConfig() *config {
	return &config{
		decompressor:         compress.NewZstdDecompressor(),
		maxDecompressedBytes: 0,
	}
}

// Option configures Open. The zero value of every Option field has a usable
// default; Open works correctly called with none.
type Option = options.Option[*config]

// WithDecompressor overrides the zstd backend Open uses for every array
// sample read. Defaults to compress.NewZstdDecompressor().
func WithDecompressor(d compress.Decompressor) Option {
	return options.NoError(func(c *config) { c.decompressor = d })
}

// WithMaxDecompressedBytes caps the declared decompressed size Open accepts
// for any array sample, rejecting larger declarations as a suspected
// decompression bomb. 0 (the default) disables the cap.
func WithMaxDecompressedBytes(n uint64) Option {
	return options.NoError(func(c *config) { c.maxDecompressedBytes = n })
}

// Archive is a decoded archive's fixed tables (time samplings, indexed
// metadata, root object headers) plus a name index over the root objects.
// It implements container.TimeSamplingSource.
type Archive struct {
	cfg *config

	timeSamplings []wire.TimeSamplingEntry
	metaDataTable []wire.MetaData

	objects     []wire.ObjectHeader
	objectIndex headerindex.Index
}

var _ container.TimeSamplingSource = (*Archive)(nil)

// readAll reads the whole of data into a freshly allocated buffer.
func readAll(ctx context.Context, data container.Data, threadID int) ([]byte, error) {
	n := data.Size()
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := data.Read(ctx, buf, 0, threadID); err != nil {
		return nil, err
	}
	return buf, nil
}

// Open decodes an archive's fixed tables and builds the root object index.
// timeSamplingsData and indexedMetaDataData back C4 and C7 respectively;
// rootObjectHeadersData backs C5 for the archive's top-level object list.
// deserialize turns each inline or indexed metadata record's raw bytes into
// a wire.MetaData; the decoder never interprets metadata itself.
func Open(
	ctx context.Context,
	timeSamplingsData container.Data,
	indexedMetaDataData container.Data,
	rootObjectHeadersData container.Data,
	threadID int,
	deserialize wire.Deserializer,
	opts ...Option,
) (*Archive, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("archive options: %w", err)
	}

	tsBuf, err := readAll(ctx, timeSamplingsData, threadID)
	if err != nil {
		return nil, fmt.Errorf("time samplings: %w", err)
	}
	timeSamplings, err := wire.ReadTimeSamplings(tsBuf)
	if err != nil {
		return nil, fmt.Errorf("time samplings: %w", err)
	}

	mdBuf, err := readAll(ctx, indexedMetaDataData, threadID)
	if err != nil {
		return nil, fmt.Errorf("indexed metadata: %w", err)
	}
	metaDataTable, err := wire.ReadIndexedMetaData(mdBuf, deserialize)
	if err != nil {
		return nil, fmt.Errorf("indexed metadata: %w", err)
	}

	objBuf, err := readAll(ctx, rootObjectHeadersData, threadID)
	if err != nil {
		return nil, fmt.Errorf("root object headers: %w", err)
	}
	objects, err := wire.ReadObjectHeaders(objBuf, "", metaDataTable, deserialize)
	if err != nil {
		return nil, fmt.Errorf("root object headers: %w", err)
	}

	names := make([]string, len(objects))
	for i, o := range objects {
		names[i] = o.Name
	}
	objectIndex, err := headerindex.Build(names)
	if err != nil {
		return nil, fmt.Errorf("root object index: %w", err)
	}

	return &Archive{
		cfg:           cfg,
		timeSamplings: timeSamplings,
		metaDataTable: metaDataTable,
		objects:       objects,
		objectIndex:   objectIndex,
	}, nil
}

// GetTimeSampling implements container.TimeSamplingSource. Index 0 is the
// first record of the C4 table, which by the table's own convention is the
// archive's default sampling; if the table holds no records, every index,
// 0 included, is an out-of-range error.
func (a *Archive) GetTimeSampling(index int) (wire.TimeSampling, error) {
	if index < 0 || index >= len(a.timeSamplings) {
		return wire.TimeSampling{}, fmt.Errorf("time sampling index %d out of range [0, %d)", index, len(a.timeSamplings))
	}
	return a.timeSamplings[index].Sampling, nil
}

// MaxSample returns the global max sample count recorded alongside the time
// sampling at index.
func (a *Archive) MaxSample(index int) (uint32, error) {
	if index < 0 || index >= len(a.timeSamplings) {
		return 0, fmt.Errorf("time sampling index %d out of range [0, %d)", index, len(a.timeSamplings))
	}
	return a.timeSamplings[index].MaxSample, nil
}

// MetaData returns the indexed metadata table entry at idx (0 is always the
// canonical empty entry).
func (a *Archive) MetaData(idx int) (wire.MetaData, error) {
	if idx < 0 || idx >= len(a.metaDataTable) {
		return nil, fmt.Errorf("metadata index %d out of range [0, %d)", idx, len(a.metaDataTable))
	}
	return a.metaDataTable[idx], nil
}

// Objects returns the decoded root object header list, in wire order.
func (a *Archive) Objects() []wire.ObjectHeader {
	return a.objects
}

// ObjectByName looks up a root object by name.
func (a *Archive) ObjectByName(name string) (wire.ObjectHeader, bool) {
	i, ok := a.objectIndex.ByName(name)
	if !ok {
		return wire.ObjectHeader{}, false
	}
	return a.objects[i], true
}

// ReadArraySample decodes an array sample out of data/dimsData using the
// archive's configured decompressor and decompression-bomb cap.
func (a *Archive) ReadArraySample(ctx context.Context, data, dimsData container.Data, threadID int, dt pod.DataType, alloc container.Allocator) (container.Sample, error) {
	return sample.ReadArraySample(ctx, data, dimsData, threadID, dt, alloc, a.cfg.decompressor, a.cfg.maxDecompressedBytes)
}
