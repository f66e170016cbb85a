package container

import (
	"context"
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/pod"
	"github.com/alembic-ogawa/ogawadecode/wire"
)

// MemData is an in-memory Data backed by a plain byte slice. It has no
// production use (a real archive's Data reads from a memory-mapped or
// random-access file section); it exists so decode logic built against the
// Data/Group interfaces can be exercised without a real container.
type MemData struct {
	buf []byte
}

var _ Data = MemData{}

// NewMemData wraps buf as a Data.
func NewMemData(buf []byte) MemData {
	return MemData{buf: buf}
}

func (d MemData) Size() uint64 { return uint64(len(d.buf)) }

func (d MemData) Read(_ context.Context, dst []byte, offset uint64, _ int) error {
	end := offset + uint64(len(dst))
	if end > uint64(len(d.buf)) {
		return fmt.Errorf("container: read [%d:%d) exceeds data size %d", offset, end, len(d.buf))
	}
	copy(dst, d.buf[offset:end])
	return nil
}

// MemGroup is an in-memory Group over a fixed slice of Data.
type MemGroup struct {
	items []Data
}

var _ Group = MemGroup{}

// NewMemGroup wraps items as a Group.
func NewMemGroup(items []Data) MemGroup {
	return MemGroup{items: items}
}

func (g MemGroup) GetData(_ context.Context, index int, _ int) (Data, error) {
	if index < 0 || index >= len(g.items) {
		return nil, fmt.Errorf("container: group index %d out of range [0, %d)", index, len(g.items))
	}
	return g.items[index], nil
}

// MemAllocator is a plain heap-allocating Allocator: every call produces a
// freshly made slice, with no pooling or reuse. It has no production use; it
// exists so decode logic can be exercised against the Allocator interface.
type MemAllocator struct{}

var _ Allocator = MemAllocator{}

func (MemAllocator) AllocateArraySample(dt pod.DataType, dims wire.Dimensions) (Sample, error) {
	n := dims.NumPoints()
	if dt.Kind.IsString() {
		return Sample{Strings: make([]string, n)}, nil
	}
	return Sample{Data: make([]byte, dt.NumBytes()*int(n))}, nil
}
