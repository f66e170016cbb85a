//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// ZstdDecompressor is the cgo zstd Decompressor backend, binding libzstd via
// gozstd for the lower per-call latency a cgo binding gives over pure Go.
type ZstdDecompressor struct{}

var _ Decompressor = ZstdDecompressor{}

// NewZstdDecompressor returns the cgo zstd decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

func (ZstdDecompressor) DecompressInto(dst, src []byte) error {
	out, err := gozstd.Decompress(dst[:0], src)
	if err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecompressedLen(len(out), len(dst)); err != nil {
		return err
	}
	copy(dst, out)
	return nil
}
