//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// decoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. klauspost/compress/zstd is explicitly designed for decoder
// reuse: "The decoder has been designed to operate without allocations
// after a warmup. This means that you should store the decoder for best
// performance."
var decoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// ZstdDecompressor is the pure-Go zstd Decompressor backend.
type ZstdDecompressor struct{}

var _ Decompressor = ZstdDecompressor{}

// NewZstdDecompressor returns the pure-Go zstd decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

func (ZstdDecompressor) DecompressInto(dst, src []byte) error {
	decoder := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecompressedLen(len(out), len(dst)); err != nil {
		return err
	}
	// DecodeAll appends to dst's backing array when it has enough capacity,
	// which it always does here (dst is sized to the declared decompressed
	// length), but copy unconditionally to stay correct if that ever changes.
	copy(dst, out)
	return nil
}
