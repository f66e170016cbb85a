package compress

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/errs"
)

// Decompressor decompresses a zstd-compressed array payload into a
// caller-provided, exactly-sized destination buffer.
type Decompressor interface {
	// DecompressInto decompresses src into dst. len(dst) must equal the
	// data blob's declared decompressed size; a short or long result is a
	// fatal decode error (errs.ErrDecompressSizeMismatch), matching the
	// reference reader's "ZSTD_decompress return value must equal
	// decompressedDataSize" contract.
	DecompressInto(dst, src []byte) error
}

// checkDecompressedLen is the shared post-condition check every backend
// applies after its native decompress call returns.
func checkDecompressedLen(got, want int) error {
	if got != want {
		return fmt.Errorf("decompressed %d bytes, want %d: %w", got, want, errs.ErrDecompressSizeMismatch)
	}
	return nil
}
