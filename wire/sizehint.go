package wire

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// SizeHint is the 2-bit width code carried in a property header's info word
// (bits 2-3), selecting the byte width of every subsequent size-hinted
// variable-width uint in that header's tail.
type SizeHint uint8

const (
	SizeHintU8 SizeHint = iota
	SizeHintU16
	SizeHintU32
	// sizeHintInvalid (code 3) is reserved and never produced by a
	// correctly-encoded header.
)

// ReadSizeHinted reads one size-hinted variable-width uint from buf at
// offset, per hint's width, and returns the value and the offset just past
// it. This shape (a width code selecting u8/u16/u32) recurs throughout the
// property header tail, so it is implemented once here and reused.
func ReadSizeHinted(buf []byte, offset int, hint SizeHint, engine endian.EndianEngine) (uint64, int, error) {
	switch hint {
	case SizeHintU8:
		if offset+1 > len(buf) {
			return 0, offset, fmt.Errorf("size-hinted u8 at offset %d: %w", offset, errs.ErrTruncatedBuffer)
		}
		return uint64(buf[offset]), offset + 1, nil
	case SizeHintU16:
		if offset+2 > len(buf) {
			return 0, offset, fmt.Errorf("size-hinted u16 at offset %d: %w", offset, errs.ErrTruncatedBuffer)
		}
		return uint64(engine.Uint16(buf[offset:])), offset + 2, nil
	case SizeHintU32:
		if offset+4 > len(buf) {
			return 0, offset, fmt.Errorf("size-hinted u32 at offset %d: %w", offset, errs.ErrTruncatedBuffer)
		}
		return uint64(engine.Uint32(buf[offset:])), offset + 4, nil
	default:
		return 0, offset, errs.ErrInvalidSizeHint
	}
}
