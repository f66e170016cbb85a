package sample

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// splitNulTerminated splits buf on 0x00 bytes into slots, in order of
// appearance, one slot per terminator found. The number of terminators found
// must equal len(slots) exactly.
func splitNulTerminated(buf []byte, slots []string) error {
	start := 0
	slot := 0
	for i, b := range buf {
		if b != 0 {
			continue
		}
		if slot >= len(slots) {
			return fmt.Errorf("string payload has more than %d NUL-terminated slots: %w", len(slots), errs.ErrStringSlotMismatch)
		}
		slots[slot] = string(buf[start:i])
		start = i + 1
		slot++
	}
	if slot != len(slots) {
		return fmt.Errorf("string payload has %d NUL-terminated slots, want %d: %w", slot, len(slots), errs.ErrStringSlotMismatch)
	}
	return nil
}

// splitZeroCodepoint splits buf, read as a little-endian uint32 codepoint
// stream, on zero codepoints into slots. Unlike splitNulTerminated, a
// non-zero codepoint is appended (as a rune) to the current slot rather than
// delimiting one; the zero codepoint advances to the next slot without
// contributing a rune. The number of zero codepoints found must equal
// len(slots) exactly.
func splitZeroCodepoint(buf []byte, slots []string) error {
	engine := endian.GetLittleEndianEngine()
	numChars := len(buf) / 4

	var b []rune
	slot := 0
	for i := 0; i < numChars; i++ {
		cp := engine.Uint32(buf[i*4:])
		if cp == 0 {
			if slot >= len(slots) {
				return fmt.Errorf("wstring payload has more than %d zero-terminated slots: %w", len(slots), errs.ErrStringSlotMismatch)
			}
			slots[slot] = string(b)
			b = b[:0]
			slot++
			continue
		}
		b = append(b, rune(cp))
	}
	if slot != len(slots) {
		return fmt.Errorf("wstring payload has %d zero-terminated slots, want %d: %w", slot, len(slots), errs.ErrStringSlotMismatch)
	}
	return nil
}
