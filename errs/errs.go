// Package errs defines the sentinel errors returned by the decoder.
//
// Every decode fault is one of the sentinels below, wrapped with call-site
// context via fmt.Errorf("...: %w", ...). Callers can test for a specific
// failure class with errors.Is.
package errs

import "errors"

var (
	// ErrNilContainer names the caller-contract violation of passing a nil
	// Data or Group handle. No function in this module returns it: Data
	// handles are not checked for nil (the one exception is the dimsData
	// argument of sample.ReadArraySample, where nil means an empty
	// dimensions blob), so a nil handle fails at its first method call.
	ErrNilContainer = errors.New("ogawadecode: nil container handle")

	// ErrStringConversion is returned when a caller requests a POD conversion
	// to or from string/wstring paired with a numeric kind. The caller must
	// gate this with an assertion before calling convert.
	ErrStringConversion = errors.New("ogawadecode: cannot convert between string/wstring and a numeric POD")

	// ErrTruncatedData is returned when a data blob is non-empty but smaller
	// than the minimum size the format requires (e.g. an array blob shorter
	// than its 8-byte decompressed-size header).
	ErrTruncatedData = errors.New("ogawadecode: data blob truncated")

	// ErrDecompressSizeMismatch is returned when a zstd decompression call
	// produces fewer or more bytes than the declared decompressed size.
	ErrDecompressSizeMismatch = errors.New("ogawadecode: decompressed size does not match declared size")

	// ErrDecompressBombSuspected is returned when a declared decompressed size
	// exceeds the caller-configured cap (a cap of 0 disables the check).
	ErrDecompressBombSuspected = errors.New("ogawadecode: declared decompressed size exceeds configured cap")

	// ErrTruncatedBuffer is returned when a bit-packed section buffer runs out
	// of bytes before a field can be read.
	ErrTruncatedBuffer = errors.New("ogawadecode: section buffer truncated")

	// ErrInvalidPOD is returned when a property header names an unknown POD kind.
	ErrInvalidPOD = errors.New("ogawadecode: unknown POD kind in property header")

	// ErrInvalidSizeHint is returned when a property header's size-hint bits
	// select an unsupported width code.
	ErrInvalidSizeHint = errors.New("ogawadecode: invalid size hint")

	// ErrEmptyName is returned when an object or property header declares a
	// zero-length name.
	ErrEmptyName = errors.New("ogawadecode: empty name")

	// ErrInvalidMetaDataIndex is returned when a metadata index does not
	// resolve to an inline blob (0xff) and is out of range of the indexed table.
	ErrInvalidMetaDataIndex = errors.New("ogawadecode: metadata index out of range")

	// ErrMetaDataTableTooLarge is returned when the indexed metadata blob
	// exceeds the 65536-byte bound.
	ErrMetaDataTableTooLarge = errors.New("ogawadecode: indexed metadata table exceeds maximum size")

	// ErrNoSampleTimes is returned when a time-sampling record declares
	// zero sample times.
	ErrNoSampleTimes = errors.New("ogawadecode: time sampling record has zero sample times")

	// ErrStringSlotMismatch is returned when the number of NUL-terminated
	// string slots found in a payload does not match the pre-allocated sample.
	ErrStringSlotMismatch = errors.New("ogawadecode: string slot count does not match sample dimensions")

	// ErrDuplicateName is returned when a sibling header list names the same
	// child twice.
	ErrDuplicateName = errors.New("ogawadecode: duplicate child name")

	// ErrHashCollision is returned when two distinct sibling names hash to
	// the same 64-bit id and the caller asked for id-only tracking (no name
	// retained to break the tie).
	ErrHashCollision = errors.New("ogawadecode: name hash collision")
)
