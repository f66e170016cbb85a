package wire

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/errs"
)

// MetaData is the decoder's view of the archive's opaque key/value metadata
// bag: the decoder never inspects its contents, only produces it from a raw
// string via a caller-supplied Deserializer.
type MetaData interface{}

// Deserializer turns a raw metadata string into a MetaData value. The
// decoder treats this as an opaque collaborator; it never interprets the
// string itself.
type Deserializer func(raw string) (MetaData, error)

// EmptyMetaDataIndex is metaDataTable[0], the canonical empty entry every
// indexed metadata table is seeded with.
const EmptyMetaDataIndex = 0

// InlineMetaDataSentinel (0xff) marks a header's metaDataIndex as "inline,
// not indexed": the raw bytes follow directly rather than referencing the
// table.
const InlineMetaDataSentinel = 0xff

// maxMetaDataTableBytes bounds the indexed metadata blob at 256 entries of
// up to 256 bytes each.
const maxMetaDataTableBytes = 65536

// ReadIndexedMetaData parses the archive-level dictionary of reusable
// metadata strings: a sequence of (u8 size, bytes[size]) records, seeded
// with one empty MetaData at index 0.
func ReadIndexedMetaData(buf []byte, deserialize Deserializer) ([]MetaData, error) {
	if len(buf) > maxMetaDataTableBytes {
		return nil, fmt.Errorf("indexed metadata blob is %d bytes: %w", len(buf), errs.ErrMetaDataTableTooLarge)
	}

	empty, err := deserialize("")
	if err != nil {
		return nil, fmt.Errorf("indexed metadata index 0: %w", err)
	}
	table := []MetaData{empty}

	pos := 0
	for pos < len(buf) {
		size := int(buf[pos])
		pos++

		if pos+size > len(buf) {
			return nil, fmt.Errorf("indexed metadata record at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}

		var raw string
		if size > 0 {
			raw = string(buf[pos : pos+size])
		}
		pos += size

		md, err := deserialize(raw)
		if err != nil {
			return nil, fmt.Errorf("indexed metadata record %d: %w", len(table), err)
		}
		table = append(table, md)

		if len(table) > 256 {
			return nil, fmt.Errorf("indexed metadata table: %w", errs.ErrMetaDataTableTooLarge)
		}
	}

	return table, nil
}
