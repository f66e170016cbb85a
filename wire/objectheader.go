package wire

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// ObjectHeader describes one child object record.
type ObjectHeader struct {
	Name     string
	FullName string
	MetaData MetaData
}

// ReadObjectHeaders parses a sequence of object header records from buf.
// parentFullName is prepended ("parent" + "/" + name) to build FullName;
// indexedTable is the archive's C7 output, consulted when a record's
// metaDataIndex is not the inline sentinel.
func ReadObjectHeaders(buf []byte, parentFullName string, indexedTable []MetaData, deserialize Deserializer) ([]ObjectHeader, error) {
	engine := endian.GetLittleEndianEngine()
	var headers []ObjectHeader
	pos := 0

	for pos < len(buf) {
		if pos+4 > len(buf) {
			return nil, fmt.Errorf("object header name size at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		nameSize := engine.Uint32(buf[pos:])
		pos += 4
		if nameSize == 0 {
			return nil, fmt.Errorf("object header at offset %d: %w", pos, errs.ErrEmptyName)
		}

		if pos+int(nameSize) > len(buf) {
			return nil, fmt.Errorf("object header name at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		name := string(buf[pos : pos+int(nameSize)])
		pos += int(nameSize)

		if pos+1 > len(buf) {
			return nil, fmt.Errorf("object header metadata index at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		mdIndex := buf[pos]
		pos++

		var md MetaData
		if mdIndex == InlineMetaDataSentinel {
			if pos+4 > len(buf) {
				return nil, fmt.Errorf("object header inline metadata size at offset %d: %w", pos, errs.ErrTruncatedBuffer)
			}
			mdSize := engine.Uint32(buf[pos:])
			pos += 4

			if pos+int(mdSize) > len(buf) {
				return nil, fmt.Errorf("object header inline metadata at offset %d: %w", pos, errs.ErrTruncatedBuffer)
			}
			raw := string(buf[pos : pos+int(mdSize)])
			pos += int(mdSize)

			var err error
			md, err = deserialize(raw)
			if err != nil {
				return nil, fmt.Errorf("object header %q inline metadata: %w", name, err)
			}
		} else {
			if int(mdIndex) >= len(indexedTable) {
				return nil, fmt.Errorf("object header %q metadata index %d: %w", name, mdIndex, errs.ErrInvalidMetaDataIndex)
			}
			md = indexedTable[mdIndex]
		}

		headers = append(headers, ObjectHeader{
			Name:     name,
			FullName: parentFullName + "/" + name,
			MetaData: md,
		})
	}

	return headers, nil
}
