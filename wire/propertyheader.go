package wire

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

// PropertyType distinguishes the three property shapes a header can
// describe.
type PropertyType uint8

const (
	Compound PropertyType = iota
	Scalar
	Array
)

// Info word bit layout (bits are LSB-first, word is little-endian on the
// wire): ptype(0-1) | sizeHint(2-3) | pod(4-7) | hasTsi(8) | hasChangedIdx(9)
// | isHomogenous(10) | allConstant(11) | extent(12-19) | metaDataIndex(20-27).
const (
	infoPtypeMask    = 0x0003
	infoSizeHintMask = 0x000c
	infoPodMask      = 0x00f0
	infoHasTsiMask   = 0x0100
	infoHasChgMask   = 0x0200
	infoHomogMask    = 0x0400
	infoConstMask    = 0x0800
	infoExtentMask   = 0xff000
	infoMetaMask     = 0xff00000
)

// PropertyHeader is the decoded "PropertyHeaderAndFriends" record.
type PropertyHeader struct {
	Name              string
	PropertyType      PropertyType
	DataType          pod.DataType // zero value when PropertyType == Compound
	MetaData          MetaData
	TimeSamplingIndex uint32
	NextSampleIndex   uint64
	FirstChangedIndex uint64
	LastChangedIndex  uint64
	IsScalarLike      bool
	IsHomogenous      bool
}

// ReadPropertyHeaders parses a sequence of property header records from buf.
func ReadPropertyHeaders(buf []byte, indexedTable []MetaData, deserialize Deserializer) ([]PropertyHeader, error) {
	engine := endian.GetLittleEndianEngine()
	var headers []PropertyHeader
	pos := 0

	for pos < len(buf) {
		if pos+4 > len(buf) {
			return nil, fmt.Errorf("property header info word at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		info := engine.Uint32(buf[pos:])
		pos += 4

		var err error
		ptypeCode := info & infoPtypeMask
		sizeHint := SizeHint((info & infoSizeHintMask) >> 2)

		var h PropertyHeader
		switch ptypeCode {
		case 0:
			h.PropertyType = Compound
		case 1:
			h.PropertyType = Scalar
		default:
			h.PropertyType = Array
		}
		h.IsScalarLike = ptypeCode&1 != 0

		var nextSampleIndex uint64
		if h.PropertyType != Compound {
			podKind := pod.Kind((info & infoPodMask) >> 4)
			if !podKind.IsValid() {
				return nil, fmt.Errorf("property header pod at offset %d: %w", pos, errs.ErrInvalidPOD)
			}
			extent := uint8((info & infoExtentMask) >> 12)
			h.DataType = pod.DataType{Kind: podKind, Extent: extent}
			h.IsHomogenous = info&infoHomogMask != 0
			allConstant := info&infoConstMask != 0
			hasChangedIdx := info&infoHasChgMask != 0
			hasTsi := info&infoHasTsiMask != 0

			nextSampleIndex, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
			if err != nil {
				return nil, err
			}
			h.NextSampleIndex = nextSampleIndex

			switch {
			case hasChangedIdx:
				var first, last uint64
				first, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
				if err != nil {
					return nil, err
				}
				last, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
				if err != nil {
					return nil, err
				}
				h.FirstChangedIndex, h.LastChangedIndex = first, last
			case allConstant:
				h.FirstChangedIndex, h.LastChangedIndex = 0, 0
			default:
				h.FirstChangedIndex = 1
				if nextSampleIndex > 0 {
					h.LastChangedIndex = nextSampleIndex - 1
				}
			}

			if hasTsi {
				var tsi uint64
				tsi, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
				if err != nil {
					return nil, err
				}
				h.TimeSamplingIndex = uint32(tsi)
			}
		}

		var nameSize uint64
		nameSize, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
		if err != nil {
			return nil, err
		}
		if nameSize == 0 {
			return nil, fmt.Errorf("property header at offset %d: %w", pos, errs.ErrEmptyName)
		}
		if pos+int(nameSize) > len(buf) {
			return nil, fmt.Errorf("property header name at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		h.Name = string(buf[pos : pos+int(nameSize)])
		pos += int(nameSize)

		metaDataIndex := uint8((info & infoMetaMask) >> 20)
		if metaDataIndex == InlineMetaDataSentinel {
			var mdSize uint64
			mdSize, pos, err = ReadSizeHinted(buf, pos, sizeHint, engine)
			if err != nil {
				return nil, err
			}
			if pos+int(mdSize) > len(buf) {
				return nil, fmt.Errorf("property header inline metadata at offset %d: %w", pos, errs.ErrTruncatedBuffer)
			}
			raw := string(buf[pos : pos+int(mdSize)])
			pos += int(mdSize)

			md, derr := deserialize(raw)
			if derr != nil {
				return nil, fmt.Errorf("property header %q inline metadata: %w", h.Name, derr)
			}
			h.MetaData = md
		} else {
			if int(metaDataIndex) >= len(indexedTable) {
				return nil, fmt.Errorf("property header %q metadata index %d: %w", h.Name, metaDataIndex, errs.ErrInvalidMetaDataIndex)
			}
			h.MetaData = indexedTable[metaDataIndex]
		}

		headers = append(headers, h)
	}

	return headers, nil
}
