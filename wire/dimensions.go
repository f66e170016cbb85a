package wire

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// Dimensions is the shape of a multidimensional sample: an ordered sequence
// of rank values. A nil/empty Shape means rank 0 (no data at all).
type Dimensions struct {
	Shape []uint64
}

// NumPoints returns the product of Shape, or 0 for rank 0.
func (d Dimensions) NumPoints() uint64 {
	if len(d.Shape) == 0 {
		return 0
	}
	n := uint64(1)
	for _, v := range d.Shape {
		n *= v
	}
	return n
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return (a + b - 1) / b
}

func inferredRank1(payload uint64, typeBytes int) Dimensions {
	return Dimensions{Shape: []uint64{ceilDiv(payload, uint64(typeBytes))}}
}

func parseDimsBlob(dimsBlob []byte, engine endian.EndianEngine) (Dimensions, error) {
	if len(dimsBlob)%8 != 0 {
		return Dimensions{}, fmt.Errorf("dimensions blob length %d not a multiple of 8: %w", len(dimsBlob), errs.ErrTruncatedBuffer)
	}
	rank := len(dimsBlob) / 8
	shape := make([]uint64, rank)
	for i := 0; i < rank; i++ {
		shape[i] = engine.Uint64(dimsBlob[i*8:])
	}
	return Dimensions{Shape: shape}, nil
}

// ReadDimensions implements the legacy dimension-inference variant: the data
// blob begins with a 16-byte key, and dataBlobSize is the blob's total size
// (key included).
func ReadDimensions(dataBlobSize uint64, dimsBlob []byte, typeBytes int, isStringLike bool) (Dimensions, error) {
	const keySize = 16
	if dataBlobSize < keySize {
		return Dimensions{}, nil
	}
	payload := dataBlobSize - keySize

	if len(dimsBlob) == 0 {
		return inferredRank1(payload, typeBytes), nil
	}

	dims, err := parseDimsBlob(dimsBlob, endian.GetLittleEndianEngine())
	if err != nil {
		return Dimensions{}, err
	}

	if !isStringLike && dims.NumPoints()*uint64(typeBytes) > payload {
		// Declared shape doesn't fit the actual payload; tolerate the
		// truncation by falling back to the inferred rank-1 shape.
		return inferredRank1(payload, typeBytes), nil
	}

	return dims, nil
}

// ReadTDRDimensions implements the tagged (TDR) dimension-inference variant:
// dataBlob begins with an 8-byte little-endian originDataSize recording the
// uncompressed payload size, which is what makes compressed array payloads
// inferable without decompressing first.
func ReadTDRDimensions(dataBlob []byte, dimsBlob []byte, typeBytes int, isStringLike bool) (Dimensions, error) {
	const headerSize = 8
	if len(dataBlob) < headerSize {
		return Dimensions{}, nil
	}
	originDataSize := endian.GetLittleEndianEngine().Uint64(dataBlob[:headerSize])

	if len(dimsBlob) == 0 {
		return inferredRank1(originDataSize, typeBytes), nil
	}

	dims, err := parseDimsBlob(dimsBlob, endian.GetLittleEndianEngine())
	if err != nil {
		return Dimensions{}, err
	}

	if !isStringLike && dims.NumPoints()*uint64(typeBytes) > originDataSize {
		return inferredRank1(originDataSize, typeBytes), nil
	}

	return dims, nil
}
