package pod

// DataType is the pair (pod kind, extent) describing a single sample point,
// e.g. a 3-vector of f32 is DataType{Kind: Float32, Extent: 3}.
type DataType struct {
	Kind   Kind
	Extent uint8 // elements per point, 1..255
}

// NumBytes returns podSize(Kind) * Extent, the number of bytes one point
// occupies. For String/Wstring this is 0 (variable-length).
func (dt DataType) NumBytes() int {
	return dt.Kind.ByteSize() * int(dt.Extent)
}
