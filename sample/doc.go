// Package sample implements the archive's payload reader (component C3):
// decoding a property's scalar or array sample data out of a container.Data
// blob into a caller-owned destination, converting between PODs via package
// pod when the requested POD differs from the stored one.
//
// Scalar reads (ReadNumericData, ReadStringData, ReadWstringData) operate on
// an uncompressed blob. Array reads (ReadArrayNumericData, ReadArrayStringData,
// ReadArrayWstringData) operate on a zstd-compressed blob prefixed by an
// 8-byte little-endian decompressed-size header; ReadArraySample composes
// dimension inference, allocation and the array read into one call.
package sample
