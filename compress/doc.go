// Package compress provides the zstd decompression step used by the array
// payload reader (C3).
//
// Unlike a general-purpose codec, every call site here already knows the
// exact decompressed size from the data blob's originDataSize header, so the
// interface decompresses into a caller-sized destination rather than
// returning a freshly allocated, auto-sized result. Two backends implement
// it, selected by build tag exactly like a pure-Go/cgo split: the default
// (no cgo) uses klauspost/compress/zstd; building with cgo switches to
// valyala/gozstd.
package compress
