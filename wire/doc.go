// Package wire implements the decoder's bit-packed section parsers: the
// dimension decoder (C2), time-sampling table parser (C4), object header
// parser (C5), property header parser (C6), and indexed metadata parser
// (C7). Every parser here is a pure package-level function over an
// already-fetched byte slice — none of them touch the container layer
// directly.
package wire
