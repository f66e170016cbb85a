// Package headerindex provides name-to-index lookup over a decoded header
// list. The archive's own wire records carry no such index: every child
// lookup (an object's compound property group, a compound property's
// children) is by name, so this package builds a map[uint64]int keyed by
// a name hash once, amortizing repeat lookups against a linear scan.
package headerindex
