// Package container declares the storage-layer interfaces the decoder is
// built against: Data and Group (random-access, thread-slotted reads),
// Allocator (caller-owned sample buffers) and TimeSamplingSource (the
// archive-level time-sampling table). None of these are implemented here;
// a concrete archive reader provides them. The decoder depends only on the
// interfaces, never on a specific storage backend.
package container
