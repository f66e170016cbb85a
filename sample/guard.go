package sample

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/errs"
	"github.com/alembic-ogawa/ogawadecode/pod"
)

// checkPodCompatible enforces the C3 conversion guard: a read may request a
// different POD than the one stored, but never across the string/wstring
// boundary. storedPod == requestedPod is always allowed, string-for-string
// and wstring-for-wstring are allowed, any other pairing involving a string
// or wstring endpoint is rejected.
func checkPodCompatible(storedPod, requestedPod pod.Kind) error {
	if storedPod == requestedPod {
		return nil
	}
	if storedPod.IsString() || requestedPod.IsString() {
		return fmt.Errorf("stored pod %s, requested pod %s: %w", storedPod, requestedPod, errs.ErrStringConversion)
	}
	return nil
}

// checkDecompressedBound rejects a declared decompressed size that exceeds
// maxBytes. maxBytes == 0 disables the cap; callers that don't know or care
// about an archive's plausible sample sizes can pass 0 and accept whatever
// the header declares.
func checkDecompressedBound(declared, maxBytes uint64) error {
	if maxBytes == 0 || declared <= maxBytes {
		return nil
	}
	return fmt.Errorf("declared decompressed size %d exceeds cap %d: %w", declared, maxBytes, errs.ErrDecompressBombSuspected)
}
