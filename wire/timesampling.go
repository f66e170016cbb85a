package wire

import (
	"fmt"
	"math"

	"github.com/alembic-ogawa/ogawadecode/endian"
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// AcyclicTimePerCycle is the timePerCycle sentinel marking a time sampling
// as acyclic rather than a fixed-period cycle.
const AcyclicTimePerCycle = math.MaxFloat64

// TimeSamplingKind distinguishes an acyclic sampling (arbitrary, monotonic
// sample times) from a cyclic one (samples repeat every timePerCycle).
type TimeSamplingKind uint8

const (
	Acyclic TimeSamplingKind = iota
	Cyclic
)

// TimeSampling is one decoded time-sampling descriptor.
type TimeSampling struct {
	Kind               TimeSamplingKind
	NumSamplesPerCycle uint32 // meaningful only when Kind == Cyclic
	TimePerCycle       float64
	SampleTimes        []float64
}

// TimeSamplingEntry is one record from the time-sampling table buffer. It
// carries MaxSample (the record's global max sample count) alongside the
// TimeSampling descriptor spec.md's three-field record format describes, a
// field the original reader also returns to callers for random-access
// bounds but that the per-record shape at the text level omits.
type TimeSamplingEntry struct {
	MaxSample uint32
	Sampling  TimeSampling
}

// ReadTimeSamplings parses the concatenation of time-sampling records in
// buf. Every multi-byte field is read through an unaligned-safe load
// (engine.Uint32/Uint64, never a pointer cast) since buf is a raw byte
// vector with no alignment guarantee.
func ReadTimeSamplings(buf []byte) ([]TimeSamplingEntry, error) {
	engine := endian.GetLittleEndianEngine()
	var entries []TimeSamplingEntry
	pos := 0

	for pos < len(buf) {
		if pos+4+8+4 > len(buf) {
			return nil, fmt.Errorf("time sampling record header at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		maxSample := engine.Uint32(buf[pos:])
		pos += 4

		timePerCycle := endian.ReadFloat64(buf[pos:], engine)
		pos += 8

		numSamples := engine.Uint32(buf[pos:])
		pos += 4
		if numSamples < 1 {
			return nil, fmt.Errorf("time sampling record at offset %d: %w", pos, errs.ErrNoSampleTimes)
		}

		need := int(numSamples) * 8
		if pos+need > len(buf) {
			return nil, fmt.Errorf("time sampling record times at offset %d: %w", pos, errs.ErrTruncatedBuffer)
		}
		times := make([]float64, numSamples)
		for i := range times {
			times[i] = endian.ReadFloat64(buf[pos:], engine)
			pos += 8
		}

		sampling := TimeSampling{SampleTimes: times}
		if timePerCycle == AcyclicTimePerCycle {
			sampling.Kind = Acyclic
		} else {
			sampling.Kind = Cyclic
			sampling.NumSamplesPerCycle = numSamples
			sampling.TimePerCycle = timePerCycle
		}

		entries = append(entries, TimeSamplingEntry{MaxSample: maxSample, Sampling: sampling})
	}

	return entries, nil
}
