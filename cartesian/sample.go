package cartesian

import (
	"fmt"
	"math/rand/v2"
)

// RandomIndices returns sampleSize distinct indices spread evenly across
// [0, maxSize), in ascending order.
//
// The range is split into sampleSize contiguous buckets of width
// maxSize/sampleSize, the last one absorbing the remainder, and one index is
// drawn uniformly from each bucket. Disjoint buckets make the result distinct
// without a rejection loop and ascending without a sort. Callers wanting a
// shuffled presentation shuffle downstream.
//
// rng is the caller's seeded generator; RandomIndices draws from nothing
// else, so equal seeds reproduce equal samples. A nil rng panics.
func RandomIndices(sampleSize, maxSize uint64, rng *rand.Rand) ([]uint64, error) {
	if rng == nil {
		panic("cartesian: nil rng")
	}
	if sampleSize > maxSize {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrSampleTooLarge, sampleSize, maxSize)
	}
	if sampleSize == 0 {
		return nil, nil
	}
	width := maxSize / sampleSize
	indices := make([]uint64, sampleSize)
	for i := range indices {
		start := uint64(i) * width
		end := start + width
		if i == len(indices)-1 {
			end = maxSize
		}
		indices[i] = start + rng.Uint64N(end-start)
	}
	return indices, nil
}

// Samples returns sampleSize distinct combinations of s, spread evenly across
// the whole product and ordered by index. It is the batch composition of
// MaxSize, RandomIndices and index decoding; use Entries instead when the
// sample should stream rather than sit in one slice.
func (s Space[T]) Samples(sampleSize uint64, rng *rand.Rand) ([][]T, error) {
	maxSize, err := s.MaxSize()
	if err != nil {
		return nil, err
	}
	indices, err := RandomIndices(sampleSize, maxSize, rng)
	if err != nil {
		return nil, err
	}
	samples := make([][]T, len(indices))
	for i, index := range indices {
		samples[i] = s.decode(index)
	}
	return samples, nil
}
