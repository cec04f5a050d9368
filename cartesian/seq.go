package cartesian

import (
	"fmt"
	"iter"
)

// Entries returns a lazy sequence over the given indices, yielding each index
// with its decoded combination. Validation is eager: every index is
// bounds-checked before the first yield, so a sequence never fails mid-walk.
// Decoding is lazy: one combination per step, nothing retained between steps.
//
// Pair Entries with RandomIndices to stream a large sample straight to disk
// while holding a single combination in memory:
//
//	indices, _ := cartesian.RandomIndices(k, maxSize, rng)
//	entries, _ := space.Entries(indices)
//	for _, entry := range entries {
//		writer.Write(entry)
//	}
func (s Space[T]) Entries(indices []uint64) (iter.Seq2[uint64, []T], error) {
	maxSize, err := s.MaxSize()
	if err != nil {
		return nil, err
	}
	if maxSize == 0 && len(indices) > 0 {
		return nil, fmt.Errorf("%w: nothing to decode", ErrEmptyDomain)
	}
	for _, index := range indices {
		if index >= maxSize {
			return nil, fmt.Errorf("%w: index %d, product size %d", ErrOutOfRange, index, maxSize)
		}
	}
	return func(yield func(uint64, []T) bool) {
		for _, index := range indices {
			if !yield(index, s.decode(index)) {
				return
			}
		}
	}, nil
}
