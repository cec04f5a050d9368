package cartesian

import (
	"github.com/iamtheburd/lazy-cartesian-product/shared/memo"
)

// Memoized returns a decoding function equivalent to s.EntryAt, backed by a
// bounded memo table for workloads that revisit indices (pagination, retries,
// overlapping samples). The table holds at most tableSize entries per
// generation and ages older ones out in bulk; a miss decodes exactly like
// EntryAt, so correctness never depends on what the table remembers.
//
// The returned function is safe for concurrent use: the table synchronizes
// internally and decoding itself is pure.
//
// WARNING: hits return the cached slice itself, not a copy. Callers must
// treat memoized combinations as read-only.
func Memoized[T any](s Space[T], tableSize uint32) func(uint64) ([]T, error) {
	table := memo.NewTable[uint64, []T](tableSize)
	return func(index uint64) ([]T, error) {
		if entry, ok := table.Load(index); ok {
			return entry, nil
		}
		entry, err := s.EntryAt(index)
		if err != nil {
			return nil, err
		}
		table.Store(index, entry)
		return entry, nil
	}
}
