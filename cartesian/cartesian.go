package cartesian

import (
	"errors"
	"fmt"
	"math/bits"
)

// Failure modes of the indexing operations. Functions wrap these sentinels
// with call details; match them with errors.Is.
var (
	ErrOverflow       = errors.New("product size overflows uint64")
	ErrEmptyDomain    = errors.New("empty domain")
	ErrOutOfRange     = errors.New("index out of range")
	ErrSampleTooLarge = errors.New("sample larger than product")
)

// Space is an ordered list of dimensions, each an ordered list of candidate
// elements. Its cartesian product contains every combination that takes one
// element from each dimension, placed at that dimension's own position.
//
// The zero Space has no dimensions and an empty product. This package never
// mutates a Space, so one value may serve any number of goroutines.
type Space[T any] [][]T

// MaxSize returns the number of combinations in the product of s.
//
// A Space with no dimensions, or with any empty dimension, has nothing to
// select from and reports size 0. Emptiness is decided before any
// multiplication, so a huge Space with one empty dimension is an empty
// domain, not an overflow. Products beyond uint64 fail with ErrOverflow.
func (s Space[T]) MaxSize() (uint64, error) {
	if len(s) == 0 {
		return 0, nil
	}
	for _, dim := range s {
		if len(dim) == 0 {
			return 0, nil
		}
	}
	size := uint64(1)
	for i, dim := range s {
		hi, lo := bits.Mul64(size, uint64(len(dim)))
		if hi != 0 {
			return 0, fmt.Errorf("%w: first %d of %d dimensions", ErrOverflow, i+1, len(s))
		}
		size = lo
	}
	return size, nil
}

// EntryAt returns the combination at index.
//
// Indices follow odometer order: index 0 selects the first element of every
// dimension and the last dimension varies fastest. Element i of the result
// always comes from dimension i. The returned slice is freshly allocated and
// belongs to the caller.
func (s Space[T]) EntryAt(index uint64) ([]T, error) {
	maxSize, err := s.MaxSize()
	if err != nil {
		return nil, err
	}
	if maxSize == 0 {
		return nil, fmt.Errorf("%w: nothing to decode", ErrEmptyDomain)
	}
	if index >= maxSize {
		return nil, fmt.Errorf("%w: index %d, product size %d", ErrOutOfRange, index, maxSize)
	}
	return s.decode(index), nil
}

// decode maps index to its combination. Callers must have bounds-checked
// index against MaxSize already.
func (s Space[T]) decode(index uint64) []T {
	entry := make([]T, len(s))
	rem := index
	for i := len(s) - 1; i >= 0; i-- {
		dim := s[i]
		entry[i] = dim[rem%uint64(len(dim))]
		rem /= uint64(len(dim))
	}
	if rem != 0 {
		panic(fmt.Sprintf("decode: remainder %d left by index %d", rem, index))
	}
	return entry
}
