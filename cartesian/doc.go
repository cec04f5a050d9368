// Package cartesian indexes and samples cartesian products lazily.
//
// The product of even a modest Space is too large to materialize:
// twenty dimensions of ten elements already hold 10^20 combinations.
// This package never builds that list. It treats the product as a lazy
// table instead, and asks the caller to think in its terms:
//
//	→ "Which combination lives at index i?"
//	→ "Which k indices cover the whole range evenly?"
//
// Every combination owns exactly one index in [0, MaxSize()), assigned in
// odometer order: the last dimension varies fastest, like the digits of a
// mixed-radix number. Decoding an index touches one element per dimension,
// so the cost follows the number of dimensions, never the product size.
//
// Features:
//   - MaxSize: overflow-checked product size.
//   - EntryAt: index-to-combination decoding in O(dimensions).
//   - RandomIndices: k distinct indices spread evenly over the range.
//   - Samples / Entries: batch and streaming access on top of the above.
//   - Memoized: bounded memo table for index-heavy rereads.
//
// All operations are pure with respect to the Space: nothing here mutates a
// dimension, and equal inputs decode to equal combinations forever. The only
// nondeterminism is the *rand.Rand handed to the sampling functions, which
// stays under caller control so that runs can be reproduced from a seed.
//
// See cartesian_test.go and sample_test.go for usage.
package cartesian
