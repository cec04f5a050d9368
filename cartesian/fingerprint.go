package cartesian

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit digest of s: the dimension count, every
// dimension's size and every element's printed form feed one xxhash stream,
// so two Spaces whose elements print identically in identical order share a
// fingerprint and any reordering changes it.
//
// The digest identifies a Space cheaply in logs and cache keys and gives
// reproducible per-Space seed material. It is not a cryptographic commitment.
func (s Space[T]) Fingerprint() uint64 {
	digest := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = digest.Write(buf[:])
	for _, dim := range s {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(dim)))
		_, _ = digest.Write(buf[:])
		for _, el := range dim {
			_, _ = fmt.Fprint(digest, el)
			// NUL keeps ["ab" "c"] and ["a" "bc"] apart.
			_, _ = digest.Write([]byte{0})
		}
	}
	return digest.Sum64()
}
