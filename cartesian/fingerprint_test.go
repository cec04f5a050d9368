package cartesian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamtheburd/lazy-cartesian-product/cartesian"
)

func TestFingerprint_DeterministicPerContent(t *testing.T) {
	one := cartesian.Space[string]{{"a", "b"}, {"x", "y"}}
	two := cartesian.Space[string]{{"a", "b"}, {"x", "y"}}
	assert.Equal(t, one.Fingerprint(), two.Fingerprint())
}

func TestFingerprint_SensitiveToOrder(t *testing.T) {
	base := cartesian.Space[string]{{"a", "b"}, {"x", "y"}}
	reordered := cartesian.Space[string]{{"b", "a"}, {"x", "y"}}
	swapped := cartesian.Space[string]{{"x", "y"}, {"a", "b"}}
	assert.NotEqual(t, base.Fingerprint(), reordered.Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), swapped.Fingerprint())
}

func TestFingerprint_SensitiveToElementBoundaries(t *testing.T) {
	joined := cartesian.Space[string]{{"ab", "c"}}
	split := cartesian.Space[string]{{"a", "bc"}}
	assert.NotEqual(t, joined.Fingerprint(), split.Fingerprint())
}

func TestFingerprint_EmptySpaces(t *testing.T) {
	none := cartesian.Space[int]{}
	emptyDim := cartesian.Space[int]{{}}
	assert.NotEqual(t, none.Fingerprint(), emptyDim.Fingerprint())
}
