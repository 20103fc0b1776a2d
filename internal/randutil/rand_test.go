package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(99), New(99)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	seeds := Derive(42, 4)
	assert.Len(t, seeds, 4)
	assert.Equal(t, seeds, Derive(42, 4))
	assert.NotEqual(t, seeds, Derive(43, 4))

	seen := map[int64]bool{}
	for _, s := range seeds {
		assert.False(t, seen[s], "derived seeds should differ")
		seen[s] = true
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(5), Seed(5))
	assert.NotZero(t, Seed(0))
}
