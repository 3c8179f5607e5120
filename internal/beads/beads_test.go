package beads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlowIndexZeroCountLightsNothing(t *testing.T) {
	_, ok := GlowIndex(0)
	assert.False(t, ok)
	_, ok = GlowIndex(-3)
	assert.False(t, ok)
}

func TestGlowIndexFirstAndLastBead(t *testing.T) {
	idx, ok := GlowIndex(1)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, _ = GlowIndex(RingSize)
	assert.Equal(t, RingSize-1, idx)
}

func TestGlowIndexWrapsModularly(t *testing.T) {
	idx, _ := GlowIndex(RingSize + 1)
	assert.Equal(t, 0, idx)

	idx, _ = GlowIndex(3*RingSize + 40)
	assert.Equal(t, 39, idx)
}

func TestRounds(t *testing.T) {
	assert.Equal(t, 0, Rounds(0))
	assert.Equal(t, 0, Rounds(RingSize-1))
	assert.Equal(t, 1, Rounds(RingSize))
	assert.Equal(t, 3, Rounds(3*RingSize+5))
}
