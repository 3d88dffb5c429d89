package services

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomLine_ShapeAndRange(t *testing.T) {
	generator := NewGeneratorService(6, 47)

	for i := 0; i < 200; i++ {
		line := generator.RandomLine()

		require.Len(t, line, 6)
		assert.True(t, sort.IntsAreSorted(line))

		seen := make(map[int]bool)
		for _, n := range line {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 47)
			assert.False(t, seen[n], "line contains duplicate %d", n)
			seen[n] = true
		}
	}
}

func TestRandomLine_DeterministicWithFixedSeed(t *testing.T) {
	first := NewGeneratorServiceWithSource(6, 47, rand.NewSource(42)).RandomLine()
	second := NewGeneratorServiceWithSource(6, 47, rand.NewSource(42)).RandomLine()

	assert.Equal(t, first, second)
}

func TestNewGeneratorService_DefaultsOnBadArguments(t *testing.T) {
	generator := NewGeneratorService(0, 1)

	line := generator.RandomLine()
	assert.Len(t, line, 6)
}
