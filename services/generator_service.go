package services

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// GeneratorService produces random lines for the number generator page.
type GeneratorService struct {
	rng         *rand.Rand
	mutex       sync.Mutex // rand.Rand is not safe for concurrent handlers
	numberCount int
	numberMax   int
}

// NewGeneratorService creates a generator for lines of numberCount
// distinct numbers in [1, numberMax].
func NewGeneratorService(numberCount, numberMax int) *GeneratorService {
	if numberCount <= 0 {
		numberCount = 6
	}
	if numberMax < numberCount {
		numberMax = 47
	}
	return &GeneratorService{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		numberCount: numberCount,
		numberMax:   numberMax,
	}
}

// NewGeneratorServiceWithSource creates a generator over a fixed seed,
// for tests.
func NewGeneratorServiceWithSource(numberCount, numberMax int, src rand.Source) *GeneratorService {
	g := NewGeneratorService(numberCount, numberMax)
	g.rng = rand.New(src)
	return g
}

// RandomLine returns a sorted line of distinct numbers.
func (g *GeneratorService) RandomLine() []int {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	picked := make(map[int]bool, g.numberCount)
	line := make([]int, 0, g.numberCount)
	for len(line) < g.numberCount {
		n := g.rng.Intn(g.numberMax) + 1
		if picked[n] {
			continue
		}
		picked[n] = true
		line = append(line, n)
	}
	sort.Ints(line)
	return line
}
