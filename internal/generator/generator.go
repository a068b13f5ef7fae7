// Package generator builds random practice text from a vocabulary.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator samples vocabulary words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample selects up to count distinct words in random order.
func (g *Generator) Sample(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	if count > len(words) {
		count = len(words)
	}
	perm := g.rnd.Perm(len(words))
	result := make([]string, 0, count)
	for _, idx := range perm[:count] {
		result = append(result, words[idx])
	}
	return result
}

// Text joins a sample of count words with single spaces.
func (g *Generator) Text(words []string, count int) string {
	return strings.Join(g.Sample(words, count), " ")
}
