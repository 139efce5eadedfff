// uuid provides document ID generation with a seam for deterministic tests.
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating document IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns ids from a fixed list, cycling when exhausted.
// Intended for tests that need stable document IDs.
type SequenceGenerator struct {
	IDs  []string
	next int
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	if len(g.IDs) == 0 {
		return ""
	}
	id := g.IDs[g.next%len(g.IDs)]
	g.next++
	return id
}
