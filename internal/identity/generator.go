// Package identity provides identifier generation for the front-ends. The
// core treats identifiers as opaque caller-supplied strings; whichever
// front-end drives it decides the format by injecting a Generator.
package identity

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	// NextID returns the next identifier.
	NextID() string
}

// SequenceGenerator produces human-readable sequential identifiers such as
// CUST001, CUST002. Safe for concurrent use.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a generator yielding prefix + zero-padded counter,
// starting at 1.
func NewSequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: 1}
}

// NextID returns the next identifier in the sequence.
func (g *SequenceGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s%03d", g.prefix, g.next)
	g.next++
	return id
}

// UUIDGenerator produces random UUID identifiers.
type UUIDGenerator struct{}

// NewUUID creates a UUID-based generator.
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NextID returns a new random UUID string.
func (g *UUIDGenerator) NextID() string {
	return uuid.NewString()
}
