// Package idgen mints item instance ids
package idgen

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates version 4 UUIDs joined to an optional prefix with "_"
type UUIDGenerator struct {
	prefix string

	mu     sync.Mutex
	reader io.Reader
}

// NewUUID creates a generator backed by crypto/rand
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// NewUUIDFromReader creates a generator that reads its randomness from r, so a
// seeded reader yields the same ids on every run. Falls back to crypto/rand if
// r fails.
func NewUUIDFromReader(prefix string, r io.Reader) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix, reader: r}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	return join(g.prefix, g.next().String())
}

func (g *UUIDGenerator) next() uuid.UUID {
	if g.reader == nil {
		return uuid.New()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := uuid.NewRandomFromReader(g.reader)
	if err != nil {
		return uuid.New()
	}
	return id
}

// SequentialGenerator generates item_1, item_2, ... for tests
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return fmt.Sprintf("%s_%s", prefix, id)
}
