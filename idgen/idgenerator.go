// Package idgen generates the IDs of traced tasks and recorded entries.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

// NewSequentialIDGenerator returns a generator that produces increasing
// decimal IDs starting at 1. The IDs are reproducible across runs.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewParallelIDGenerator returns a generator that produces globally unique
// IDs that do not depend on call order.
func NewParallelIDGenerator() IDGenerator {
	return parallelIDGenerator{}
}

// NewIDGenerator returns a parallel generator if parallel is set and a
// sequential one otherwise.
func NewIDGenerator(parallel bool) IDGenerator {
	if parallel {
		return NewParallelIDGenerator()
	}

	return NewSequentialIDGenerator()
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type parallelIDGenerator struct {
}

func (g parallelIDGenerator) Generate() string {
	return xid.New().String()
}
