package clock

import (
	"github.com/go-logr/logr"
	"github.com/sarchlab/dsidisplay/idgen"
)

// Builder can build clock registries.
type Builder struct {
	log logr.Logger
	ids idgen.IDGenerator
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		log: logr.Discard(),
	}
}

// WithLogger sets the logger of the registry.
func (b Builder) WithLogger(log logr.Logger) Builder {
	b.log = log
	return b
}

// WithIDGenerator sets the generator of trace task IDs.
func (b Builder) WithIDGenerator(ids idgen.IDGenerator) Builder {
	b.ids = ids
	return b
}

// Build creates a registry.
func (b Builder) Build(name string) *Registry {
	if b.ids == nil {
		b.ids = idgen.NewSequentialIDGenerator()
	}

	return &Registry{
		name:     name,
		log:      b.log.WithName(name),
		ids:      b.ids,
		managers: make(map[string]*Manager),
	}
}
