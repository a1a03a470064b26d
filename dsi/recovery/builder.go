package recovery

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/sarchlab/dsidisplay/idgen"
)

// DefaultSettleTime is how long a worker waits after the video engines are
// turned back on.
const DefaultSettleTime = 200 * time.Microsecond

// Builder can build supervisors.
type Builder struct {
	target   Target
	callback Callback
	settle   time.Duration
	log      logr.Logger
	ids      idgen.IDGenerator
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		settle: DefaultSettleTime,
		log:    logr.Discard(),
	}
}

// WithTarget sets the display to recover.
func (b Builder) WithTarget(t Target) Builder {
	b.target = t
	return b
}

// WithCallback sets the function called between the lane reset and the video
// engine restart.
func (b Builder) WithCallback(cb Callback) Builder {
	b.callback = cb
	return b
}

// WithSettleTime sets how long a worker waits after a recovery.
func (b Builder) WithSettleTime(d time.Duration) Builder {
	b.settle = d
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(log logr.Logger) Builder {
	b.log = log
	return b
}

// WithIDGenerator sets the generator of trace task IDs.
func (b Builder) WithIDGenerator(ids idgen.IDGenerator) Builder {
	b.ids = ids
	return b
}

// Build creates a supervisor and starts its workers.
func (b Builder) Build(name string) *Supervisor {
	b.parametersMustBeValid()

	if b.ids == nil {
		b.ids = idgen.NewSequentialIDGenerator()
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Supervisor{
		name:     name,
		target:   b.target,
		callback: b.callback,
		settle:   b.settle,
		log:      b.log.WithName(name),
		ids:      b.ids,
		ctx:      ctx,
		cancel:   cancel,
		workers:  make(map[Kind]*worker),
	}

	s.start()

	return s
}

func (b Builder) parametersMustBeValid() {
	if b.target == nil {
		panic("recovery target is not set")
	}

	if b.settle < 0 {
		panic("settle time must not be negative")
	}
}

// New creates a supervisor with default parameters and starts its workers.
func New(name string, target Target) *Supervisor {
	return MakeBuilder().WithTarget(target).Build(name)
}
