package display

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/mode"
	"github.com/sarchlab/dsidisplay/idgen"
)

// DefaultDynRefreshTimeout bounds the wait for a controller to confirm a
// dynamic refresh.
const DefaultDynRefreshTimeout = 50 * time.Millisecond

// Builder can build displays.
type Builder struct {
	ctrls             []dsi.Controller
	phys              []dsi.PHY
	roles             Roles
	split             mode.SplitLink
	panel             Panel
	clockRegistry     *clock.Registry
	tree              clock.Tree
	log               logr.Logger
	ids               idgen.IDGenerator
	dynRefreshTimeout time.Duration
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		log:               logr.Discard(),
		dynRefreshTimeout: DefaultDynRefreshTimeout,
	}
}

// WithPair adds a controller and its PHY. Pairs keep the order they are
// added in.
func (b Builder) WithPair(ctrl dsi.Controller, phy dsi.PHY) Builder {
	b.ctrls = append(append([]dsi.Controller(nil), b.ctrls...), ctrl)
	b.phys = append(append([]dsi.PHY(nil), b.phys...), phy)

	return b
}

// WithRoles sets the master pairs.
func (b Builder) WithRoles(r Roles) Builder {
	b.roles = r
	return b
}

// WithSplitLink sets the split link configuration.
func (b Builder) WithSplitLink(s mode.SplitLink) Builder {
	b.split = s
	return b
}

// WithPanel sets the panel.
func (b Builder) WithPanel(p Panel) Builder {
	b.panel = p
	return b
}

// WithClockRegistry sets the registry that the display registers its clock
// manager with.
func (b Builder) WithClockRegistry(r *clock.Registry) Builder {
	b.clockRegistry = r
	return b
}

// WithClockTree sets the clock tree that feeds the link clocks.
func (b Builder) WithClockTree(t clock.Tree) Builder {
	b.tree = t
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

// WithDynRefreshTimeout sets how long a dynamic clock switch waits for each
// controller.
func (b Builder) WithDynRefreshTimeout(d time.Duration) Builder {
	b.dynRefreshTimeout = d
	return b
}

// Build creates a display and registers its clock manager.
func (b Builder) Build(name string) *Display {
	b.parametersMustBeValid()

	if b.ids == nil {
		b.ids = idgen.NewSequentialIDGenerator()
	}

	d := &Display{
		name:              name,
		log:               b.log.WithName(name),
		ids:               b.ids,
		roles:             b.roles,
		split:             b.split,
		panel:             b.panel,
		tree:              b.tree,
		dynRefreshTimeout: b.dynRefreshTimeout,
	}

	for i := range b.ctrls {
		d.pairs = append(d.pairs, &pair{
			index: i,
			ctrl:  b.ctrls[i],
			phy:   b.phys[i],
		})
	}

	for _, p := range d.pairs {
		if f, err := d.tree.Rates(p.index); err == nil {
			p.linkFreq = f
		}
	}

	d.validateSplitLink()

	client := &clockClient{d: d}

	clocks, err := b.clockRegistry.Register(name, client, client)
	if err != nil {
		panic(err)
	}

	d.clockRegistry = b.clockRegistry
	d.clocks = clocks
	d.clockHandle = clocks.NewHandle(name)
	d.splashHandle = clocks.NewHandle(name + ".splash")
	d.recoveryHandle = clocks.NewHandle(name + ".recovery")

	return d
}

func (b Builder) parametersMustBeValid() {
	n := len(b.ctrls)
	if n == 0 || n > dsi.MaxControllersPerDisplay {
		panic(fmt.Sprintf("a display needs 1 to %d controllers, got %d",
			dsi.MaxControllersPerDisplay, n))
	}

	for i := range b.ctrls {
		if b.ctrls[i] == nil || b.phys[i] == nil {
			panic(fmt.Sprintf("pair %d is missing a controller or a PHY", i))
		}
	}

	if err := b.roles.validate(n); err != nil {
		panic(err)
	}

	if b.panel == nil {
		panic("panel is not set")
	}

	if b.clockRegistry == nil {
		panic("clock registry is not set")
	}

	if b.tree == nil {
		panic("clock tree is not set")
	}

	if b.dynRefreshTimeout <= 0 {
		panic("dynamic refresh timeout must be positive")
	}
}

// validateSplitLink turns split link off unless every controller supports
// it.
func (d *Display) validateSplitLink() {
	if !d.split.Enabled {
		return
	}

	for _, p := range d.pairs {
		if !p.ctrl.SplitLinkSupported() {
			d.log.Info("split link not supported, disabling",
				"ctrl", p.ctrl.Name())
			d.split.Enabled = false

			return
		}
	}
}
