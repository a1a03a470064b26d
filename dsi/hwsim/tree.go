package hwsim

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
)

// Tree is a simulated clock tree that feeds the link clocks of a set of
// controllers.
type Tree struct {
	*faults

	lock       sync.Mutex
	rates      map[int]dsi.LinkFreq
	parent     dsi.ClockPath
	sourceRefs int
}

// NewTree creates a clock tree where every controller starts at freq.
func NewTree(log *Log, ctrlCount int, freq dsi.LinkFreq) *Tree {
	t := &Tree{
		faults: newFaults("clk", log),
		rates:  make(map[int]dsi.LinkFreq),
	}

	for i := 0; i < ctrlCount; i++ {
		t.rates[i] = freq
	}

	return t
}

// Parent returns the clock path the controllers are fed from.
func (t *Tree) Parent() dsi.ClockPath {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.parent
}

// SourceRefs returns the number of references held on the source clocks.
// A negative count means the source was unprepared more often than it was
// prepared.
func (t *Tree) SourceRefs() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.sourceRefs
}

// Rates returns the link clock rates of a controller.
func (t *Tree) Rates(ctrl int) (dsi.LinkFreq, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	f, ok := t.rates[ctrl]
	if !ok {
		return dsi.LinkFreq{}, errors.Wrapf(dsi.ErrNotFound,
			"no clocks for controller %d", ctrl)
	}

	return f, nil
}

// SetRates sets the link clock rates of a controller.
func (t *Tree) SetRates(ctrl int, freq dsi.LinkFreq) error {
	if err := t.call("SetRates", ctrl, freq.ByteClkHz); err != nil {
		return err
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.rates[ctrl]; !ok {
		return errors.Wrapf(dsi.ErrNotFound, "no clocks for controller %d", ctrl)
	}

	t.rates[ctrl] = freq

	return nil
}

// SetParent switches the clock path the controllers are fed from.
func (t *Tree) SetParent(path dsi.ClockPath) error {
	if err := t.call("SetParent", path); err != nil {
		return err
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.parent = path

	return nil
}

// PrepareSource takes a reference on the source clocks.
func (t *Tree) PrepareSource() error {
	if err := t.call("PrepareSource"); err != nil {
		return err
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.sourceRefs++

	return nil
}

// UnprepareSource drops a reference on the source clocks.
func (t *Tree) UnprepareSource() {
	_ = t.call("UnprepareSource")

	t.lock.Lock()
	defer t.lock.Unlock()

	t.sourceRefs--
}

var _ clock.Tree = (*Tree)(nil)
