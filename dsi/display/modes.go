package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

// ModeCount returns the number of modes the display offers.
func (d *Display) ModeCount() int {
	return mode.Count(len(d.panel.TimingNodes()),
		d.panel.DFPSCaps(), d.panel.DynClkCaps())
}

// Modes returns the native modes the display offers. The list is computed
// once.
func (d *Display) Modes() []mode.Mode {
	g := d.acquire()
	defer d.release(g)

	return cloneModes(d.modesLocked())
}

func (d *Display) modesLocked() []mode.Mode {
	if d.modes != nil {
		return d.modes
	}

	e := mode.Enumerator{
		DFPS:      d.panel.DFPSCaps(),
		DynClk:    d.panel.DynClkCaps(),
		Host:      d.panel.HostConfig(),
		CtrlCount: len(d.pairs),
		SplitLink: d.split,
	}

	d.modes = e.Enumerate(d.panel.TimingNodes())

	return d.modes
}

func cloneModes(modes []mode.Mode) []mode.Mode {
	out := make([]mode.Mode, len(modes))
	for i, m := range modes {
		out[i] = m.Clone()
	}

	return out
}

// FindMode returns the offered mode with the active area, refresh rate and
// pixel clock of cmp.
func (d *Display) FindMode(cmp mode.Mode) (mode.Mode, error) {
	g := d.acquire()
	defer d.release(g)

	return mode.Find(d.modesLocked(), cmp)
}

// PanelVFP returns the vertical front porch of the mode with the given
// per-controller width and height at the highest refresh rate the panel
// runs.
func (d *Display) PanelVFP(hActive, vActive uint32) (uint32, error) {
	g := d.acquire()
	defer d.release(g)

	caps := d.panel.DFPSCaps()

	var refresh uint32
	switch {
	case caps.Supported:
		refresh = caps.MaxRefreshRate
		for _, r := range caps.Rates {
			if r > refresh {
				refresh = r
			}
		}
	case d.current != nil:
		refresh = d.current.Timing.RefreshRate
	default:
		return 0, errors.Wrap(dsi.ErrInvalidState, "no current mode")
	}

	h := hActive * uint32(mode.Divisor(len(d.pairs), d.split))

	for _, m := range d.modesLocked() {
		if m.Timing.HActive == h &&
			m.Timing.VActive == vActive &&
			m.Timing.RefreshRate == refresh {
			return m.Timing.VFrontPorch, nil
		}
	}

	return 0, errors.Wrapf(dsi.ErrNotFound, "no %dx%d@%d mode",
		h, vActive, refresh)
}
