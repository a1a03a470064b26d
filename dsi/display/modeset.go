package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

const seamlessFlags = mode.FlagDFPS | mode.FlagVRR | mode.FlagDynClk

const transientFlags = mode.FlagSeamless | mode.FlagDFPS |
	mode.FlagVBlankPreModeset | mode.FlagVRR | mode.FlagDynClk

// ValidateMode checks that the panel, the controllers and the PHYs accept a
// native mode. With mode.ValidateAllowAdjust, a mode flagged seamless is
// checked for a seamless refresh rate change and flagged for DFPS. The
// returned mode carries the resulting flags.
func (d *Display) ValidateMode(m mode.Mode, flags mode.ValidateFlag) (mode.Mode, error) {
	g := d.enter("validate_mode")
	defer d.leave(g)

	adj, err := mode.AdjustForControllers(m, len(d.pairs), d.split)
	if err != nil {
		return m, err
	}

	if err := d.panel.ValidateMode(adj); err != nil {
		return m, errors.Wrap(err, "panel rejected mode")
	}

	for _, p := range d.pairs {
		if err := p.ctrl.ValidateTiming(adj.Timing); err != nil {
			return m, errors.Wrapf(err, "%s rejected mode", p.ctrl.Name())
		}

		if err := p.phy.ValidateTiming(adj.Timing); err != nil {
			return m, errors.Wrapf(err, "%s rejected mode", p.phy.Name())
		}
	}

	out := m.Clone()

	if flags&mode.ValidateAllowAdjust != 0 && m.Flags.Has(mode.FlagSeamless) {
		if err := d.validateSeamless(adj); err != nil {
			return m, err
		}

		out.Flags |= mode.FlagDFPS | mode.FlagVBlankPreModeset
	}

	return out, nil
}

func (d *Display) validateSeamless(adj mode.Mode) error {
	caps := d.panel.DFPSCaps()
	if !caps.Supported {
		return errors.Wrap(dsi.ErrNotSupported, "seamless mode without dfps")
	}

	if d.current == nil {
		return errors.Wrap(dsi.ErrInvalidState, "seamless mode without a current mode")
	}

	if !mode.SeamlessDFPSPossible(d.current.Timing, adj.Timing, caps.Type) {
		return errors.Wrapf(dsi.ErrNotSupported,
			"%s cannot be reached from %s by %s", adj, *d.current, caps.Type)
	}

	return nil
}

// ValidateModeChange decides how the display moves from the current mode to
// a native target mode and returns the target with the matching flags set.
func (d *Display) ValidateModeChange(tgt mode.Mode) (mode.Mode, error) {
	g := d.enter("validate_mode_change")
	defer d.leave(g)

	if d.current == nil {
		return tgt, errors.Wrap(dsi.ErrInvalidState, "no current mode")
	}

	adj, err := mode.AdjustForControllers(tgt, len(d.pairs), d.split)
	if err != nil {
		return tgt, err
	}

	flags, err := mode.ClassifyChange(*d.current, adj,
		d.panel.DFPSCaps(), d.panel.DynClkCaps())
	if err != nil {
		return tgt, err
	}

	out := tgt.Clone()
	out.Flags |= flags

	return out, nil
}

// SetMode makes a native mode current. A mode without seamless flags may
// only be set while the display is powered down; refresh rate and bit clock
// changes are applied to the running display.
func (d *Display) SetMode(m mode.Mode) error {
	g := d.enter("set_mode")
	defer d.leave(g)

	adj, err := mode.AdjustForControllers(m, len(d.pairs), d.split)
	if err != nil {
		return err
	}

	if d.cachedClkRate > 0 {
		adj.Timing.ClkRateHz = d.cachedClkRate
	}

	d.tag("flags", adj.Flags.String())

	if adj.Flags&seamlessFlags == 0 {
		if err := d.validateModeSet(); err != nil {
			return err
		}
	}

	switch {
	case adj.Flags.Has(mode.FlagDFPS) || adj.Flags.Has(mode.FlagVRR):
		if err := d.dfpsUpdate(adj); err != nil {
			return err
		}

		adj.Flags &^= transientFlags
	case adj.Flags.Has(mode.FlagDynClk):
		if err := d.dynClkUpdate(adj); err != nil {
			return err
		}
	default:
		if len(adj.PHYTimings) > 0 {
			if err := d.eachPair("phy timing params", func(p *pair) error {
				return p.phy.SetTimingParams(adj.PHYTimings)
			}); err != nil {
				return err
			}
		}
	}

	d.current = &adj

	return nil
}

// validateModeSet requires every controller to be at most regulator-on and
// every PHY to be disabled. A display taken over from the boot loader keeps
// running while its mode is set.
func (d *Display) validateModeSet() error {
	if d.contSplash {
		return nil
	}

	for _, p := range d.pairs {
		if p.power > dsi.PowerVregOn {
			return errors.Wrapf(dsi.ErrInvalidState,
				"%s is %s during mode set", p.ctrl.Name(), p.power)
		}

		if p.phyEnabled {
			return errors.Wrapf(dsi.ErrInvalidState,
				"%s is enabled during mode set", p.phy.Name())
		}
	}

	return nil
}

// dfpsUpdate moves the running display to a new refresh rate, clock master
// first.
func (d *Display) dfpsUpdate(adj mode.Mode) error {
	caps := d.panel.DFPSCaps()
	if !caps.Supported {
		return errors.Wrap(dsi.ErrNotSupported, "dfps not supported")
	}

	if caps.Type == mode.DFPSImmediateClk {
		return errors.Wrapf(dsi.ErrNotSupported, "dfps method %s", caps.Type)
	}

	return d.masterFirst("dfps update", d.roles.ClockMaster,
		func(p *pair) (bool, error) {
			if err := p.ctrl.AsyncTimingUpdate(adj.Timing); err != nil {
				return false, err
			}

			d.step("timing", "async_update", p)

			return true, nil
		}, nil)
}

func (d *Display) dynClkUpdate(adj mode.Mode) error {
	if d.panel.OpMode() == dsi.OpModeVideo {
		return d.dynClkSwitchVideo(adj)
	}

	return d.dynClkConfigureCmd(adj.Timing.ClkRateHz)
}
