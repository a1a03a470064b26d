package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// ulpsRequestValid decides whether a ULPS change should reach the hardware.
func (d *Display) ulpsRequestValid(enable bool) bool {
	if d.panel.ESDRecoveryPending() {
		d.log.V(1).Info("esd recovery pending, skipping ulps")
		return false
	}

	suspend := d.panel.ULPSSuspendEnabled()

	if !d.panel.ULPSFeatureEnabled() && !suspend {
		return false
	}

	if !d.panel.Initialized() && !suspend {
		return false
	}

	if enable == d.ulpsEnabled {
		return false
	}

	if enable && d.contSplash {
		d.log.V(1).Info("continuous splash, skipping ulps entry")
		return false
	}

	return true
}

// setULPS moves the lanes in or out of ultra low power state. Requests that
// fail the validity check succeed without touching the hardware.
func (d *Display) setULPS(enable bool) error {
	if !d.ulpsRequestValid(enable) {
		return nil
	}

	m := d.pairs[d.roles.CmdMaster]

	switch m.phy.SetULPS(enable, d.clampEnabled) {
	case dsi.ULPSError:
		return errors.Wrapf(dsi.ErrInvalidConfig,
			"%s refused ulps %v", m.phy.Name(), enable)
	case dsi.ULPSHandled:
		d.step("phy_ulps", onOff(enable), m)

		for _, p := range d.pairs {
			if p == m {
				continue
			}

			if p.phy.SetULPS(enable, d.clampEnabled) == dsi.ULPSError {
				return errors.Wrapf(dsi.ErrInvalidConfig,
					"%s refused ulps %v", p.phy.Name(), enable)
			}

			d.step("phy_ulps", onOff(enable), p)
		}
	default:
		if err := d.ctrlULPS(m, enable); err != nil {
			return err
		}

		for _, p := range d.pairs {
			if p == m {
				continue
			}

			if err := d.ctrlULPS(p, enable); err != nil {
				return err
			}
		}
	}

	d.ulpsEnabled = enable

	return nil
}

func (d *Display) ctrlULPS(p *pair, enable bool) error {
	if err := p.ctrl.SetULPS(enable); err != nil {
		return errors.Wrapf(err, "%s ulps %v", p.ctrl.Name(), enable)
	}

	d.step("ctrl_ulps", onOff(enable), p)

	return nil
}

// setClamp clamps or unclamps the controller and PHY of every pair, master
// first.
func (d *Display) setClamp(enable bool) error {
	ulps := d.ulpsEnabled

	clamp := func(p *pair) error {
		if err := p.ctrl.SetClampState(enable, ulps); err != nil {
			return errors.Wrapf(err, "%s clamp %v", p.ctrl.Name(), enable)
		}

		if err := p.phy.SetClampState(enable); err != nil {
			return errors.Wrapf(err, "%s clamp %v", p.phy.Name(), enable)
		}

		d.step("clamp", onOff(enable), p)

		return nil
	}

	m := d.pairs[d.roles.CmdMaster]
	if err := clamp(m); err != nil {
		return err
	}

	for _, p := range d.pairs {
		if p == m {
			continue
		}

		if err := clamp(p); err != nil {
			return err
		}
	}

	d.clampEnabled = enable

	return nil
}

// SetULPS requests the lanes to enter or leave ultra low power state.
func (d *Display) SetULPS(enable bool) error {
	g := d.enter("set_ulps")
	defer d.leave(g)

	return d.setULPS(enable)
}

func onOff(on bool) string {
	if on {
		return "on"
	}

	return "off"
}
