package display

import (
	"github.com/sarchlab/dsidisplay/dsi"
)

func (d *Display) setCtrlPower(p *pair, state dsi.PowerState) error {
	if err := p.ctrl.SetPowerState(state); err != nil {
		return err
	}

	p.power = state
	d.step("ctrl_power", state.String(), p)

	return nil
}

func (d *Display) ctrlPowerOn() error {
	return d.forEachWithUnwind("ctrl power on",
		func(p *pair) (bool, error) {
			if p.power >= dsi.PowerVregOn {
				return false, nil
			}

			return true, d.setCtrlPower(p, dsi.PowerVregOn)
		},
		func(p *pair) error {
			return d.setCtrlPower(p, dsi.PowerOff)
		})
}

func (d *Display) ctrlPowerOff() error {
	prior := make([]dsi.PowerState, len(d.pairs))

	return d.forEachWithUnwind("ctrl power off",
		func(p *pair) (bool, error) {
			if p.power == dsi.PowerOff {
				return false, nil
			}

			prior[p.index] = p.power

			return true, d.setCtrlPower(p, dsi.PowerOff)
		},
		func(p *pair) error {
			return d.setCtrlPower(p, prior[p.index])
		})
}

func (d *Display) setPHYPower(p *pair, on bool) error {
	if err := p.phy.SetPowerState(on); err != nil {
		return err
	}

	p.phyPowered = on

	what := "off"
	if on {
		what = "on"
	}

	d.step("phy_power", what, p)

	return nil
}

func (d *Display) phyPowerOn() error {
	return d.forEachWithUnwind("phy power on",
		func(p *pair) (bool, error) {
			if p.phyPowered {
				return false, nil
			}

			return true, d.setPHYPower(p, true)
		},
		func(p *pair) error {
			return d.setPHYPower(p, false)
		})
}

func (d *Display) phyPowerOff() error {
	return d.forEachWithUnwind("phy power off",
		func(p *pair) (bool, error) {
			if !p.phyPowered {
				return false, nil
			}

			return true, d.setPHYPower(p, false)
		},
		func(p *pair) error {
			return d.setPHYPower(p, true)
		})
}

func (d *Display) coreClkOn() error {
	return d.masterFirst("core clock on", d.roles.ClockMaster,
		func(p *pair) (bool, error) {
			if p.power >= dsi.PowerCoreClkOn {
				return false, nil
			}

			if err := p.mustBeAtLeast(dsi.PowerVregOn); err != nil {
				return false, err
			}

			return true, d.setCtrlPower(p, dsi.PowerCoreClkOn)
		},
		func(p *pair) error {
			return d.setCtrlPower(p, dsi.PowerVregOn)
		})
}

func (d *Display) linkClkOn() error {
	return d.masterFirst("link clock on", d.roles.ClockMaster,
		func(p *pair) (bool, error) {
			if p.power >= dsi.PowerLinkClkOn {
				return false, nil
			}

			if err := p.mustBeAtLeast(dsi.PowerCoreClkOn); err != nil {
				return false, err
			}

			if err := p.ctrl.SetClockSource(dsi.ClockPathSource); err != nil {
				return false, err
			}

			return true, d.setCtrlPower(p, dsi.PowerLinkClkOn)
		},
		func(p *pair) error {
			return d.setCtrlPower(p, dsi.PowerCoreClkOn)
		})
}

func (d *Display) linkClkOff() error {
	return d.slavesFirst("link clock off", d.roles.ClockMaster,
		func(p *pair) error {
			if p.power <= dsi.PowerCoreClkOn {
				return nil
			}

			return d.setCtrlPower(p, dsi.PowerCoreClkOn)
		})
}

func (d *Display) coreClkOff() error {
	return d.slavesFirst("core clock off", d.roles.ClockMaster,
		func(p *pair) error {
			if p.power <= dsi.PowerVregOn {
				return nil
			}

			return d.setCtrlPower(p, dsi.PowerVregOn)
		})
}
