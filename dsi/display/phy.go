package display

import (
	"github.com/sarchlab/dsidisplay/dsi"
)

func (d *Display) phyEnable() error {
	masterSrc := dsi.PLLSourceStandalone
	if len(d.pairs) > 1 {
		masterSrc = dsi.PLLSourceNative
	}

	return d.masterFirst("phy enable", d.roles.ClockMaster,
		func(p *pair) (bool, error) {
			src := dsi.PLLSourceNonNative
			if p.index == d.roles.ClockMaster {
				src = masterSrc
			}

			if err := p.phy.Enable(src, d.contSplash); err != nil {
				return false, err
			}

			p.phyEnabled = true
			d.step("phy", "enable "+src.String(), p)

			return true, nil
		},
		d.disablePHY)
}

func (d *Display) disablePHY(p *pair) error {
	if !p.phyEnabled {
		return nil
	}

	if err := p.phy.Disable(); err != nil {
		return err
	}

	p.phyEnabled = false
	d.step("phy", "disable", p)

	return nil
}

func (d *Display) phyDisable() error {
	return d.slavesFirst("phy disable", d.roles.ClockMaster, d.disablePHY)
}

func (d *Display) phySWReset() error {
	return d.masterFirst("phy sw reset", d.roles.CmdMaster,
		func(p *pair) (bool, error) {
			if err := p.ctrl.PHYSoftwareReset(); err != nil {
				return false, err
			}

			d.step("phy", "sw_reset", p)

			return true, nil
		}, nil)
}

func (d *Display) phyIdleCtrl(enable bool) transition {
	what := "idle_off"
	if enable {
		what = "idle_on"
	}

	return func(p *pair) (bool, error) {
		if err := p.phy.IdleCtrl(enable); err != nil {
			return false, err
		}

		d.step("phy", what, p)

		return true, nil
	}
}

// phyIdleOn brings the PHYs back from idle power collapse. After a clamp
// without idle power collapse the PHYs are enabled again instead.
func (d *Display) phyIdleOn(clamped bool) error {
	if clamped && !d.phyIdlePowerOff {
		return d.phyEnable()
	}

	err := d.masterFirst("phy idle on", d.roles.CmdMaster,
		d.phyIdleCtrl(true), nil)
	if err != nil {
		return err
	}

	d.phyIdlePowerOff = false

	return nil
}

// phyIdleOff lets the PHYs collapse while idle. It does nothing if any PHY
// does not allow it.
func (d *Display) phyIdleOff() error {
	for _, p := range d.pairs {
		if !p.phy.AllowIdlePowerOff() {
			d.log.V(1).Info("phy idle power off not allowed",
				"phy", p.phy.Name())
			return nil
		}
	}

	err := d.masterFirst("phy idle off", d.roles.CmdMaster,
		d.phyIdleCtrl(false), nil)
	if err != nil {
		return err
	}

	d.phyIdlePowerOff = true

	return nil
}

func (d *Display) phyResetConfig(enable bool) error {
	return d.eachPair("phy reset config", func(p *pair) error {
		return p.ctrl.PHYResetConfig(enable)
	})
}

func (d *Display) toggleResyncFIFO() {
	for _, p := range d.pairs {
		p.phy.ToggleResyncFIFO()
	}

	for _, p := range d.pairs {
		p.phy.ResetClkEnSel()
	}
}

// PHYIdleOn brings the PHYs out of idle power collapse.
func (d *Display) PHYIdleOn() error {
	g := d.enter("phy_idle_on")
	defer d.leave(g)

	return d.phyIdleOn(false)
}

// PHYIdleOff lets the PHYs collapse while idle.
func (d *Display) PHYIdleOff() error {
	g := d.enter("phy_idle_off")
	defer d.leave(g)

	return d.phyIdleOff()
}
