package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi/clock"
)

// clockClient connects a display to its clock manager. The manager calls it
// while the display lock is held by whoever made the request.
type clockClient struct {
	d *Display
}

// ClkOn switches one clock domain on across all pairs, master first.
func (c *clockClient) ClkOn(t clock.Type) error {
	if t == clock.Link {
		return c.d.linkClkOn()
	}

	return c.d.coreClkOn()
}

// ClkOff switches one clock domain off across all pairs, slaves first.
func (c *clockClient) ClkOff(t clock.Type) error {
	if t == clock.Link {
		return c.d.linkClkOff()
	}

	return c.d.coreClkOff()
}

// PreClkOn powers the controllers and PHYs before the core clocks start.
func (c *clockClient) PreClkOn(t clock.Type, _ clock.LinkType, _ clock.State) error {
	if t != clock.Core {
		return nil
	}

	d := c.d

	if err := d.ctrlPowerOn(); err != nil {
		return err
	}

	if err := d.phyPowerOn(); err != nil {
		if perr := d.ctrlPowerOff(); perr != nil {
			d.log.Error(perr, "ctrl power off after phy power failure")
		}

		return err
	}

	return nil
}

// PostClkOn restores the lanes once the clocks run.
func (c *clockClient) PostClkOn(t clock.Type, l clock.LinkType, _ clock.State) error {
	d := c.d

	switch {
	case t == clock.Core:
		for _, p := range d.pairs {
			p.ctrl.IRQUpdate(true)
		}

		return nil
	case t == clock.Link && l == clock.LinkLP:
		return d.postLinkLPOn()
	case t == clock.Link && l == clock.LinkHS:
		return d.postLinkHSOn()
	}

	return nil
}

func (d *Display) postLinkLPOn() error {
	clamped := d.clampEnabled

	if clamped {
		if err := d.eachPair("ctrl setup", func(p *pair) error {
			return p.ctrl.Setup()
		}); err != nil {
			return err
		}
	}

	if d.phyIdlePowerOff || clamped {
		if err := d.phyIdleOn(clamped); err != nil {
			return errors.Wrap(err, "phy idle on")
		}
	}

	if clamped && d.ulpsEnabled {
		// The clamp kept the lanes in ULPS; let the hardware catch up.
		d.ulpsEnabled = false
		if err := d.setULPS(true); err != nil {
			return err
		}
	}

	if err := d.phyResetConfig(true); err != nil {
		return err
	}

	if clamped {
		return d.setClamp(false)
	}

	return nil
}

func (d *Display) postLinkHSOn() error {
	if !d.contSplash {
		d.toggleResyncFIFO()
	}

	if d.ulpsEnabled {
		if err := d.setULPS(false); err != nil {
			return err
		}
	}

	if d.panel.HostConfig().ForceHSClkLane {
		for _, p := range d.pairs {
			p.ctrl.SetContinuousClock(true)
		}
	}

	return d.eachPair("clock gating on", func(p *pair) error {
		return p.ctrl.SetClockGating(true)
	})
}

// PreClkOff moves the lanes to low power before the clocks stop.
func (c *clockClient) PreClkOff(t clock.Type, l clock.LinkType, _ clock.State) error {
	d := c.d

	switch {
	case t == clock.Link && l == clock.LinkLP:
		if d.panel.HostConfig().ForceHSClkLane {
			for _, p := range d.pairs {
				p.ctrl.SetContinuousClock(false)
			}
		}

		if !d.ulpsAllowedOnClkOff() {
			return nil
		}

		return d.setULPS(true)
	case t == clock.Link && l == clock.LinkHS:
		return d.eachPair("clock gating off", func(p *pair) error {
			return p.ctrl.SetClockGating(false)
		})
	case t == clock.Core:
		return d.preCoreOff()
	}

	return nil
}

// ulpsAllowedOnClkOff picks the flag that governs ULPS entry when the link
// clock stops. An initialized panel follows the ULPS feature, anything
// else only enters ULPS for suspend.
func (d *Display) ulpsAllowedOnClkOff() bool {
	if d.panel.Initialized() {
		return d.panel.ULPSFeatureEnabled()
	}

	return d.panel.ULPSSuspendEnabled()
}

func (d *Display) preCoreOff() error {
	errs := firstError{d: d}

	if d.panel.Initialized() || d.panel.ULPSSuspendEnabled() {
		errs.add("phy idle off", d.phyIdleOff())
		errs.add("clamp on", d.setClamp(true))
		errs.add("phy reset config off", d.phyResetConfig(false))
	} else {
		errs.add("ulps off", d.setULPS(false))
	}

	for _, p := range d.pairs {
		p.ctrl.IRQUpdate(false)
		p.ctrl.CacheMISR()
	}

	return errs.err
}

// PostClkOff removes PHY and controller power once the core clocks stopped.
func (c *clockClient) PostClkOff(t clock.Type, _ clock.LinkType, _ clock.State) error {
	if t != clock.Core {
		return nil
	}

	d := c.d

	errs := firstError{d: d}
	errs.add("phy power off", d.phyPowerOff())
	errs.add("ctrl power off", d.ctrlPowerOff())

	return errs.err
}

var _ clock.Hooks = (*clockClient)(nil)
var _ clock.Provider = (*clockClient)(nil)

// allClocksOn votes for every clock with the given handle.
func (d *Display) allClocksOn(h *clock.Handle) error {
	if err := d.clocks.Request(h, clock.All, clock.On); err != nil {
		return errors.Wrap(err, "clocks on")
	}

	return nil
}

func (d *Display) allClocksOff(h *clock.Handle) error {
	if err := d.clocks.Request(h, clock.All, clock.Off); err != nil {
		return errors.Wrap(err, "clocks off")
	}

	return nil
}
