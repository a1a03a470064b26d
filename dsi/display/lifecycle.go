package display

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

// Prepare powers the display up to the point where the panel can receive
// commands. A mode must be set first. A step that fails undoes every step
// before it.
func (d *Display) Prepare() error {
	g := d.enter("prepare")
	defer d.leave(g)

	if d.current == nil {
		return errors.Wrap(dsi.ErrInvalidState, "prepare without a mode")
	}

	if d.prepared {
		return errors.Wrap(dsi.ErrInvalidState, "display already prepared")
	}

	if d.current.Flags.Has(mode.FlagDMS) {
		if d.contSplash {
			return errors.Wrap(dsi.ErrInvalidState,
				"dynamic mode switch during continuous splash")
		}

		if err := d.preSwitch(); err != nil {
			return err
		}

		d.prepared = true

		return nil
	}

	splash := d.contSplash
	d.tag("splash", strconv.FormatBool(splash))

	u := unwinder{d: d}

	if err := d.prepareSteps(&u, splash); err != nil {
		u.run()
		return err
	}

	d.prepared = true

	return nil
}

func (d *Display) prepareSteps(u *unwinder, splash bool) error {
	if !splash {
		if err := d.panel.PrePrepare(); err != nil {
			return errors.Wrap(err, "panel pre-prepare")
		}

		u.push("panel post-unprepare", d.panel.PostUnprepare)
	}

	d.configureISR(true)
	u.push("isr off", func() error {
		d.configureISR(false)
		return nil
	})

	if err := d.clocks.Request(d.clockHandle, clock.Core, clock.On); err != nil {
		return errors.Wrap(err, "core clocks on")
	}

	u.push("core clocks off", func() error {
		return d.clocks.Request(d.clockHandle, clock.Core, clock.Off)
	})

	if !splash {
		if err := d.phySWReset(); err != nil {
			return err
		}
	}

	if err := d.phyEnable(); err != nil {
		return err
	}

	u.push("phy disable", d.phyDisable)

	if err := d.ctrlHostInit(splash); err != nil {
		return err
	}

	u.push("host deinit", d.ctrlHostDeinit)

	if err := d.clocks.Request(d.clockHandle, clock.Link, clock.On); err != nil {
		return errors.Wrap(err, "link clocks on")
	}

	u.push("link clocks off", func() error {
		return d.clocks.Request(d.clockHandle, clock.Link, clock.Off)
	})

	if !splash {
		if err := d.hostEngineOn(); err != nil {
			return err
		}

		u.push("host engine off", d.hostEngineOff)
	}

	if err := d.panel.Prepare(); err != nil {
		return errors.Wrap(err, "panel prepare")
	}

	return nil
}

// preSwitch prepares a dynamic mode switch: the panel stays on and only the
// host configuration is updated.
func (d *Display) preSwitch() error {
	if err := d.clocks.Request(d.clockHandle, clock.Core, clock.On); err != nil {
		return errors.Wrap(err, "core clocks on")
	}

	err := d.eachPair("host update", func(p *pair) error {
		return p.ctrl.HostUpdate()
	})
	if err == nil {
		err = d.clocks.Request(d.clockHandle, clock.Link, clock.On)
	}

	if err != nil {
		if cerr := d.clocks.Request(d.clockHandle, clock.Core, clock.Off); cerr != nil {
			d.log.Error(cerr, "core clocks off after failed switch")
		}

		return err
	}

	return nil
}

func (d *Display) configureISR(enable bool) {
	for _, p := range d.pairs {
		p.ctrl.ConfigureISR(enable)
	}
}

func (d *Display) ctrlHostInit(splash bool) error {
	return d.forEachWithUnwind("host init",
		func(p *pair) (bool, error) {
			if err := p.ctrl.HostInit(splash); err != nil {
				return false, err
			}

			d.step("host", "init", p)

			return true, nil
		},
		func(p *pair) error {
			return p.ctrl.HostDeinit()
		})
}

func (d *Display) ctrlHostDeinit() error {
	return d.slavesFirst("host deinit", d.roles.ClockMaster,
		func(p *pair) error {
			if err := p.ctrl.HostDeinit(); err != nil {
				return err
			}

			d.step("host", "deinit", p)

			return nil
		})
}

// Enable starts the panel and the engine that feeds it. A bit clock change
// that was requested in command mode is applied here.
func (d *Display) Enable() error {
	g := d.enter("enable")
	defer d.leave(g)

	if !d.prepared {
		return errors.Wrap(dsi.ErrInvalidState, "enable before prepare")
	}

	if d.contSplash {
		d.tag("splash", "true")
		return nil
	}

	dms := d.current.Flags.Has(mode.FlagDMS)
	if !dms {
		if err := d.panel.Enable(); err != nil {
			return errors.Wrap(err, "panel enable")
		}
	}

	var err error
	if d.panel.OpMode() == dsi.OpModeVideo {
		err = d.vidEngineOn()
	} else {
		err = d.cmdEngineOn(g)
	}

	if err != nil {
		if !dms {
			if perr := d.panel.Disable(); perr != nil {
				d.log.Error(perr, "panel disable after engine failure")
			}
		}

		return err
	}

	if dms {
		switched := d.current.Clone()
		switched.Flags &^= mode.FlagDMS
		d.current = &switched
	}

	if d.panel.OpMode() == dsi.OpModeCmd && d.clkRateChangePending {
		return d.applyCmdClkChange()
	}

	return nil
}

// PostEnable finishes the enable sequence and releases the resources held
// for a continuous splash screen.
func (d *Display) PostEnable() error {
	g := d.enter("post_enable")
	defer d.leave(g)

	if err := d.panel.PostEnable(); err != nil {
		return errors.Wrap(err, "panel post-enable")
	}

	return d.splashResCleanup()
}

// PreDisable tells the panel that the display is about to be disabled.
func (d *Display) PreDisable() error {
	g := d.enter("pre_disable")
	defer d.leave(g)

	return errors.Wrap(d.panel.PreDisable(), "panel pre-disable")
}

// Disable stops the panel and its engine. Every step runs even if an
// earlier one fails.
func (d *Display) Disable() error {
	g := d.enter("disable")
	defer d.leave(g)

	errs := firstError{d: d}
	errs.add("panel disable", d.panel.Disable())

	if d.panel.OpMode() == dsi.OpModeVideo {
		errs.add("video engine off", d.vidEngineOff())
	} else {
		errs.add("cmd engine off", d.cmdEngineOff(g))
	}

	return errs.err
}

// Unprepare powers the display down. Every step runs even if an earlier one
// fails.
func (d *Display) Unprepare() error {
	g := d.enter("unprepare")
	defer d.leave(g)

	if !d.prepared {
		return errors.Wrap(dsi.ErrInvalidState, "unprepare before prepare")
	}

	errs := firstError{d: d}
	errs.add("panel unprepare", d.panel.Unprepare())
	errs.add("host engine off", d.hostEngineOff())
	errs.add("link clocks off",
		d.clocks.Request(d.clockHandle, clock.Link, clock.Off))
	errs.add("host deinit", d.ctrlHostDeinit())
	errs.add("phy disable", d.phyDisable())
	d.configureISR(false)
	errs.add("core clocks off",
		d.clocks.Request(d.clockHandle, clock.Core, clock.Off))
	errs.add("panel post-unprepare", d.panel.PostUnprepare())

	d.prepared = false

	return errs.err
}

// ContSplashConfig takes over a display that the boot loader left running.
// The clocks are held on until the splash resources are cleaned up.
func (d *Display) ContSplashConfig() error {
	g := d.enter("cont_splash_config")
	defer d.leave(g)

	splash := false
	for _, p := range d.pairs {
		if p.ctrl.ContSplashEnabled() {
			splash = true
		}
	}

	if !splash {
		return errors.Wrap(dsi.ErrNotSupported, "continuous splash not enabled")
	}

	d.contSplash = true
	d.configureISR(true)

	if err := d.allClocksOn(d.splashHandle); err != nil {
		d.contSplash = false
		d.configureISR(false)

		return err
	}

	video := d.panel.OpMode() == dsi.OpModeVideo
	for _, p := range d.pairs {
		p.phyEnabled = true
		p.engines.host = dsi.EngineOn

		if video {
			p.engines.vid = dsi.EngineOn
		}
	}

	return nil
}

// SplashResCleanup releases the clocks held for a continuous splash screen.
func (d *Display) SplashResCleanup() error {
	g := d.enter("splash_res_cleanup")
	defer d.leave(g)

	return d.splashResCleanup()
}

func (d *Display) splashResCleanup() error {
	if !d.contSplash {
		return nil
	}

	err := d.allClocksOff(d.splashHandle)
	d.contSplash = false

	return err
}

// SetTPGState turns the test pattern generator of every controller on or
// off.
func (d *Display) SetTPGState(enable bool) error {
	g := d.enter("set_tpg")
	defer d.leave(g)

	if err := d.eachPair("tpg", func(p *pair) error {
		return p.ctrl.SetTPGState(enable)
	}); err != nil {
		return err
	}

	d.tpgEnabled = enable

	return nil
}
