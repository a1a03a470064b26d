package display

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

const dynClkErrorMask = dsi.ErrorPLLUnlock |
	dsi.ErrorFIFOUnderflow | dsi.ErrorFIFOOverflow

// dynClkSwitchVideo moves a running video mode display to a new bit clock.
// The PHYs are reprogrammed through the shadow clock path and every
// controller has to confirm the switch. If any step fails, the previous
// clock rates are restored.
func (d *Display) dynClkSwitchVideo(adj mode.Mode) error {
	if err := d.allClocksOn(d.clockHandle); err != nil {
		return err
	}

	d.maskErrors(true)

	err := d.dynClkSwitch(adj)

	d.maskErrors(false)

	if d.sourcePrepared {
		d.tree.UnprepareSource()
		d.sourcePrepared = false
	}

	if cerr := d.allClocksOff(d.clockHandle); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

func (d *Display) maskErrors(enable bool) {
	for _, p := range d.pairs {
		p.ctrl.MaskErrors(dynClkErrorMask, enable)
	}
}

func (d *Display) dynClkSwitch(adj mode.Mode) error {
	bitClk := adj.Timing.ClkRateHz

	if err := d.eachPair("phy update timings", func(p *pair) error {
		return p.phy.UpdateTimings(bitClk)
	}); err != nil {
		return err
	}

	backup := make([]dsi.LinkFreq, len(d.pairs))
	for i, p := range d.pairs {
		f, err := d.tree.Rates(p.index)
		if err != nil {
			return errors.Wrapf(err, "read rates of %s", p.ctrl.Name())
		}

		backup[i] = f
	}

	freqs, delay, err := d.dynClkPlan(adj, backup)
	if err != nil {
		return err
	}

	master := d.pairs[d.roles.ClockMaster]
	for _, p := range d.pairs {
		p.phy.ConfigDynamicRefresh(delay, p == master)
	}

	err = d.dynClkApply(freqs)
	if err != nil {
		d.dynClkRestore(backup)
		return err
	}

	for i, p := range d.pairs {
		p.linkFreq = freqs[i]
	}

	d.tag("bit_clk", adj.String())

	return nil
}

// dynClkPlan computes the new link rates of every pair and the delays the
// PHYs need to switch without tearing.
func (d *Display) dynClkPlan(
	adj mode.Mode,
	backup []dsi.LinkFreq,
) ([]dsi.LinkFreq, dsi.DynRefreshDelay, error) {
	host := d.panel.HostConfig()

	freqs := make([]dsi.LinkFreq, len(d.pairs))
	for i := range d.pairs {
		f, err := mode.LinkFreqFor(adj.Timing.ClkRateHz, host)
		if err != nil {
			return nil, dsi.DynRefreshDelay{}, err
		}

		f.EscClkHz = backup[i].EscClkHz
		freqs[i] = f
	}

	master := d.roles.ClockMaster

	delay, err := mode.CalcPipeDelay(freqs[master], adj.Timing,
		d.pairs[master].phy.Timings(), host)
	if err != nil {
		return nil, dsi.DynRefreshDelay{}, err
	}

	return freqs, delay, nil
}

func (d *Display) dynClkApply(freqs []dsi.LinkFreq) error {
	if err := d.tree.PrepareSource(); err != nil {
		return errors.Wrap(err, "prepare clock source")
	}

	d.sourcePrepared = true

	if err := d.tree.SetParent(dsi.ClockPathShadow); err != nil {
		return errors.Wrap(err, "switch to shadow clocks")
	}

	for i, p := range d.pairs {
		if err := d.tree.SetRates(p.index, freqs[i]); err != nil {
			return errors.Wrapf(err, "set rates of %s", p.ctrl.Name())
		}
	}

	master := d.pairs[d.roles.ClockMaster]
	for _, p := range d.pairs {
		if p != master {
			p.phy.TriggerDynamicRefresh(false)
		}
	}

	master.phy.TriggerDynamicRefresh(true)

	for _, p := range d.pairs {
		if err := d.waitDynamicRefresh(p); err != nil {
			return err
		}

		d.step("clock", "dynamic_refresh", p)
	}

	for _, p := range d.pairs {
		p.phy.ClearDynamicRefresh()
	}

	if err := d.tree.SetParent(dsi.ClockPathSource); err != nil {
		return errors.Wrap(err, "switch back to source clocks")
	}

	return nil
}

func (d *Display) waitDynamicRefresh(p *pair) error {
	ctx, cancel := context.WithTimeout(context.Background(),
		d.dynRefreshTimeout)
	defer cancel()

	err := p.ctrl.WaitDynamicRefreshDone(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrapf(dsi.ErrTimeout,
			"%s did not confirm dynamic refresh", p.ctrl.Name())
	}

	return errors.Wrapf(err, "dynamic refresh of %s", p.ctrl.Name())
}

func (d *Display) dynClkRestore(backup []dsi.LinkFreq) {
	for _, p := range d.pairs {
		p.phy.ClearDynamicRefresh()
	}

	if err := d.tree.SetParent(dsi.ClockPathSource); err != nil {
		d.log.Error(err, "restore source clocks")
	}

	for i, p := range d.pairs {
		if err := d.tree.SetRates(p.index, backup[i]); err != nil {
			d.log.Error(err, "restore rates", "ctrl", p.ctrl.Name())
		}
	}
}

// dynClkConfigureCmd records a bit clock change of a command mode display.
// The change is applied on the next Enable.
func (d *Display) dynClkConfigureCmd(rate uint64) error {
	if rate == 0 {
		return errors.Wrap(dsi.ErrInvalidConfig, "bit clock rate is zero")
	}

	if rate == d.cachedClkRate {
		d.log.V(1).Info("bit clock unchanged", "rate", rate)
		return nil
	}

	host := d.panel.HostConfig()

	freqs := make([]dsi.LinkFreq, len(d.pairs))
	for i, p := range d.pairs {
		f, err := mode.LinkFreqFor(rate, host)
		if err != nil {
			d.cachedClkRate = 0
			return err
		}

		f.EscClkHz = p.linkFreq.EscClkHz
		freqs[i] = f
	}

	for i, p := range d.pairs {
		p.linkFreq = freqs[i]
	}

	d.cachedClkRate = rate
	d.clkRateChangePending = true
	d.tag("pending_bit_clk", onOff(true))

	return nil
}

// applyCmdClkChange programs a pending command mode bit clock change.
func (d *Display) applyCmdClkChange() error {
	if err := d.allClocksOn(d.clockHandle); err != nil {
		return err
	}

	err := d.eachPair("phy update timings", func(p *pair) error {
		return p.phy.UpdateTimings(d.cachedClkRate)
	})

	if err == nil {
		err = d.eachPair("set rates", func(p *pair) error {
			return d.tree.SetRates(p.index, p.linkFreq)
		})
	}

	if err == nil {
		d.clkRateChangePending = false
	} else {
		d.cachedClkRate = 0
	}

	if cerr := d.allClocksOff(d.clockHandle); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

// DynamicClk returns the bit clock rate in Hz that the command master runs
// at.
func (d *Display) DynamicClk() uint64 {
	g := d.acquire()
	defer d.release(g)

	return d.pairs[d.roles.CmdMaster].linkFreq.ByteClkHz * 8
}

// SetDynamicClk requests a bit clock change of a command mode display. The
// change takes effect on the next Enable.
func (d *Display) SetDynamicClk(rate uint64) error {
	g := d.enter("set_dynamic_clk")
	defer d.leave(g)

	if d.panel.OpMode() != dsi.OpModeCmd {
		return errors.Wrap(dsi.ErrNotSupported,
			"dynamic clock through this path is command mode only")
	}

	if !d.panel.DynClkCaps().Supported {
		return errors.Wrap(dsi.ErrNotSupported, "dynamic clock not supported")
	}

	return d.dynClkConfigureCmd(rate)
}
