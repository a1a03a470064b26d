package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
)

// RunLocked runs f with the display lock held. It lets a recovery worker
// drive the display like any other caller.
func (d *Display) RunLocked(f func(t recovery.LockedTarget) error) error {
	g := d.enter("recovery")
	defer d.leave(g)

	return f(lockedDisplay{d: d})
}

// lockedDisplay is the view of a display handed to a recovery worker. It
// votes for clocks with its own handle.
type lockedDisplay struct {
	d *Display
}

func (l lockedDisplay) ValidHostState() bool {
	for _, p := range l.d.pairs {
		if !p.ctrl.ValidHostState() {
			return false
		}
	}

	return true
}

func (l lockedDisplay) ClocksOn() error {
	return l.d.allClocksOn(l.d.recoveryHandle)
}

func (l lockedDisplay) ClocksOff() error {
	return l.d.allClocksOff(l.d.recoveryHandle)
}

func (l lockedDisplay) HWVersion() uint32 {
	return l.d.pairs[l.d.roles.ClockMaster].ctrl.HWVersion()
}

func (l lockedDisplay) SoftReset() error {
	return l.d.eachPair("soft reset", func(p *pair) error {
		if err := p.ctrl.SoftReset(); err != nil {
			return err
		}

		l.d.step("recovery", "soft_reset", p)

		return nil
	})
}

func (l lockedDisplay) ResetLanes(mask dsi.ResetMask) error {
	return l.d.eachPair("lane reset", func(p *pair) error {
		if err := p.ctrl.Reset(mask); err != nil {
			return err
		}

		if err := p.phy.LaneReset(); err != nil {
			return errors.Wrapf(err, "%s lane reset", p.phy.Name())
		}

		l.d.step("recovery", "lane_reset", p)

		return nil
	})
}

func (l lockedDisplay) EnableVideoEngines() error {
	return l.d.eachPair("video engine on", func(p *pair) error {
		if err := p.ctrl.SetVidEngineState(dsi.EngineOn); err != nil {
			return err
		}

		p.engines.vid = dsi.EngineOn

		return nil
	})
}

var _ recovery.Target = (*Display)(nil)
