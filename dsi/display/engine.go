package display

import (
	"github.com/sarchlab/dsidisplay/dsi"
)

func (d *Display) engineOn(e dsi.Engine) transition {
	return func(p *pair) (bool, error) {
		if err := p.mustBeAtLeast(dsi.PowerVregOn); err != nil {
			return false, err
		}

		if *p.engine(e) == dsi.EngineOn {
			return false, nil
		}

		if err := p.setEngine(e, dsi.EngineOn); err != nil {
			return false, err
		}

		*p.engine(e) = dsi.EngineOn
		d.step(e.String()+"_engine", "on", p)

		return true, nil
	}
}

func (d *Display) engineOff(e dsi.Engine) func(p *pair) error {
	return func(p *pair) error {
		if *p.engine(e) == dsi.EngineOff {
			return nil
		}

		if err := p.setEngine(e, dsi.EngineOff); err != nil {
			return err
		}

		*p.engine(e) = dsi.EngineOff
		d.step(e.String()+"_engine", "off", p)

		return nil
	}
}

// cmdEngineOn enables the command engines for one more user. The hardware is
// only touched by the first user.
func (d *Display) cmdEngineOn(g guard) error {
	if d.cmdEngineRefs.value(g) > 0 {
		d.cmdEngineRefs.inc(g)
		return nil
	}

	err := d.masterFirst("cmd engine on", d.roles.CmdMaster,
		d.engineOn(dsi.EngineCmd), d.engineOff(dsi.EngineCmd))
	if err != nil {
		return err
	}

	d.cmdEngineRefs.inc(g)

	return nil
}

// cmdEngineOff releases the command engines for one user. The hardware is
// only touched when the last user leaves.
func (d *Display) cmdEngineOff(g guard) error {
	n, ok := d.cmdEngineRefs.dec(g)
	if !ok {
		d.log.Info("command engine released more often than enabled")
		return nil
	}

	if n > 0 {
		return nil
	}

	return d.slavesFirst("cmd engine off", d.roles.CmdMaster,
		d.engineOff(dsi.EngineCmd))
}

func (d *Display) hostEngineOn() error {
	return d.masterFirst("host engine on", d.roles.CmdMaster,
		d.engineOn(dsi.EngineHost), d.engineOff(dsi.EngineHost))
}

func (d *Display) hostEngineOff() error {
	return d.slavesFirst("host engine off", d.roles.CmdMaster,
		d.engineOff(dsi.EngineHost))
}

func (d *Display) vidEngineOn() error {
	return d.masterFirst("video engine on", d.roles.VideoMaster,
		d.engineOn(dsi.EngineVideo), d.engineOff(dsi.EngineVideo))
}

func (d *Display) vidEngineOff() error {
	return d.slavesFirst("video engine off", d.roles.VideoMaster,
		d.engineOff(dsi.EngineVideo))
}
