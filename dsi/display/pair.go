package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Roles assigns the master duties of a display to its pairs. The indices are
// fixed when the display is built.
type Roles struct {
	ClockMaster int `json:"clock_master" yaml:"clock_master"`
	CmdMaster   int `json:"cmd_master" yaml:"cmd_master"`
	VideoMaster int `json:"video_master" yaml:"video_master"`
}

func (r Roles) validate(count int) error {
	for _, idx := range []int{r.ClockMaster, r.CmdMaster, r.VideoMaster} {
		if idx < 0 || idx >= count {
			return errors.Wrapf(dsi.ErrInvalidConfig,
				"master index %d out of %d controllers", idx, count)
		}
	}

	return nil
}

type engines struct {
	cmd  dsi.EngineState
	host dsi.EngineState
	vid  dsi.EngineState
}

// pair is a controller with its PHY and the state the display keeps for them.
type pair struct {
	index int
	ctrl  dsi.Controller
	phy   dsi.PHY

	power      dsi.PowerState
	phyPowered bool
	phyEnabled bool
	engines    engines
	linkFreq   dsi.LinkFreq
}

func (p *pair) mustBeAtLeast(state dsi.PowerState) error {
	if p.power < state {
		return errors.Wrapf(dsi.ErrInvalidState,
			"%s is %s, needs %s", p.ctrl.Name(), p.power, state)
	}

	return nil
}

func (p *pair) engine(e dsi.Engine) *dsi.EngineState {
	switch e {
	case dsi.EngineCmd:
		return &p.engines.cmd
	case dsi.EngineHost:
		return &p.engines.host
	default:
		return &p.engines.vid
	}
}

func (p *pair) setEngine(e dsi.Engine, state dsi.EngineState) error {
	switch e {
	case dsi.EngineCmd:
		return p.ctrl.SetCmdEngineState(state)
	case dsi.EngineHost:
		return p.ctrl.SetHostEngineState(state)
	default:
		return p.ctrl.SetVidEngineState(state)
	}
}
