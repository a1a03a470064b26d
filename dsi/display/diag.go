package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

// PairStatus is the state of one controller/PHY pair.
type PairStatus struct {
	Ctrl       string       `json:"ctrl"`
	PHY        string       `json:"phy"`
	Power      string       `json:"power"`
	PHYPowered bool         `json:"phy_powered"`
	PHYEnabled bool         `json:"phy_enabled"`
	CmdEngine  string       `json:"cmd_engine"`
	HostEngine string       `json:"host_engine"`
	VidEngine  string       `json:"vid_engine"`
	LinkFreq   dsi.LinkFreq `json:"link_freq"`
}

// Status is a snapshot of the sequencing state of a display.
type Status struct {
	Name          string       `json:"name"`
	Panel         string       `json:"panel"`
	OpMode        string       `json:"op_mode"`
	Roles         Roles        `json:"roles"`
	Prepared      bool         `json:"prepared"`
	ULPS          bool         `json:"ulps"`
	Clamped       bool         `json:"clamped"`
	ContSplash    bool         `json:"cont_splash"`
	TPG           bool         `json:"tpg"`
	CmdEngineRefs int          `json:"cmd_engine_refs"`
	Mode          *mode.Mode   `json:"mode,omitempty"`
	Pairs         []PairStatus `json:"pairs"`
	Clocks        clock.Status `json:"clocks"`
}

// Status returns a snapshot of the display state.
func (d *Display) Status() Status {
	g := d.acquire()
	defer d.release(g)

	s := Status{
		Name:          d.name,
		Panel:         d.panel.Name(),
		OpMode:        d.panel.OpMode().String(),
		Roles:         d.roles,
		Prepared:      d.prepared,
		ULPS:          d.ulpsEnabled,
		Clamped:       d.clampEnabled,
		ContSplash:    d.contSplash,
		TPG:           d.tpgEnabled,
		CmdEngineRefs: d.cmdEngineRefs.value(g),
		Clocks:        d.clocks.Status(),
	}

	if d.current != nil {
		m := mode.ScaleToNative(*d.current, len(d.pairs), d.split)
		s.Mode = &m
	}

	for _, p := range d.pairs {
		s.Pairs = append(s.Pairs, PairStatus{
			Ctrl:       p.ctrl.Name(),
			PHY:        p.phy.Name(),
			Power:      p.power.String(),
			PHYPowered: p.phyPowered,
			PHYEnabled: p.phyEnabled,
			CmdEngine:  p.engines.cmd.String(),
			HostEngine: p.engines.host.String(),
			VidEngine:  p.engines.vid.String(),
			LinkFreq:   p.linkFreq,
		})
	}

	return s
}

// Info returns a human readable description of the display.
func (d *Display) Info() string {
	s := d.Status()

	var b strings.Builder

	fmt.Fprintf(&b, "name = %s\n", s.Name)
	fmt.Fprintf(&b, "panel = %s\n", s.Panel)
	fmt.Fprintf(&b, "mode = %s\n", s.OpMode)

	if s.Mode != nil {
		fmt.Fprintf(&b, "timing = %s\n", s.Mode)
	}

	for _, p := range s.Pairs {
		fmt.Fprintf(&b, "ctrl = %s phy = %s power = %s\n",
			p.Ctrl, p.PHY, p.Power)
	}

	fmt.Fprintf(&b, "clock master = %d\n", s.Roles.ClockMaster)
	fmt.Fprintf(&b, "ulps = %v clamp = %v\n", s.ULPS, s.Clamped)

	return b.String()
}

// MISRWrite configures the frame signature registers of every controller.
// The input is "<enable> <frame_count>".
func (d *Display) MISRWrite(in string) error {
	fields := strings.Fields(in)
	if len(fields) != 2 {
		return errors.Wrapf(dsi.ErrInvalidConfig, "misr input %q", in)
	}

	enable, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return errors.Wrapf(dsi.ErrInvalidConfig, "misr enable %q", fields[0])
	}

	frames, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return errors.Wrapf(dsi.ErrInvalidConfig, "misr frame count %q", fields[1])
	}

	g := d.enter("misr_write")
	defer d.leave(g)

	if err := d.clocks.Request(d.clockHandle, clock.Core, clock.On); err != nil {
		return errors.Wrap(err, "core clocks on")
	}

	err = d.eachPair("misr setup", func(p *pair) error {
		return p.ctrl.SetupMISR(enable != 0, uint32(frames))
	})

	if cerr := d.clocks.Request(d.clockHandle, clock.Core, clock.Off); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "core clocks off")
	}

	return err
}

// MISRRead collects the frame signature of every controller.
func (d *Display) MISRRead() (string, error) {
	g := d.enter("misr_read")
	defer d.leave(g)

	if err := d.clocks.Request(d.clockHandle, clock.Core, clock.On); err != nil {
		return "", errors.Wrap(err, "core clocks on")
	}

	var b strings.Builder
	for _, p := range d.pairs {
		fmt.Fprintf(&b, "DSI_%d MISR: 0x%x\n", p.index, p.ctrl.CollectMISR())
	}

	if err := d.clocks.Request(d.clockHandle, clock.Core, clock.Off); err != nil {
		return "", errors.Wrap(err, "core clocks off")
	}

	return b.String(), nil
}

// ESDTrigger simulates an ESD attack on the panel. Only "1" is accepted.
func (d *Display) ESDTrigger(in string) error {
	v, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || v != 1 {
		return errors.Wrapf(dsi.ErrInvalidConfig, "esd trigger %q", in)
	}

	g := d.enter("esd_trigger")
	defer d.leave(g)

	if d.panel.ESDRecoveryPending() {
		d.log.Info("esd recovery already pending")
		return nil
	}

	if !d.panel.ESDConfig().Enabled {
		return errors.Wrap(dsi.ErrNotSupported, "esd check not enabled")
	}

	return errors.Wrap(d.panel.TriggerESDAttack(), "esd attack")
}

// ESDCheckModeRead returns the ESD check mode of the panel.
func (d *Display) ESDCheckModeRead() string {
	g := d.acquire()
	defer d.release(g)

	cfg := d.panel.ESDConfig()
	if !cfg.Enabled {
		return "ESD feature not enabled"
	}

	return cfg.Mode.String()
}

// ESDCheckModeWrite changes the ESD check mode of the panel.
func (d *Display) ESDCheckModeWrite(in string) error {
	m, err := dsi.ParseESDMode(strings.TrimSpace(in))
	if err != nil {
		return err
	}

	g := d.enter("esd_check_mode")
	defer d.leave(g)

	if !d.panel.ESDConfig().Enabled {
		return errors.Wrap(dsi.ErrNotSupported, "esd check not enabled")
	}

	if d.panel.ESDRecoveryPending() {
		return errors.Wrap(dsi.ErrInvalidState, "esd recovery pending")
	}

	return errors.Wrap(d.panel.SetESDMode(m), "set esd mode")
}
