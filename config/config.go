// Package config loads the description of simulated displays from YAML files
// and the environment.
package config

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/display"
	"github.com/sarchlab/dsidisplay/dsi/hwsim"
	"github.com/sarchlab/dsidisplay/dsi/mode"
	"gopkg.in/yaml.v3"
)

// Config describes a set of displays and the services around them.
type Config struct {
	Displays []Display `yaml:"displays"`
	Monitor  Monitor   `yaml:"monitor"`
	Record   Record    `yaml:"record"`
}

// Monitor configures the diagnostics server.
type Monitor struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Record configures the SQLite recording.
type Record struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Display describes one display and the controllers that drive it.
type Display struct {
	Name               string         `yaml:"name"`
	Controllers        int            `yaml:"controllers"`
	Roles              display.Roles  `yaml:"roles"`
	SplitLink          SplitLink      `yaml:"split_link"`
	HWVersion          uint32         `yaml:"hw_version"`
	SplitLinkSupported bool           `yaml:"split_link_supported"`
	ContSplash         bool           `yaml:"cont_splash"`
	DynRefreshTimeout  time.Duration  `yaml:"dyn_refresh_timeout"`
	RecoverySettle     time.Duration  `yaml:"recovery_settle"`
	ClockRates         ClockRates     `yaml:"clock_rates"`
	Panel              Panel          `yaml:"panel"`
	Faults             map[string]int `yaml:"faults"`
}

// SplitLink describes the sublinks of a split link display.
type SplitLink struct {
	Enabled     bool `yaml:"enabled"`
	NumSublinks int  `yaml:"num_sublinks"`
}

// ClockRates are the link clock rates the clock tree starts with.
type ClockRates struct {
	ByteClkHz  uint64 `yaml:"byte_clk_hz"`
	PixelClkHz uint64 `yaml:"pixel_clk_hz"`
	EscClkHz   uint64 `yaml:"esc_clk_hz"`
}

// Panel describes the panel of a display.
type Panel struct {
	Name        string       `yaml:"name"`
	OpMode      string       `yaml:"op_mode"`
	ULPS        bool         `yaml:"ulps"`
	ULPSSuspend bool         `yaml:"ulps_suspend"`
	Host        Host         `yaml:"host"`
	DFPS        DFPS         `yaml:"dfps"`
	DynClk      []uint64     `yaml:"dyn_clk_rates"`
	ESD         ESD          `yaml:"esd"`
	Timings     []TimingNode `yaml:"timings"`
}

// Host is the host side configuration of the panel link.
type Host struct {
	Lanes          int    `yaml:"lanes"`
	BPP            int    `yaml:"bpp"`
	ForceHSClkLane bool   `yaml:"force_hs_clk_lane"`
	EOFBLLPLP11    bool   `yaml:"eof_bllp_lp11"`
	TClkPre        uint32 `yaml:"t_clk_pre"`
	TClkPost       uint32 `yaml:"t_clk_post"`
}

// DFPS describes the refresh rates a panel can switch between.
type DFPS struct {
	Type  string   `yaml:"type"`
	Rates []uint32 `yaml:"rates"`
}

// ESD configures the panel ESD check.
type ESD struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"`
}

// TimingNode is one per-controller timing the panel supports.
type TimingNode struct {
	dsi.Timing  `yaml:",inline"`
	PixelClkKHz uint64   `yaml:"pixel_clk_khz"`
	PHYTimings  []uint32 `yaml:"phy_timings"`
}

// Default link clock rates of a display that does not set them.
var defaultClockRates = ClockRates{
	ByteClkHz:  125000000,
	PixelClkHz: 166666666,
	EscClkHz:   19200000,
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return c, nil
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrap(dsi.ErrInvalidConfig, err.Error())
	}

	c.applyDefaults()

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Displays {
		d := &c.Displays[i]

		if d.Controllers == 0 {
			d.Controllers = 1
		}

		if d.HWVersion == 0 {
			d.HWVersion = dsi.MinRecoveryHWVersion
		}

		if d.DynRefreshTimeout == 0 {
			d.DynRefreshTimeout = display.DefaultDynRefreshTimeout
		}

		if d.ClockRates == (ClockRates{}) {
			d.ClockRates = defaultClockRates
		}

		if d.Panel.Name == "" {
			d.Panel.Name = d.Name + ".Panel"
		}
	}
}

func (c *Config) validate() error {
	if len(c.Displays) == 0 {
		return errors.Wrap(dsi.ErrInvalidConfig, "no display configured")
	}

	names := make(map[string]bool)

	for _, d := range c.Displays {
		if d.Name == "" {
			return errors.Wrap(dsi.ErrInvalidConfig, "display without a name")
		}

		if names[d.Name] {
			return errors.Wrapf(dsi.ErrInvalidConfig,
				"display %s configured twice", d.Name)
		}
		names[d.Name] = true

		if err := d.validate(); err != nil {
			return errors.Wrapf(err, "display %s", d.Name)
		}
	}

	return nil
}

func (d Display) validate() error {
	if d.Controllers < 1 || d.Controllers > dsi.MaxControllersPerDisplay {
		return errors.Wrapf(dsi.ErrInvalidConfig,
			"%d controllers, want 1 to %d",
			d.Controllers, dsi.MaxControllersPerDisplay)
	}

	for _, idx := range []int{
		d.Roles.ClockMaster, d.Roles.CmdMaster, d.Roles.VideoMaster,
	} {
		if idx < 0 || idx >= d.Controllers {
			return errors.Wrapf(dsi.ErrInvalidConfig,
				"master index %d out of %d controllers", idx, d.Controllers)
		}
	}

	if len(d.Panel.Timings) == 0 {
		return errors.Wrap(dsi.ErrInvalidConfig, "panel has no timings")
	}

	_, err := d.Panel.HWSimConfig()

	return err
}

// HWSimConfig converts the panel description into the configuration of a
// simulated panel.
func (p Panel) HWSimConfig() (hwsim.PanelConfig, error) {
	opMode, err := dsi.ParseOpMode(p.OpMode)
	if err != nil {
		return hwsim.PanelConfig{}, err
	}

	cfg := hwsim.PanelConfig{
		Name:        p.Name,
		OpMode:      opMode,
		ULPSFeature: p.ULPS,
		ULPSSuspend: p.ULPSSuspend,
		Host: mode.HostConfig{
			Lanes:          p.Host.Lanes,
			BPP:            p.Host.BPP,
			ForceHSClkLane: p.Host.ForceHSClkLane,
			EOFBLLPLP11:    p.Host.EOFBLLPLP11,
			TClkPre:        p.Host.TClkPre,
			TClkPost:       p.Host.TClkPost,
		},
	}

	if cfg.DFPS, err = p.DFPS.caps(); err != nil {
		return hwsim.PanelConfig{}, err
	}

	if len(p.DynClk) > 0 {
		cfg.DynClk = mode.DynClkCaps{
			Supported:   true,
			BitClkRates: append([]uint64(nil), p.DynClk...),
		}
	}

	if p.ESD.Enabled {
		esdMode, err := dsi.ParseESDMode(p.ESD.Mode)
		if err != nil {
			return hwsim.PanelConfig{}, err
		}

		cfg.ESD = dsi.ESDConfig{Enabled: true, Mode: esdMode}
	}

	for _, t := range p.Timings {
		cfg.TimingNodes = append(cfg.TimingNodes, t.Mode())
	}

	return cfg, nil
}

func (f DFPS) caps() (mode.DFPSCaps, error) {
	if len(f.Rates) == 0 {
		return mode.DFPSCaps{}, nil
	}

	t, err := mode.ParseDFPSType(f.Type)
	if err != nil {
		return mode.DFPSCaps{}, err
	}

	if t == mode.DFPSNone {
		return mode.DFPSCaps{}, errors.Wrap(dsi.ErrInvalidConfig,
			"dfps rates given without a dfps type")
	}

	caps := mode.DFPSCaps{
		Supported:      true,
		Type:           t,
		MinRefreshRate: f.Rates[0],
		MaxRefreshRate: f.Rates[0],
		Rates:          append([]uint32(nil), f.Rates...),
	}

	for _, r := range f.Rates {
		if r == 0 {
			return mode.DFPSCaps{}, errors.Wrap(dsi.ErrInvalidConfig,
				"dfps rate 0")
		}

		caps.MinRefreshRate = min(caps.MinRefreshRate, r)
		caps.MaxRefreshRate = max(caps.MaxRefreshRate, r)
	}

	return caps, nil
}

// Mode converts the timing node into a mode.
func (t TimingNode) Mode() mode.Mode {
	m := mode.Mode{
		Timing:      t.Timing,
		PixelClkKHz: t.PixelClkKHz,
	}

	if len(t.PHYTimings) > 0 {
		m.PHYTimings = append([]uint32(nil), t.PHYTimings...)
	}

	return m
}

// LinkFreq returns the clock rates as a link frequency set.
func (r ClockRates) LinkFreq() dsi.LinkFreq {
	return dsi.LinkFreq{
		ByteClkHz:  r.ByteClkHz,
		PixelClkHz: r.PixelClkHz,
		EscClkHz:   r.EscClkHz,
	}
}

// SplitLinkMode converts the split link description.
func (s SplitLink) SplitLinkMode() mode.SplitLink {
	return mode.SplitLink{Enabled: s.Enabled, NumSublinks: s.NumSublinks}
}
