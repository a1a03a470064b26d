// Package mode resolves display timings: it converts between panel-native and
// per-controller timings, decides whether a mode change can be applied
// seamlessly, and enumerates the modes a panel offers.
package mode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Flag marks how a mode is to be applied.
type Flag uint32

// Mode flags.
const (
	FlagSeamless Flag = 1 << iota
	FlagDFPS
	FlagVBlankPreModeset
	FlagDMS
	FlagVRR
	FlagDynClk
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagSeamless, "seamless"},
	{FlagDFPS, "dfps"},
	{FlagVBlankPreModeset, "vblank_pre_modeset"},
	{FlagDMS, "dms"},
	{FlagVRR, "vrr"},
	{FlagDynClk, "dyn_clk"},
}

// Has reports whether all bits of o are set.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	for _, n := range flagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, "|")
}

// Mode is a display timing with its pixel clock and transition flags. A Mode
// that has been applied to a display is never modified; changes produce a new
// Mode.
type Mode struct {
	Timing      dsi.Timing `json:"timing"`
	PixelClkKHz uint64     `json:"pixel_clk_khz"`
	Flags       Flag       `json:"flags"`
	PHYTimings  []uint32   `json:"phy_timings,omitempty"`
}

// Clone returns a deep copy of the mode.
func (m Mode) Clone() Mode {
	c := m
	if m.PHYTimings != nil {
		c.PHYTimings = append([]uint32(nil), m.PHYTimings...)
	}

	return c
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%d pclk=%dkHz bitclk=%dHz",
		m.Timing.HActive, m.Timing.VActive, m.Timing.RefreshRate,
		m.PixelClkKHz, m.Timing.ClkRateHz)
}

// DFPSType is the method a panel uses to change refresh rate seamlessly.
type DFPSType int

// DFPS methods.
const (
	DFPSNone DFPSType = iota
	DFPSSuspendResume
	DFPSImmediateClk
	DFPSImmediateHFP
	DFPSImmediateVFP
)

var dfpsTypeNames = map[DFPSType]string{
	DFPSNone:          "none",
	DFPSSuspendResume: "suspend_resume",
	DFPSImmediateClk:  "immediate_clk",
	DFPSImmediateHFP:  "immediate_hfp",
	DFPSImmediateVFP:  "immediate_vfp",
}

func (t DFPSType) String() string {
	if n, ok := dfpsTypeNames[t]; ok {
		return n
	}

	return fmt.Sprintf("dfps_type(%d)", int(t))
}

// ParseDFPSType converts a DFPS method name into a DFPSType.
func ParseDFPSType(s string) (DFPSType, error) {
	if s == "" {
		return DFPSNone, nil
	}

	for t, n := range dfpsTypeNames {
		if n == s {
			return t, nil
		}
	}

	return DFPSNone, errors.Wrapf(dsi.ErrInvalidConfig,
		"unknown dfps type %q", s)
}

// DFPSCaps describes the refresh rate switching capability of a panel.
type DFPSCaps struct {
	Supported      bool
	Type           DFPSType
	MinRefreshRate uint32
	MaxRefreshRate uint32
	Rates          []uint32
}

// DynClkCaps describes the bit clock switching capability of a panel.
type DynClkCaps struct {
	Supported   bool
	BitClkRates []uint64
}

// SplitLink describes a display driven through several sublinks.
type SplitLink struct {
	Enabled     bool
	NumSublinks int
}

// HostConfig is the part of the panel host configuration that clock and delay
// computations need.
type HostConfig struct {
	Lanes          int
	BPP            int
	ForceHSClkLane bool
	EOFBLLPLP11    bool
	TClkPre        uint32
	TClkPost       uint32
}

// ValidateFlag modifies how a mode is validated.
type ValidateFlag uint32

// Validation flags.
const (
	// ValidateAllowAdjust permits the validation to adjust porches for a
	// seamless refresh rate change.
	ValidateAllowAdjust ValidateFlag = 1 << iota
)
