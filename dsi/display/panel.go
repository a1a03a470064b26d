package display

import (
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

// Panel is the display panel that a display drives. The display calls the
// lifecycle methods while it holds its lock.
type Panel interface {
	Name() string
	OpMode() dsi.OpMode

	// Initialized reports whether the panel has been sent its on commands.
	Initialized() bool
	ULPSFeatureEnabled() bool
	ULPSSuspendEnabled() bool

	HostConfig() mode.HostConfig
	DFPSCaps() mode.DFPSCaps
	DynClkCaps() mode.DynClkCaps

	// TimingNodes returns the per-controller timings the panel supports.
	TimingNodes() []mode.Mode
	ValidateMode(m mode.Mode) error

	ESDConfig() dsi.ESDConfig
	SetESDMode(m dsi.ESDMode) error
	ESDRecoveryPending() bool
	TriggerESDAttack() error

	PrePrepare() error
	Prepare() error
	Enable() error
	PostEnable() error
	PreDisable() error
	Disable() error
	Unprepare() error
	PostUnprepare() error
}
