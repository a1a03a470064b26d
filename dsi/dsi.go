// Package dsi defines the hardware-facing vocabulary of the display core:
// power states, clock paths, command flags, and the capability interfaces
// that controllers and PHYs implement.
package dsi

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxControllersPerDisplay is the largest number of controller/PHY pairs a
// display can drive.
const MaxControllersPerDisplay = 4

// MinRecoveryHWVersion is the first controller version that supports lane
// reset during error recovery.
const MinRecoveryHWVersion = 0x20020001

// PowerState is the power dimension of a controller. The states are ordered;
// enable paths move forward and disable paths move backward.
type PowerState int

// A list of all the power states.
const (
	PowerOff PowerState = iota
	PowerVregOn
	PowerCoreClkOn
	PowerLinkClkOn
)

func (s PowerState) String() string {
	switch s {
	case PowerOff:
		return "off"
	case PowerVregOn:
		return "vreg_on"
	case PowerCoreClkOn:
		return "core_clk_on"
	case PowerLinkClkOn:
		return "link_clk_on"
	default:
		return fmt.Sprintf("power_state(%d)", int(s))
	}
}

// EngineState is the state of a command, host, or video engine.
type EngineState int

// Engine states.
const (
	EngineOff EngineState = iota
	EngineOn
)

func (s EngineState) String() string {
	if s == EngineOn {
		return "on"
	}

	return "off"
}

// Engine names one of the protocol engines of a controller.
type Engine int

// The engines of a controller.
const (
	EngineCmd Engine = iota
	EngineHost
	EngineVideo
)

func (e Engine) String() string {
	switch e {
	case EngineCmd:
		return "cmd"
	case EngineHost:
		return "host"
	case EngineVideo:
		return "video"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

// PLLSource selects where a PHY takes its PLL from.
type PLLSource int

// PLL sources.
const (
	PLLSourceStandalone PLLSource = iota
	PLLSourceNative
	PLLSourceNonNative
)

func (s PLLSource) String() string {
	switch s {
	case PLLSourceStandalone:
		return "standalone"
	case PLLSourceNative:
		return "native"
	case PLLSourceNonNative:
		return "non_native"
	default:
		return fmt.Sprintf("pll_source(%d)", int(s))
	}
}

// ClockPath selects which link clock path feeds the controllers.
type ClockPath int

// Clock paths. The shadow path is only used while a dynamic bit clock switch
// reprograms the source path.
const (
	ClockPathSource ClockPath = iota
	ClockPathShadow
)

func (p ClockPath) String() string {
	if p == ClockPathShadow {
		return "shadow"
	}

	return "source"
}

// ULPSResult is what a PHY reports when asked to change the ULPS state.
type ULPSResult int

// ULPS results.
const (
	ULPSError ULPSResult = iota
	ULPSHandled
	ULPSNotHandled
)

func (r ULPSResult) String() string {
	switch r {
	case ULPSError:
		return "error"
	case ULPSHandled:
		return "handled"
	case ULPSNotHandled:
		return "not_handled"
	default:
		return fmt.Sprintf("ulps_result(%d)", int(r))
	}
}

// OpMode is the operating mode of the panel.
type OpMode int

// Operating modes.
const (
	OpModeVideo OpMode = iota
	OpModeCmd
)

func (m OpMode) String() string {
	if m == OpModeCmd {
		return "cmd"
	}

	return "video"
}

// ParseOpMode converts "video" or "cmd" into an OpMode.
func ParseOpMode(s string) (OpMode, error) {
	switch s {
	case "video", "":
		return OpModeVideo, nil
	case "cmd", "command":
		return OpModeCmd, nil
	default:
		return OpModeVideo, errors.Wrapf(ErrInvalidConfig,
			"unknown op mode %q", s)
	}
}

// CmdFlag controls how a controller stages and triggers a command.
type CmdFlag uint32

// Command flags.
const (
	CmdBroadcast CmdFlag = 1 << iota
	CmdBroadcastMaster
	CmdDeferTrigger
	CmdFIFOStore
	CmdLastCommand
)

// ResetMask selects the lanes that a controller reset applies to.
type ResetMask uint32

// Reset masks.
const (
	ResetClockLane ResetMask = 1 << 20
	ResetDataLanes ResetMask = 0xF << 16
)

// ErrorMask selects controller error interrupts.
type ErrorMask uint32

// Error interrupt bits.
const (
	ErrorPLLUnlock ErrorMask = 1 << iota
	ErrorFIFOUnderflow
	ErrorFIFOOverflow
	ErrorLPRxTimeout
)

// LinkFreq holds the link clock rates of one controller.
type LinkFreq struct {
	ByteClkHz  uint64
	PixelClkHz uint64
	EscClkHz   uint64
}

// LaneTimings are the PHY lane timing values used to compute dynamic refresh
// delays.
type LaneTimings [12]uint32

// DynRefreshDelay carries the delays programmed into the PHY before a dynamic
// refresh.
type DynRefreshDelay struct {
	PipeDelay  uint32
	PipeDelay2 uint32
	PLLDelay   uint32
}
