// Package recovery reacts to FIFO and LP-RX timeout errors reported by DSI
// controllers. Each kind of error has its own worker goroutine; a fault that
// is reported again before its worker picks it up is absorbed.
package recovery

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Kind is the kind of a hardware fault.
type Kind int

// Fault kinds.
const (
	FIFOUnderflow Kind = iota
	FIFOOverflow
	LPRxTimeout
)

// Kinds lists every fault kind.
var Kinds = []Kind{FIFOUnderflow, FIFOOverflow, LPRxTimeout}

func (k Kind) String() string {
	switch k {
	case FIFOUnderflow:
		return "fifo_underflow"
	case FIFOOverflow:
		return "fifo_overflow"
	case LPRxTimeout:
		return "lp_rx_timeout"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a fault kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, errors.Wrapf(dsi.ErrInvalidConfig, "unknown fault kind %q", s)
}

func (k Kind) resetMask() dsi.ResetMask {
	if k == LPRxTimeout {
		return dsi.ResetClockLane | dsi.ResetDataLanes
	}

	return dsi.ResetClockLane
}

// State is the state of a worker.
type State int

// Worker states.
const (
	Idle State = iota
	FaultDetected
	Recovering
)

func (s State) String() string {
	switch s {
	case FaultDetected:
		return "fault_detected"
	case Recovering:
		return "recovering"
	default:
		return "idle"
	}
}

// Target is the display a supervisor recovers.
type Target interface {
	Name() string
	ESDRecoveryPending() bool
	OpMode() dsi.OpMode

	// RunLocked runs f while holding the display lock.
	RunLocked(f func(t LockedTarget) error) error
}

// LockedTarget is the view of a display that a worker gets while it holds
// the display lock.
type LockedTarget interface {
	// ValidHostState reports whether every controller can be accessed.
	ValidHostState() bool

	ClocksOn() error
	ClocksOff() error

	// HWVersion returns the hardware version of the clock master controller.
	HWVersion() uint32

	// SoftReset soft-resets every controller.
	SoftReset() error

	// ResetLanes resets the selected controller lanes and the PHY lanes of
	// every pair.
	ResetLanes(mask dsi.ResetMask) error

	// EnableVideoEngines turns the video engine of every controller on.
	EnableVideoEngines() error
}

// Callback is invoked after the lanes are reset and before the video engines
// are turned back on. An error aborts the recovery.
type Callback func(ctx context.Context, kind Kind) error
