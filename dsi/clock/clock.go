// Package clock arbitrates the core and link clocks of DSI displays.
//
// Every client of a display's clocks holds a Handle and votes for clocks
// through its Manager. The Manager keeps a reference count per client and
// clock type and only touches the hardware when the aggregated vote changes.
// Around every hardware transition it calls the Hooks that the display
// registered, so that the display can power its controllers and PHYs and move
// lanes in and out of low power states.
package clock

import (
	"fmt"
	"strings"

	"github.com/sarchlab/dsidisplay/dsi"
)

// Type selects the clock domains of a request. It is a bit mask.
type Type int

// Clock types.
const (
	Core Type = 1 << iota
	Link
	All = Core | Link
)

func (t Type) String() string {
	switch t {
	case Core:
		return "core"
	case Link:
		return "link"
	case All:
		return "all"
	}

	return fmt.Sprintf("clock_type(%d)", int(t))
}

// LinkType selects the link clock sub-domains that a hook is called for.
type LinkType int

// Link clock sub-domains.
const (
	LinkNone LinkType = 0
	LinkLP   LinkType = 1 << (iota - 1)
	LinkHS
	LinkAll = LinkLP | LinkHS
)

func (l LinkType) String() string {
	var names []string
	if l&LinkLP != 0 {
		names = append(names, "lp")
	}

	if l&LinkHS != 0 {
		names = append(names, "hs")
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// State is the state a clock is requested to be in.
type State int

// Clock states.
const (
	Off State = iota
	On
)

func (s State) String() string {
	if s == On {
		return "on"
	}

	return "off"
}

// Hooks are called by a Manager around every clock transition. A non-nil
// error aborts the transition.
type Hooks interface {
	PreClkOff(t Type, l LinkType, s State) error
	PreClkOn(t Type, l LinkType, s State) error
	PostClkOff(t Type, l LinkType, s State) error
	PostClkOn(t Type, l LinkType, s State) error
}

// Provider switches the clocks of a display. t is always a single type,
// either Core or Link.
type Provider interface {
	ClkOn(t Type) error
	ClkOff(t Type) error
}

// Tree is the clock tree that feeds the link clocks of a display's
// controllers.
type Tree interface {
	// Rates returns the link clock rates currently programmed for a
	// controller.
	Rates(ctrl int) (dsi.LinkFreq, error)

	// SetRates programs the byte and pixel clock rates of a controller.
	SetRates(ctrl int, freq dsi.LinkFreq) error

	// SetParent selects the path that drives the link clocks.
	SetParent(path dsi.ClockPath) error

	// PrepareSource prepares the source PLL clocks ahead of a switch.
	PrepareSource() error

	// UnprepareSource releases what PrepareSource acquired.
	UnprepareSource()
}
