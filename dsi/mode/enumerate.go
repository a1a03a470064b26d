package mode

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Count returns the number of modes a panel offers: every timing node at
// every DFPS rate and every bit clock rate.
func Count(timingNodes int, dfps DFPSCaps, dynClk DynClkCaps) int {
	rates := 1
	if dfps.Supported {
		rates = len(dfps.Rates)
	}

	bitClks := 1
	if dynClk.Supported {
		bitClks = len(dynClk.BitClkRates)
	}

	return timingNodes * rates * bitClks
}

// Enumerator expands panel timing nodes into the list of native modes.
type Enumerator struct {
	DFPS      DFPSCaps
	DynClk    DynClkCaps
	Host      HostConfig
	CtrlCount int
	SplitLink SplitLink
}

// Enumerate returns the native modes for the given per-controller timing
// nodes.
func (e Enumerator) Enumerate(nodes []Mode) []Mode {
	total := Count(len(nodes), e.DFPS, e.DynClk)
	modes := make([]Mode, 0, total)

	for _, node := range nodes {
		native := ScaleToNative(node, e.CtrlCount, e.SplitLink)

		start := len(modes)
		modes = append(modes, e.refreshVariants(native)...)
		end := len(modes)

		modes = e.populateBitClks(modes, start, end)
	}

	return modes
}

func (e Enumerator) refreshVariants(native Mode) []Mode {
	if !e.DFPS.Supported {
		return []Mode{native}
	}

	variants := make([]Mode, 0, len(e.DFPS.Rates))
	for _, rate := range e.DFPS.Rates {
		sub := native.Clone()
		curRefresh := sub.Timing.RefreshRate
		sub.Timing.RefreshRate = rate

		adjusted, err := DFPSTiming(sub, curRefresh, e.DFPS.Type,
			e.CtrlCount, e.SplitLink)
		if err == nil {
			sub = adjusted
		}

		variants = append(variants, sub)
	}

	return variants
}

func (e Enumerator) populateBitClks(modes []Mode, start, end int) []Mode {
	if !e.DynClk.Supported || len(e.DynClk.BitClkRates) == 0 {
		return modes
	}

	rates := e.DynClk.BitClkRates
	ctrlCount := e.CtrlCount
	if ctrlCount < 1 {
		ctrlCount = 1
	}

	for i := start; i < end; i++ {
		modes[i].Timing.ClkRateHz = rates[0]
		modes[i].PixelClkKHz = PixelClkKHzFor(rates[0], e.Host, ctrlCount)
	}

	for _, rate := range rates[1:] {
		for i := start; i < end; i++ {
			dst := modes[i].Clone()
			dst.Timing.ClkRateHz = rate
			dst.PixelClkKHz = PixelClkKHzFor(rate, e.Host, ctrlCount)
			modes = append(modes, dst)
		}
	}

	return modes
}

// Find returns the first mode that matches cmp on active area, refresh rate,
// and pixel clock.
func Find(modes []Mode, cmp Mode) (Mode, error) {
	for _, m := range modes {
		if cmp.Timing.VActive == m.Timing.VActive &&
			cmp.Timing.HActive == m.Timing.HActive &&
			cmp.Timing.RefreshRate == m.Timing.RefreshRate &&
			cmp.PixelClkKHz == m.PixelClkKHz {
			return m.Clone(), nil
		}
	}

	return Mode{}, errors.Wrapf(dsi.ErrNotFound,
		"no mode for v_active %d h_active %d fps %d pclk %d",
		cmp.Timing.VActive, cmp.Timing.HActive,
		cmp.Timing.RefreshRate, cmp.PixelClkKHz)
}
