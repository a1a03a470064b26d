package mode

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// pllSettleUs is the PLL settle time required before a dynamic refresh.
const pllSettleUs = 130

// LinkFreqFor computes the byte and pixel clock rates of one controller
// running at the given bit clock.
func LinkFreqFor(bitClkHz uint64, host HostConfig) (dsi.LinkFreq, error) {
	if bitClkHz == 0 {
		return dsi.LinkFreq{}, errors.Wrap(dsi.ErrInvalidConfig,
			"invalid bit clock rate")
	}

	if host.Lanes <= 0 {
		return dsi.LinkFreq{}, errors.Wrap(dsi.ErrInvalidConfig,
			"invalid lane count")
	}

	if host.BPP <= 0 {
		return dsi.LinkFreq{}, errors.Wrap(dsi.ErrInvalidConfig,
			"invalid bits per pixel")
	}

	bitRate := bitClkHz * uint64(host.Lanes)

	return dsi.LinkFreq{
		ByteClkHz:  bitClkHz / 8,
		PixelClkHz: bitRate / uint64(host.BPP),
	}, nil
}

// PixelClkKHzFor returns the native pixel clock of a display whose
// controllers all run at the given bit clock.
func PixelClkKHzFor(bitClkHz uint64, host HostConfig, ctrlCount int) uint64 {
	if host.BPP <= 0 {
		return 0
	}

	pclk := bitClkHz * uint64(host.Lanes) / uint64(host.BPP)

	return pclk / 1000 * uint64(ctrlCount)
}

func half(v uint32) uint32 {
	return (v >> 1) + 1
}

// CalcPipeDelay computes the delays programmed into the PHYs for a dynamic
// bit clock switch.
func CalcPipeDelay(
	freq dsi.LinkFreq,
	t dsi.Timing,
	lane dsi.LaneTimings,
	host HostConfig,
) (dsi.DynRefreshDelay, error) {
	esc := freq.EscClkHz
	if esc == 0 {
		return dsi.DynRefreshDelay{}, errors.Wrap(dsi.ErrInvalidConfig,
			"escape clock rate is zero")
	}

	pclkToEsc := uint32(freq.PixelClkHz / esc)
	byteToEsc := uint32(freq.ByteClkHz / esc)
	hrBitToEsc := uint32(freq.ByteClkHz * 4 / esc)

	if pclkToEsc == 0 || byteToEsc == 0 || hrBitToEsc == 0 {
		return dsi.DynRefreshDelay{}, errors.Wrap(dsi.ErrInvalidConfig,
			"link clocks slower than escape clock")
	}

	d := dsi.DynRefreshDelay{}

	d.PipeDelay = (t.HTotal() + 1) / pclkToEsc
	if !host.EOFBLLPLP11 {
		d.PipeDelay += 17/pclkToEsc +
			(21+(host.TClkPre+1)+(host.TClkPost+1))/byteToEsc +
			(half(lane[8])+
				half(lane[6])+
				(lane[3]*4+(lane[5]>>1)+1)+
				half(lane[7])+
				half(lane[1])+
				half(lane[4]))/hrBitToEsc
	}

	if host.ForceHSClkLane {
		d.PipeDelay2 = 6/byteToEsc +
			(half(lane[1])+half(lane[4]))/hrBitToEsc
	}

	d.PLLDelay = uint32((pllSettleUs*esc)/1000000) * 2

	return d, nil
}
