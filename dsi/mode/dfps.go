package mode

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// SeamlessDFPSPossible reports whether the display can move from cur to tgt
// by only changing the refresh rate. The front porch selected by the DFPS
// method may differ; every other field must match. Sync polarity is not
// compared.
func SeamlessDFPSPossible(cur, tgt dsi.Timing, method DFPSType) bool {
	if cur.HActive != tgt.HActive ||
		cur.HBackPorch != tgt.HBackPorch ||
		cur.HSyncWidth != tgt.HSyncWidth ||
		cur.HSkew != tgt.HSkew {
		return false
	}

	if cur.HFrontPorch != tgt.HFrontPorch && method != DFPSImmediateHFP {
		return false
	}

	if cur.VActive != tgt.VActive ||
		cur.VBackPorch != tgt.VBackPorch ||
		cur.VSyncWidth != tgt.VSyncWidth {
		return false
	}

	if cur.VFrontPorch != tgt.VFrontPorch && method != DFPSImmediateVFP {
		return false
	}

	return true
}

// FrontPorch recomputes a front porch so that the frame keeps its pixel
// clock at a new refresh rate. otherTotal is the total of the axis that is
// not adjusted and total is the total of the adjusted axis.
func FrontPorch(oldFPS, newFPS, otherTotal, total, fp uint32) (uint32, error) {
	if otherTotal == 0 || newFPS == 0 {
		return 0, errors.Wrap(dsi.ErrInvalidConfig,
			"invalid pixel total or new fps in mode request")
	}

	var diff uint64
	if oldFPS > newFPS {
		diff = uint64(oldFPS - newFPS)
	} else {
		diff = uint64(newFPS - oldFPS)
	}

	add := int64(uint64(total) * diff / uint64(newFPS))

	newFP := int64(fp) - add
	if oldFPS > newFPS {
		newFP = int64(fp) + add
	}

	if newFP < 0 {
		return 0, errors.Wrapf(dsi.ErrInvalidConfig,
			"computed front porch %d is negative", newFP)
	}

	return uint32(newFP), nil
}

// DFPSTiming returns the native mode m with the front porch recomputed for
// its refresh rate, starting from a display running at curRefresh.
func DFPSTiming(
	m Mode,
	curRefresh uint32,
	method DFPSType,
	ctrlCount int,
	split SplitLink,
) (Mode, error) {
	perCtrl, err := AdjustForControllers(m, ctrlCount, split)
	if err != nil {
		return m, err
	}

	out := m.Clone()
	t := perCtrl.Timing

	switch method {
	case DFPSImmediateVFP:
		vfp, err := FrontPorch(curRefresh, t.RefreshRate,
			t.HTotal(), t.VTotal(), t.VFrontPorch)
		if err != nil {
			return m, err
		}

		out.Timing.VFrontPorch = vfp
	case DFPSImmediateHFP:
		hfp, err := FrontPorch(curRefresh, t.RefreshRate,
			t.VTotal(), t.HTotal(), t.HFrontPorch)
		if err != nil {
			return m, err
		}

		out.Timing.HFrontPorch = hfp * uint32(Divisor(ctrlCount, split))
	default:
		return m, errors.Wrapf(dsi.ErrNotSupported,
			"dfps method %s", method)
	}

	return out, nil
}

// ClassifyChange decides how the display moves from cur to tgt when both
// have the same active area. A refresh rate change needs DFPS and yields
// FlagVRR. A pixel clock change needs dynamic clock support and yields
// FlagDynClk. Both in one change are rejected.
func ClassifyChange(
	cur, tgt Mode,
	dfps DFPSCaps,
	dynClk DynClkCaps,
) (Flag, error) {
	if cur.Timing.VActive != tgt.Timing.VActive ||
		cur.Timing.HActive != tgt.Timing.HActive {
		return 0, nil
	}

	var flags Flag

	if cur.Timing.RefreshRate != tgt.Timing.RefreshRate {
		if !dfps.Supported {
			return 0, errors.Wrap(dsi.ErrNotSupported,
				"refresh rate change without dfps")
		}

		flags |= FlagVRR
	}

	if cur.PixelClkKHz != tgt.PixelClkKHz {
		if !dynClk.Supported {
			return 0, errors.Wrap(dsi.ErrNotSupported,
				"pixel clock change without dynamic clock")
		}

		if flags.Has(FlagVRR) || tgt.Flags.Has(FlagVRR) {
			return 0, errors.Wrap(dsi.ErrNotSupported,
				"dfps and dynamic clock in the same change")
		}

		flags |= FlagDynClk
	}

	return flags, nil
}
