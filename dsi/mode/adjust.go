package mode

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Divisor returns the number that the horizontal fields of a native mode are
// divided by. Split link uses the sublink count instead of the controller
// count.
func Divisor(ctrlCount int, split SplitLink) int {
	if split.Enabled && split.NumSublinks > 1 {
		return split.NumSublinks
	}

	if ctrlCount < 1 {
		return 1
	}

	return ctrlCount
}

type namedField struct {
	name  string
	value *uint32
}

func horizontalFields(t *dsi.Timing) []namedField {
	return []namedField{
		{"h_active", &t.HActive},
		{"h_front_porch", &t.HFrontPorch},
		{"h_sync_width", &t.HSyncWidth},
		{"h_back_porch", &t.HBackPorch},
		{"h_skew", &t.HSkew},
	}
}

// AdjustForControllers converts a native mode into the mode that each
// controller drives. Every horizontal field and the pixel clock must divide
// exactly.
func AdjustForControllers(m Mode, ctrlCount int, split SplitLink) (Mode, error) {
	out := m.Clone()

	div := Divisor(ctrlCount, split)
	if div == 1 {
		return out, nil
	}

	d := uint32(div)
	fields := horizontalFields(&out.Timing)

	for _, f := range fields {
		if *f.value%d != 0 {
			return m, errors.Wrapf(dsi.ErrInvalidConfig,
				"%s %d is not divisible by %d", f.name, *f.value, div)
		}
	}

	if out.PixelClkKHz%uint64(div) != 0 {
		return m, errors.Wrapf(dsi.ErrInvalidConfig,
			"pixel clock %d kHz is not divisible by %d",
			out.PixelClkKHz, div)
	}

	for _, f := range fields {
		*f.value /= d
	}

	out.PixelClkKHz /= uint64(div)

	return out, nil
}

// ScaleToNative converts a per-controller mode back into the native mode.
func ScaleToNative(m Mode, ctrlCount int, split SplitLink) Mode {
	out := m.Clone()

	div := Divisor(ctrlCount, split)
	if div == 1 {
		return out
	}

	for _, f := range horizontalFields(&out.Timing) {
		*f.value *= uint32(div)
	}

	out.PixelClkKHz *= uint64(div)

	return out
}
