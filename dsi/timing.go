package dsi

// Timing describes the active area, porches, and sync widths of a mode, plus
// the refresh and bit clock rates it runs at.
type Timing struct {
	HActive     uint32 `json:"h_active" yaml:"h_active"`
	HBackPorch  uint32 `json:"h_back_porch" yaml:"h_back_porch"`
	HSyncWidth  uint32 `json:"h_sync_width" yaml:"h_sync_width"`
	HFrontPorch uint32 `json:"h_front_porch" yaml:"h_front_porch"`
	HSkew       uint32 `json:"h_skew" yaml:"h_skew"`
	HSyncHigh   bool   `json:"h_sync_high" yaml:"h_sync_high"`

	VActive     uint32 `json:"v_active" yaml:"v_active"`
	VBackPorch  uint32 `json:"v_back_porch" yaml:"v_back_porch"`
	VSyncWidth  uint32 `json:"v_sync_width" yaml:"v_sync_width"`
	VFrontPorch uint32 `json:"v_front_porch" yaml:"v_front_porch"`
	VSyncHigh   bool   `json:"v_sync_high" yaml:"v_sync_high"`

	RefreshRate uint32 `json:"refresh_rate" yaml:"refresh_rate"`
	ClkRateHz   uint64 `json:"clk_rate_hz" yaml:"clk_rate_hz"`
}

// HTotal returns the number of pixel clocks in a line.
func (t Timing) HTotal() uint32 {
	return t.HActive + t.HBackPorch + t.HSyncWidth + t.HFrontPorch
}

// VTotal returns the number of lines in a frame.
func (t Timing) VTotal() uint32 {
	return t.VActive + t.VBackPorch + t.VSyncWidth + t.VFrontPorch
}
