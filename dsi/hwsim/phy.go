package hwsim

import (
	"sync"

	"github.com/sarchlab/dsidisplay/dsi"
)

// PHY is a simulated DSI PHY.
type PHY struct {
	*faults

	name string

	lock           sync.Mutex
	powered        bool
	enabled        bool
	src            dsi.PLLSource
	ulps           bool
	clamped        bool
	idle           bool
	allowIdleOff   bool
	ulpsResult     dsi.ULPSResult
	bitClkHz       uint64
	timingParams   []uint32
	timings        dsi.LaneTimings
	refreshDelay   dsi.DynRefreshDelay
	refreshPending bool
}

// NewPHY creates a simulated PHY that records its calls in log. By default
// the PHY leaves ULPS to the controller.
func NewPHY(name string, log *Log) *PHY {
	return &PHY{
		faults:       newFaults(name, log),
		name:         name,
		allowIdleOff: true,
		ulpsResult:   dsi.ULPSNotHandled,
		timings:      dsi.LaneTimings{0, 10, 0, 8, 10, 12, 8, 10, 12},
	}
}

// SetULPSResult sets what SetULPS reports.
func (p *PHY) SetULPSResult(r dsi.ULPSResult) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.ulpsResult = r
}

// SetAllowIdlePowerOff sets what AllowIdlePowerOff reports.
func (p *PHY) SetAllowIdlePowerOff(a bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.allowIdleOff = a
}

// Powered reports whether the PHY is powered.
func (p *PHY) Powered() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.powered
}

// Enabled reports whether the PHY is enabled, and from which PLL source.
func (p *PHY) Enabled() (bool, dsi.PLLSource) {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.enabled, p.src
}

// BitClkHz returns the bit clock of the last timing update.
func (p *PHY) BitClkHz() uint64 {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.bitClkHz
}

// Name returns the name of the PHY.
func (p *PHY) Name() string {
	return p.name
}

// SetPowerState powers the PHY on or off.
func (p *PHY) SetPowerState(on bool) error {
	if err := p.call("SetPowerState", on); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.powered = on

	return nil
}

// Enable enables the PHY on the given PLL source.
func (p *PHY) Enable(src dsi.PLLSource, splash bool) error {
	if err := p.call("Enable", src, splash); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.enabled = true
	p.src = src

	return nil
}

// Disable disables the PHY.
func (p *PHY) Disable() error {
	if err := p.call("Disable"); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.enabled = false

	return nil
}

// SetULPS answers with the result set by SetULPSResult. Only a PHY that
// handles ULPS itself changes its lane state.
func (p *PHY) SetULPS(enable, clamped bool) dsi.ULPSResult {
	if err := p.call("SetULPS", enable, clamped); err != nil {
		return dsi.ULPSError
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if p.ulpsResult == dsi.ULPSHandled {
		p.ulps = enable
	}

	return p.ulpsResult
}

// SetClampState clamps or unclamps the PHY.
func (p *PHY) SetClampState(enable bool) error {
	if err := p.call("SetClampState", enable); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.clamped = enable

	return nil
}

// IdleCtrl collapses the PHY when enable is false and restores it
// otherwise.
func (p *PHY) IdleCtrl(enable bool) error {
	if err := p.call("IdleCtrl", enable); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.idle = !enable

	return nil
}

// AllowIdlePowerOff returns the flag set with SetAllowIdlePowerOff.
func (p *PHY) AllowIdlePowerOff() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.allowIdleOff
}

// LaneReset records a lane reset.
func (p *PHY) LaneReset() error {
	return p.call("LaneReset")
}

// ToggleResyncFIFO records a resync FIFO toggle.
func (p *PHY) ToggleResyncFIFO() {
	_ = p.call("ToggleResyncFIFO")
}

// ResetClkEnSel records a clock enable select reset.
func (p *PHY) ResetClkEnSel() {
	_ = p.call("ResetClkEnSel")
}

// UpdateTimings recalculates the lane timings for a new bit clock.
func (p *PHY) UpdateTimings(bitClkHz uint64) error {
	if err := p.call("UpdateTimings", bitClkHz); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.bitClkHz = bitClkHz

	return nil
}

// SetTimingParams stores the raw timing parameters of a mode.
func (p *PHY) SetTimingParams(values []uint32) error {
	if err := p.call("SetTimingParams", len(values)); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.timingParams = append([]uint32(nil), values...)

	return nil
}

// TimingParams returns the parameters stored by SetTimingParams.
func (p *PHY) TimingParams() []uint32 {
	p.lock.Lock()
	defer p.lock.Unlock()

	return append([]uint32(nil), p.timingParams...)
}

// Timings returns the current lane timings.
func (p *PHY) Timings() dsi.LaneTimings {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.timings
}

// ValidateTiming accepts every timing unless a fault is injected.
func (p *PHY) ValidateTiming(t dsi.Timing) error {
	return p.call("ValidateTiming", t.HActive, t.VActive)
}

// ConfigDynamicRefresh programs the delays of the next dynamic refresh.
func (p *PHY) ConfigDynamicRefresh(delay dsi.DynRefreshDelay, master bool) {
	_ = p.call("ConfigDynamicRefresh", master)

	p.lock.Lock()
	defer p.lock.Unlock()

	p.refreshDelay = delay
}

// TriggerDynamicRefresh arms a dynamic refresh.
func (p *PHY) TriggerDynamicRefresh(master bool) {
	_ = p.call("TriggerDynamicRefresh", master)

	p.lock.Lock()
	defer p.lock.Unlock()

	p.refreshPending = true
}

// ClearDynamicRefresh disarms a pending dynamic refresh.
func (p *PHY) ClearDynamicRefresh() {
	_ = p.call("ClearDynamicRefresh")

	p.lock.Lock()
	defer p.lock.Unlock()

	p.refreshPending = false
}

var _ dsi.PHY = (*PHY)(nil)
