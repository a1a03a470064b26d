package hwsim

import (
	"context"
	"sync"
	"time"

	"github.com/sarchlab/dsidisplay/dsi"
)

// Controller is a simulated DSI host controller.
type Controller struct {
	*faults

	name string

	lock          sync.Mutex
	version       uint32
	splitLink     bool
	contSplash    bool
	validHost     bool
	power         dsi.PowerState
	engines       [3]dsi.EngineState
	ulps          bool
	clamped       bool
	misrEnabled   bool
	misrFrames    uint32
	misr          uint32
	tpg           bool
	isr           bool
	irq           bool
	errorMask     dsi.ErrorMask
	clockGating   bool
	continuousClk bool
	refreshDelay  time.Duration
	refreshHang   bool
	timing        dsi.Timing
}

// NewController creates a simulated controller that records its calls in
// log.
func NewController(name string, log *Log) *Controller {
	return &Controller{
		faults:    newFaults(name, log),
		name:      name,
		version:   dsi.MinRecoveryHWVersion,
		validHost: true,
		misr:      0xc0ffee,
	}
}

// SetHWVersion sets the version reported by HWVersion.
func (c *Controller) SetHWVersion(v uint32) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.version = v
}

// SetSplitLinkSupported sets what SplitLinkSupported reports.
func (c *Controller) SetSplitLinkSupported(s bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.splitLink = s
}

// SetContSplash sets whether the boot loader left the controller running.
func (c *Controller) SetContSplash(s bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.contSplash = s
}

// SetValidHostState sets what ValidHostState reports.
func (c *Controller) SetValidHostState(v bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.validHost = v
}

// SetDynamicRefreshDelay sets how long the controller takes to confirm a
// dynamic refresh. With hang set it never confirms.
func (c *Controller) SetDynamicRefreshDelay(d time.Duration, hang bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.refreshDelay = d
	c.refreshHang = hang
}

// PowerState returns the power state the controller was last set to.
func (c *Controller) PowerState() dsi.PowerState {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.power
}

// EngineState returns the state of an engine.
func (c *Controller) EngineState(e dsi.Engine) dsi.EngineState {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.engines[e]
}

// ULPS reports whether the lanes are in ULPS.
func (c *Controller) ULPS() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.ulps
}

// Clamped reports whether the controller is clamped.
func (c *Controller) Clamped() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.clamped
}

// Timing returns the timing of the last async timing update.
func (c *Controller) Timing() dsi.Timing {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.timing
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return c.name
}

// SetPowerState records the new power state of the controller.
func (c *Controller) SetPowerState(state dsi.PowerState) error {
	if err := c.call("SetPowerState", state); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.power = state

	return nil
}

// SetClockSource records a clock path switch.
func (c *Controller) SetClockSource(path dsi.ClockPath) error {
	return c.call("SetClockSource", path)
}

func (c *Controller) setEngine(e dsi.Engine, method string, state dsi.EngineState) error {
	if err := c.call(method, state); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.engines[e] = state

	return nil
}

// SetCmdEngineState turns the command engine on or off.
func (c *Controller) SetCmdEngineState(state dsi.EngineState) error {
	return c.setEngine(dsi.EngineCmd, "SetCmdEngineState", state)
}

// SetHostEngineState turns the host engine on or off.
func (c *Controller) SetHostEngineState(state dsi.EngineState) error {
	return c.setEngine(dsi.EngineHost, "SetHostEngineState", state)
}

// SetVidEngineState turns the video engine on or off.
func (c *Controller) SetVidEngineState(state dsi.EngineState) error {
	return c.setEngine(dsi.EngineVideo, "SetVidEngineState", state)
}

// SetULPS moves the lanes of the controller in or out of ULPS.
func (c *Controller) SetULPS(enable bool) error {
	if err := c.call("SetULPS", enable); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.ulps = enable

	return nil
}

// SetClampState clamps or unclamps the controller.
func (c *Controller) SetClampState(enable, ulps bool) error {
	if err := c.call("SetClampState", enable, ulps); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.clamped = enable

	return nil
}

// Setup records a controller setup.
func (c *Controller) Setup() error {
	return c.call("Setup")
}

// HostInit records a host initialization.
func (c *Controller) HostInit(splash bool) error {
	return c.call("HostInit", splash)
}

// HostDeinit records a host deinitialization.
func (c *Controller) HostDeinit() error {
	return c.call("HostDeinit")
}

// HostUpdate records a host register update.
func (c *Controller) HostUpdate() error {
	return c.call("HostUpdate")
}

// PHYSoftwareReset records a software reset of the PHY.
func (c *Controller) PHYSoftwareReset() error {
	return c.call("PHYSoftwareReset")
}

// PHYResetConfig records a PHY reset configuration change.
func (c *Controller) PHYResetConfig(enable bool) error {
	return c.call("PHYResetConfig", enable)
}

// CmdTransfer records the type of a sent message.
func (c *Controller) CmdTransfer(msg dsi.Msg, flags dsi.CmdFlag) error {
	return c.call("CmdTransfer", msg.Type, flags)
}

// CmdTrigger records a command DMA trigger.
func (c *Controller) CmdTrigger(flags dsi.CmdFlag) error {
	return c.call("CmdTrigger", flags)
}

// Reset records a reset of the selected blocks.
func (c *Controller) Reset(mask dsi.ResetMask) error {
	return c.call("Reset", uint32(mask))
}

// SoftReset records a soft reset of the controller.
func (c *Controller) SoftReset() error {
	return c.call("SoftReset")
}

// HWVersion returns the hardware version set with SetHWVersion.
func (c *Controller) HWVersion() uint32 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.version
}

// ValidHostState reports whether the host engine can be reset safely.
func (c *Controller) ValidHostState() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.validHost
}

// ValidateTiming accepts every timing unless a fault is injected.
func (c *Controller) ValidateTiming(t dsi.Timing) error {
	return c.call("ValidateTiming", t.HActive, t.VActive)
}

// AsyncTimingUpdate applies a new timing without stopping the video engine.
func (c *Controller) AsyncTimingUpdate(t dsi.Timing) error {
	if err := c.call("AsyncTimingUpdate", t.RefreshRate); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.timing = t

	return nil
}

// WaitDynamicRefreshDone waits for the configured refresh delay. A
// controller set to hang only returns when ctx is done.
func (c *Controller) WaitDynamicRefreshDone(ctx context.Context) error {
	if err := c.call("WaitDynamicRefreshDone"); err != nil {
		return err
	}

	c.lock.Lock()
	delay, hang := c.refreshDelay, c.refreshHang
	c.lock.Unlock()

	if hang {
		<-ctx.Done()
		return ctx.Err()
	}

	if delay == 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SplitLinkSupported reports whether the controller can split its link.
func (c *Controller) SplitLinkSupported() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.splitLink
}

// ContSplashEnabled reports whether the boot loader left the controller
// running.
func (c *Controller) ContSplashEnabled() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.contSplash
}

// SetupMISR configures the MISR over frameCount frames.
func (c *Controller) SetupMISR(enable bool, frameCount uint32) error {
	if err := c.call("SetupMISR", enable, frameCount); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.misrEnabled = enable
	c.misrFrames = frameCount

	return nil
}

// CacheMISR records that the MISR was cached.
func (c *Controller) CacheMISR() {
	_ = c.call("CacheMISR")
}

// CollectMISR returns the MISR signature, or zero while the MISR is off.
func (c *Controller) CollectMISR() uint32 {
	_ = c.call("CollectMISR")

	c.lock.Lock()
	defer c.lock.Unlock()

	if !c.misrEnabled {
		return 0
	}

	return c.misr
}

// SetTPGState turns the test pattern generator on or off.
func (c *Controller) SetTPGState(enable bool) error {
	if err := c.call("SetTPGState", enable); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.tpg = enable

	return nil
}

// ConfigureISR registers or removes the interrupt handler.
func (c *Controller) ConfigureISR(enable bool) {
	_ = c.call("ConfigureISR", enable)

	c.lock.Lock()
	defer c.lock.Unlock()

	c.isr = enable
}

// IRQUpdate enables or disables the controller interrupts.
func (c *Controller) IRQUpdate(enable bool) {
	_ = c.call("IRQUpdate", enable)

	c.lock.Lock()
	defer c.lock.Unlock()

	c.irq = enable
}

// MaskErrors masks or unmasks the given error interrupts.
func (c *Controller) MaskErrors(mask dsi.ErrorMask, enable bool) {
	_ = c.call("MaskErrors", uint32(mask), enable)

	c.lock.Lock()
	defer c.lock.Unlock()

	if enable {
		c.errorMask |= mask
	} else {
		c.errorMask &^= mask
	}
}

// SetClockGating enables or disables the clock gating of the controller.
func (c *Controller) SetClockGating(enable bool) error {
	if err := c.call("SetClockGating", enable); err != nil {
		return err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.clockGating = enable

	return nil
}

// SetContinuousClock keeps the HS clock lane running when enabled.
func (c *Controller) SetContinuousClock(enable bool) {
	_ = c.call("SetContinuousClock", enable)

	c.lock.Lock()
	defer c.lock.Unlock()

	c.continuousClk = enable
}

var _ dsi.Controller = (*Controller)(nil)
