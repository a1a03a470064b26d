package dsi

import "context"

// A Controller is one DSI host controller. All register programming happens
// behind this interface.
type Controller interface {
	Name() string

	SetPowerState(state PowerState) error
	SetClockSource(path ClockPath) error
	SetCmdEngineState(state EngineState) error
	SetHostEngineState(state EngineState) error
	SetVidEngineState(state EngineState) error

	SetULPS(enable bool) error
	SetClampState(enable, ulps bool) error
	Setup() error
	HostInit(splash bool) error
	HostDeinit() error
	HostUpdate() error
	PHYSoftwareReset() error
	PHYResetConfig(enable bool) error

	CmdTransfer(msg Msg, flags CmdFlag) error
	CmdTrigger(flags CmdFlag) error

	Reset(mask ResetMask) error
	SoftReset() error
	HWVersion() uint32
	ValidHostState() bool

	ValidateTiming(t Timing) error
	AsyncTimingUpdate(t Timing) error
	WaitDynamicRefreshDone(ctx context.Context) error

	SplitLinkSupported() bool
	ContSplashEnabled() bool

	SetupMISR(enable bool, frameCount uint32) error
	CacheMISR()
	CollectMISR() uint32
	SetTPGState(enable bool) error

	ConfigureISR(enable bool)
	IRQUpdate(enable bool)
	MaskErrors(mask ErrorMask, enable bool)
	SetClockGating(enable bool) error
	SetContinuousClock(enable bool)
}

// A PHY is the physical layer paired with a controller.
type PHY interface {
	Name() string

	SetPowerState(on bool) error
	Enable(src PLLSource, splash bool) error
	Disable() error

	SetULPS(enable, clamped bool) ULPSResult
	SetClampState(enable bool) error
	IdleCtrl(enable bool) error
	AllowIdlePowerOff() bool
	LaneReset() error
	ToggleResyncFIFO()
	ResetClkEnSel()

	UpdateTimings(bitClkHz uint64) error
	SetTimingParams(values []uint32) error
	Timings() LaneTimings
	ValidateTiming(t Timing) error

	ConfigDynamicRefresh(delay DynRefreshDelay, master bool)
	TriggerDynamicRefresh(master bool)
	ClearDynamicRefresh()
}
