package hwsim

import (
	"sync"

	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
)

// PanelConfig describes a simulated panel.
type PanelConfig struct {
	Name        string
	OpMode      dsi.OpMode
	ULPSFeature bool
	ULPSSuspend bool
	Host        mode.HostConfig
	DFPS        mode.DFPSCaps
	DynClk      mode.DynClkCaps
	TimingNodes []mode.Mode
	ESD         dsi.ESDConfig
}

// Panel is a simulated display panel.
type Panel struct {
	*faults

	cfg PanelConfig

	lock        sync.Mutex
	initialized bool
	esdPending  bool
	esdAttacks  int
}

// NewPanel creates a simulated panel that records its calls in log.
func NewPanel(cfg PanelConfig, log *Log) *Panel {
	return &Panel{
		faults: newFaults(cfg.Name, log),
		cfg:    cfg,
	}
}

// SetInitialized marks the panel as having received its on commands.
func (p *Panel) SetInitialized(v bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.initialized = v
}

// SetESDRecoveryPending sets what ESDRecoveryPending reports.
func (p *Panel) SetESDRecoveryPending(v bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.esdPending = v
}

// ESDAttacks returns the number of simulated ESD attacks.
func (p *Panel) ESDAttacks() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.esdAttacks
}

// Name returns the configured panel name.
func (p *Panel) Name() string {
	return p.cfg.Name
}

// OpMode returns the configured operating mode.
func (p *Panel) OpMode() dsi.OpMode {
	return p.cfg.OpMode
}

// Initialized reports whether Enable ran since the last Disable.
func (p *Panel) Initialized() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.initialized
}

// ULPSFeatureEnabled returns the configured ULPS feature flag.
func (p *Panel) ULPSFeatureEnabled() bool {
	return p.cfg.ULPSFeature
}

// ULPSSuspendEnabled returns the configured ULPS suspend flag.
func (p *Panel) ULPSSuspendEnabled() bool {
	return p.cfg.ULPSSuspend
}

// HostConfig returns the configured host settings.
func (p *Panel) HostConfig() mode.HostConfig {
	return p.cfg.Host
}

// DFPSCaps returns the configured refresh rate capabilities.
func (p *Panel) DFPSCaps() mode.DFPSCaps {
	return p.cfg.DFPS
}

// DynClkCaps returns the configured bit clock capabilities.
func (p *Panel) DynClkCaps() mode.DynClkCaps {
	return p.cfg.DynClk
}

// TimingNodes returns copies of the configured timing nodes.
func (p *Panel) TimingNodes() []mode.Mode {
	nodes := make([]mode.Mode, len(p.cfg.TimingNodes))
	for i, n := range p.cfg.TimingNodes {
		nodes[i] = n.Clone()
	}

	return nodes
}

// ValidateMode accepts every mode unless a fault is injected.
func (p *Panel) ValidateMode(m mode.Mode) error {
	return p.call("ValidateMode", m.Timing.HActive, m.Timing.VActive)
}

// ESDConfig returns the ESD check configuration.
func (p *Panel) ESDConfig() dsi.ESDConfig {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.cfg.ESD
}

// SetESDMode changes the ESD check mode.
func (p *Panel) SetESDMode(m dsi.ESDMode) error {
	if err := p.call("SetESDMode", m); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.cfg.ESD.Mode = m

	return nil
}

// ESDRecoveryPending returns the flag set with SetESDRecoveryPending.
func (p *Panel) ESDRecoveryPending() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.esdPending
}

// TriggerESDAttack counts a simulated ESD attack.
func (p *Panel) TriggerESDAttack() error {
	if err := p.call("TriggerESDAttack"); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.esdAttacks++

	return nil
}

// PrePrepare records the call.
func (p *Panel) PrePrepare() error {
	return p.call("PrePrepare")
}

// Prepare records the call.
func (p *Panel) Prepare() error {
	return p.call("Prepare")
}

// Enable marks the panel initialized.
func (p *Panel) Enable() error {
	if err := p.call("Enable"); err != nil {
		return err
	}

	p.SetInitialized(true)

	return nil
}

// PostEnable records the call.
func (p *Panel) PostEnable() error {
	return p.call("PostEnable")
}

// PreDisable records the call.
func (p *Panel) PreDisable() error {
	return p.call("PreDisable")
}

// Disable clears the initialized flag, even when the call fails.
func (p *Panel) Disable() error {
	err := p.call("Disable")

	p.SetInitialized(false)

	return err
}

// Unprepare records the call.
func (p *Panel) Unprepare() error {
	return p.call("Unprepare")
}

// PostUnprepare records the call.
func (p *Panel) PostUnprepare() error {
	return p.call("PostUnprepare")
}
