package simulation

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
	"github.com/sarchlab/dsidisplay/config"
	"github.com/sarchlab/dsidisplay/datarecording"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/display"
	"github.com/sarchlab/dsidisplay/dsi/hwsim"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
	"github.com/sarchlab/dsidisplay/hooking"
	"github.com/sarchlab/dsidisplay/idgen"
	"github.com/sarchlab/dsidisplay/monitoring"
)

// Builder can be used to build a simulation.
type Builder struct {
	cfg            *config.Config
	log            logr.Logger
	parallelIDs    bool
	monitorOn      bool
	monitorPort    int
	recordOn       bool
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		log: logr.Discard(),
	}
}

// WithConfig sets the description of the displays to simulate.
func (b Builder) WithConfig(cfg *config.Config) Builder {
	b.cfg = cfg

	b.monitorOn = cfg.Monitor.Enabled
	b.monitorPort = 0
	b.recordOn = cfg.Record.Enabled
	b.outputFileName = ""

	if cfg.Monitor.Enabled {
		b.monitorPort = cfg.Monitor.Port
	}

	if cfg.Record.Enabled {
		b.outputFileName = cfg.Record.Path
	}

	return b
}

// WithLogger sets the logger shared by every component.
func (b Builder) WithLogger(log logr.Logger) Builder {
	b.log = log
	return b
}

// WithParallelIDs makes the components generate IDs that are unique across
// goroutines without a shared counter.
func (b Builder) WithParallelIDs() Builder {
	b.parallelIDs = true
	return b
}

// WithMonitoring turns the diagnostics server on.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	b.monitorPort = 0

	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithRecording turns the SQLite recording on.
func (b Builder) WithRecording() Builder {
	b.recordOn = true
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.cfg == nil {
		panic("config is not set")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordOn && b.outputFileName != "" {
		panic("output file cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:         xid.New().String(),
		log:        b.log,
		ids:        idgen.NewIDGenerator(b.parallelIDs),
		timeTeller: hooking.NewWallClock(),
		displays:   display.NewRegistry(),
		rigs:       make(map[string]*Rig),
	}

	s.clocks = clock.MakeBuilder().
		WithLogger(b.log).
		WithIDGenerator(s.ids).
		Build("Clocks")

	s.buildTracers()

	if b.recordOn {
		b.buildRecording(s)
	}

	for _, h := range s.hooks {
		s.clocks.AcceptHook(h)
	}

	for _, dc := range b.cfg.Displays {
		b.buildRig(s, dc)
	}

	if b.monitorOn {
		b.buildMonitor(s)
	}

	return s
}

func (b Builder) buildRecording(s *Simulation) {
	path := b.outputFileName
	if path == "" {
		path = "dsisim_" + s.id
	}

	s.dataRecorder = datarecording.New(path)

	s.exec = datarecording.NewExecRecorder(s.dataRecorder)
	s.exec.Start()
	s.exec.Set("Simulation ID", s.id)

	s.dbTracer = hooking.NewDBTracer(s.timeTeller,
		datarecording.NewTaskWriter(s.dataRecorder))
	s.transitions = datarecording.NewTransitionRecorder(
		s.dataRecorder, s.timeTeller)

	s.hooks = append(s.hooks, s.dbTracer, s.transitions)
}

func (b Builder) buildRig(s *Simulation, dc config.Display) {
	panelCfg, err := dc.Panel.HWSimConfig()
	if err != nil {
		panic(err)
	}

	r := &Rig{
		Log:  hwsim.NewLog(),
		name: dc.Name,
	}

	r.Tree = hwsim.NewTree(r.Log, dc.Controllers, dc.ClockRates.LinkFreq())
	r.Panel = hwsim.NewPanel(panelCfg, r.Log)

	db := display.MakeBuilder().
		WithPanel(r.Panel).
		WithRoles(dc.Roles).
		WithSplitLink(dc.SplitLink.SplitLinkMode()).
		WithClockRegistry(s.clocks).
		WithClockTree(r.Tree).
		WithLogger(b.log).
		WithIDGenerator(s.ids).
		WithDynRefreshTimeout(dc.DynRefreshTimeout)

	for i := 0; i < dc.Controllers; i++ {
		ctrl := hwsim.NewController(fmt.Sprintf("DSI%d", i), r.Log)
		ctrl.SetHWVersion(dc.HWVersion)
		ctrl.SetSplitLinkSupported(dc.SplitLinkSupported)
		ctrl.SetContSplash(dc.ContSplash)

		phy := hwsim.NewPHY(fmt.Sprintf("PHY%d", i), r.Log)

		r.Ctrls = append(r.Ctrls, ctrl)
		r.PHYs = append(r.PHYs, phy)
		db = db.WithPair(ctrl, phy)
	}

	r.Display = db.Build(dc.Name)

	r.Supervisor = recovery.MakeBuilder().
		WithTarget(r.Display).
		WithSettleTime(dc.RecoverySettle).
		WithLogger(b.log).
		WithIDGenerator(s.ids).
		Build(dc.Name)
	r.Display.AttachRecovery(r.Supervisor)

	for owner, n := range dc.Faults {
		if err := r.InjectFault(owner, n); err != nil {
			panic(err)
		}
	}

	if err := s.displays.Add(r.Display); err != nil {
		panic(err)
	}

	s.rigs[dc.Name] = r
	s.names = append(s.names, dc.Name)

	for _, h := range s.hooks {
		r.Display.AcceptHook(h)
		r.Supervisor.AcceptHook(h)
	}
}

func (b Builder) buildMonitor(s *Simulation) {
	s.monitor = monitoring.NewMonitor().
		WithLogger(b.log).
		WithPortNumber(b.monitorPort)

	for _, name := range s.names {
		r := s.rigs[name]
		s.monitor.RegisterDisplay(r.Display)
		s.monitor.RegisterSupervisor(r.Supervisor)
	}

	if _, err := s.monitor.StartServer(); err != nil {
		panic(err)
	}
}
