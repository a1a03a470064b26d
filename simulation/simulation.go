// Package simulation runs displays on simulated DSI hardware together with
// the tracing, recording and monitoring services around them.
package simulation

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/datarecording"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/display"
	"github.com/sarchlab/dsidisplay/dsi/hwsim"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
	"github.com/sarchlab/dsidisplay/hooking"
	"github.com/sarchlab/dsidisplay/idgen"
	"github.com/sarchlab/dsidisplay/monitoring"
)

// Rig is a display together with the simulated hardware it drives.
type Rig struct {
	name string

	Log        *hwsim.Log
	Ctrls      []*hwsim.Controller
	PHYs       []*hwsim.PHY
	Tree       *hwsim.Tree
	Panel      *hwsim.Panel
	Display    *display.Display
	Supervisor *recovery.Supervisor
}

type faultInjector interface {
	FailOn(method string, n int)
	ClearFaults()
}

func (r *Rig) device(owner string) (faultInjector, error) {
	if owner == "clk" {
		return r.Tree, nil
	}

	if owner == r.Panel.Name() {
		return r.Panel, nil
	}

	for _, c := range r.Ctrls {
		if c.Name() == owner {
			return c, nil
		}
	}

	for _, p := range r.PHYs {
		if p.Name() == owner {
			return p, nil
		}
	}

	return nil, errors.Wrapf(dsi.ErrNotFound, "no device %s in %s",
		owner, r.name)
}

// InjectFault makes a call of a simulated device fail n times, or always if
// n is negative. The call is named "<device>.<method>", for example
// "DSI1.SetVidEngineState", or with its arguments as they appear in the log.
func (r *Rig) InjectFault(call string, n int) error {
	owner, method, found := strings.Cut(call, ".")
	if !found || method == "" {
		return errors.Wrapf(dsi.ErrInvalidConfig, "fault %q is not "+
			"<device>.<method>", call)
	}

	dev, err := r.device(owner)
	if err != nil {
		return err
	}

	if strings.Contains(method, "(") {
		dev.FailOn(call, n)
	} else {
		dev.FailOn(method, n)
	}

	return nil
}

// ClearFaults removes every injected fault.
func (r *Rig) ClearFaults() {
	r.Tree.ClearFaults()
	r.Panel.ClearFaults()

	for _, c := range r.Ctrls {
		c.ClearFaults()
	}

	for _, p := range r.PHYs {
		p.ClearFaults()
	}
}

// A Simulation is a set of displays running on simulated hardware.
type Simulation struct {
	id         string
	log        logr.Logger
	ids        idgen.IDGenerator
	timeTeller *hooking.WallClock

	clocks   *clock.Registry
	displays *display.Registry
	rigs     map[string]*Rig
	names    []string

	hooks       []hooking.Hook
	stepCounter *hooking.StepCountTracer
	tagCounter  *hooking.TagCountTracer
	backTrace   *hooking.BackTraceTracer
	avgTime     *hooking.TotalAvgTimeTracer

	dataRecorder datarecording.DataRecorder
	exec         *datarecording.ExecRecorder
	dbTracer     *hooking.DBTracer
	transitions  *datarecording.TransitionRecorder

	monitor *monitoring.Monitor
}

func (s *Simulation) buildTracers() {
	s.stepCounter = hooking.NewStepCountTracer(nil)
	s.tagCounter = hooking.NewTagCountTracer(nil)
	s.backTrace = hooking.NewBackTraceTracer(nil)
	s.avgTime = hooking.NewAverageTimeTracer(s.timeTeller,
		func(t hooking.TaskStart) bool { return t.Kind == "display" })

	s.hooks = append(s.hooks, s.stepCounter, s.tagCounter, s.backTrace,
		s.avgTime)
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Names returns the names of the displays in the order they were configured.
func (s *Simulation) Names() []string {
	return append([]string(nil), s.names...)
}

// Rig returns a display and its simulated hardware.
func (s *Simulation) Rig(name string) (*Rig, error) {
	r, found := s.rigs[name]
	if !found {
		return nil, errors.Wrapf(dsi.ErrNotFound, "display %s", name)
	}

	return r, nil
}

// Displays returns the registry of the displays.
func (s *Simulation) Displays() *display.Registry {
	return s.displays
}

// ClockRegistry returns the registry of the clock managers.
func (s *Simulation) ClockRegistry() *clock.Registry {
	return s.clocks
}

// GetDataRecorder returns the data recorder used in the simulation, or nil
// if recording is off.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation, or nil if
// monitoring is off.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// StepCounter returns the tracer that counts hardware transitions.
func (s *Simulation) StepCounter() *hooking.StepCountTracer {
	return s.stepCounter
}

// TagCounter returns the tracer that counts task tags.
func (s *Simulation) TagCounter() *hooking.TagCountTracer {
	return s.tagCounter
}

// BackTrace returns the tracer that keeps the tasks in flight.
func (s *Simulation) BackTrace() *hooking.BackTraceTracer {
	return s.backTrace
}

// AverageTime returns the tracer of the time spent in display requests.
func (s *Simulation) AverageTime() *hooking.TotalAvgTimeTracer {
	return s.avgTime
}

// Transitions returns the number of recorded transitions.
func (s *Simulation) Transitions() uint64 {
	if s.transitions == nil {
		return 0
	}

	return s.transitions.Count()
}

// Terminate closes the displays together with their recovery workers, stops
// the server and writes the recording.
func (s *Simulation) Terminate() {
	for _, name := range s.names {
		if err := s.rigs[name].Display.Close(); err != nil {
			s.log.Error(err, "close display", "display", name)
		}
	}

	if s.monitor != nil {
		if err := s.monitor.StopServer(); err != nil {
			s.log.Error(err, "stop monitor")
		}
	}

	if s.dataRecorder == nil {
		return
	}

	s.dbTracer.Terminate()
	s.exec.End()

	if err := s.dataRecorder.Close(); err != nil {
		s.log.Error(err, "close recording")
	}
}
