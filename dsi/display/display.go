// Package display sequences the bring-up and tear-down of a DSI display.
//
// A Display owns one to four controller/PHY pairs that drive a single panel.
// It moves the pairs through their power states, master first on the way up
// and slaves first on the way down, votes for clocks through its clock
// manager and reacts to the clock transitions in its clock hooks. Every
// exported method takes the display lock for its whole duration.
package display

import (
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/mode"
	"github.com/sarchlab/dsidisplay/hooking"
	"github.com/sarchlab/dsidisplay/idgen"
)

// RecoveryWorker is a background worker that recovers the display from
// faults.
type RecoveryWorker interface {
	Close()
}

// Display is a DSI display made of controller/PHY pairs and a panel.
type Display struct {
	hooking.HookableBase

	name   string
	lock   sync.Mutex
	log    logr.Logger
	ids    idgen.IDGenerator
	taskID string

	pairs []*pair
	roles Roles
	split mode.SplitLink
	panel Panel

	clockRegistry     *clock.Registry
	clocks            *clock.Manager
	clockHandle       *clock.Handle
	splashHandle      *clock.Handle
	recoveryHandle    *clock.Handle
	tree              clock.Tree
	sourcePrepared    bool
	dynRefreshTimeout time.Duration
	recovery          RecoveryWorker
	closed            bool

	cmdEngineRefs        refCount
	prepared             bool
	ulpsEnabled          bool
	clampEnabled         bool
	phyIdlePowerOff      bool
	contSplash           bool
	tpgEnabled           bool
	current              *mode.Mode
	modes                []mode.Mode
	cachedClkRate        uint64
	clkRateChangePending bool
}

// Name returns the name of the display.
func (d *Display) Name() string {
	return d.name
}

// Panel returns the panel that the display drives.
func (d *Display) Panel() Panel {
	return d.panel
}

// Roles returns the master assignment of the display.
func (d *Display) Roles() Roles {
	return d.roles
}

// ControllerCount returns the number of controller/PHY pairs.
func (d *Display) ControllerCount() int {
	return len(d.pairs)
}

// SplitLink returns the split link configuration in effect.
func (d *Display) SplitLink() mode.SplitLink {
	return d.split
}

// OpMode returns the operating mode of the panel.
func (d *Display) OpMode() dsi.OpMode {
	return d.panel.OpMode()
}

// ESDRecoveryPending reports whether the panel is recovering from an ESD
// event.
func (d *Display) ESDRecoveryPending() bool {
	return d.panel.ESDRecoveryPending()
}

// ClockManager returns the clock manager of the display.
func (d *Display) ClockManager() *clock.Manager {
	return d.clocks
}

// AttachRecovery ties the recovery worker of the display to its lifetime.
// Close stops the worker before the clocks are released.
func (d *Display) AttachRecovery(w RecoveryWorker) {
	g := d.acquire()
	defer d.release(g)

	d.recovery = w
}

// Close stops the attached recovery worker, drops every clock vote of the
// display and removes its clock manager from the registry. The display must
// not be used afterwards. Closing a closed display does nothing.
func (d *Display) Close() error {
	g := d.acquire()
	w := d.recovery
	d.recovery = nil
	d.release(g)

	// The worker may be waiting for the display lock.
	if w != nil {
		w.Close()
	}

	g = d.enter("close")
	defer d.leave(g)

	if d.closed {
		return nil
	}

	d.closed = true

	errs := firstError{d: d}
	for _, h := range []*clock.Handle{
		d.recoveryHandle, d.splashHandle, d.clockHandle,
	} {
		errs.add("release clock handle", d.clocks.ReleaseHandle(h))
	}

	d.clockRegistry.Deregister(d.clocks)

	return errs.err
}

// CurrentMode returns the native form of the mode the display is set to.
func (d *Display) CurrentMode() (mode.Mode, bool) {
	g := d.acquire()
	defer d.release(g)

	if d.current == nil {
		return mode.Mode{}, false
	}

	return mode.ScaleToNative(*d.current, len(d.pairs), d.split), true
}

// enter locks the display and opens the trace task of an entry point.
func (d *Display) enter(what string) guard {
	g := d.acquire()

	if d.NumHooks() > 0 {
		d.taskID = d.ids.Generate()
		hooking.StartTask(d.taskID, "", d, "display", what)
	}

	return g
}

func (d *Display) leave(g guard) {
	if d.taskID != "" {
		hooking.EndTask(d.taskID, d)
		d.taskID = ""
	}

	d.release(g)
}

// step reports a hardware transition of a pair.
func (d *Display) step(kind, what string, p *pair) {
	d.log.V(1).Info(what, "kind", kind, "ctrl", p.ctrl.Name())

	if d.taskID == "" {
		return
	}

	hooking.AddTaskStep(d.taskID, d.ids.Generate(), d, kind, what,
		p.ctrl.Name())
}

// tag attaches a display level fact to the current task.
func (d *Display) tag(what, detail string) {
	if d.taskID == "" {
		return
	}

	hooking.TagTask(d.taskID, d, what, detail)
}
