package recovery

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/hooking"
	"github.com/sarchlab/dsidisplay/idgen"
)

var errDropped = errors.New("recovery dropped")

// Counters counts what happened to the faults of one kind.
type Counters struct {
	Notified  uint64 `json:"notified"`
	Coalesced uint64 `json:"coalesced"`
	Dropped   uint64 `json:"dropped"`
	Recovered uint64 `json:"recovered"`
	Failed    uint64 `json:"failed"`
}

// WorkerStatus is a snapshot of one worker.
type WorkerStatus struct {
	Kind     string   `json:"kind"`
	State    string   `json:"state"`
	Counters Counters `json:"counters"`
}

type worker struct {
	kind    Kind
	pending chan struct{}

	lock     sync.Mutex
	state    State
	counters Counters
	closed   bool
}

func (w *worker) update(f func(w *worker)) {
	w.lock.Lock()
	defer w.lock.Unlock()

	f(w)
}

// Supervisor schedules and runs the recovery of one display.
type Supervisor struct {
	hooking.HookableBase

	name     string
	target   Target
	callback Callback
	settle   time.Duration
	log      logr.Logger
	ids      idgen.IDGenerator

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	workers map[Kind]*worker
}

// Name returns the name of the supervisor.
func (s *Supervisor) Name() string {
	return s.name
}

func (s *Supervisor) start() {
	for _, k := range Kinds {
		w := &worker{
			kind:    k,
			pending: make(chan struct{}, 1),
		}
		s.workers[k] = w

		s.wg.Add(1)
		go s.run(w)
	}
}

func (s *Supervisor) run(w *worker) {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-w.pending:
			if s.ctx.Err() != nil {
				w.update(func(w *worker) { w.counters.Dropped++ })
				return
			}

			s.handle(w)
		}
	}
}

// Notify reports a fault. It never blocks. A fault that is already pending is
// absorbed.
func (s *Supervisor) Notify(kind Kind) {
	w, found := s.workers[kind]
	if !found {
		s.log.Error(dsi.ErrInvalidConfig, "unknown fault kind", "kind", kind)
		return
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if w.closed {
		w.counters.Dropped++
		return
	}

	select {
	case w.pending <- struct{}{}:
		w.counters.Notified++
		if w.state == Idle {
			w.state = FaultDetected
		}
	default:
		w.counters.Coalesced++
		s.log.V(1).Info("fault coalesced", "kind", kind)
	}
}

// Close stops all workers and waits for them to return. A recovery that is
// running completes first. Faults that are still pending are dropped.
func (s *Supervisor) Close() {
	for _, w := range s.workers {
		w.update(func(w *worker) { w.closed = true })
	}

	s.cancel()
	s.wg.Wait()

	for _, w := range s.workers {
		w.update(func(w *worker) {
			select {
			case <-w.pending:
				w.counters.Dropped++
			default:
			}

			w.state = Idle
		})
	}
}

// Status returns a snapshot of every worker.
func (s *Supervisor) Status() []WorkerStatus {
	status := make([]WorkerStatus, 0, len(Kinds))

	for _, k := range Kinds {
		w := s.workers[k]

		w.lock.Lock()
		status = append(status, WorkerStatus{
			Kind:     k.String(),
			State:    w.state.String(),
			Counters: w.counters,
		})
		w.lock.Unlock()
	}

	return status
}

// Counters returns the counters of one kind.
func (s *Supervisor) Counters(kind Kind) Counters {
	w := s.workers[kind]

	w.lock.Lock()
	defer w.lock.Unlock()

	return w.counters
}

func (s *Supervisor) handle(w *worker) {
	w.update(func(w *worker) { w.state = Recovering })

	taskID := s.ids.Generate()
	hooking.StartTask(taskID, "", s, "recovery", w.kind.String())

	err := s.recover(w.kind)

	result := "recovered"
	switch {
	case err == nil:
		w.update(func(w *worker) { w.counters.Recovered++ })
	case errors.Is(err, errDropped):
		result = "dropped"
		w.update(func(w *worker) { w.counters.Dropped++ })
		s.log.V(1).Info("recovery dropped", "kind", w.kind, "reason", err)
	default:
		result = "failed"
		w.update(func(w *worker) { w.counters.Failed++ })
		s.log.Error(err, "recovery failed", "kind", w.kind)
	}

	hooking.TagTask(taskID, s, result, w.kind.String())
	hooking.EndTask(taskID, s)

	w.update(func(w *worker) {
		if len(w.pending) > 0 {
			w.state = FaultDetected
		} else {
			w.state = Idle
		}
	})
}

func (s *Supervisor) recover(kind Kind) error {
	if s.target.ESDRecoveryPending() {
		return errors.Wrap(errDropped, "esd recovery pending")
	}

	if kind != FIFOUnderflow && s.target.OpMode() != dsi.OpModeVideo {
		return errors.Wrap(errDropped, "panel not in video mode")
	}

	return s.target.RunLocked(func(t LockedTarget) error {
		if !t.ValidHostState() {
			return errors.Wrap(errDropped, "host state not valid")
		}

		if err := t.ClocksOn(); err != nil {
			return errors.Wrap(err, "clocks on")
		}

		err := s.reset(t, kind)

		if cerr := t.ClocksOff(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "clocks off")
		}

		return err
	})
}

func (s *Supervisor) reset(t LockedTarget, kind Kind) error {
	if kind == FIFOUnderflow {
		return t.SoftReset()
	}

	version := t.HWVersion()
	if version == 0 || version < dsi.MinRecoveryHWVersion {
		return errors.Wrapf(errDropped,
			"hw version 0x%x does not support lane reset", version)
	}

	if err := t.ResetLanes(kind.resetMask()); err != nil {
		return err
	}

	if s.callback != nil {
		if err := s.callback(s.ctx, kind); err != nil {
			return errors.Wrap(err, "recovery callback")
		}
	}

	if err := t.EnableVideoEngines(); err != nil {
		return err
	}

	time.Sleep(s.settle)

	return nil
}
