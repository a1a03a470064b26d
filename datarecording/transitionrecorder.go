package datarecording

import (
	"sync"

	"github.com/sarchlab/dsidisplay/hooking"
)

// TransitionTable is the table TransitionRecorder writes to.
const TransitionTable = "transitions"

// Transition is one hardware transition made while serving a request.
type Transition struct {
	Time     float64
	Domain   string
	Request  string
	TaskKind string
	Kind     string
	What     string
	Detail   string
}

type openTask struct {
	kind string
	what string
}

// TransitionRecorder is a hook that writes one row per task step.
type TransitionRecorder struct {
	recorder   DataRecorder
	timeTeller hooking.TimeTeller

	lock  sync.Mutex
	tasks map[string]openTask
	count uint64
}

// NewTransitionRecorder creates the transition table in recorder.
func NewTransitionRecorder(
	recorder DataRecorder,
	timeTeller hooking.TimeTeller,
) *TransitionRecorder {
	recorder.CreateTable(TransitionTable, Transition{})

	return &TransitionRecorder{
		recorder:   recorder,
		timeTeller: timeTeller,
		tasks:      make(map[string]openTask),
	}
}

// Func records the steps of the tasks it has seen start.
func (r *TransitionRecorder) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case hooking.HookPosTaskStart:
		ts := ctx.Item.(hooking.TaskStart)

		r.lock.Lock()
		r.tasks[ts.ID] = openTask{kind: ts.Kind, what: ts.What}
		r.lock.Unlock()
	case hooking.HookPosTaskStep:
		r.record(ctx.Domain, ctx.Item.(hooking.TaskStep))
	case hooking.HookPosTaskEnd:
		r.lock.Lock()
		delete(r.tasks, ctx.Item.(hooking.TaskEnd).ID)
		r.lock.Unlock()
	}
}

func (r *TransitionRecorder) record(
	domain hooking.Hookable,
	step hooking.TaskStep,
) {
	r.lock.Lock()
	defer r.lock.Unlock()

	task, ok := r.tasks[step.TaskID]
	if !ok {
		return
	}

	name := ""
	if domain != nil {
		name = domain.Name()
	}

	r.recorder.InsertData(TransitionTable, Transition{
		Time:     r.timeTeller.Now(),
		Domain:   name,
		Request:  task.what,
		TaskKind: task.kind,
		Kind:     step.Kind,
		What:     step.What,
		Detail:   step.Detail,
	})
	r.count++
}

// Count returns the number of transitions recorded.
func (r *TransitionRecorder) Count() uint64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.count
}
