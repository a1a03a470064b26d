package hooking

import (
	"sort"
	"sync"

	"github.com/tebeka/atexit"
)

// TagUnfinished is attached to the tasks that were still open when a
// DBTracer terminated.
const TagUnfinished = "unfinished"

// TracerBackend stores completed tasks.
type TracerBackend interface {
	// Write stores a task. The backend may buffer it.
	Write(t Task)

	// Flush pushes buffered tasks to the storage.
	Flush()
}

type timeWindow struct {
	from, to float64
}

func (w timeWindow) startsTooLate(t float64) bool {
	return w.to > 0 && t > w.to
}

func (w timeWindow) endsTooEarly(t float64) bool {
	return w.from > 0 && t < w.from
}

// DBTracer assembles the start, steps, tags and end of each task into a Task
// and hands it to a backend once the task ends.
type DBTracer struct {
	timeTeller TimeTeller
	backend    TracerBackend

	lock   sync.Mutex
	window timeWindow
	open   map[string]*Task
}

// NewDBTracer creates a DBTracer. Open tasks are written out when the process
// exits through atexit.
func NewDBTracer(
	timeTeller TimeTeller,
	backend TracerBackend,
) *DBTracer {
	t := &DBTracer{
		timeTeller: timeTeller,
		backend:    backend,
		open:       make(map[string]*Task),
	}

	atexit.Register(t.Terminate)

	return t
}

// SetTimeRange limits the tracer to tasks that overlap [from, to]. A zero
// bound is open.
func (t *DBTracer) SetTimeRange(from, to float64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.window = timeWindow{from: from, to: to}
}

// Func dispatches a hook to the tracer.
func (t *DBTracer) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case TaskStart:
		t.StartTask(item)
	case TaskStep:
		t.StepTask(item)
	case TaskTag:
		t.TagTask(item)
	case TaskEnd:
		t.EndTask(item)
	}
}

// StartTask opens a task.
func (t *DBTracer) StartTask(start TaskStart) {
	taskStartMustBeValid(start)

	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.window.startsTooLate(now) {
		return
	}

	t.open[start.ID] = &Task{
		ID:        start.ID,
		ParentID:  start.ParentID,
		Kind:      start.Kind,
		What:      start.What,
		Domain:    start.Domain,
		StartTime: now,
	}
}

// StepTask appends a step to an open task.
func (t *DBTracer) StepTask(step TaskStep) {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	task, ok := t.open[step.TaskID]
	if !ok {
		return
	}

	task.Steps = append(task.Steps, Step{
		ID:     step.StepID,
		Time:   now,
		Kind:   step.Kind,
		What:   step.What,
		Detail: step.Detail,
	})
}

// TagTask appends a tag to an open task.
func (t *DBTracer) TagTask(tag TaskTag) {
	t.lock.Lock()
	defer t.lock.Unlock()

	task, ok := t.open[tag.TaskID]
	if !ok {
		return
	}

	task.Tags = append(task.Tags, Tag{What: tag.What, Detail: tag.Detail})
}

// EndTask closes a task and writes it to the backend.
func (t *DBTracer) EndTask(end TaskEnd) {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	task, ok := t.open[end.ID]
	if !ok {
		return
	}

	delete(t.open, end.ID)

	if t.window.endsTooEarly(now) {
		return
	}

	task.EndTime = now
	t.backend.Write(*task)
}

// Terminate writes the tasks that are still open, oldest first and tagged as
// unfinished, and flushes the backend.
func (t *DBTracer) Terminate() {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	pending := make([]*Task, 0, len(t.open))
	for _, task := range t.open {
		pending = append(pending, task)
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].StartTime < pending[j].StartTime
	})

	for _, task := range pending {
		task.EndTime = now
		task.Tags = append(task.Tags, Tag{What: TagUnfinished})
		t.backend.Write(*task)
	}

	t.open = make(map[string]*Task)

	t.backend.Flush()
}
