package hooking

// StepCountTracer counts the hardware calls made by the tasks that pass its
// filter. Steps are keyed by "kind:what", for example "ctrl:SetPowerState".
type StepCountTracer struct {
	counter taskCounter
}

// NewStepCountTracer creates a StepCountTracer. A nil filter accepts every
// task.
func NewStepCountTracer(filter TaskFilter) *StepCountTracer {
	return &StepCountTracer{counter: newTaskCounter(filter)}
}

// Func dispatches a hook to the tracer.
func (t *StepCountTracer) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case TaskStart:
		t.StartTask(item)
	case TaskStep:
		t.StepTask(item)
	case TaskEnd:
		t.EndTask(item)
	}
}

// StartTask starts counting the steps of a task.
func (t *StepCountTracer) StartTask(start TaskStart) {
	t.counter.start(start)
}

// StepTask counts one step.
func (t *StepCountTracer) StepTask(step TaskStep) {
	t.counter.count(step.TaskID, step.Kind+":"+step.What)
}

// EndTask stops counting the steps of a task.
func (t *StepCountTracer) EndTask(end TaskEnd) {
	t.counter.end(end.ID)
}

// GetStepNames returns the step names in the order they were first seen.
func (t *StepCountTracer) GetStepNames() []string {
	return t.counter.namesSeen()
}

// GetStepCount returns the number of times a step was taken.
func (t *StepCountTracer) GetStepCount(name string) uint64 {
	return t.counter.countOf(name)
}
