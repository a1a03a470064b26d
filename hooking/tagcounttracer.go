package hooking

// TagCountTracer counts the tags attached to the tasks that pass its filter,
// for example how many recoveries ended as "dropped".
type TagCountTracer struct {
	counter taskCounter
}

// NewTagCountTracer creates a TagCountTracer. A nil filter accepts every task.
func NewTagCountTracer(filter TaskFilter) *TagCountTracer {
	return &TagCountTracer{counter: newTaskCounter(filter)}
}

// Func dispatches a hook to the tracer.
func (t *TagCountTracer) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case TaskStart:
		t.StartTask(item)
	case TaskTag:
		t.TagTask(item)
	case TaskEnd:
		t.EndTask(item)
	}
}

// StartTask starts counting the tags of a task.
func (t *TagCountTracer) StartTask(start TaskStart) {
	t.counter.start(start)
}

// TagTask counts one tag.
func (t *TagCountTracer) TagTask(tag TaskTag) {
	t.counter.count(tag.TaskID, tag.What)
}

// EndTask stops counting the tags of a task.
func (t *TagCountTracer) EndTask(end TaskEnd) {
	t.counter.end(end.ID)
}

// GetTagNames returns the tag names in the order they were first seen.
func (t *TagCountTracer) GetTagNames() []string {
	return t.counter.namesSeen()
}

// GetTagCount returns the number of times a tag was attached.
func (t *TagCountTracer) GetTagCount(name string) uint64 {
	return t.counter.countOf(name)
}
