package hooking

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// taskPrinter prints one open task of a back trace.
type taskPrinter interface {
	Print(task TaskStart)
}

type writerTaskPrinter struct {
	w io.Writer
}

func (p writerTaskPrinter) Print(task TaskStart) {
	fmt.Fprintf(p.w, "  %s %s @ %s\n", task.Kind, task.What, task.Domain)
}

// BackTraceTracer remembers the tasks that have not ended. When a sequence
// stalls, for example while waiting for a dynamic refresh to complete, the
// chain from the stalled step up to the entry point can be printed.
type BackTraceTracer struct {
	printer taskPrinter

	lock sync.Mutex
	open map[string]TaskStart
}

// NewBackTraceTracer creates a BackTraceTracer. A nil printer prints to
// stderr.
func NewBackTraceTracer(printer taskPrinter) *BackTraceTracer {
	if printer == nil {
		printer = writerTaskPrinter{w: os.Stderr}
	}

	return &BackTraceTracer{
		printer: printer,
		open:    make(map[string]TaskStart),
	}
}

// Func dispatches a hook to the tracer.
func (t *BackTraceTracer) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case TaskStart:
		t.StartTask(item)
	case TaskEnd:
		t.EndTask(item)
	}
}

// StartTask marks a task as open.
func (t *BackTraceTracer) StartTask(start TaskStart) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.open[start.ID] = start
}

// EndTask forgets a task.
func (t *BackTraceTracer) EndTask(end TaskEnd) {
	t.lock.Lock()
	defer t.lock.Unlock()

	delete(t.open, end.ID)
}

// InflightCount returns the number of open tasks.
func (t *BackTraceTracer) InflightCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return len(t.open)
}

// DumpBackTrace prints a task followed by each of its open ancestors.
func (t *BackTraceTracer) DumpBackTrace(taskID string) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.dumpLocked(taskID)
}

func (t *BackTraceTracer) dumpLocked(taskID string) {
	for {
		task, ok := t.open[taskID]
		if !ok {
			return
		}

		t.printer.Print(task)
		taskID = task.ParentID
	}
}

// DumpAll prints the back trace of every open task that has no open child,
// ordered by task ID.
func (t *BackTraceTracer) DumpAll() {
	t.lock.Lock()
	defer t.lock.Unlock()

	hasChild := make(map[string]bool, len(t.open))
	for _, task := range t.open {
		hasChild[task.ParentID] = true
	}

	leaves := make([]string, 0, len(t.open))
	for id := range t.open {
		if !hasChild[id] {
			leaves = append(leaves, id)
		}
	}

	sort.Strings(leaves)

	for _, id := range leaves {
		t.dumpLocked(id)
	}
}
