package datarecording

import "github.com/sarchlab/dsidisplay/hooking"

// Tables written by TaskWriter.
const (
	TaskTable = "trace_tasks"
	StepTable = "trace_steps"
	TagTable  = "trace_tags"
)

// TaskRow is one traced task.
type TaskRow struct {
	ID        string
	ParentID  string
	Kind      string
	What      string
	Domain    string
	StartTime float64
	EndTime   float64
}

// StepRow is one step of a traced task.
type StepRow struct {
	ID     string
	TaskID string
	Time   float64
	Kind   string
	What   string
	Detail string
}

// TagRow is one tag of a traced task.
type TagRow struct {
	TaskID string
	What   string
	Detail string
}

// TaskWriter stores the tasks of a hooking.DBTracer in a DataRecorder.
type TaskWriter struct {
	recorder DataRecorder
}

// NewTaskWriter creates the trace tables in recorder.
func NewTaskWriter(recorder DataRecorder) *TaskWriter {
	recorder.CreateTable(TaskTable, TaskRow{})
	recorder.CreateTable(StepTable, StepRow{})
	recorder.CreateTable(TagTable, TagRow{})

	return &TaskWriter{recorder: recorder}
}

// Write buffers a task together with its steps and tags.
func (w *TaskWriter) Write(task hooking.Task) {
	w.recorder.InsertData(TaskTable, TaskRow{
		ID:        task.ID,
		ParentID:  task.ParentID,
		Kind:      task.Kind,
		What:      task.What,
		Domain:    task.Domain,
		StartTime: task.StartTime,
		EndTime:   task.EndTime,
	})

	for _, s := range task.Steps {
		w.recorder.InsertData(StepTable, StepRow{
			ID:     s.ID,
			TaskID: task.ID,
			Time:   s.Time,
			Kind:   s.Kind,
			What:   s.What,
			Detail: s.Detail,
		})
	}

	for _, t := range task.Tags {
		w.recorder.InsertData(TagTable, TagRow{
			TaskID: task.ID,
			What:   t.What,
			Detail: t.Detail,
		})
	}
}

// Flush writes the buffered tasks.
func (w *TaskWriter) Flush() {
	w.recorder.Flush()
}

var _ hooking.TracerBackend = (*TaskWriter)(nil)
