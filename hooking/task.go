package hooking

import "time"

// Positions at which tasks are reported.
var (
	HookPosTaskStart = &HookPos{Name: "HookPosTaskStart"}
	HookPosTaskTag   = &HookPos{Name: "HookPosTaskTag"}
	HookPosTaskStep  = &HookPos{Name: "HookPosTaskStep"}
	HookPosTaskEnd   = &HookPos{Name: "HookPosTaskEnd"}
)

// TaskStart opens a task. Domain is the name of the object that runs it.
type TaskStart struct {
	ID       string
	ParentID string
	Kind     string
	What     string
	Domain   string
}

// TaskStep is one hardware call or state change made while a task runs.
type TaskStep struct {
	TaskID string
	StepID string
	Kind   string
	What   string
	Detail string
}

// TaskTag annotates a task with an outcome or a condition.
type TaskTag struct {
	TaskID string
	What   string
	Detail string
}

// TaskEnd closes a task.
type TaskEnd struct {
	ID string
}

// Step is a TaskStep with the time it was taken.
type Step struct {
	ID     string
	Time   float64
	Kind   string
	What   string
	Detail string
}

// Tag is a recorded TaskTag.
type Tag struct {
	What   string
	Detail string
}

// Task is the full record of a task, as handed to a TracerBackend.
type Task struct {
	ID        string
	ParentID  string
	Kind      string
	What      string
	Domain    string
	StartTime float64
	EndTime   float64
	Steps     []Step
	Tags      []Tag
}

// Duration returns the time between the start and the end of the task.
func (t Task) Duration() float64 {
	return t.EndTime - t.StartTime
}

// HasTag reports whether a tag with the given name was attached.
func (t Task) HasTag(what string) bool {
	for _, tag := range t.Tags {
		if tag.What == what {
			return true
		}
	}

	return false
}

// TaskFilter selects the tasks a tracer is interested in.
type TaskFilter func(t TaskStart) bool

func (f TaskFilter) accepts(t TaskStart) bool {
	return f == nil || f(t)
}

// A TimeTeller tells the current time in seconds.
type TimeTeller interface {
	Now() float64
}

// WallClock tells the seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a WallClock that starts at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the seconds elapsed since the clock was created.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
