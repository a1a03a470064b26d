package hooking

import (
	"sort"
	"sync"
)

// TimeStat is the accumulated duration of a group of tasks.
type TimeStat struct {
	What  string
	Count uint64
	Total float64
}

// Average returns Total / Count, or zero for an empty group.
func (s TimeStat) Average() float64 {
	if s.Count == 0 {
		return 0
	}

	return s.Total / float64(s.Count)
}

// TotalAvgTimeTracer accumulates how long the tasks that pass its filter take,
// overall and per task name. Overlapping tasks are simply summed.
type TotalAvgTimeTracer struct {
	timeTeller TimeTeller
	filter     TaskFilter

	lock    sync.Mutex
	started map[string]TaskStart
	startAt map[string]float64
	overall TimeStat
	perWhat map[string]*TimeStat
}

// NewAverageTimeTracer creates a TotalAvgTimeTracer. A nil filter accepts
// every task.
func NewAverageTimeTracer(
	timeTeller TimeTeller,
	filter TaskFilter,
) *TotalAvgTimeTracer {
	return &TotalAvgTimeTracer{
		timeTeller: timeTeller,
		filter:     filter,
		started:    make(map[string]TaskStart),
		startAt:    make(map[string]float64),
		perWhat:    make(map[string]*TimeStat),
	}
}

// Func dispatches a hook to the tracer.
func (t *TotalAvgTimeTracer) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case TaskStart:
		t.StartTask(item)
	case TaskEnd:
		t.EndTask(item)
	}
}

// StartTask records when a task started.
func (t *TotalAvgTimeTracer) StartTask(start TaskStart) {
	if !t.filter.accepts(start) {
		return
	}

	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	t.started[start.ID] = start
	t.startAt[start.ID] = now
}

// EndTask adds the duration of a task to the totals.
func (t *TotalAvgTimeTracer) EndTask(end TaskEnd) {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	start, ok := t.started[end.ID]
	if !ok {
		return
	}

	d := now - t.startAt[end.ID]
	delete(t.started, end.ID)
	delete(t.startAt, end.ID)

	t.overall.Count++
	t.overall.Total += d

	stat, ok := t.perWhat[start.What]
	if !ok {
		stat = &TimeStat{What: start.What}
		t.perWhat[start.What] = stat
	}

	stat.Count++
	stat.Total += d
}

// TotalTime returns the summed duration of the completed tasks.
func (t *TotalAvgTimeTracer) TotalTime() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.overall.Total
}

// AverageTime returns the average duration of a completed task.
func (t *TotalAvgTimeTracer) AverageTime() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.overall.Average()
}

// TotalCount returns the number of completed tasks.
func (t *TotalAvgTimeTracer) TotalCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.overall.Count
}

// Breakdown returns one TimeStat per task name, sorted by name.
func (t *TotalAvgTimeTracer) Breakdown() []TimeStat {
	t.lock.Lock()
	defer t.lock.Unlock()

	stats := make([]TimeStat, 0, len(t.perWhat))
	for _, s := range t.perWhat {
		stats = append(stats, *s)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].What < stats[j].What
	})

	return stats
}
