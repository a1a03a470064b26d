package hooking

import "sync"

// taskCounter counts named events that belong to the tasks accepted by a
// filter. Names are kept in the order they were first seen.
type taskCounter struct {
	filter TaskFilter

	lock     sync.Mutex
	inflight map[string]bool
	names    []string
	counts   map[string]uint64
}

func newTaskCounter(filter TaskFilter) taskCounter {
	return taskCounter{
		filter:   filter,
		inflight: make(map[string]bool),
		counts:   make(map[string]uint64),
	}
}

func (c *taskCounter) start(t TaskStart) {
	if !c.filter.accepts(t) {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.inflight[t.ID] = true
}

func (c *taskCounter) end(id string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	delete(c.inflight, id)
}

func (c *taskCounter) count(taskID, name string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if !c.inflight[taskID] {
		return
	}

	if _, seen := c.counts[name]; !seen {
		c.names = append(c.names, name)
	}

	c.counts[name]++
}

func (c *taskCounter) namesSeen() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]string(nil), c.names...)
}

func (c *taskCounter) countOf(name string) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.counts[name]
}
