package display

// guard proves that the display lock is held. Only acquire hands one out; a
// guard made any other way panics when it is used.
type guard struct {
	d *Display
}

func (d *Display) acquire() guard {
	d.lock.Lock()
	return guard{d: d}
}

func (d *Display) release(g guard) {
	if g.d != d {
		panic("display lock released with a foreign guard")
	}

	g.mustHold()
	d.lock.Unlock()
}

func (g guard) mustHold() {
	if g.d == nil {
		panic("display lock guard not obtained from acquire")
	}

	if g.d.lock.TryLock() {
		g.d.lock.Unlock()
		panic("display lock guard used after release")
	}
}

// refCount counts the users of the command engine. It can only be changed
// by a holder of the display lock.
type refCount struct {
	n int
}

func (r *refCount) inc(g guard) int {
	g.mustHold()

	r.n++

	return r.n
}

// dec returns the new count and false if the count was already zero.
func (r *refCount) dec(g guard) (int, bool) {
	g.mustHold()

	if r.n == 0 {
		return 0, false
	}

	r.n--

	return r.n, true
}

func (r *refCount) value(g guard) int {
	g.mustHold()

	return r.n
}
