package display

import (
	"github.com/pkg/errors"
)

// transition changes the state of one pair. It reports whether anything
// changed; a pair that is already in the requested state is left alone.
type transition func(p *pair) (bool, error)

// forEachWithUnwind applies do to every pair in list order. When a pair
// fails, undo is applied in reverse order to the pairs that do changed.
func (d *Display) forEachWithUnwind(
	what string,
	do transition,
	undo func(p *pair) error,
) error {
	var changed []*pair

	for _, p := range d.pairs {
		done, err := do(p)
		if err != nil {
			d.unwind(what, changed, undo)
			return errors.Wrapf(err, "%s %s", what, p.ctrl.Name())
		}

		if done {
			changed = append(changed, p)
		}
	}

	return nil
}

func (d *Display) unwind(what string, changed []*pair, undo func(p *pair) error) {
	for i := len(changed) - 1; i >= 0; i-- {
		p := changed[i]
		if err := undo(p); err != nil {
			d.log.Error(err, "unwind failed", "op", what, "ctrl", p.ctrl.Name())
		}
	}
}

// masterFirst applies on to the master pair and then to the slaves in list
// order. If a slave fails, the master is rolled back and the slaves that
// already changed are left as they are.
func (d *Display) masterFirst(
	what string,
	master int,
	on transition,
	rollback func(p *pair) error,
) error {
	m := d.pairs[master]

	masterChanged, err := on(m)
	if err != nil {
		return errors.Wrapf(err, "%s %s", what, m.ctrl.Name())
	}

	for _, p := range d.pairs {
		if p == m {
			continue
		}

		if _, err := on(p); err != nil {
			if masterChanged && rollback != nil {
				if rerr := rollback(m); rerr != nil {
					d.log.Error(rerr, "master rollback failed",
						"op", what, "ctrl", m.ctrl.Name())
				}
			}

			return errors.Wrapf(err, "%s %s", what, p.ctrl.Name())
		}
	}

	return nil
}

// slavesFirst applies off to the slaves in list order and then to the
// master. Failures do not stop the sequence; the first one is returned.
func (d *Display) slavesFirst(
	what string,
	master int,
	off func(p *pair) error,
) error {
	var first error

	record := func(p *pair, err error) {
		if err == nil {
			return
		}

		d.log.Error(err, what, "ctrl", p.ctrl.Name())

		if first == nil {
			first = errors.Wrapf(err, "%s %s", what, p.ctrl.Name())
		}
	}

	m := d.pairs[master]
	for _, p := range d.pairs {
		if p != m {
			record(p, off(p))
		}
	}

	record(m, off(m))

	return first
}

// eachPair applies f to every pair in list order and stops at the first
// failure.
func (d *Display) eachPair(what string, f func(p *pair) error) error {
	for _, p := range d.pairs {
		if err := f(p); err != nil {
			return errors.Wrapf(err, "%s %s", what, p.ctrl.Name())
		}
	}

	return nil
}

// unwinder collects the undo steps of a multi-step sequence.
type unwinder struct {
	d     *Display
	steps []unwindStep
}

type unwindStep struct {
	what string
	undo func() error
}

func (u *unwinder) push(what string, undo func() error) {
	u.steps = append(u.steps, unwindStep{what: what, undo: undo})
}

// run undoes every pushed step, the latest first.
func (u *unwinder) run() {
	for i := len(u.steps) - 1; i >= 0; i-- {
		s := u.steps[i]
		if err := s.undo(); err != nil {
			u.d.log.Error(err, "unwind failed", "step", s.what)
		}
	}

	u.steps = nil
}

// firstError keeps the first of a series of best-effort errors and logs the
// others.
type firstError struct {
	d   *Display
	err error
}

func (f *firstError) add(what string, err error) {
	if err == nil {
		return
	}

	f.d.log.Error(err, what)

	if f.err == nil {
		f.err = errors.Wrap(err, what)
	}
}
