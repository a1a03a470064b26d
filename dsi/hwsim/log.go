// Package hwsim provides simulated DSI hardware. Every component records the
// calls it receives in a shared Log and can be told to fail selected calls.
package hwsim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrInjected is returned by calls that were set up to fail.
var ErrInjected = errors.New("injected fault")

// Log records the calls that simulated components receive, in order.
type Log struct {
	lock  sync.Mutex
	calls []string
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record appends a call.
func (l *Log) Record(call string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.calls = append(l.calls, call)
}

// Calls returns a copy of every recorded call.
func (l *Log) Calls() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	return append([]string(nil), l.calls...)
}

// Matching returns the recorded calls that contain every one of the given
// substrings.
func (l *Log) Matching(parts ...string) []string {
	var out []string

	for _, c := range l.Calls() {
		ok := true
		for _, p := range parts {
			if !strings.Contains(c, p) {
				ok = false
				break
			}
		}

		if ok {
			out = append(out, c)
		}
	}

	return out
}

// Reset forgets every recorded call.
func (l *Log) Reset() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.calls = nil
}

// faults selects calls that fail. A call is named by its method name, or by
// the method name and its formatted arguments.
type faults struct {
	lock  sync.Mutex
	owner string
	log   *Log
	fail  map[string]int
}

func newFaults(owner string, log *Log) *faults {
	return &faults{owner: owner, log: log, fail: make(map[string]int)}
}

// FailOn makes the next n calls of method fail. A negative n makes every
// call fail.
func (f *faults) FailOn(method string, n int) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.fail[method] = n
}

// ClearFaults removes all injected faults.
func (f *faults) ClearFaults() {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.fail = make(map[string]int)
}

// call records a call and returns the injected fault for it, if any.
func (f *faults) call(method string, args ...any) error {
	call := fmt.Sprintf("%s.%s(%s)", f.owner, method, formatArgs(args))
	if f.log != nil {
		f.log.Record(call)
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	for _, key := range []string{method, call} {
		n, ok := f.fail[key]
		if !ok || n == 0 {
			continue
		}

		if n > 0 {
			f.fail[key] = n - 1
		}

		return errors.Wrapf(ErrInjected, "%s", call)
	}

	return nil
}

func formatArgs(args []any) string {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = fmt.Sprint(a)
	}

	return strings.Join(s, ",")
}
