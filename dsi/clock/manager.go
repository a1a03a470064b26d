package clock

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/hooking"
	"github.com/sarchlab/dsidisplay/idgen"
)

// Registry owns the clock managers of all displays. A single lock serializes
// every request across all managers. Callers that hold a display lock must
// acquire it before the registry lock.
type Registry struct {
	hooking.HookableBase

	name     string
	lock     sync.Mutex
	log      logr.Logger
	ids      idgen.IDGenerator
	managers map[string]*Manager
}

// Name returns the name of the registry.
func (r *Registry) Name() string {
	return r.name
}

// Register creates the manager of a display. The hooks and the provider are
// fixed for the lifetime of the manager.
func (r *Registry) Register(
	name string,
	hooks Hooks,
	provider Provider,
) (*Manager, error) {
	if name == "" {
		return nil, errors.Wrap(dsi.ErrInvalidConfig, "clock client name is empty")
	}

	if hooks == nil || provider == nil {
		return nil, errors.Wrapf(dsi.ErrInvalidConfig,
			"clock manager %s needs hooks and a provider", name)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, found := r.managers[name]; found {
		return nil, errors.Wrapf(dsi.ErrInvalidConfig,
			"clock manager %s already registered", name)
	}

	m := &Manager{
		registry: r,
		name:     name,
		hooks:    hooks,
		provider: provider,
		log:      r.log.WithValues("manager", name),
	}
	r.managers[name] = m

	return m, nil
}

// Deregister removes a manager. Its handles must not be used afterwards.
func (r *Registry) Deregister(m *Manager) {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.managers, m.name)
	m.handles = nil
}

// Manager returns the manager registered under a name.
func (r *Registry) Manager(name string) (*Manager, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	m, found := r.managers[name]

	return m, found
}

// ManagerNames returns the names of all registered managers in order.
func (r *Registry) ManagerNames() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Handle is the vote of one client on the clocks of a display.
type Handle struct {
	manager   *Manager
	client    string
	coreCount int
	linkCount int
}

// Client returns the name of the client that owns the handle.
func (h *Handle) Client() string {
	return h.client
}

// HandleStatus is a snapshot of the votes of one handle.
type HandleStatus struct {
	Client    string `json:"client"`
	CoreCount int    `json:"core_count"`
	LinkCount int    `json:"link_count"`
}

// Status is a snapshot of a manager.
type Status struct {
	Name    string         `json:"name"`
	Core    string         `json:"core"`
	Link    string         `json:"link"`
	Handles []HandleStatus `json:"handles"`
}

// Manager aggregates the votes of the clients of one display and switches the
// display clocks accordingly.
type Manager struct {
	registry *Registry
	name     string
	hooks    Hooks
	provider Provider
	log      logr.Logger

	handles []*Handle
	core    State
	link    State
}

// Name returns the name of the manager.
func (m *Manager) Name() string {
	return m.name
}

// NewHandle creates a handle for a client. The handle starts with no votes.
func (m *Manager) NewHandle(client string) *Handle {
	m.registry.lock.Lock()
	defer m.registry.lock.Unlock()

	h := &Handle{manager: m, client: client}
	m.handles = append(m.handles, h)

	return h
}

// ReleaseHandle removes a handle. Its votes are dropped and the clocks
// follow the remaining votes.
func (m *Manager) ReleaseHandle(h *Handle) error {
	m.registry.lock.Lock()
	defer m.registry.lock.Unlock()

	for i, other := range m.handles {
		if other == h {
			m.handles = append(m.handles[:i], m.handles[i+1:]...)
			h.manager = nil

			return m.reconcile(fmt.Sprintf("release %s", h.client))
		}
	}

	return errors.Wrapf(dsi.ErrNotFound, "handle %s", h.client)
}

// State returns the aggregated state of the core and link clocks.
func (m *Manager) State() (core, link State) {
	m.registry.lock.Lock()
	defer m.registry.lock.Unlock()

	return m.core, m.link
}

// Status returns a snapshot of the manager.
func (m *Manager) Status() Status {
	m.registry.lock.Lock()
	defer m.registry.lock.Unlock()

	s := Status{
		Name: m.name,
		Core: m.core.String(),
		Link: m.link.String(),
	}

	for _, h := range m.handles {
		s.Handles = append(s.Handles, HandleStatus{
			Client:    h.client,
			CoreCount: h.coreCount,
			LinkCount: h.linkCount,
		})
	}

	return s
}

// Request votes for clocks to be on or off on behalf of a handle. Turning the
// link clocks on also keeps the core clocks on. A request to turn off a clock
// that the handle has not voted for fails with dsi.ErrInvalidState. If the
// hardware transition fails, the vote is reverted and the clocks are brought
// back to the state of the remaining votes.
func (m *Manager) Request(h *Handle, t Type, s State) error {
	m.registry.lock.Lock()
	defer m.registry.lock.Unlock()

	if h == nil || h.manager != m {
		return errors.Wrapf(dsi.ErrInvalidConfig,
			"handle does not belong to clock manager %s", m.name)
	}

	if t&All == 0 || t&^All != 0 {
		return errors.Wrapf(dsi.ErrInvalidConfig, "invalid clock type %d", t)
	}

	coreCount, linkCount := h.coreCount, h.linkCount

	if err := h.vote(t, s); err != nil {
		return err
	}

	what := fmt.Sprintf("%s %s %s", h.client, t, s)
	if err := m.reconcile(what); err != nil {
		h.coreCount, h.linkCount = coreCount, linkCount

		if rerr := m.reconcile("revert " + what); rerr != nil {
			m.log.Error(rerr, "failed to revert clocks", "client", h.client)
		}

		return errors.Wrapf(err, "clock manager %s: %s", m.name, what)
	}

	return nil
}

func (h *Handle) vote(t Type, s State) error {
	if s == On {
		if t&Core != 0 {
			h.coreCount++
		}

		if t&Link != 0 {
			h.linkCount++
		}

		return nil
	}

	if (t&Core != 0 && h.coreCount == 0) || (t&Link != 0 && h.linkCount == 0) {
		return errors.Wrapf(dsi.ErrInvalidState,
			"%s turns off %s clocks it has not turned on", h.client, t)
	}

	if t&Core != 0 {
		h.coreCount--
	}

	if t&Link != 0 {
		h.linkCount--
	}

	return nil
}

func (m *Manager) wanted() (core, link State) {
	for _, h := range m.handles {
		if h.linkCount > 0 {
			return On, On
		}

		if h.coreCount > 0 {
			core = On
		}
	}

	return core, Off
}

func (m *Manager) reconcile(what string) error {
	core, link := m.wanted()
	if core == m.core && link == m.link {
		return nil
	}

	taskID := m.registry.ids.Generate()
	hooking.StartTask(taskID, "", m.registry, "clock", what)
	defer hooking.EndTask(taskID, m.registry)

	if core == On && m.core == Off {
		if err := m.coreOn(taskID); err != nil {
			return err
		}
	}

	if link == On && m.link == Off {
		if err := m.linkOn(taskID); err != nil {
			return err
		}
	}

	if link == Off && m.link == On {
		if err := m.linkOff(taskID); err != nil {
			return err
		}
	}

	if core == Off && m.core == On {
		if err := m.coreOff(taskID); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) step(taskID, what string) {
	hooking.AddTaskStep(taskID, m.registry.ids.Generate(), m.registry,
		"clock", what, m.name)
	m.log.V(1).Info("clock transition", "step", what)
}

func (m *Manager) coreOn(taskID string) error {
	if err := m.hooks.PreClkOn(Core, LinkNone, On); err != nil {
		return errors.Wrap(err, "pre core clock on")
	}

	if err := m.provider.ClkOn(Core); err != nil {
		return errors.Wrap(err, "core clock on")
	}

	m.core = On
	m.step(taskID, "core_on")

	if err := m.hooks.PostClkOn(Core, LinkNone, On); err != nil {
		return errors.Wrap(err, "post core clock on")
	}

	return nil
}

func (m *Manager) linkOn(taskID string) error {
	if err := m.hooks.PreClkOn(Link, LinkAll, On); err != nil {
		return errors.Wrap(err, "pre link clock on")
	}

	if err := m.provider.ClkOn(Link); err != nil {
		return errors.Wrap(err, "link clock on")
	}

	m.link = On
	m.step(taskID, "link_on")

	if err := m.hooks.PostClkOn(Link, LinkLP, On); err != nil {
		return errors.Wrap(err, "post lp link clock on")
	}

	if err := m.hooks.PostClkOn(Link, LinkHS, On); err != nil {
		return errors.Wrap(err, "post hs link clock on")
	}

	return nil
}

func (m *Manager) linkOff(taskID string) error {
	if err := m.hooks.PreClkOff(Link, LinkHS, Off); err != nil {
		return errors.Wrap(err, "pre hs link clock off")
	}

	if err := m.hooks.PreClkOff(Link, LinkLP, Off); err != nil {
		return errors.Wrap(err, "pre lp link clock off")
	}

	if err := m.provider.ClkOff(Link); err != nil {
		return errors.Wrap(err, "link clock off")
	}

	m.link = Off
	m.step(taskID, "link_off")

	if err := m.hooks.PostClkOff(Link, LinkAll, Off); err != nil {
		return errors.Wrap(err, "post link clock off")
	}

	return nil
}

func (m *Manager) coreOff(taskID string) error {
	if err := m.hooks.PreClkOff(Core, LinkNone, Off); err != nil {
		return errors.Wrap(err, "pre core clock off")
	}

	if err := m.provider.ClkOff(Core); err != nil {
		return errors.Wrap(err, "core clock off")
	}

	m.core = Off
	m.step(taskID, "core_off")

	if err := m.hooks.PostClkOff(Core, LinkNone, Off); err != nil {
		return errors.Wrap(err, "post core clock off")
	}

	return nil
}
