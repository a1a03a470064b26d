// Package monitoring serves the diagnostics of running displays over HTTP.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/display"
	"github.com/sarchlab/dsidisplay/dsi/mode"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
	"github.com/sarchlab/dsidisplay/idgen"
	"github.com/sarchlab/dsidisplay/monitoring/web"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Display is what the monitor can inspect and control on a display.
type Display interface {
	Name() string
	Status() display.Status
	Info() string
	Modes() []mode.Mode
	MISRRead() (string, error)
	MISRWrite(in string) error
	ESDTrigger(in string) error
	ESDCheckModeRead() string
	ESDCheckModeWrite(in string) error
	DynamicClk() uint64
	SetDynamicClk(rate uint64) error
}

// Supervisor is what the monitor can inspect and control on a recovery
// supervisor.
type Supervisor interface {
	Name() string
	Status() []recovery.WorkerStatus
	Notify(kind recovery.Kind)
}

// Monitor turns a set of displays into a diagnostics server.
type Monitor struct {
	portNumber int
	log        logr.Logger
	ids        idgen.IDGenerator

	lock        sync.RWMutex
	displays    map[string]Display
	supervisors map[string]Supervisor

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar

	server *http.Server
	port   int
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		log:         logr.Discard(),
		ids:         idgen.NewSequentialIDGenerator(),
		displays:    make(map[string]Display),
		supervisors: make(map[string]Supervisor),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		m.log.Info("port not allowed, using a random port",
			"port", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithLogger sets the logger of the monitor.
func (m *Monitor) WithLogger(log logr.Logger) *Monitor {
	m.log = log
	return m
}

// RegisterDisplay registers a display to be monitored.
func (m *Monitor) RegisterDisplay(d Display) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.displays[d.Name()] = d
}

// RegisterSupervisor registers the recovery supervisor of a display.
func (m *Monitor) RegisterSupervisor(s Supervisor) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.supervisors[s.Name()] = s
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := newProgressBar(m.ids.Generate(), name, total)

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Handler returns the router that serves the monitor.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/displays", m.listDisplays).Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}", m.displayDetails).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/info", m.displayInfo).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/modes", m.displayModes).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/misr", m.readMISR).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/misr", m.writeMISR).
		Methods(http.MethodPost)
	r.HandleFunc("/api/display/{name}/esd_trigger", m.triggerESD).
		Methods(http.MethodPost)
	r.HandleFunc("/api/display/{name}/esd_check_mode", m.readESDCheckMode).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/esd_check_mode", m.writeESDCheckMode).
		Methods(http.MethodPost)
	r.HandleFunc("/api/display/{name}/dynamic_dsi_clock", m.readDynamicClk).
		Methods(http.MethodGet)
	r.HandleFunc("/api/display/{name}/dynamic_dsi_clock", m.writeDynamicClk).
		Methods(http.MethodPost)
	r.HandleFunc("/api/field/{json}", m.listFieldValue).
		Methods(http.MethodGet)
	r.HandleFunc("/api/recovery/{name}", m.recoveryStatus).
		Methods(http.MethodGet)
	r.HandleFunc("/api/recovery/{name}", m.notifyFault).
		Methods(http.MethodPost)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server and returns the port it
// listens on.
func (m *Monitor) StartServer() (int, error) {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return 0, errors.Wrap(err, "listen")
	}

	m.port = listener.Addr().(*net.TCPAddr).Port
	m.server = &http.Server{
		Handler:           m.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(os.Stderr,
		"Monitoring displays with http://localhost:%d\n", m.port)

	go func() {
		err := m.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.log.Error(err, "monitor server stopped")
		}
	}()

	return m.port, nil
}

// URL returns the address of a started server.
func (m *Monitor) URL() string {
	return fmt.Sprintf("http://localhost:%d", m.port)
}

// StopServer shuts the server down.
func (m *Monitor) StopServer() error {
	if m.server == nil {
		return nil
	}

	return m.server.Close()
}

func (m *Monitor) listDisplays(w http.ResponseWriter, _ *http.Request) {
	m.lock.RLock()
	names := make([]string, 0, len(m.displays))
	for name := range m.displays {
		names = append(names, name)
	}
	m.lock.RUnlock()

	sort.Strings(names)

	writeJSON(w, names)
}

func (m *Monitor) displayDetails(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	status := d.Status()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&status)
	serializer.SetMaxDepth(2)

	if err := serializer.Serialize(w); err != nil {
		m.log.Error(err, "serialize display", "display", d.Name())
	}
}

type fieldReq struct {
	DisplayName string `json:"display_name,omitempty"`
	FieldName   string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	req := fieldReq{}

	err := json.Unmarshal([]byte(mux.Vars(r)["json"]), &req)
	if err != nil {
		httpError(w, errors.Wrap(dsi.ErrInvalidConfig, err.Error()))
		return
	}

	d := m.findDisplay(req.DisplayName)
	if d == nil {
		http.Error(w, "Display not found", http.StatusNotFound)
		return
	}

	status := d.Status()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&status)
	serializer.SetMaxDepth(1)

	err = serializer.SetEntryPoint(strings.Split(req.FieldName, "."))
	if err != nil {
		httpError(w, errors.Wrap(dsi.ErrNotFound, err.Error()))
		return
	}

	if err := serializer.Serialize(w); err != nil {
		m.log.Error(err, "serialize field", "field", req.FieldName)
	}
}

func (m *Monitor) displayInfo(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	fmt.Fprint(w, d.Info())
}

func (m *Monitor) displayModes(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	writeJSON(w, d.Modes())
}

func (m *Monitor) readMISR(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	out, err := d.MISRRead()
	if err != nil {
		httpError(w, err)
		return
	}

	fmt.Fprint(w, out)
}

func (m *Monitor) writeMISR(w http.ResponseWriter, r *http.Request) {
	m.writeText(w, r, func(d Display, in string) error {
		return d.MISRWrite(in)
	})
}

func (m *Monitor) triggerESD(w http.ResponseWriter, r *http.Request) {
	m.writeText(w, r, func(d Display, in string) error {
		return d.ESDTrigger(in)
	})
}

func (m *Monitor) readESDCheckMode(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	fmt.Fprint(w, d.ESDCheckModeRead())
}

func (m *Monitor) writeESDCheckMode(w http.ResponseWriter, r *http.Request) {
	m.writeText(w, r, func(d Display, in string) error {
		return d.ESDCheckModeWrite(in)
	})
}

func (m *Monitor) readDynamicClk(w http.ResponseWriter, r *http.Request) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	fmt.Fprintf(w, "%d\n", d.DynamicClk())
}

func (m *Monitor) writeDynamicClk(w http.ResponseWriter, r *http.Request) {
	m.writeText(w, r, func(d Display, in string) error {
		rate, err := strconv.ParseUint(in, 10, 64)
		if err != nil {
			return errors.Wrapf(dsi.ErrInvalidConfig, "clock rate %q", in)
		}

		return d.SetDynamicClk(rate)
	})
}

func (m *Monitor) writeText(
	w http.ResponseWriter,
	r *http.Request,
	f func(d Display, in string) error,
) {
	d := m.findDisplayOr404(w, r)
	if d == nil {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		httpError(w, errors.Wrap(dsi.ErrInvalidConfig, err.Error()))
		return
	}

	if err := f(d, strings.TrimSpace(string(body))); err != nil {
		m.log.V(1).Info("diagnostic write rejected",
			"display", d.Name(), "path", r.URL.Path, "reason", err)
		httpError(w, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) recoveryStatus(w http.ResponseWriter, r *http.Request) {
	s := m.findSupervisorOr404(w, r)
	if s == nil {
		return
	}

	writeJSON(w, s.Status())
}

func (m *Monitor) notifyFault(w http.ResponseWriter, r *http.Request) {
	s := m.findSupervisorOr404(w, r)
	if s == nil {
		return
	}

	kind, err := recovery.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		httpError(w, err)
		return
	}

	s.Notify(kind)
	w.WriteHeader(http.StatusAccepted)
}

func (m *Monitor) findDisplay(name string) Display {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.displays[name]
}

func (m *Monitor) findDisplayOr404(
	w http.ResponseWriter,
	r *http.Request,
) Display {
	d := m.findDisplay(mux.Vars(r)["name"])
	if d == nil {
		http.Error(w, "Display not found", http.StatusNotFound)
	}

	return d
}

func (m *Monitor) findSupervisorOr404(
	w http.ResponseWriter,
	r *http.Request,
) Supervisor {
	m.lock.RLock()
	s := m.supervisors[mux.Vars(r)["name"]]
	m.lock.RUnlock()

	if s == nil {
		http.Error(w, "Supervisor not found", http.StatusNotFound)
	}

	return s
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]ProgressStatus, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		bars = append(bars, b.Status())
	}
	m.progressBarsLock.Unlock()

	writeJSON(w, bars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		httpError(w, err)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		httpError(w, err)
		return
	}

	memoryInfo, err := proc.MemoryInfo()
	if err != nil {
		httpError(w, err)
		return
	}

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		httpError(w, err)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		httpError(w, err)
		return
	}

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		httpError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func httpError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dsi.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, dsi.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dsi.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, dsi.ErrNotSupported):
		return http.StatusNotImplemented
	case errors.Is(err, dsi.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
