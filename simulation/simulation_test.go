package simulation

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/dsidisplay/config"
	"github.com/sarchlab/dsidisplay/datarecording"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
)

const twoDisplays = `
displays:
  - name: Primary
    controllers: 2
    recovery_settle: 1ms
    panel:
      op_mode: video
      host: {lanes: 4, bpp: 24}
      dfps: {type: immediate_vfp, rates: [60, 90]}
      dyn_clk_rates: [1000000000, 1100000000]
      esd: {enabled: true, mode: reg_read}
      timings:
        - h_active: 540
          h_front_porch: 12
          h_sync_width: 6
          h_back_porch: 18
          v_active: 2400
          v_front_porch: 2000
          v_sync_width: 4
          v_back_porch: 36
          refresh_rate: 60
          clk_rate_hz: 1000000000
          pixel_clk_khz: 120000
  - name: Secondary
    panel:
      op_mode: cmd
      host: {lanes: 4, bpp: 24}
      timings:
        - h_active: 720
          h_front_porch: 100
          h_sync_width: 10
          h_back_porch: 20
          v_active: 1280
          v_front_porch: 20
          v_sync_width: 2
          v_back_porch: 8
          refresh_rate: 60
          clk_rate_hz: 500000000
`

func loadConfig() *config.Config {
	c, err := config.Parse([]byte(twoDisplays))
	Expect(err).ToNot(HaveOccurred())

	return c
}

var _ = Describe("Simulation", func() {
	var (
		s   *Simulation
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = MakeBuilder().
			WithConfig(loadConfig()).
			WithLogger(GinkgoLogr).
			Build()
	})

	AfterEach(func() {
		s.Terminate()
	})

	It("should build a rig per display", func() {
		Expect(s.Names()).To(Equal([]string{"Primary", "Secondary"}))
		Expect(s.Displays().Names()).To(Equal([]string{"Primary", "Secondary"}))
		Expect(s.ClockRegistry().ManagerNames()).To(HaveLen(2))

		r, err := s.Rig("Primary")
		Expect(err).ToNot(HaveOccurred())
		Expect(r.Ctrls).To(HaveLen(2))
		Expect(r.Display.ControllerCount()).To(Equal(2))
		Expect(r.Display.ModeCount()).To(Equal(4))

		_, err = s.Rig("Tertiary")
		Expect(err).To(MatchError(dsi.ErrNotFound))

		Expect(s.GetDataRecorder()).To(BeNil())
		Expect(s.GetMonitor()).To(BeNil())
	})

	It("should release the clocks of every display on terminate", func() {
		r, err := s.Rig("Primary")
		Expect(err).ToNot(HaveOccurred())

		s.Terminate()

		Expect(s.ClockRegistry().ManagerNames()).To(BeEmpty())

		r.Supervisor.Notify(recovery.FIFOUnderflow)
		Expect(r.Supervisor.Counters(recovery.FIFOUnderflow).Dropped).
			To(Equal(uint64(1)))
	})

	It("should run the default script", func() {
		script := s.DefaultScript()
		Expect(script.Steps).To(HaveLen(8))

		Expect(s.Run(ctx, script)).To(Succeed())

		for _, name := range s.Names() {
			r, _ := s.Rig(name)
			for _, c := range r.Ctrls {
				Expect(c.PowerState()).To(Equal(dsi.PowerOff))
			}
		}

		Expect(s.StepCounter().GetStepNames()).ToNot(BeEmpty())
		Expect(s.AverageTime().TotalCount()).To(BeNumerically(">", 0))
		Expect(s.BackTrace().InflightCount()).To(Equal(0))
	})

	It("should run a script with injected faults", func() {
		script, err := LoadScript("testdata/faults.yaml")
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Run(ctx, script)).To(Succeed())

		r, _ := s.Rig("Primary")
		Expect(r.Log.Calls()).To(ContainElement(HavePrefix("MISR DSI_0 MISR: 0x")))
	})

	It("should stop at an unexpected failure", func() {
		err := s.Run(ctx, Script{Steps: []Step{
			{Display: "Primary", Action: "inject", Arg: "PHY0.Enable -1"},
			{Display: "Primary", Action: "bring_up"},
			{Display: "Primary", Action: "tear_down"},
		}})

		Expect(err).To(MatchError(ContainSubstring("step 1 Primary bring_up")))
	})

	It("should fail a step that was expected to fail", func() {
		err := s.Run(ctx, Script{Steps: []Step{
			{Display: "Secondary", Action: "bring_up", ExpectError: true},
		}})

		Expect(err).To(MatchError(ContainSubstring("expected an error")))
	})

	It("should reject unknown devices and actions", func() {
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "inject",
			Arg: "DSI7.Reset"})).To(MatchError(dsi.ErrNotFound))
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "inject",
			Arg: "Reset"})).To(MatchError(dsi.ErrInvalidConfig))
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "fly"})).
			To(MatchError(dsi.ErrInvalidConfig))
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "set_mode",
			Arg: "9"})).To(MatchError(dsi.ErrInvalidConfig))
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "ulps",
			Arg: "maybe"})).To(MatchError(dsi.ErrInvalidConfig))

		_, err := LoadScript("testdata/bad.yaml")
		Expect(err).To(MatchError(dsi.ErrInvalidConfig))
	})

	It("should recover from a FIFO underflow", func() {
		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "bring_up"})).
			To(Succeed())

		Expect(s.RunStep(ctx, Step{Display: "Primary", Action: "fault",
			Arg: "fifo_underflow"})).To(Succeed())

		r, _ := s.Rig("Primary")
		Eventually(func() uint64 {
			return r.Supervisor.Counters(recovery.FIFOUnderflow).Recovered
		}).Should(Equal(uint64(1)))
		Expect(r.Log.Matching("SoftReset")).To(HaveLen(2))
	})

	It("should send commands to a command mode panel", func() {
		Expect(s.Run(ctx, Script{Steps: []Step{
			{Display: "Secondary", Action: "bring_up"},
			{Display: "Secondary", Action: "transfer", Arg: "2900 last"},
			{Display: "Secondary", Action: "wait", Arg: "1ms"},
			{Display: "Secondary", Action: "tear_down"},
		}})).To(Succeed())

		r, _ := s.Rig("Secondary")
		Expect(r.Log.Matching("CmdTransfer")).ToNot(BeEmpty())
	})

	It("should stop waiting when the context ends", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := s.RunStep(cctx, Step{Display: "Primary", Action: "wait",
			Arg: "1h"})

		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Simulation services", func() {
	It("should record transitions", func() {
		path := filepath.Join(GinkgoT().TempDir(), "run")

		s := MakeBuilder().
			WithConfig(loadConfig()).
			WithRecording().
			WithOutputFileName(path).
			Build()

		Expect(s.Run(context.Background(), s.DefaultScript())).To(Succeed())
		Expect(s.Transitions()).To(BeNumerically(">", 0))

		s.Terminate()

		reader, err := datarecording.NewReader(path + ".sqlite3")
		Expect(err).ToNot(HaveOccurred())
		defer reader.Close()

		reader.MapTable(datarecording.TransitionTable,
			datarecording.Transition{})
		reader.MapTable(datarecording.TaskTable, datarecording.TaskRow{})

		_, total, err := reader.Query(context.Background(),
			datarecording.TransitionTable, datarecording.QueryParams{})
		Expect(err).ToNot(HaveOccurred())
		Expect(uint64(total)).To(Equal(s.Transitions()))

		_, tasks, err := reader.Query(context.Background(),
			datarecording.TaskTable, datarecording.QueryParams{
				Where: "Kind = ?", Args: []any{"display"},
			})
		Expect(err).ToNot(HaveOccurred())
		Expect(tasks).To(BeNumerically(">", 0))
	})

	It("should serve the displays", func() {
		s := MakeBuilder().
			WithConfig(loadConfig()).
			WithMonitoring().
			Build()
		defer s.Terminate()

		var rsp *http.Response
		Eventually(func() error {
			var err error
			rsp, err = http.Get(s.GetMonitor().URL() + "/api/display/Primary/info")
			return err
		}, time.Second).Should(Succeed())
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should panic without a config", func() {
		Expect(func() { MakeBuilder().Build() }).To(Panic())
	})

	It("should not set a port without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithConfig(loadConfig()).
				WithMonitorPort(4000).
				Build()
		}).To(Panic())
	})
})
