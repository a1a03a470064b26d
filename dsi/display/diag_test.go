package display

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/clock"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
)

var _ = Describe("Diagnostics", func() {
	var r *rig

	BeforeEach(func() {
		r = newRig(2, panelConfig(dsi.OpModeVideo))
	})

	It("should configure and read the frame signatures", func() {
		Expect(r.d.MISRWrite("1 5")).To(Succeed())
		Expect(r.log.Matching("SetupMISR(true,5)")).To(HaveLen(2))

		out, err := r.d.MISRRead()

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("DSI_0 MISR: 0xc0ffee\nDSI_1 MISR: 0xc0ffee\n"))

		core, _ := r.clockState()
		Expect(core).To(Equal(clock.Off))
	})

	It("should refuse malformed signature requests", func() {
		Expect(errors.Is(r.d.MISRWrite("1"), dsi.ErrInvalidConfig)).To(BeTrue())
		Expect(errors.Is(r.d.MISRWrite("on 5"), dsi.ErrInvalidConfig)).To(BeTrue())
	})

	It("should only trigger ESD attacks with 1", func() {
		Expect(errors.Is(r.d.ESDTrigger("2"), dsi.ErrInvalidConfig)).To(BeTrue())
		Expect(r.d.ESDTrigger("1")).To(Succeed())
		Expect(r.panel.ESDAttacks()).To(Equal(1))
	})

	It("should not trigger ESD attacks during recovery", func() {
		r.panel.SetESDRecoveryPending(true)

		Expect(r.d.ESDTrigger("1")).To(Succeed())
		Expect(r.panel.ESDAttacks()).To(Equal(0))
	})

	It("should read and write the ESD check mode", func() {
		Expect(r.d.ESDCheckModeRead()).To(Equal("reg_read"))

		Expect(r.d.ESDCheckModeWrite("te_signal_check")).To(Succeed())
		Expect(r.d.ESDCheckModeRead()).To(Equal("te_signal_check"))

		err := r.d.ESDCheckModeWrite("sometimes")
		Expect(errors.Is(err, dsi.ErrInvalidConfig)).To(BeTrue())
	})

	It("should report a disabled ESD check", func() {
		cfg := panelConfig(dsi.OpModeVideo)
		cfg.ESD.Enabled = false
		r = newRig(1, cfg)

		Expect(r.d.ESDCheckModeRead()).To(Equal("ESD feature not enabled"))
	})

	It("should describe the display", func() {
		r.bringUp()

		s := r.d.Status()
		Expect(s.Prepared).To(BeTrue())
		Expect(s.Pairs).To(HaveLen(2))
		Expect(s.Pairs[0].Power).To(Equal("link_clk_on"))
		Expect(s.Pairs[1].VidEngine).To(Equal("on"))
		Expect(s.Mode).NotTo(BeNil())
		Expect(s.Clocks.Core).To(Equal("on"))

		Expect(r.d.Info()).To(ContainSubstring("ctrl = DSI1 phy = PHY1"))
	})
})

var _ = Describe("Recovery", func() {
	var (
		r   *rig
		sup *recovery.Supervisor
	)

	BeforeEach(func() {
		r = newRig(2, panelConfig(dsi.OpModeVideo))
		r.bringUp()
		r.log.Reset()

		sup = recovery.MakeBuilder().
			WithTarget(r.d).
			WithSettleTime(0).
			WithLogger(GinkgoLogr).
			Build("Recovery")
	})

	AfterEach(func() {
		sup.Close()
	})

	It("should reset the lanes after a FIFO overflow", func() {
		sup.Notify(recovery.FIFOOverflow)

		Eventually(func() uint64 {
			return sup.Counters(recovery.FIFOOverflow).Recovered
		}).Should(Equal(uint64(1)))

		Expect(r.log.Matching("Reset(1048576)")).To(HaveLen(2))
		Expect(r.log.Matching("LaneReset()")).To(HaveLen(2))
		Expect(r.log.Matching("SetVidEngineState(on)")).To(HaveLen(2))

		core, link := r.clockState()
		Expect(core).To(Equal(clock.On))
		Expect(link).To(Equal(clock.On))
	})

	It("should soft reset after a FIFO underflow", func() {
		sup.Notify(recovery.FIFOUnderflow)

		Eventually(func() uint64 {
			return sup.Counters(recovery.FIFOUnderflow).Recovered
		}).Should(Equal(uint64(1)))

		Expect(r.log.Matching("SoftReset()")).To(HaveLen(2))
	})

	It("should wait for the display lock and check the host state again", func() {
		g := r.d.acquire()

		sup.Notify(recovery.FIFOUnderflow)

		Eventually(func() string {
			return sup.Status()[0].State
		}).Should(Equal("recovering"))
		Consistently(func() []string {
			return r.log.Matching("SoftReset")
		}, 50*time.Millisecond).Should(BeEmpty())

		r.ctrls[0].SetValidHostState(false)
		r.d.release(g)

		Eventually(func() uint64 {
			return sup.Counters(recovery.FIFOUnderflow).Dropped
		}).Should(Equal(uint64(1)))
		Expect(r.log.Matching("SoftReset")).To(BeEmpty())
		Expect(sup.Counters(recovery.FIFOUnderflow).Recovered).To(BeZero())
	})

	It("should leave old hardware alone", func() {
		r.ctrls[0].SetHWVersion(0x20010000)

		sup.Notify(recovery.LPRxTimeout)

		Eventually(func() uint64 {
			return sup.Counters(recovery.LPRxTimeout).Dropped
		}).Should(Equal(uint64(1)))

		Expect(r.log.Matching("LaneReset()")).To(BeEmpty())
	})
})

var _ = Describe("Registry", func() {
	It("should keep displays by name", func() {
		reg := NewRegistry()
		r := newRig(1, panelConfig(dsi.OpModeVideo))

		Expect(reg.Add(r.d)).To(Succeed())
		Expect(errors.Is(reg.Add(r.d), dsi.ErrInvalidConfig)).To(BeTrue())

		d, err := reg.Get("Display")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(BeIdenticalTo(r.d))

		_, err = reg.Get("Other")
		Expect(errors.Is(err, dsi.ErrNotFound)).To(BeTrue())

		Expect(reg.Names()).To(Equal([]string{"Display"}))
		Expect(reg.All()).To(HaveLen(1))
	})
})
