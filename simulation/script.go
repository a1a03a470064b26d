package simulation

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
	"github.com/sarchlab/dsidisplay/dsi/mode"
	"github.com/sarchlab/dsidisplay/dsi/recovery"
	"github.com/sarchlab/dsidisplay/monitoring"
	"gopkg.in/yaml.v3"
)

// Step is one action taken on a display.
type Step struct {
	Display     string `yaml:"display"`
	Action      string `yaml:"action"`
	Arg         string `yaml:"arg,omitempty"`
	ExpectError bool   `yaml:"expect_error,omitempty"`
}

// Script is a list of steps run in order.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, errors.Wrapf(err, "read script %s", path)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, errors.Wrapf(dsi.ErrInvalidConfig,
			"script %s: %s", path, err)
	}

	for i, step := range s.Steps {
		if _, found := actions[step.Action]; !found {
			return Script{}, errors.Wrapf(dsi.ErrInvalidConfig,
				"script %s step %d: unknown action %q", path, i, step.Action)
		}
	}

	return s, nil
}

type action func(ctx context.Context, r *Rig, arg string) error

var actions map[string]action

func init() {
	actions = map[string]action{
		"bring_up":    bringUp,
		"tear_down":   tearDown,
		"set_mode":    setMode,
		"ulps":        onOffAction((*Rig).setULPS),
		"phy_idle":    onOffAction((*Rig).setPHYIdle),
		"tpg":         onOffAction((*Rig).setTPG),
		"cont_splash": contSplash,
		"transfer":    transfer,
		"dyn_clk":     dynClk,
		"fault":       notifyFault,
		"inject":      inject,
		"clear":       clearFaults,
		"esd_trigger": esdTrigger,
		"misr":        misr,
		"wait":        wait,
	}
}

// DefaultScript brings every display up, switches it to every mode that is
// one seamless change away from its first mode and back, and tears it down.
func (s *Simulation) DefaultScript() Script {
	var script Script

	for _, name := range s.names {
		modes := s.rigs[name].Display.Modes()

		script.Steps = append(script.Steps,
			Step{Display: name, Action: "bring_up"})

		for i := 1; i < len(modes); i++ {
			if !oneChangeAway(modes[0], modes[i]) {
				continue
			}

			script.Steps = append(script.Steps,
				Step{Display: name, Action: "set_mode", Arg: strconv.Itoa(i)},
				Step{Display: name, Action: "set_mode", Arg: "0"},
			)
		}

		script.Steps = append(script.Steps,
			Step{Display: name, Action: "tear_down"})
	}

	return script
}

func oneChangeAway(a, b mode.Mode) bool {
	if a.Timing.HActive != b.Timing.HActive ||
		a.Timing.VActive != b.Timing.VActive {
		return false
	}

	refresh := a.Timing.RefreshRate != b.Timing.RefreshRate
	clk := a.PixelClkKHz != b.PixelClkKHz

	return refresh != clk
}

// Run runs the steps of a script in order. It stops at the first step that
// fails unexpectedly.
func (s *Simulation) Run(ctx context.Context, script Script) error {
	if s.exec != nil {
		s.exec.Set("Steps", strconv.Itoa(len(script.Steps)))
	}

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("script", uint64(len(script.Steps)))
		defer s.monitor.CompleteProgressBar(bar)
	}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		if bar != nil {
			bar.StartItem(step.Display + " " + step.Action)
		}

		err := s.RunStep(ctx, step)

		switch {
		case step.ExpectError && err == nil:
			return errors.Errorf("step %d %s %s: expected an error",
				i, step.Display, step.Action)
		case step.ExpectError:
			s.log.Info("step failed as expected", "step", i,
				"display", step.Display, "action", step.Action,
				"reason", err.Error())
		case err != nil:
			return errors.Wrapf(err, "step %d %s %s", i, step.Display,
				step.Action)
		}

		if bar != nil {
			bar.FinishItem()
		}
	}

	return nil
}

// RunStep runs one step.
func (s *Simulation) RunStep(ctx context.Context, step Step) error {
	r, err := s.Rig(step.Display)
	if err != nil {
		return err
	}

	act, found := actions[step.Action]
	if !found {
		return errors.Wrapf(dsi.ErrInvalidConfig, "unknown action %q",
			step.Action)
	}

	s.log.V(1).Info("step", "display", step.Display, "action", step.Action,
		"arg", step.Arg)

	return act(ctx, r, step.Arg)
}

func bringUp(_ context.Context, r *Rig, _ string) error {
	d := r.Display

	if _, ok := d.CurrentMode(); !ok {
		modes := d.Modes()
		if len(modes) == 0 {
			return errors.Wrap(dsi.ErrInvalidConfig, "panel has no modes")
		}

		if err := d.SetMode(modes[0]); err != nil {
			return err
		}
	}

	for _, f := range []func() error{d.Prepare, d.Enable, d.PostEnable} {
		if err := f(); err != nil {
			return err
		}
	}

	return nil
}

func tearDown(_ context.Context, r *Rig, _ string) error {
	d := r.Display

	for _, f := range []func() error{d.PreDisable, d.Disable, d.Unprepare} {
		if err := f(); err != nil {
			return err
		}
	}

	return nil
}

func setMode(_ context.Context, r *Rig, arg string) error {
	d := r.Display
	modes := d.Modes()

	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 || idx >= len(modes) {
		return errors.Wrapf(dsi.ErrInvalidConfig, "mode index %q of %d modes",
			arg, len(modes))
	}

	if _, ok := d.CurrentMode(); !ok {
		return d.SetMode(modes[idx])
	}

	tgt, err := d.ValidateModeChange(modes[idx])
	if err != nil {
		return err
	}

	return d.SetMode(tgt)
}

func parseOnOff(arg string) (bool, error) {
	switch arg {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	default:
		return false, errors.Wrapf(dsi.ErrInvalidConfig, "%q is not on or off",
			arg)
	}
}

func onOffAction(f func(r *Rig, on bool) error) action {
	return func(_ context.Context, r *Rig, arg string) error {
		on, err := parseOnOff(arg)
		if err != nil {
			return err
		}

		return f(r, on)
	}
}

func (r *Rig) setULPS(on bool) error {
	return r.Display.SetULPS(on)
}

func (r *Rig) setPHYIdle(on bool) error {
	if on {
		return r.Display.PHYIdleOn()
	}

	return r.Display.PHYIdleOff()
}

func (r *Rig) setTPG(on bool) error {
	return r.Display.SetTPGState(on)
}

func contSplash(_ context.Context, r *Rig, arg string) error {
	if arg == "cleanup" {
		return r.Display.SplashResCleanup()
	}

	return r.Display.ContSplashConfig()
}

// transfer sends a DCS command. The argument is the payload in hex, with an
// optional "unicast" or "last" flag, for example "2900 last".
func transfer(_ context.Context, r *Rig, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return errors.Wrap(dsi.ErrInvalidConfig, "transfer without payload")
	}

	payload, err := parseHex(fields[0])
	if err != nil {
		return err
	}

	msg := dsi.Msg{Type: 0x05, TxBuf: payload}
	for _, f := range fields[1:] {
		switch f {
		case "last":
			msg.Flags |= dsi.MsgLastCommand
		case "unicast":
			msg.Flags |= dsi.MsgUnicast
		default:
			return errors.Wrapf(dsi.ErrInvalidConfig, "transfer flag %q", f)
		}
	}

	return r.Display.Transfer(msg)
}

func parseHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(dsi.ErrInvalidConfig, "payload %q", s)
	}

	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, errors.Wrapf(dsi.ErrInvalidConfig, "payload %q", s)
		}

		out = append(out, byte(b))
	}

	return out, nil
}

func dynClk(_ context.Context, r *Rig, arg string) error {
	rate, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return errors.Wrapf(dsi.ErrInvalidConfig, "clock rate %q", arg)
	}

	return r.Display.SetDynamicClk(rate)
}

func notifyFault(_ context.Context, r *Rig, arg string) error {
	kind, err := recovery.ParseKind(arg)
	if err != nil {
		return err
	}

	r.Supervisor.Notify(kind)

	return nil
}

// inject makes a simulated call fail. The argument is the call and an
// optional count, for example "DSI1.SetVidEngineState 1".
func inject(_ context.Context, r *Rig, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return errors.Wrapf(dsi.ErrInvalidConfig, "inject %q", arg)
	}

	n := 1
	if len(fields) == 2 {
		var err error
		if n, err = strconv.Atoi(fields[1]); err != nil {
			return errors.Wrapf(dsi.ErrInvalidConfig, "inject count %q",
				fields[1])
		}
	}

	return r.InjectFault(fields[0], n)
}

func clearFaults(_ context.Context, r *Rig, _ string) error {
	r.ClearFaults()
	return nil
}

func esdTrigger(_ context.Context, r *Rig, _ string) error {
	return r.Display.ESDTrigger("1")
}

func misr(_ context.Context, r *Rig, arg string) error {
	if arg == "" {
		out, err := r.Display.MISRRead()
		if err != nil {
			return err
		}

		r.Log.Record("MISR " + strings.TrimSpace(out))

		return nil
	}

	return r.Display.MISRWrite(arg)
}

func wait(ctx context.Context, _ *Rig, arg string) error {
	d, err := time.ParseDuration(arg)
	if err != nil {
		return errors.Wrapf(dsi.ErrInvalidConfig, "wait %q", arg)
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
