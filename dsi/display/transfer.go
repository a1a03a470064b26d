package display

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Transfer sends a command message to the panel. While the panel recovers
// from an ESD event the message is silently dropped. A display with several
// controllers broadcasts the message unless it is marked unicast.
func (d *Display) Transfer(msg dsi.Msg) error {
	g := d.enter("transfer")
	defer d.leave(g)

	if d.panel.ESDRecoveryPending() {
		d.log.V(1).Info("esd recovery pending, dropping command")
		return nil
	}

	if err := d.allClocksOn(d.clockHandle); err != nil {
		return err
	}

	errs := firstError{d: d}

	if err := d.cmdEngineOn(g); err != nil {
		errs.add("cmd engine on", err)
	} else {
		errs.add("transfer", d.transfer(msg))
		errs.add("cmd engine off", d.cmdEngineOff(g))
	}

	errs.add("clocks off", d.allClocksOff(d.clockHandle))

	return errs.err
}

func (d *Display) transfer(msg dsi.Msg) error {
	if len(d.pairs) > 1 && !msg.IsUnicast() {
		return d.broadcast(msg)
	}

	idx := d.roles.CmdMaster
	if msg.IsUnicast() {
		idx = msg.Ctrl
	}

	if idx < 0 || idx >= len(d.pairs) {
		return errors.Wrapf(dsi.ErrInvalidConfig,
			"no controller %d for unicast message", idx)
	}

	p := d.pairs[idx]

	flags := dsi.CmdFIFOStore
	if msg.IsLastCommand() {
		flags |= dsi.CmdLastCommand
	}

	if err := p.ctrl.CmdTransfer(msg, flags); err != nil {
		return errors.Wrapf(err, "%s transfer", p.ctrl.Name())
	}

	d.step("cmd", "transfer", p)

	return nil
}

// broadcast stages the message on the master and every slave, then triggers
// the slaves and finally the master.
func (d *Display) broadcast(msg dsi.Msg) error {
	masterFlags := dsi.CmdBroadcast | dsi.CmdBroadcastMaster |
		dsi.CmdDeferTrigger | dsi.CmdFIFOStore
	slaveFlags := dsi.CmdBroadcast | dsi.CmdDeferTrigger | dsi.CmdFIFOStore

	if msg.IsLastCommand() {
		masterFlags |= dsi.CmdLastCommand
		slaveFlags |= dsi.CmdLastCommand
	}

	m := d.pairs[d.roles.CmdMaster]

	if err := m.ctrl.CmdTransfer(msg, masterFlags); err != nil {
		return errors.Wrapf(err, "%s stage", m.ctrl.Name())
	}

	d.step("cmd", "stage", m)

	for _, p := range d.pairs {
		if p == m {
			continue
		}

		if err := p.ctrl.CmdTransfer(msg, slaveFlags); err != nil {
			return errors.Wrapf(err, "%s stage", p.ctrl.Name())
		}

		d.step("cmd", "stage", p)
	}

	for _, p := range d.pairs {
		if p == m {
			continue
		}

		if err := p.ctrl.CmdTrigger(slaveFlags); err != nil {
			return errors.Wrapf(err, "%s trigger", p.ctrl.Name())
		}

		d.step("cmd", "trigger", p)
	}

	if err := m.ctrl.CmdTrigger(masterFlags); err != nil {
		return errors.Wrapf(err, "%s trigger", m.ctrl.Name())
	}

	d.step("cmd", "trigger", m)

	return nil
}
