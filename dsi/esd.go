package dsi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ESDMode is the way a panel checks for electrostatic discharge damage.
type ESDMode int

// ESD check modes.
const (
	ESDTESignalCheck ESDMode = iota
	ESDRegRead
	ESDSwSimSuccess
	ESDSwSimFailure
)

var esdModeNames = []string{
	ESDTESignalCheck: "te_signal_check",
	ESDRegRead:       "reg_read",
	ESDSwSimSuccess:  "esd_sw_sim_success",
	ESDSwSimFailure:  "esd_sw_sim_failure",
}

func (m ESDMode) String() string {
	if int(m) >= 0 && int(m) < len(esdModeNames) {
		return esdModeNames[m]
	}

	return fmt.Sprintf("esd_mode(%d)", int(m))
}

// ParseESDMode converts an ESD check mode name into an ESDMode.
func ParseESDMode(s string) (ESDMode, error) {
	for i, n := range esdModeNames {
		if n == s {
			return ESDMode(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidConfig, "unknown esd check mode %q", s)
}

// ESDConfig is the ESD check configuration of a panel.
type ESDConfig struct {
	Enabled bool
	Mode    ESDMode
}
