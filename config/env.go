package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/dsi"
)

// Environment variables that override the configuration.
const (
	EnvConfig      = "DSISIM_CONFIG"
	EnvMonitorPort = "DSISIM_MONITOR_PORT"
	EnvRecordPath  = "DSISIM_RECORD_PATH"
)

// Env holds the settings taken from the environment.
type Env struct {
	ConfigPath  string
	MonitorPort int
	RecordPath  string
}

// LoadEnv loads the given .env files, if they exist, and reads the
// environment. Variables already set in the process win over the files.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return Env{}, errors.Wrapf(err, "load %s", f)
		}
	}

	env := Env{
		ConfigPath: os.Getenv(EnvConfig),
		RecordPath: os.Getenv(EnvRecordPath),
	}

	if port := os.Getenv(EnvMonitorPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return Env{}, errors.Wrapf(dsi.ErrInvalidConfig,
				"%s=%q is not a port", EnvMonitorPort, port)
		}

		env.MonitorPort = p
	}

	return env, nil
}

// Apply overrides the configuration with the settings from the environment.
func (e Env) Apply(c *Config) {
	if e.MonitorPort != 0 {
		c.Monitor.Enabled = true
		c.Monitor.Port = e.MonitorPort
	}

	if e.RecordPath != "" {
		c.Record.Enabled = true
		c.Record.Path = e.RecordPath
	}
}
