// Package cmd provides the command-line interface of dsisim.
package cmd

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"
	"github.com/sarchlab/dsidisplay/config"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	configPath string
	envFile    string
	verbosity  int

	env    config.Env
	logger = logr.Discard()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dsisim",
	Short: "dsisim runs DSI displays on simulated hardware.",
	Long: `dsisim brings DSI displays up and down on simulated controllers, ` +
		`PHYs and clocks. It can run scripts of mode switches and injected ` +
		`faults, record what the hardware did, and serve diagnostics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		env, err = config.LoadEnv(envFile)
		if err != nil {
			return err
		}

		logger = newLogger(cmd.ErrOrStderr(), verbosity)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"display description file, defaults to $"+config.EnvConfig)
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"file to load environment variables from")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0,
		"log verbosity")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func newLogger(w io.Writer, v int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
		} else {
			fmt.Fprintln(w, args)
		}
	}, funcr.Options{Verbosity: v})
}

// loadConfig reads the display description named by the flag or the
// environment and applies the environment overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = env.ConfigPath
	}

	if path == "" {
		return nil, errors.Errorf("no config given, use --config or set %s",
			config.EnvConfig)
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	env.Apply(c)

	return c, nil
}
