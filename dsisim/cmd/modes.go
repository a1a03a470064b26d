package cmd

import (
	"fmt"

	"github.com/sarchlab/dsidisplay/simulation"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Print the modes every configured display offers.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		c.Monitor.Enabled = false
		c.Monitor.Port = 0
		c.Record.Enabled = false
		c.Record.Path = ""

		s := simulation.MakeBuilder().
			WithConfig(c).
			WithLogger(logger).
			Build()
		defer s.Terminate()

		w := cmd.OutOrStdout()

		for _, name := range s.Names() {
			r, err := s.Rig(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s (%d controllers, %s):\n", name,
				r.Display.ControllerCount(), r.Display.OpMode())

			for i, m := range r.Display.Modes() {
				fmt.Fprintf(w, "  [%d] %s\n", i, m)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
