package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sarchlab/dsidisplay/simulation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a script of display actions.",
	Long: "`run` brings the configured displays up, switches modes, injects " +
		"faults and tears the displays down as the script says. Without a " +
		"script every display is brought up, walked through its modes and " +
		"torn down.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		scriptPath, _ := cmd.Flags().GetString("script")
		record, _ := cmd.Flags().GetBool("record")
		recordPath, _ := cmd.Flags().GetString("record-path")

		b := simulation.MakeBuilder().
			WithConfig(c).
			WithLogger(logger).
			WithoutMonitoring()

		if record || recordPath != "" {
			b = b.WithRecording().WithOutputFileName(recordPath)
		} else if c.Record.Enabled {
			b = b.WithRecording()
		}

		s := b.Build()
		defer s.Terminate()

		script := s.DefaultScript()
		if scriptPath != "" {
			if script, err = simulation.LoadScript(scriptPath); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := s.Run(ctx, script); err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), s)

		return nil
	},
}

func printSummary(w io.Writer, s *simulation.Simulation) {
	steps := s.StepCounter()

	fmt.Fprintln(w, "Hardware transitions:")
	for _, name := range steps.GetStepNames() {
		fmt.Fprintf(w, "  %-40s %d\n", name, steps.GetStepCount(name))
	}

	tags := s.TagCounter()
	if names := tags.GetTagNames(); len(names) > 0 {
		fmt.Fprintln(w, "Tags:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-40s %d\n", name, tags.GetTagCount(name))
		}
	}

	avg := s.AverageTime()
	fmt.Fprintf(w, "Display requests: %d, average %.6fs\n",
		avg.TotalCount(), avg.AverageTime())
	for _, stat := range avg.Breakdown() {
		fmt.Fprintf(w, "  %-40s %d x %.6fs\n",
			stat.What, stat.Count, stat.Average())
	}

	if s.BackTrace().InflightCount() > 0 {
		fmt.Fprintln(w, "Requests still in flight:")
		s.BackTrace().DumpAll()
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("script", "s", "", "YAML script to run")
	runCmd.Flags().Bool("record", false, "record the run into SQLite")
	runCmd.Flags().String("record-path", "",
		"recording file name without extension, implies --record")
}
