package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/sarchlab/dsidisplay/simulation"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Bring the displays up and serve their diagnostics.",
	Long: "`serve` brings every configured display up and keeps it running " +
		"behind the diagnostics server until interrupted. The displays are " +
		"torn down on exit.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")

		b := simulation.MakeBuilder().
			WithConfig(c).
			WithLogger(logger).
			WithMonitoring()
		if port != 0 {
			b = b.WithMonitorPort(port)
		}

		s := b.Build()
		defer s.Terminate()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		for _, name := range s.Names() {
			step := simulation.Step{Display: name, Action: "bring_up"}
			if err := s.RunStep(ctx, step); err != nil {
				return err
			}
		}

		url := s.GetMonitor().URL()
		fmt.Fprintf(cmd.OutOrStdout(), "Serving diagnostics on %s\n", url)

		if open {
			if err := browser.OpenURL(url); err != nil {
				logger.Error(err, "open browser", "url", url)
			}
		}

		<-ctx.Done()

		for _, name := range s.Names() {
			step := simulation.Step{Display: name, Action: "tear_down"}
			if err := s.RunStep(context.Background(), step); err != nil {
				logger.Error(err, "tear down", "display", name)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "port of the diagnostics server")
	serveCmd.Flags().Bool("open", false, "open the diagnostics page in a browser")
}
