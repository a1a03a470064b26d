package cmd

import (
	"context"
	"fmt"

	"github.com/sarchlab/dsidisplay/datarecording"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <recording.sqlite3>",
	Short: "Print the hardware transitions stored in a recording.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		display, _ := cmd.Flags().GetString("display")

		r, err := datarecording.NewReader(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		r.MapTable(datarecording.TransitionTable, datarecording.Transition{})

		params := datarecording.QueryParams{
			OrderBy: "Time",
			Limit:   limit,
		}

		if display != "" {
			params.Where = "Domain = ?"
			params.Args = []any{display}
		}

		rows, total, err := r.Query(context.Background(),
			datarecording.TransitionTable, params)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, row := range rows {
			t := row.(*datarecording.Transition)
			fmt.Fprintf(w, "%12.6f %-12s %-24s %-8s %-24s %s\n",
				t.Time, t.Domain, t.Request, t.Kind, t.What, t.Detail)
		}

		fmt.Fprintf(w, "%d of %d transitions\n", len(rows), total)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntP("limit", "n", 0, "print at most n transitions")
	reportCmd.Flags().String("display", "", "only print one display")
}
