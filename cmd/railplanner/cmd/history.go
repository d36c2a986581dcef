package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/solatis/railplanner/internal/core/history"
	"github.com/solatis/railplanner/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded planner runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder, closeDB, err := openRecorder()
		if err != nil {
			return err
		}
		defer closeDB()
		if recorder == nil {
			return errors.New("--db-url required")
		}

		var runs []history.Run
		if len(args) == 1 {
			id, err := types.ParseRunID(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id %q: %w", args[0], err)
			}
			run, err := recorder.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			runs = append(runs, run)
		} else {
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err = recorder.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
		}

		renderRuns(cmd.OutOrStdout(), runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", history.DefaultListLimit, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func renderRuns(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "(0 runs)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run ID", "Created", "Source", "Target", "Connections", "Segments", "Price", "Duration"})
	for _, r := range runs {
		price := fmt.Sprint(r.Price)
		if !r.Reachable {
			price = "unreachable"
		}
		t.AppendRow(table.Row{
			r.RunID,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Source,
			r.TargetLength,
			r.Alphabet,
			r.SegmentCount,
			price,
			r.Duration(),
		})
	}
	t.Render()
}
