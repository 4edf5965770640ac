package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"lexibar/internal/history"
)

func newHistoryCommand(opts *options) *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently looked up words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if clear {
				if err := a.history.Clear(ctx); err != nil {
					return err
				}
				pterm.Success.Println("History cleared")
				return nil
			}

			recent, err := a.history.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				pterm.Info.Println("No lookups yet")
				return nil
			}
			return pterm.DefaultTable.WithHasHeader().WithData(historyTable(recent)).Render()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of words to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete the history")
	return cmd
}

// historyTable lays out the aggregated history, most recent first
func historyTable(recent []history.Lookup) pterm.TableData {
	data := pterm.TableData{{"Word", "Lookups", "Last looked up"}}
	for _, l := range recent {
		data = append(data, []string{
			l.Word,
			fmt.Sprintf("%d", l.Count),
			l.Last.Local().Format("2006-01-02 15:04"),
		})
	}
	return data
}
