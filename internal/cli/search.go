package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"lexibar/internal/domain"
)

func newSearchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Rank dictionary words against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			results, err := a.dict.Search(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			if len(results) == 0 {
				pterm.Info.Printfln("No matches for %q", query)
				return nil
			}

			return pterm.DefaultTable.WithHasHeader().WithData(searchTable(results)).Render()
		},
	}
}

// searchTable lays results out as rank, word, method and score
func searchTable(results []domain.SearchResult) pterm.TableData {
	data := pterm.TableData{{"#", "Word", "Match", "Score"}}
	for i, r := range results {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			r.Word,
			r.Method,
			fmt.Sprintf("%.2f", r.Score),
		})
	}
	return data
}
