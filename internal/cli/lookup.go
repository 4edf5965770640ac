package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"lexibar/internal/domain"
)

func newLookupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the definition of one or more words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			for _, word := range args {
				entry, err := a.definer.Define(ctx, word)
				if err != nil {
					return fmt.Errorf("lookup %q: %w", word, err)
				}
				if err := a.history.RecordLookup(ctx, entry.Word); err != nil {
					log.Printf("Failed to record lookup: %v", err)
				}

				pterm.DefaultSection.Println(entry.Word)
				pterm.Println(formatEntry(entry))
			}
			return nil
		},
	}
}

// formatEntry renders an entry as plain text, senses numbered per part of speech
func formatEntry(entry domain.Entry) string {
	var b strings.Builder
	counts := make(map[string]int)
	for _, s := range entry.Senses {
		counts[s.PartOfSpeech]++
		n := counts[s.PartOfSpeech]

		pos := s.PartOfSpeech
		if pos == "" {
			pos = "-"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", pterm.FgYellow.Sprint(pos), n, s.Definition))
		if s.Example != "" {
			b.WriteString(pterm.FgGray.Sprintf("     %q", s.Example))
			b.WriteString("\n")
		}
	}
	if len(entry.Synonyms) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", pterm.Bold.Sprint("synonyms:"), strings.Join(entry.Synonyms, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}
