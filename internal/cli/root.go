// Package cli provides the command-line interface for lexibar
package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// flags shared by every command
type options struct {
	configPath  string
	dictPath    string
	historyPath string
	logFile     string
	word        string // looked up when the TUI starts
}

// NewRootCommand builds the command tree. The root command runs the TUI.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	var logFile *os.File

	root := &cobra.Command{
		Use:           "lexibar [WORD]",
		Short:         "A terminal dictionary with a search bar that gets out of the way",
		Long:          "lexibar looks words up as you type. Scroll a definition and the search bar shrinks; focus it and it comes back.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				// stdout and stderr belong to the command's output
				log.SetOutput(io.Discard)
				return nil
			}
			logFile = f
			log.SetOutput(f)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.word = args[0]
			}
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lexibar/config.toml)")
	flags.StringVar(&opts.dictPath, "dict", "", "Dictionary TOML file (default: built-in word list)")
	flags.StringVar(&opts.historyPath, "history", "", "History database (default: next to the config file)")
	flags.StringVar(&opts.logFile, "log-file", "lexibar.log", "Log file")

	root.AddCommand(newLookupCommand(opts))
	root.AddCommand(newSearchCommand(opts))
	root.AddCommand(newHistoryCommand(opts))
	return root
}

// Execute runs the command line and reports a failure with pterm
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return ExecuteContext(ctx)
}

// ExecuteContext runs the command line under ctx
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		pterm.Error.Println(err)
	}
	return err
}
