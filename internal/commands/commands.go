// Package commands builds the go-dialog-calendar command tree.
package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// LoggingSetup configures the default logger once flags are parsed. The
// returned closer, if any, is closed after the command finishes.
type LoggingSetup func(debug bool) io.Closer

// New returns the root command.
func New(setupLogging LoggingSetup) *cobra.Command {
	var (
		debug  bool
		closer io.Closer
	)

	cmd := &cobra.Command{
		Use:          config.CmdName,
		Short:        config.ShortRoot,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if setupLogging != nil {
				closer = setupLogging(debug)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closer != nil {
				_ = closer.Close() // Best effort close
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, config.FlagDebug, false, config.FlagDescDebug)

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command) {
	addServe(topLevel)
	addRender(topLevel)
	addVersion(topLevel)
}
