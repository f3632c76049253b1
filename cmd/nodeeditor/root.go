package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodeeditor"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	SettingsPath string
	Debug        bool
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nodeeditor",
		Short: "Node graph editor",
		Long: `Node graph editor on Ebitengine.

Nodes are dragged with the left mouse button. Their locations are written to
the settings file whenever they change and restored on the next run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.SettingsPath, "settings", "NodeEditor.json", "settings file (empty disables persistence)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug logging")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))

	return cmd
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Debug {
		return nodeeditor.NewLogger(slog.LevelDebug)
	}
	return nodeeditor.NewLogger(slog.LevelInfo)
}
