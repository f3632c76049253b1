package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodeeditor"
	"github.com/phanxgames/nodeeditor/imm"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Graph       string
	Width       int
	Height      int
	Scale       float64
	Script      string
	Screenshots string
	ShowFPS     bool
	FadeIn      float64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the editor window",
		Long: `Open the editor window on a graph.

Without --graph a small built-in graph is shown. With --script the pointer
input and screenshots listed in the JSON script are replayed and the window
closes once the script has finished.

Example:
  nodeeditor run --graph shader.yaml
  nodeeditor run --script drag.json --screenshots out/`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGameFromOptions(opts)
			if err != nil {
				return err
			}
			defer g.editor.Destroy()
			return g.run("Node Editor")
		},
	}

	cmd.Flags().StringVar(&opts.Graph, "graph", "", "YAML graph file")
	cmd.Flags().IntVar(&opts.Width, "width", 1280, "canvas width")
	cmd.Flags().IntVar(&opts.Height, "height", 720, "canvas height")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "window scale")
	cmd.Flags().StringVar(&opts.Script, "script", "", "JSON input script to replay")
	cmd.Flags().StringVar(&opts.Screenshots, "screenshots", "screenshots", "screenshot directory")
	cmd.Flags().BoolVar(&opts.ShowFPS, "fps", false, "show the FPS overlay")
	cmd.Flags().Float64Var(&opts.FadeIn, "fade-in", 0.35, "node fade-in seconds (0 disables)")

	return cmd
}

// newGameFromOptions builds the UI, the editor and the optional script.
func newGameFromOptions(opts *RunOptions) (*game, error) {
	graph := DefaultGraph()
	if opts.Graph != "" {
		var err error
		if graph, err = LoadGraph(opts.Graph); err != nil {
			return nil, err
		}
	}

	ui := imm.New(imm.Options{
		Width:         opts.Width,
		Height:        opts.Height,
		Scale:         opts.Scale,
		ScreenshotDir: opts.Screenshots,
		ShowFPS:       opts.ShowFPS,
		Debug:         opts.Debug,
	})
	editor := nodeeditor.NewContext(ui, nodeeditor.Config{
		SettingsPath: opts.SettingsPath,
		Logger:       opts.logger(),
	})
	g := newGame(ui, editor, graph, NewFader(float32(opts.FadeIn), ease.OutQuad))

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := imm.LoadScript(data)
		if err != nil {
			return nil, err
		}
		g.setScript(runner, true)
	}
	return g, nil
}
