// Command termflow-demo renders a live status line that adapts to terminal
// size. With --width it composes once at the given size and prints the
// result, which is useful for eyeballing breakpoint behavior in scripts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termflow/config"
	"gitlab.com/tinyland/lab/termflow/layout"
	"gitlab.com/tinyland/lab/termflow/statusline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		width      int
		height     int
		modeName   string
	)

	cmd := &cobra.Command{
		Use:          "termflow-demo",
		Short:        "Demo of the termflow responsive status line",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				logger.Error("invalid configuration", "path", configPath, "error", err)
				return err
			}

			requested := cfg.Mode()
			if modeName != "" {
				requested, err = layout.ParseMode(modeName)
				if err != nil {
					return err
				}
			}

			thresholds, err := cfg.Thresholds()
			if err != nil {
				return err
			}
			ceilings, err := cfg.CeilingTable()
			if err != nil {
				return err
			}

			observer := layout.NewObserver(layout.ObserverConfig{
				Thresholds:     thresholds,
				FallbackWidth:  cfg.Observer.FallbackWidth,
				FallbackHeight: cfg.Observer.FallbackHeight,
			})
			renderer := statusline.NewRenderer(statusline.RendererConfig{
				Ceilings:     ceilings,
				ColorEnabled: cfg.Display.ColorEnabled && width == 0,
			})

			// One-shot mode: compose at a fixed size and print.
			if width > 0 {
				if height <= 0 {
					height = cfg.Observer.FallbackHeight
				}
				snap := observer.Resize(width, height)
				line := renderer.Compose(snap, requested, mockState())
				fmt.Println(line.Text)
				for _, sub := range line.Subtasks {
					fmt.Println(sub)
				}
				fmt.Printf("breakpoint=%s mode=%s over_budget=%v\n", snap.Breakpoint, line.Mode, line.OverBudget)
				return nil
			}

			p := tea.NewProgram(newModel(observer, renderer, requested))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a termflow YAML config file")
	cmd.Flags().IntVar(&width, "width", 0, "compose once at this width and exit")
	cmd.Flags().IntVar(&height, "height", 0, "terminal height for one-shot composition")
	cmd.Flags().StringVar(&modeName, "mode", "", "display mode: compact, normal, or verbose")
	return cmd
}
