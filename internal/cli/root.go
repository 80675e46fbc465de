// Package cli implements the pinchzoom command-line interface: an
// Ebitengine image viewer driven by the gesture controller, and a headless
// replay command for gesture scripts.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pinchzoom"
)

// Environment variables read after .env is loaded.
const (
	envPages  = "PINCHZOOM_PAGES"
	envConfig = "PINCHZOOM_CONFIG"
	envAssets = "PINCHZOOM_ASSETS"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "pinchzoom",
		Short:        "Pinch, zoom and pan through a set of page images",
		Long:         `pinchzoom shows a list of page images and lets you zoom them with double taps, pinches, the wheel or the on-screen buttons, pan them by dragging and highlight them with a long press.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newReplayCmd())
	return root
}

// sessionFlags are shared by every command that builds a controller.
type sessionFlags struct {
	pages  string
	config string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pages, "pages", "p", "", "page list YAML (default $"+envPages+" or pages.yaml)")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config TOML (default $"+envConfig+")")
}

// newController loads the page list and config and creates a controller
// logging through logger.
func (f *sessionFlags) newController(logger *log.Logger) (*pinchzoom.Controller, error) {
	pagesPath := firstNonEmpty(f.pages, os.Getenv(envPages), "pages.yaml")
	data, err := os.ReadFile(pagesPath)
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}
	pages, err := pinchzoom.LoadPages(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pagesPath, err)
	}

	cfg := pinchzoom.DefaultConfig()
	if path := firstNonEmpty(f.config, os.Getenv(envConfig)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = pinchzoom.LoadConfig(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	ctrl, err := pinchzoom.New(pages,
		pinchzoom.WithConfig(cfg),
		pinchzoom.WithLogger(logger.WithPrefix("pinchzoom")),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("session started", "session", ctrl.Session(), "pages", pages.Len())
	return ctrl, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
