package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	// Image decoders for page assets.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/phanxgames/pinchzoom"
)

const windowTitle = "Pinch & Zoom"

func newViewCmd() *cobra.Command {
	var (
		flags         sessionFlags
		assets        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the page viewer window",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ctrl, err := flags.newController(logger)
			if err != nil {
				return err
			}
			dir := firstNonEmpty(assets, os.Getenv(envAssets), ".")
			images, err := loadImages(dir, ctrl.Pages())
			if err != nil {
				return err
			}

			ebiten.SetWindowTitle(windowTitle)
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			v := newViewer(cmd.Context(), ctrl, images, logger, width, height)
			defer v.close()
			if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&assets, "assets", "a", "", "directory holding the page images (default $"+envAssets+" or .)")
	cmd.Flags().IntVar(&width, "width", 800, "window width")
	cmd.Flags().IntVar(&height, "height", 600, "window height")
	return cmd
}

// imageExtensions are tried in order when a page names an image without one.
var imageExtensions = []string{"", ".png", ".jpg", ".jpeg", ".webp"}

// loadImages reads every page image from dir into an ImageMap.
func loadImages(dir string, pages *pinchzoom.PageList) (pinchzoom.ImageMap, error) {
	images := make(pinchzoom.ImageMap, pages.Len())
	for _, p := range pages.Pages() {
		if _, ok := images[p.ImageName]; ok {
			continue
		}
		img, err := loadImage(dir, p.ImageName)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p.ID, err)
		}
		images[p.ImageName] = img
	}
	return images, nil
}

func loadImage(dir, name string) (*ebiten.Image, error) {
	for _, ext := range imageExtensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", pinchzoom.ErrImageNotFound, name, dir)
}

// logSelectError reports a failed page selection as a warning; it never ends
// the session.
func logSelectError(logger *log.Logger, err error) {
	if err != nil {
		logger.Warn("page selection ignored", "err", err)
	}
}

// stopped reports whether ctx has been cancelled.
func stopped(ctx context.Context) bool {
	return ctx.Err() != nil
}
