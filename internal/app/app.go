// Package app wires the scene renderer to its outputs: PNG files, the
// framebuffer and the console.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rook-computer/gbascene/internal/export"
	"github.com/rook-computer/gbascene/internal/palette"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scene"
)

// Console switches the active terminal between text and graphics output.
type Console interface {
	SetGraphicsMode() error
	RestoreTextMode() error
	HideCursor() error
	ShowCursor() error
}

type App struct {
	Options  scene.Options
	Palette  palette.Palette
	Exporter export.Exporter
	Render   render.Renderer
	Console  Console
	Logger   Logger
}

func New(opts scene.Options) *App {
	return &App{
		Options:  opts,
		Palette:  palette.Default(),
		Exporter: export.Exporter{Scales: render.ExportScales},
		Render:   &render.NoopRenderer{},
		Logger:   NoopLogger{},
	}
}

// Frame validates the options and composes one frame.
func (app *App) Frame() (*render.Canvas, scene.Stats, error) {
	if err := app.Options.Validate(); err != nil {
		return nil, scene.Stats{}, fmt.Errorf("invalid scene options: %w", err)
	}
	c, stats := scene.Compose(app.Options, app.Palette)
	app.Logger.Infof("scene", "composed %dx%d seed=%d density=%d: trees=%d motifs=%d glyphs=%d lines=%d",
		app.Options.Width, app.Options.Height, app.Options.Seed, app.Options.Density,
		stats.Trees, stats.Motifs, stats.Glyphs, stats.TextLines)
	return c, stats, nil
}

// Export composes a frame and writes it under base at every export scale.
func (app *App) Export(base string) ([]string, error) {
	c, _, err := app.Frame()
	if err != nil {
		return nil, err
	}
	paths, err := app.Exporter.Export(c, base)
	for _, p := range paths {
		app.Logger.Infof("export", "wrote %s", p)
	}
	if err != nil {
		app.Logger.Errorf("export", "export failed: %v", err)
		return paths, err
	}
	return paths, nil
}

// Show composes a frame and presents it through the renderer until ctx is
// done or hold elapses. A hold of zero waits for ctx only.
func (app *App) Show(ctx context.Context, hold time.Duration) error {
	c, _, err := app.Frame()
	if err != nil {
		return err
	}
	if app.Render == nil {
		app.Render = render.NewFBRenderer("")
	}
	if fb, ok := app.Render.(*render.FBRenderer); ok {
		fb.Logger = app.Logger
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return fmt.Errorf("start renderer: %w", err)
	}
	defer app.Render.Stop()

	// Console mode is best effort; the frame is still shown without it.
	if app.Console != nil {
		if err := app.Console.SetGraphicsMode(); err != nil {
			app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = app.Console.HideCursor()
		defer func() {
			_ = app.Console.ShowCursor()
			_ = app.Console.RestoreTextMode()
		}()
	}

	if err := app.Render.Show(c); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}

	var timeout <-chan time.Time
	if hold > 0 {
		timer := time.NewTimer(hold)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-ctx.Done():
	case <-timeout:
	}
	return nil
}
