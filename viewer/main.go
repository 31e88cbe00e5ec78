// Command viewer opens a desktop window showing the scene at 3x. R reseeds
// the flowers, Esc or Q quits.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/urfave/cli/v2"

	"github.com/rook-computer/gbascene/internal/app"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scene"
)

const windowScale = 3

type Game struct {
	app   *app.App
	frame *ebiten.Image
	op    ebiten.DrawImageOptions
}

func newGame(a *app.App) (*Game, error) {
	g := &Game{app: a}
	g.op.GeoM.Scale(windowScale, windowScale)
	g.op.Filter = ebiten.FilterNearest
	return g, g.compose()
}

func (g *Game) compose() error {
	c, _, err := g.app.Frame()
	if err != nil {
		return err
	}
	if g.frame != nil {
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImageFromImage(c)
	ebiten.SetWindowTitle(fmt.Sprintf("gbascene (seed %d)", g.app.Options.Seed))
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.app.Options.Seed++
		return g.compose()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, &g.op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.Options.Width * windowScale, g.app.Options.Height * windowScale
}

func main() {
	defaults := scene.DefaultOptions()

	viewer := cli.NewApp()
	viewer.Name = "gbascene-viewer"
	viewer.Usage = "show the scene in a window"
	viewer.Flags = []cli.Flag{
		&cli.Int64Flag{Name: "seed", EnvVars: []string{"GBASCENE_SEED"}, Value: defaults.Seed, Usage: "flower scatter seed"},
		&cli.IntFlag{Name: "density", EnvVars: []string{"GBASCENE_DENSITY"}, Value: defaults.Density, Usage: "flower density"},
		&cli.StringFlag{Name: "text", EnvVars: []string{"GBASCENE_TEXT"}, Value: defaults.Text, Usage: "dialogue message"},
		&cli.BoolFlag{Name: "verbose", Usage: "log to stderr"},
	}
	viewer.Action = func(c *cli.Context) error {
		opts := defaults
		opts.Seed = c.Int64("seed")
		opts.Density = c.Int("density")
		opts.Text = c.String("text")

		a := app.New(opts)
		if c.Bool("verbose") {
			a.Logger = app.NewFileLogger(os.Stderr)
		}
		g, err := newGame(a)
		if err != nil {
			return cli.NewExitError(err, 2)
		}

		ebiten.SetWindowSize(render.CanvasWidth*windowScale, render.CanvasHeight*windowScale)
		if err := ebiten.RunGame(g); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	if err := viewer.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
