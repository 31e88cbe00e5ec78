package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/rook-computer/gbascene/internal/app"
	"github.com/rook-computer/gbascene/internal/render"
	"github.com/rook-computer/gbascene/internal/scene"
	"github.com/rook-computer/gbascene/internal/system"
	"github.com/rook-computer/gbascene/internal/web"
)

const debugLogPath = "./gbascene-debug.log"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session carries what Before sets up for the command actions.
type session struct {
	out    io.Writer
	logger app.Logger
	closer io.Closer
}

func newApp(out io.Writer) *cli.App {
	s := &session{out: out, logger: app.NoopLogger{}}
	defaults := scene.DefaultOptions()

	cliApp := cli.NewApp()
	cliApp.Name = "gbascene"
	cliApp.Usage = "render a 240x160 handheld-style RPG scene"
	cliApp.Version = "1.0.0"

	cliApp.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging to " + debugLogPath,
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "write logs to this file, or - for stderr",
		},
		&cli.StringFlag{
			Name:    "stdio-log",
			EnvVars: []string{"GBASCENE_STDIO_LOG"},
			Usage:   "redirect stdout+stderr (including panics) to this file",
		},
		&cli.Int64Flag{
			Name:    "seed",
			EnvVars: []string{"GBASCENE_SEED"},
			Value:   defaults.Seed,
			Usage:   "flower scatter seed",
		},
		&cli.IntFlag{
			Name:    "density",
			EnvVars: []string{"GBASCENE_DENSITY"},
			Value:   defaults.Density,
			Usage:   "flower motifs per 200 square pixels of region",
		},
		&cli.StringFlag{
			Name:    "text",
			EnvVars: []string{"GBASCENE_TEXT"},
			Value:   defaults.Text,
			Usage:   "dialogue message",
		},
		&cli.StringSliceFlag{
			Name:  "bold",
			Value: cli.NewStringSlice(defaults.BoldWords...),
			Usage: "words rendered bold",
		},
		&cli.IntFlag{
			Name:  "path-y",
			Value: defaults.PathY,
			Usage: "top row of the path band",
		},
		&cli.IntFlag{
			Name:  "path-height",
			Value: defaults.PathHeight,
			Usage: "height of the path band",
		},
		&cli.StringFlag{
			Name:    "out",
			EnvVars: []string{"GBASCENE_OUT"},
			Value:   "gba_scene",
			Usage:   "output base path for render; scales are suffixed _x2, _x3",
		},
	}

	cliApp.Before = s.setup
	cliApp.After = s.teardown

	cliApp.Commands = []*cli.Command{
		{
			Name:   "render",
			Usage:  "write the scene as PNG at 1x, 2x and 3x (see --out)",
			Action: s.render,
		},
		{
			Name:  "serve",
			Usage: "serve the scene over HTTP",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "listen",
					EnvVars: []string{web.EnvListenAddr},
					Value:   web.DefaultListenAddr,
					Usage:   "http listen address",
				},
				&cli.BoolFlag{
					Name:    "dev",
					EnvVars: []string{web.EnvDevMode},
					Usage:   "enable permissive CORS",
				},
			},
			Action: s.serve,
		},
		{
			Name:  "show",
			Usage: "show the scene on the Linux framebuffer",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "fb",
					EnvVars: []string{"GBASCENE_FB"},
					Value:   render.DefaultFBDevice,
					Usage:   "framebuffer device",
				},
				&cli.DurationFlag{
					Name:  "hold",
					Usage: "how long to show the frame; 0 waits for Esc, Q, F4 or a signal",
				},
			},
			Action: s.show,
		},
	}

	// Without a command, gbascene renders.
	cliApp.Action = s.render
	return cliApp
}

func (s *session) setup(c *cli.Context) error {
	// Redirect first so panics while the console is in graphics mode still land in a file.
	if path := c.String("stdio-log"); path != "" {
		if err := redirectStdIO(path); err != nil {
			fmt.Fprintln(s.out, "stdio log redirect error:", err)
		}
	}

	path := c.String("log")
	if path == "" && c.Bool("debug") {
		path = debugLogPath
	}
	switch path {
	case "":
	case "-":
		s.logger = app.NewFileLogger(os.Stderr)
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(s.out, "debug log open error:", err)
			return nil
		}
		s.closer = f
		s.logger = app.NewFileLogger(f)
	}
	s.logger.Infof("main", "gbascene %s starting", c.App.Version)
	return nil
}

func (s *session) teardown(c *cli.Context) error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *session) newApp(c *cli.Context) *app.App {
	opts := scene.DefaultOptions()
	opts.Seed = c.Int64("seed")
	opts.Density = c.Int("density")
	opts.Text = c.String("text")
	opts.BoldWords = c.StringSlice("bold")
	opts.PathY = c.Int("path-y")
	opts.PathHeight = c.Int("path-height")

	a := app.New(opts)
	a.Logger = s.logger
	return a
}

func (s *session) render(c *cli.Context) error {
	paths, err := s.newApp(c).Export(c.String("out"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, p := range paths {
		fmt.Fprintln(s.out, "wrote", p)
	}
	return nil
}

func (s *session) serve(c *cli.Context) error {
	a := s.newApp(c)
	if err := a.Options.Validate(); err != nil {
		return cli.NewExitError(err, 2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: c.String("listen"), DevMode: c.Bool("dev")})
	server.Logger = s.logger
	server.Handler = web.NewMux(web.APIV1Config{Base: a.Options, Palette: a.Palette, Logger: s.logger})
	if err := server.Start(ctx); err != nil {
		return cli.NewExitError(err, 1)
	}
	s.logger.Infof("web", "listening on %s (dev=%v)", server.Addr, server.DevMode)
	printServing(s.out, s.logger, server.Addr)

	<-ctx.Done()
	return server.Stop()
}

func (s *session) show(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := s.newApp(c)
	a.Render = render.NewFBRenderer(c.String("fb"))
	a.Console = system.Console{Logger: s.logger}
	system.WatchExitKeys(ctx, s.logger, system.ExitKeys, cancel)

	if err := a.Show(ctx, c.Duration("hold")); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// printServing prints the API URL with a scannable QR code under it.
func printServing(out io.Writer, logger app.Logger, addr string) {
	url := "http://" + displayAddr(addr) + "/api/v1/"
	fmt.Fprintln(out, "gbascene listening on", addr)
	fmt.Fprintln(out, "API:", url)
	code, err := web.TerminalQRCode(url)
	if err != nil {
		logger.Errorf("web", "qr code: %v", err)
		return
	}
	fmt.Fprint(out, code)
}

// displayAddr turns a wildcard listen address into something clickable.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
