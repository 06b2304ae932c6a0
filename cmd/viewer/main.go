package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"transform-viewer/internal/config"
	"transform-viewer/internal/env"
	"transform-viewer/internal/graphics"
	"transform-viewer/internal/input"
	"transform-viewer/internal/logger"
	"transform-viewer/internal/viewer"
)

var CLI struct {
	Config string `help:"Configuration file." default:"config/viewer.yaml" env:"VIEWER_CONFIG"`
	Debug  bool   `help:"Whether to enable debug logging." env:"VIEWER_DEBUG"`

	View struct {
		Asset      string  `help:"Model to load." env:"VIEWER_ASSET"`
		Copies     int     `help:"How many copies of the model to load." env:"VIEWER_COPIES"`
		Width      int32   `help:"Window width; 0 uses the monitor width." env:"VIEWER_WIDTH"`
		Height     int32   `help:"Window height; 0 uses the monitor height." env:"VIEWER_HEIGHT"`
		FPS        int32   `help:"Target frame rate." name:"fps" env:"VIEWER_FPS"`
		CaptureDir string  `help:"Directory for F12 screenshots." env:"VIEWER_CAPTURE_DIR"`
		Scale      float64 `help:"Screenshot scale factor." env:"VIEWER_CAPTURE_SCALE"`
		Grid       bool    `help:"Draw the floor grid." env:"VIEWER_GRID"`
		ShowFPS    bool    `help:"Show the FPS overlay at start." name:"show-fps" env:"VIEWER_SHOW_FPS"`
	} `cmd:"" default:"withargs" help:"Open the viewer window."`

	DumpConfig struct{} `cmd:"" name:"dump-config" help:"Write the effective configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	if _, err := env.Load(".env"); err != nil {
		writeError(err)
	}

	kctx := kong.Parse(&CLI,
		kong.Name("viewer"),
		kong.Description("an interactive 3D transform viewer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := loadConfig()
	if err != nil {
		writeError(err)
	}

	switch kctx.Command() {
	case "dump-config":
		if err := config.Write(os.Stdout, cfg); err != nil {
			writeError(err)
		}
	default:
		if err := view(cfg); err != nil {
			writeError(err)
		}
	}
}

// loadConfig reads the config file and applies flags on top. The default path may be absent;
// an explicitly named file must exist.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if CLI.Config == config.DefaultPath {
		cfg, err = config.LoadOrDefault(CLI.Config)
	} else {
		cfg, err = config.Load(CLI.Config)
	}
	if err != nil {
		return cfg, err
	}

	f := CLI.View
	if f.Asset != "" {
		cfg.Asset.Path = f.Asset
	}
	if f.Copies > 0 {
		cfg.Asset.Copies = f.Copies
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.FPS > 0 {
		cfg.Window.TargetFPS = f.FPS
	}
	if f.CaptureDir != "" {
		cfg.Capture.Dir = f.CaptureDir
	}
	if f.Scale > 0 {
		cfg.Capture.Scale = f.Scale
	}
	cfg.Render.ShowGrid = cfg.Render.ShowGrid || f.Grid
	cfg.Render.ShowFPS = cfg.Render.ShowFPS || f.ShowFPS
	return cfg, nil
}

func view(cfg config.Config) error {
	log := logger.New(logger.Options{Console: os.Stdout, FilePath: cfg.Log.File, Debug: CLI.Debug})
	defer log.Close()
	if CLI.Debug {
		log.Warn().Msg("debug logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kb := input.NewKeyboard()
	v := viewer.New(cfg, log, kb)
	if err := graphics.Run(ctx, cfg.Window, kb, v); err != nil {
		log.Error().Err(err).Msg("viewer stopped")
		return err
	}
	return nil
}
