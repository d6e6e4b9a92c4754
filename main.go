package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/circular-seekbar/internal/config"
	"github.com/iburimskiy/circular-seekbar/internal/game"
	"github.com/iburimskiy/circular-seekbar/internal/logger"
	"github.com/iburimskiy/circular-seekbar/internal/player"
)

// CLI defines the command line.
type CLI struct {
	File      string `arg:"" optional:"" type:"existingfile" help:"Audio file to play on start (wav, mp3, flac)"`
	Config    string `flag:"" type:"path" help:"Config file merged over the default locations"`
	Width     int    `flag:"" help:"Window width (overrides config)"`
	Height    int    `flag:"" help:"Window height (overrides config)"`
	LogLevel  string `flag:"" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `flag:"" default:"text" enum:"text,json" help:"Log format"`
}

// Run opens the window and blocks until it closes.
func (c *CLI) Run() error {
	log, err := logger.Setup(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Width > 0 {
		cfg.Window.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Window.Height = c.Height
	}

	p := player.New(cfg.Player.SeekCooldown())
	defer p.Close()

	g, err := game.New(cfg, p, log)
	if err != nil {
		return err
	}
	if c.File != "" {
		if err := g.LoadFile(c.File); err != nil {
			return fmt.Errorf("play %s: %w", c.File, err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Debug("starting", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("circular-seekbar"),
		kong.Description("Play an audio file and seek it with a circular seek bar."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
