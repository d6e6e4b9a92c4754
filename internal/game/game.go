// Package game hosts a circular seek bar in an ebiten window and uses it to
// seek the audio file being played.
package game

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/circular-seekbar/internal/canvas"
	"github.com/iburimskiy/circular-seekbar/internal/config"
	"github.com/iburimskiy/circular-seekbar/internal/player"
	"github.com/iburimskiy/circular-seekbar/internal/seekbar"
)

type Game struct {
	cfg    *config.Config
	log    *slog.Logger
	player *player.Player

	// seek bar
	control *seekbar.Control
	layer   *ebiten.Image
	surface *canvas.Surface
	bounds  image.Rectangle // control placement in the window
	screenW int
	screenH int

	// input
	pointer pointer
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// New builds the game from cfg. The player may already be playing.
func New(cfg *config.Config, p *player.Player, log *slog.Logger) (*Game, error) {
	sb, err := cfg.SeekBar.SeekBar()
	if err != nil {
		return nil, fmt.Errorf("seek bar config: %w", err)
	}
	control, err := seekbar.New(sb)
	if err != nil {
		return nil, err
	}
	control.SetValue(cfg.SeekBar.Value)

	g := &Game{
		cfg:     cfg,
		log:     log,
		player:  p,
		control: control,
		surface: canvas.New(nil, true),
		prevKey: map[ebiten.Key]bool{},
	}
	control.OnValueChanged(g.onValueChanged)
	g.relayout(cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

func (g *Game) Update() error {
	escape := g.justPressed(ebiten.KeyEscape)
	quit := g.justPressed(ebiten.KeyQ)
	space := g.justPressed(ebiten.KeySpace)

	g.updateButton()

	// Escape aborts a drag before it quits.
	if g.updatePointer(escape) {
		escape = false
	}

	if space {
		g.player.TogglePause()
	}
	if escape || quit {
		return ebiten.Termination
	}

	g.followPlayback()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.relayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// relayout centers a full-width control of config.ControlHeight in the
// window and resizes its offscreen layer.
func (g *Game) relayout(w, h int) {
	g.screenW, g.screenH = w, h

	ch := min(config.ControlHeight, h)
	top := (h - ch) / 2
	g.bounds = image.Rect(0, top, w, top+ch)
	g.control.SetSize(seekbar.Size{Width: float64(g.bounds.Dx()), Height: float64(g.bounds.Dy())})

	if g.layer != nil {
		g.layer.Deallocate()
		g.layer = nil
	}
	if !g.bounds.Empty() {
		g.layer = ebiten.NewImage(g.bounds.Dx(), g.bounds.Dy())
	}
	g.surface.SetTarget(g.layer)
	g.control.Invalidate()
}

// local converts window coordinates into the control's space.
func (g *Game) local(x, y int) seekbar.Point {
	return seekbar.Point{X: float64(x - g.bounds.Min.X), Y: float64(y - g.bounds.Min.Y)}
}

func (g *Game) onValueChanged(v float64) {
	g.log.Debug("value changed", "value", v)
	if !g.player.Loaded() {
		return
	}
	if _, err := g.player.Seek(g.control.Fraction()); err != nil {
		g.fail("seek failed", err)
	}
}

// followPlayback moves the handle with the playback position while the user
// is not dragging it.
func (g *Game) followPlayback() {
	if !g.player.Loaded() || g.control.Tracking() == seekbar.Tracking {
		return
	}
	lo, hi := g.control.MinimumValue(), g.control.MaximumValue()
	g.control.SetValue(lo + (hi-lo)*g.player.Progress())
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func (g *Game) openAndPlayFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: player.Patterns(),
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.LoadFile(filename)
}

// LoadFile starts playing path and rewinds the seek bar.
func (g *Game) LoadFile(path string) error {
	if err := g.player.Load(path); err != nil {
		return err
	}
	g.control.SetValue(g.control.MinimumValue())
	g.lastErr = nil
	g.log.Info("playing", "file", path, "duration", g.player.Duration())
	return nil
}

func (g *Game) fail(msg string, err error) {
	g.lastErr = err
	g.log.Warn(msg, "error", err)
}
