package game

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circular-seekbar/internal/config"
	"github.com/iburimskiy/circular-seekbar/internal/seekbar"
)

// debug font cell size
const (
	charWidth  = 6
	lineHeight = 16
)

var backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Draw button
	g.drawButton(screen)

	// Draw seek bar
	g.drawControl(screen)

	// Draw help
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) status() string {
	var status string
	switch {
	case !g.player.Loaded():
		status = "Click the button below to open an audio file"
	case g.player.Finished():
		status = "Finished " + filepath.Base(g.player.Path()) + " - drag the ring to replay"
	case g.player.Paused():
		status = "Paused " + filepath.Base(g.player.Path()) + " - Space to play, drag the ring to seek"
	default:
		status = "Playing " + filepath.Base(g.player.Path()) + " - Space to pause, drag the ring to seek"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

// drawControl repaints the offscreen layer only when the control asked for
// it, then composites the layer every frame.
func (g *Game) drawControl(screen *ebiten.Image) {
	if g.layer == nil {
		return
	}
	if g.control.NeedsRedraw() {
		g.layer.Clear()
		if err := g.control.Draw(g.surface); err != nil {
			g.fail("draw failed", err)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.bounds.Min.X), float64(g.bounds.Min.Y))
	screen.DrawImage(g.layer, op)

	g.drawLabels(screen)
}

// drawLabels prints the value and, while playing, the time in the middle of
// the ring.
func (g *Game) drawLabels(screen *ebiten.Image) {
	geo := g.control.Geometry()
	cx := g.bounds.Min.X + int(geo.Center.X)
	cy := g.bounds.Min.Y + int(geo.Center.Y)

	lines := []string{formatValue(g.control.Value())}
	if g.player.Loaded() {
		lines = append(lines, formatDuration(g.player.Position())+" / "+formatDuration(g.player.Duration()))
	}
	if g.control.Tracking() == seekbar.Tracking {
		lines = append(lines, "seeking")
	}

	y := cy - len(lines)*lineHeight/2
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, cx-len(l)*charWidth/2, y)
		y += lineHeight
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	// Button border
	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	// Button text
	text := "Open File"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-lineHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
