package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/circular-seekbar/internal/config"
)

type pointerSource int

const (
	noPointer pointerSource = iota
	mousePointer
	touchPointer
)

// pointer follows the single mouse button or touch driving the seek bar.
type pointer struct {
	source  pointerSource
	touchID ebiten.TouchID
	x, y    int
}

// updatePointer turns polled mouse and touch state into pointer events for
// the control. It reports whether escape was used to cancel a drag.
func (g *Game) updatePointer(escape bool) bool {
	p := &g.pointer

	if p.source == noPointer {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			x, y := ebiten.CursorPosition()
			g.beginPointer(mousePointer, 0, x, y)
		default:
			if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
				x, y := ebiten.TouchPosition(ids[0])
				g.beginPointer(touchPointer, ids[0], x, y)
			}
		}
		return false
	}

	// Losing focus or pressing escape abandons the drag.
	if escape || !ebiten.IsFocused() {
		g.control.PointerCancel()
		*p = pointer{}
		return escape
	}

	var released bool
	var x, y int
	switch p.source {
	case mousePointer:
		released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		x, y = ebiten.CursorPosition()
	case touchPointer:
		released = inpututil.IsTouchJustReleased(p.touchID)
		if !released {
			x, y = ebiten.TouchPosition(p.touchID)
		}
	}

	if released {
		g.endPointer()
		return false
	}
	if x != p.x || y != p.y {
		p.x, p.y = x, y
		g.control.PointerMove(g.local(x, y))
	}
	return false
}

// beginPointer starts a drag unless the press landed on the button, which
// owns that click.
func (g *Game) beginPointer(source pointerSource, id ebiten.TouchID, x, y int) {
	if overButton(x, y) || !g.control.PointerDown(g.local(x, y)) {
		return
	}
	g.pointer = pointer{source: source, touchID: id, x: x, y: y}
}

// endPointer finishes the drag and lands playback exactly on the final
// value, which the seek cooldown may have skipped.
func (g *Game) endPointer() {
	g.control.PointerUp()
	g.pointer = pointer{}
	if g.player.Loaded() {
		if err := g.player.SeekNow(g.control.Fraction()); err != nil {
			g.fail("seek failed", err)
		}
	}
}

func (g *Game) updateButton() {
	g.buttonHovered = overButton(ebiten.CursorPosition())

	// Button click detection
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openAndPlayFileDialog(); err != nil {
				g.fail("open failed", err)
			}
		}
		g.buttonPressed = false
	}
}

// overButton reports whether the window point x, y is on the Open File
// button, edges included.
func overButton(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}
