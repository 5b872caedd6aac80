// Package hud provides the heads-up display shown over the running game.
// Lines is shared by every frontend; Draw renders them through a Renderer.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/jumpman/internal/render"
)

// Status is the game information the HUD shows.
type Status struct {
	Coins   int
	Lives   int
	Shadows bool
	Frustum bool

	// Grace is the time left in which another hit is refunded.
	Grace float64

	// GameOver replaces the stats with Message.
	GameOver bool
	Message  string
}

// Line is one row of HUD text.
type Line struct {
	Text  string
	Color color.NRGBA
}

var (
	textColor   = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	coinColor   = color.NRGBA{R: 255, G: 210, B: 60, A: 255}
	livesColor  = color.NRGBA{R: 255, G: 110, B: 110, A: 255}
	dimColor    = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	gameOverRed = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
)

const (
	panelPadding = 8
	lineHeight   = 20
)

// Lines returns the rows of the stats panel.
func Lines(s Status) []Line {
	lines := []Line{
		{Text: fmt.Sprintf("Coins: %d", s.Coins), Color: coinColor},
		{Text: fmt.Sprintf("Lives: %d", s.Lives), Color: livesColor},
		{Text: "Shadows: " + onOff(s.Shadows) + " [L]", Color: dimColor},
		{Text: "Light frustum: " + onOff(s.Frustum) + " [F]", Color: dimColor},
	}
	switch {
	case s.GameOver:
		lines = append(lines, Line{Text: "Press SPACE to play again", Color: textColor})
	case s.Grace > 0:
		lines = append(lines, Line{Text: fmt.Sprintf("Grace: %.1fs", s.Grace), Color: livesColor})
	}
	return lines
}

// Banner returns the centered message, if any.
func Banner(s Status) (Line, bool) {
	if !s.GameOver {
		return Line{}, false
	}
	return Line{Text: s.Message, Color: gameOverRed}, true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// HUD draws the stats panel in the top-left corner.
type HUD struct {
	screenWidth  int
	screenHeight int
	opacity      float64
}

// New creates a HUD for a screen of the given size.
func New(screenWidth, screenHeight int) *HUD {
	return &HUD{screenWidth: screenWidth, screenHeight: screenHeight, opacity: 0.6}
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(r render.Renderer, screen render.Image, s Status) {
	lines := Lines(s)

	width := 0
	for _, l := range lines {
		if w, _ := r.MeasureText(l.Text, 1); w > width {
			width = w
		}
	}
	bg := color.NRGBA{A: uint8(h.opacity * 255)}
	r.FillRect(screen, 4, 4, float32(width+2*panelPadding), float32(len(lines)*lineHeight+2*panelPadding), bg)
	for i, l := range lines {
		r.DrawText(screen, l.Text, 4+panelPadding, 4+panelPadding+i*lineHeight, l.Color, 1)
	}

	if banner, ok := Banner(s); ok {
		w, th := r.MeasureText(banner.Text, 2.5)
		x := (h.screenWidth - w) / 2
		y := (h.screenHeight - th) / 2
		r.FillRect(screen, float32(x-16), float32(y-12), float32(w+32), float32(th+24), bg)
		r.DrawText(screen, banner.Text, x, y, banner.Color, 2.5)
	}
}
