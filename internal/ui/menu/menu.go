// Package menu implements the character select screen shown before a game.
package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render"
)

// SelectMenu lets the player pick the jumpman color. The spinning preview
// itself is drawn by the game; the menu only draws its text.
type SelectMenu struct {
	colors         []placeholders.JumpmanColor
	selected       int
	renderer       render.Renderer
	input          render.InputManager
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
}

// NewSelectMenu creates a menu over the given colors.
func NewSelectMenu(colors []placeholders.JumpmanColor, r render.Renderer, input render.InputManager, width, height int) *SelectMenu {
	return &SelectMenu{
		colors:       colors,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Selected returns the highlighted color.
func (m *SelectMenu) Selected() placeholders.JumpmanColor {
	if len(m.colors) == 0 {
		return placeholders.JumpmanColor{}
	}
	return m.colors[m.selected]
}

// SetScreenSize updates the screen dimensions.
func (m *SelectMenu) SetScreenSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Next highlights the following color, wrapping around.
func (m *SelectMenu) Next() {
	if len(m.colors) > 0 {
		m.selected = (m.selected + 1) % len(m.colors)
	}
}

// Prev highlights the previous color, wrapping around.
func (m *SelectMenu) Prev() {
	if len(m.colors) > 0 {
		m.selected = (m.selected + len(m.colors) - 1) % len(m.colors)
	}
}

// Update handles one frame of input. It returns true with the chosen color
// once the player starts the game.
func (m *SelectMenu) Update() (started bool, choice placeholders.JumpmanColor) {
	if len(m.colors) == 0 {
		return false, placeholders.JumpmanColor{}
	}

	mousePressed := m.input.IsMouseButtonPressed(render.MouseButtonLeft)
	mouseClicked := mousePressed && !m.lastMouseClick
	m.lastMouseClick = mousePressed

	if m.input.IsKeyJustPressed(render.KeyLeft) || m.input.IsKeyJustPressed(render.KeyA) {
		m.Prev()
	}
	if m.input.IsKeyJustPressed(render.KeyRight) || m.input.IsKeyJustPressed(render.KeyD) {
		m.Next()
	}

	if mouseClicked || m.input.IsKeyJustPressed(render.KeySpace) || m.input.IsKeyJustPressed(render.KeyEnter) {
		return true, m.Selected()
	}
	return false, placeholders.JumpmanColor{}
}

// Draw renders the menu text over the preview.
func (m *SelectMenu) Draw(screen render.Image) {
	white := color.RGBA{255, 255, 255, 255}
	m.renderer.DrawText(screen, "JUMPMAN", 50, 30, white, 3.0)
	m.renderer.DrawText(screen, "Choose your jumpman", 50, 90, white, 1.5)

	if len(m.colors) == 0 {
		return
	}
	c := m.Selected()
	label := fmt.Sprintf("< %s >  (%d/%d)", c.Name, m.selected+1, len(m.colors))
	w, _ := m.renderer.MeasureText(label, 2.0)
	m.renderer.DrawText(screen, label, (m.screenWidth-w)/2, m.screenHeight-140, c.Color, 2.0)

	instructionY := m.screenHeight - 60
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "LEFT/RIGHT to change color, drag to look around.", 20, instructionY, instructionColor, 1.0)
	m.renderer.DrawText(screen, "Press SPACE or click to start.", 20, instructionY+20, instructionColor, 1.0)
}
