package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/jumpman/internal/collision"
	"chosenoffset.com/jumpman/internal/world"
)

// Glyphs of the top-down view.
const (
	glyphFloor    = '·'
	glyphObstacle = '█'
	glyphCoin     = 'o'
)

// facingGlyphs are indexed by yaw in 45 degree steps starting at YawBack.
var facingGlyphs = [8]rune{'v', '↘', '>', '↗', '^', '↖', '<', '↙'}

// Canvas maps platform coordinates to terminal cells. Columns follow x and
// rows follow z, so forward (-z) is up.
type Canvas struct {
	Bounds        collision.Rect
	Width, Height int
}

// Cell returns the cell containing the planar point (x, z).
func (c Canvas) Cell(x, z float64) (col, row int, ok bool) {
	if c.Width < 1 || c.Height < 1 {
		return 0, 0, false
	}
	fx := (x - c.Bounds.MinX) / (c.Bounds.MaxX - c.Bounds.MinX)
	fz := (z - c.Bounds.MinZ) / (c.Bounds.MaxZ - c.Bounds.MinZ)
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0, 0, false
	}
	col = min(int(fx*float64(c.Width)), c.Width-1)
	row = min(int(fz*float64(c.Height)), c.Height-1)
	return col, row, true
}

// FacingGlyph returns the arrow for a yaw in degrees.
func FacingGlyph(yaw float64) rune {
	i := int(math.Round(yaw/45)) % 8
	if i < 0 {
		i += 8
	}
	return facingGlyphs[i]
}

// Styles of the top-down view.
type Styles struct {
	Floor    tcell.Style
	Obstacle tcell.Style
	Coin     tcell.Style
	Player   tcell.Style
	Text     tcell.Style
}

// DrawWorld paints the platform, obstacles, coins and player at (x0, y0).
func (c Canvas) DrawWorld(s tcell.Screen, x0, y0 int, w *world.State, st Styles) {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			s.SetContent(x0+col, y0+row, glyphFloor, nil, st.Floor)
		}
	}

	for _, ob := range w.Obstacles.Items {
		if !ob.Visible {
			continue
		}
		// Obstacles are one unit wide and two deep
		for dz := -1.0; dz <= 1.0; dz += 0.5 {
			for dx := -0.5; dx <= 0.5; dx += 0.5 {
				if col, row, ok := c.Cell(ob.Position[0]+dx, ob.Position[2]+dz); ok {
					s.SetContent(x0+col, y0+row, glyphObstacle, nil, st.Obstacle)
				}
			}
		}
	}

	for _, coin := range w.Coins.Items {
		if coin.Hit {
			continue
		}
		if col, row, ok := c.Cell(coin.Position[0], coin.Position[2]); ok {
			s.SetContent(x0+col, y0+row, glyphCoin, nil, st.Coin)
		}
	}

	p := w.Player
	if col, row, ok := c.Cell(p.Position[0], p.Position[2]); ok {
		s.SetContent(x0+col, y0+row, FacingGlyph(p.Yaw), nil, st.Player)
	}
}

// DrawText writes str starting at (x, y).
func DrawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
