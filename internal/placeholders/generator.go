package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the edge of a repeating placeholder texture tile
const TileSize = 32

// ColorPalette defines the colors of the stand-in scene
var ColorPalette = struct {
	// Level
	Platform     color.NRGBA
	PlatformGrid color.NRGBA
	Obstacle     color.NRGBA
	Coin         color.NRGBA

	// Jumpman
	Foot color.NRGBA
	Head color.NRGBA

	// Sky
	SkyTop     color.NRGBA
	SkyHorizon color.NRGBA

	// UI
	Border     color.NRGBA
	Background color.NRGBA
}{
	Platform:     color.NRGBA{90, 110, 140, 255},  // Slate blue
	PlatformGrid: color.NRGBA{70, 85, 110, 255},   // Darker slate
	Obstacle:     color.NRGBA{200, 60, 50, 255},   // Brick red
	Coin:         color.NRGBA{255, 215, 0, 255},   // Gold
	Foot:         color.NRGBA{40, 40, 40, 255},    // Shoe black
	Head:         color.NRGBA{240, 200, 160, 255}, // Skin
	SkyTop:       color.NRGBA{30, 60, 140, 255},   // Deep blue
	SkyHorizon:   color.NRGBA{170, 200, 235, 255}, // Pale blue
	Border:       color.NRGBA{200, 200, 200, 255},
	Background:   color.NRGBA{20, 22, 30, 255},
}

// JumpmanColor is one of the selectable body colors.
type JumpmanColor struct {
	Name  string
	Color color.NRGBA
}

// JumpmanColors are the bodies offered by the select scene, in order.
var JumpmanColors = []JumpmanColor{
	{"purple", color.NRGBA{130, 60, 200, 255}},
	{"orange", color.NRGBA{250, 140, 30, 255}},
	{"red", color.NRGBA{220, 40, 40, 255}},
	{"turquoise", color.NRGBA{40, 200, 190, 255}},
	{"green", color.NRGBA{60, 190, 70, 255}},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.NRGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "grid":
		for i := 0; i < TileSize; i += 8 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, i, patternColor)
				img.Set(i, x, patternColor)
			}
		}
	case "diagonal":
		for i := 0; i < TileSize; i++ {
			img.Set(i, i, patternColor)
			img.Set(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// CreatePlatformTexture tiles the platform pattern over w x h pixels.
func CreatePlatformTexture(w, h int) *image.RGBA {
	tile := CreatePatternedTile(ColorPalette.Platform, ColorPalette.PlatformGrid, "grid")
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += TileSize {
		for x := 0; x < w; x += TileSize {
			draw.Draw(img, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
		}
	}
	return img
}

// CreateSkyGradient creates the skybox texture, SkyTop at row 0 fading to
// SkyHorizon at the middle row and darkening below it.
func CreateSkyGradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if h < 2 {
		draw.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.SkyHorizon}, image.Point{}, draw.Src)
		return img
	}
	mid := h / 2
	ground := Darken(ColorPalette.SkyHorizon, 0.4)
	for y := 0; y < h; y++ {
		var c color.NRGBA
		if y <= mid {
			c = Mix(ColorPalette.SkyTop, ColorPalette.SkyHorizon, float64(y)/float64(mid))
		} else {
			c = Mix(ColorPalette.SkyHorizon, ground, float64(y-mid)/float64(h-1-mid))
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// Mix linearly interpolates from a to b, t in [0, 1].
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
