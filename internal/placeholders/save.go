package placeholders

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"path/filepath"
)

// Texture sizes written by GenerateAndSave
const (
	SkyWidth       = 256
	SkyHeight      = 512
	PlatformPixels = 256
)

// CreateSwatches lays the jumpman colors out left to right, one crossed
// tile each.
func CreateSwatches() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize*len(JumpmanColors), TileSize))
	for i, c := range JumpmanColors {
		tile := CreatePatternedTile(c.Color, Lighten(c.Color, 0.5), "diagonal")
		r := image.Rect(i*TileSize, 0, (i+1)*TileSize, TileSize)
		draw.Draw(img, r, tile, image.Point{}, draw.Src)
	}
	return img
}

// GenerateAndSave writes every placeholder texture as PNG into dir.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	files := []struct {
		name string
		img  image.Image
	}{
		{"sky.png", CreateSkyGradient(SkyWidth, SkyHeight)},
		{"platform.png", CreatePlatformTexture(PlatformPixels, PlatformPixels)},
		{"jumpman_colors.png", CreateSwatches()},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := SavePNG(f.img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		log.Printf("Wrote %s", path)
	}
	return nil
}
