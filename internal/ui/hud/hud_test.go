package hud

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/jumpman/internal/render"
)

func TestLines(t *testing.T) {
	lines := Lines(Status{Coins: 3, Lives: 4, Shadows: true})
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[0].Text != "Coins: 3" {
		t.Errorf("Expected coin count, got %q", lines[0].Text)
	}
	if lines[1].Text != "Lives: 4" {
		t.Errorf("Expected lives, got %q", lines[1].Text)
	}
	if !strings.Contains(lines[2].Text, "on") || !strings.Contains(lines[3].Text, "off") {
		t.Errorf("Expected toggle states, got %q and %q", lines[2].Text, lines[3].Text)
	}
}

func TestGraceLine(t *testing.T) {
	lines := Lines(Status{Lives: 4, Grace: 2.3})
	if len(lines) != 5 || lines[4].Text != "Grace: 2.3s" {
		t.Fatalf("Expected a grace countdown, got %+v", lines)
	}

	lines = Lines(Status{GameOver: true, Grace: 2})
	for _, l := range lines {
		if strings.HasPrefix(l.Text, "Grace") {
			t.Errorf("Expected no grace line after game over, got %q", l.Text)
		}
	}
}

func TestBanner(t *testing.T) {
	if _, ok := Banner(Status{}); ok {
		t.Error("Expected no banner while playing")
	}
	s := Status{GameOver: true, Message: "Game Over! coinPoint: 2"}
	b, ok := Banner(s)
	if !ok || b.Text != s.Message {
		t.Errorf("Expected %q, got %q", s.Message, b.Text)
	}
	if got := Lines(s); len(got) != 5 {
		t.Errorf("Expected a restart hint, got %d lines", len(got))
	}
}

type fakeRenderer struct {
	texts []string
	rects int
}

func (f *fakeRenderer) NewImage(width, height int) render.Image {
	return nil
}
func (f *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	f.rects++
}
func (f *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	f.texts = append(f.texts, text)
}
func (f *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*7) * scale), int(14 * scale)
}

type fakeImage struct{}

func (fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, 640, 480)
}
func (fakeImage) Size() (int, int) {
	return 640, 480
}
func (fakeImage) Fill(color.Color)                                 {}
func (fakeImage) Clear()                                           {}
func (fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (fakeImage) Dispose()                                         {}

func TestDrawGameOver(t *testing.T) {
	r := &fakeRenderer{}
	New(640, 480).Draw(r, fakeImage{}, Status{Lives: 0, GameOver: true, Message: "Game Over! coinPoint: 0"})

	if r.rects != 2 {
		t.Errorf("Expected panel and banner backgrounds, got %d", r.rects)
	}
	if last := r.texts[len(r.texts)-1]; last != "Game Over! coinPoint: 0" {
		t.Errorf("Expected the banner last, got %q", last)
	}
}
