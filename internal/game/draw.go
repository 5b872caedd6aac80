package game

import (
	"image/color"

	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/render/pipeline"
	"chosenoffset.com/jumpman/internal/ui/hud"
)

// Draw builds the draw list of the current state. Rendering it is left to
// Present so skipped frames keep showing the last list.
func (g *Game) Draw() {
	sky := g.Composer.Skybox(g.Camera.SkyboxMatrix(g.ScreenWidth, g.ScreenHeight))
	g.Frame = pipeline.Frame{
		Items:      g.Composer.Build(g.World, g.LastTime),
		Skybox:     &sky,
		Camera:     g.Camera,
		Width:      g.ScreenWidth,
		Height:     g.ScreenHeight,
		ClearColor: placeholders.ColorPalette.Background,
	}
}

// Status returns what the HUD shows.
func (g *Game) Status() hud.Status {
	return hud.Status{
		Coins:    g.World.Score.Coins,
		Lives:    g.World.Score.Lives,
		Shadows:  g.Lighting.IsShadowsOn(),
		Frustum:  g.Lighting.IsFrustumOn(),
		Grace:    g.World.GraceRemaining(g.LastTime),
		GameOver: g.World.Terminal(),
		Message:  g.World.FinalMessage(),
	}
}

// Present renders the last draw list and the overlay onto screen.
func (g *Game) Present(screen render.Image, dev Device, p *pipeline.Pipeline, r render.Renderer, h *hud.HUD) {
	if g.Frame.Camera == nil {
		g.Draw()
	}
	dev.Bind(screen)
	p.Render(dev, g.Frame)

	h.Draw(r, screen, g.Status())
	g.drawMessages(screen, r)
}

func (g *Game) drawMessages(screen render.Image, r render.Renderer) {
	y := g.ScreenHeight/3 - len(g.Messages)*28
	for _, m := range g.Messages {
		alpha := uint8(255 * m.TimeLeft / m.MaxTime)
		w, _ := r.MeasureText(m.Text, 1.8)
		r.DrawText(screen, m.Text, (g.ScreenWidth-w)/2, y, color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, 1.8)
		y += 28
	}
}
