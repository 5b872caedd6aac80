package game

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/audio"
	"chosenoffset.com/jumpman/internal/camera"
	"chosenoffset.com/jumpman/internal/input"
	"chosenoffset.com/jumpman/internal/render/lighting"
	"chosenoffset.com/jumpman/internal/render/pipeline"
	"chosenoffset.com/jumpman/internal/scene"
	"chosenoffset.com/jumpman/internal/world"
)

const messageDuration = 1.5

// Light nudges move the spot light per frame held, inside a box around the
// platform.
const (
	lightStep = 0.1
	lightMin  = -10.0
	lightMax  = 40.0
)

// Game holds one play session: the world, its camera and what the last frame
// drew.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	World    *world.State
	Camera   *camera.Orbit
	Composer *scene.Composer
	Lighting *lighting.Manager
	Input    InputSource
	Sounds   *audio.SoundManager

	// Frame is the draw list built by the last Draw.
	Frame pipeline.Frame

	// UI state
	Messages []Message
	LastTime float64
	started  bool

	// Debug
	FrameCount int
}

// Sample reads the controls for the next frame.
func (g *Game) Sample() input.State {
	return g.Input.Sample(g.ScreenWidth, g.ScreenHeight)
}

// Update advances the session to now, in seconds.
func (g *Game) Update(in input.State, now float64) {
	dt := 0.0
	if g.started {
		dt = now - g.LastTime
	}
	g.started = true
	g.LastTime = now
	g.updateMessages(dt)

	g.Camera.Apply(in)
	if in.Toggles.Shadows {
		log.Printf("Shadows %s", onOff(g.Lighting.ToggleShadows()))
	}
	if in.Toggles.Frustum {
		log.Printf("Light frustum %s", onOff(g.Lighting.ToggleFrustum()))
	}

	if in.Light.Any() {
		g.nudgeLight(in.Light)
	}

	g.handleEvents(g.World.Update(in, now))
	g.FrameCount++
}

// handleEvents turns world events into log lines, messages and sounds.
func (g *Game) handleEvents(ev world.Events) {
	score := g.World.Score

	if ev.CoinsPicked > 0 {
		log.Printf("Coin collected, score %d", score.Coins)
		g.AddMessage(fmt.Sprintf("+%d coin", ev.CoinsPicked))
		g.play(audio.CueCoin)
	}
	if ev.Regenerated {
		log.Printf("Coins regenerated")
	}
	if ev.Redisposed {
		log.Printf("Obstacle wall restarted, gap in lane %d", g.World.Obstacles.Gap())
	}
	if ev.Hit {
		switch {
		case ev.Refunded:
			log.Printf("Obstacle %d hit inside the grace window, lives %d", ev.HitIndex, score.Lives)
			g.AddMessage("Saved!")
		case ev.Respawned:
			log.Printf("Obstacle %d hit, respawned, lives %d", ev.HitIndex, score.Lives)
			g.AddMessage("Ouch! Back to start")
		default:
			log.Printf("Obstacle %d hit, lives %d", ev.HitIndex, score.Lives)
			g.AddMessage("Ouch!")
		}
		g.play(audio.CueHit)
	}
	if ev.GameOver {
		log.Printf("Game over after %d frames: %s", g.FrameCount, g.World.FinalMessage())
		g.play(audio.CueGameOver)
	}
}

// nudgeLight moves the spot light by one step along each held axis. The
// light keeps its target, so the cone swings to follow.
func (g *Game) nudgeLight(k input.LightKeys) {
	l := g.Lighting.GetSpotLight()
	delta := mgl64.Vec3{axis(k.Left, k.Right), axis(k.Down, k.Up), axis(k.Forward, k.Back)}
	p := l.Position.Add(delta.Mul(lightStep))
	for i := range p {
		p[i] = mgl64.Clamp(p[i], lightMin, lightMax)
	}
	l.Position = p
	g.Lighting.SetSpotLight(l)
}

func axis(neg, pos bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

func (g *Game) play(c audio.Cue) {
	if g.Sounds != nil {
		g.Sounds.Play(c)
	}
}

// Terminal reports whether the session has ended.
func (g *Game) Terminal() bool {
	return g.World.Terminal()
}

// Reset starts a new session with the same models and settings.
func (g *Game) Reset() {
	g.World.Reset()
	g.Messages = nil
	g.FrameCount = 0
	g.Draw()
	log.Printf("New game, lives %d", g.World.Score.Lives)
}

// AddMessage shows text over the game for a short while.
func (g *Game) AddMessage(text string) {
	g.Messages = append(g.Messages, Message{Text: text, TimeLeft: messageDuration, MaxTime: messageDuration})
}

func (g *Game) updateMessages(dt float64) {
	kept := g.Messages[:0]
	for _, m := range g.Messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	g.Messages = kept
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
