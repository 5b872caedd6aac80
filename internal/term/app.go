// Package term runs the game in a terminal with a top-down view. It shares
// the world, input sampling and event handling of the windowed game and
// drives them with an explicit tick loop.
package term

import (
	"context"
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/jumpman/internal/game"
	"chosenoffset.com/jumpman/internal/input"
	"chosenoffset.com/jumpman/internal/loop"
	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/ui/hud"
)

// hudWidth is the column space kept right of the map.
const hudWidth = 32

// App is the terminal frontend of one game session.
type App struct {
	Game *game.Game

	screen   tcell.Screen
	keys     *Keys
	sampler  *input.Sampler
	runner   *loop.Runner
	styles   Styles
	tickRate int
	clock    func() float64
	pressed  chan struct{}
	cancel   context.CancelFunc
}

// NewApp wraps g for screen. g.Input is replaced by the terminal keys.
func NewApp(screen tcell.Screen, g *game.Game, player color.NRGBA, minFrameDelta float64, tickRate int) *App {
	start := time.Now()
	a := &App{
		Game:     g,
		screen:   screen,
		keys:     NewKeys(defaultHold),
		runner:   loop.New(minFrameDelta),
		tickRate: tickRate,
		clock:    func() float64 { return time.Since(start).Seconds() },
		pressed:  make(chan struct{}, 1),
		cancel:   func() {},
		styles: Styles{
			Floor:    tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
			Obstacle: tcell.StyleDefault.Foreground(tcell.ColorIndianRed),
			Coin:     tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true),
			Player:   tcell.StyleDefault.Foreground(rgb(player)).Bold(true),
			Text:     tcell.StyleDefault,
		},
	}
	a.sampler = input.NewSampler(a.keys, 0)
	g.Input = a
	return a
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Keys returns the key latch fed by the event goroutine.
func (a *App) Keys() *Keys {
	return a.keys
}

// Sample implements game.InputSource from the latched keys.
func (a *App) Sample(width, height int) input.State {
	a.keys.Advance(a.clock())
	st := a.sampler.Sample(width, height)
	a.keys.EndFrame()
	if st.Toggles.Quit {
		a.cancel()
	}
	return st
}

// Draw paints the current state and shows it.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	bounds := a.Game.World.Platform()
	rows := max(h-2, 1)
	cols := int(float64(rows) * 2 * (bounds.MaxX - bounds.MinX) / (bounds.MaxZ - bounds.MinZ))
	cols = max(min(cols, w-hudWidth-3), 1)
	canvas := Canvas{Bounds: bounds, Width: cols, Height: rows}
	canvas.DrawWorld(a.screen, 1, 1, a.Game.World, a.styles)

	x := cols + 3
	y := 1
	status := a.Game.Status()
	for _, l := range hud.Lines(status) {
		DrawText(a.screen, x, y, l.Text, tcell.StyleDefault.Foreground(rgb(l.Color)))
		y++
	}
	y++
	if banner, ok := hud.Banner(status); ok {
		DrawText(a.screen, x, y, banner.Text, tcell.StyleDefault.Foreground(rgb(banner.Color)).Bold(true))
		y += 2
	}
	for _, m := range a.Game.Messages {
		DrawText(a.screen, x, y, m.Text, a.styles.Text)
		y++
	}
	a.screen.Show()
}

// stepper adapts the app to loop.Stepper.
type stepper struct{ a *App }

func (s stepper) Sample() input.State                { return s.a.Game.Sample() }
func (s stepper) Update(in input.State, now float64) { s.a.Game.Update(in, now) }
func (s stepper) Draw()                              { s.a.Draw() }
func (s stepper) Terminal() bool                     { return s.a.Game.Terminal() }

// Run plays until the game ends, Escape is pressed or ctx is cancelled.
// After a game over the final screen stays until a key is pressed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.cancel = cancel

	go a.pollEvents(cancel)

	a.Draw()
	err := a.runner.Run(ctx, stepper{a}, loop.Clock(ctx, a.tickRate))
	if errors.Is(err, context.Canceled) {
		log.Printf("Terminal session stopped")
		return nil
	}
	if err != nil {
		return err
	}

	if a.Game.Terminal() {
		a.Draw()
		select {
		case <-a.pressed:
		default:
		}
		select {
		case <-ctx.Done():
		case <-a.pressed:
		}
	}
	return nil
}

// pollEvents feeds key presses to the latch until the screen is finalized.
func (a *App) pollEvents(cancel context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				cancel()
				continue
			}
			if k, ok := translate(ev); ok {
				a.keys.Press(k, a.clock())
			}
			select {
			case a.pressed <- struct{}{}:
			default:
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}

// HandleKey feeds one key as if typed, for scripted input.
func (a *App) HandleKey(k render.Key) {
	a.keys.Press(k, a.clock())
}
