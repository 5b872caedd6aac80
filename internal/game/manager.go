package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/jumpman/internal/audio"
	"chosenoffset.com/jumpman/internal/camera"
	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/input"
	"chosenoffset.com/jumpman/internal/loop"
	"chosenoffset.com/jumpman/internal/model"
	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/render/lighting"
	"chosenoffset.com/jumpman/internal/render/pipeline"
	"chosenoffset.com/jumpman/internal/scene"
	"chosenoffset.com/jumpman/internal/ui/hud"
	"chosenoffset.com/jumpman/internal/ui/menu"
	"chosenoffset.com/jumpman/internal/world"
)

// Manager handles the overall game state, from character select through play
// to game over. It implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Menu         *menu.SelectMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Device       Device
	Sounds       *audio.SoundManager

	Camera   *camera.Orbit
	Lighting *lighting.Manager
	Pipeline *pipeline.Pipeline
	Composer *scene.Composer
	HUD      *hud.HUD
	Runner   *loop.Runner

	sampler      *input.Sampler
	lastInput    input.State
	cfg          *config.Config
	deviceReady  bool
	clock        func() float64
	previewStart float64
}

// NewManager wires every subsystem around the loaded models. The device is
// only checked on the first Update, once the host has a graphics context.
func NewManager(cfg *config.Config, models map[string]*model.Model, r render.Renderer, in render.InputManager, dev Device, sounds *audio.SoundManager) (*Manager, error) {
	composer, err := scene.NewComposer(models, cfg.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	light := lighting.NewManager(cfg.Light)
	start := time.Now()
	m := &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        StateSelect,
		Menu:         menu.NewSelectMenu(placeholders.JumpmanColors, r, in, cfg.Window.Width, cfg.Window.Height),
		Renderer:     r,
		InputMgr:     in,
		Device:       dev,
		Sounds:       sounds,
		Camera:       camera.NewOrbit(cfg.Camera),
		Lighting:     light,
		Pipeline:     pipeline.New(light),
		Composer:     composer,
		HUD:          hud.New(cfg.Window.Width, cfg.Window.Height),
		Runner:       loop.New(cfg.Loop.MinFrameDelta),
		sampler:      input.NewSampler(in, cfg.Camera.MaxDragDelta),
		cfg:          cfg,
		clock:        func() float64 { return time.Since(start).Seconds() },
	}
	return m, nil
}

// SetClock replaces the time source, in seconds.
func (m *Manager) SetClock(clock func() float64) {
	m.clock = clock
}

// Sample implements InputSource and remembers the last controls.
func (m *Manager) Sample(width, height int) input.State {
	m.lastInput = m.sampler.Sample(width, height)
	return m.lastInput
}

// Update updates the game state.
func (m *Manager) Update() error {
	if !m.deviceReady {
		if err := pipeline.CheckDevice(m.Device); err != nil {
			return err
		}
		m.deviceReady = true
		log.Printf("Rendering device ready")
	}
	now := m.clock()

	switch m.State {
	case StateSelect:
		in := m.Sample(m.ScreenWidth, m.ScreenHeight)
		if in.Toggles.Quit {
			return ErrQuit
		}
		m.Camera.Apply(in)
		if started, choice := m.Menu.Update(); started {
			if err := m.StartGame(choice.Name); err != nil {
				return err
			}
		}

	case StatePlaying:
		m.lastInput = input.State{}
		m.Runner.Tick(m.Game, now)
		if m.lastInput.Toggles.Quit {
			m.backToSelect()
			return nil
		}
		if m.Game.Terminal() {
			m.State = StateGameOver
			log.Printf("State: %s", m.State)
		}

	case StateGameOver:
		in := m.Sample(m.ScreenWidth, m.ScreenHeight)
		m.Camera.Apply(in)
		switch {
		case in.Toggles.Quit:
			m.backToSelect()
		case m.InputMgr.IsKeyJustPressed(render.KeySpace) || m.InputMgr.IsKeyJustPressed(render.KeyEnter):
			m.Game.Reset()
			m.Runner = loop.New(m.cfg.Loop.MinFrameDelta)
			m.State = StatePlaying
			m.play(audio.CueStart)
			log.Printf("State: %s", m.State)
		}
	}
	return nil
}

// StartGame creates a fresh session with the named jumpman color.
func (m *Manager) StartGame(colorName string) error {
	if err := m.Composer.SelectBody(colorName); err != nil {
		return err
	}
	m.Camera = camera.NewOrbit(m.cfg.Camera)
	m.Game = &Game{
		ScreenWidth:  m.ScreenWidth,
		ScreenHeight: m.ScreenHeight,
		World:        world.New(m.cfg, rand.New(rand.NewSource(time.Now().UnixNano()))),
		Camera:       m.Camera,
		Composer:     m.Composer,
		Lighting:     m.Lighting,
		Input:        m,
		Sounds:       m.Sounds,
	}
	m.Game.Draw()
	m.Runner = loop.New(m.cfg.Loop.MinFrameDelta)
	m.State = StatePlaying
	m.play(audio.CueStart)
	log.Printf("Starting game as %s jumpman", colorName)
	return nil
}

func (m *Manager) backToSelect() {
	m.State = StateSelect
	m.Game = nil
	m.Camera = camera.NewOrbit(m.cfg.Camera)
	m.previewStart = m.clock()
	log.Printf("State: %s", m.State)
}

func (m *Manager) play(c audio.Cue) {
	if m.Sounds != nil {
		m.Sounds.Play(c)
	}
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateSelect:
		m.drawPreview(screen)
		m.Menu.Draw(screen)
	case StatePlaying, StateGameOver:
		if m.Game != nil {
			m.Game.Present(screen, m.Device, m.Pipeline, m.Renderer, m.HUD)
		}
	}
}

// drawPreview renders the selected jumpman spinning on its own.
func (m *Manager) drawPreview(screen render.Image) {
	sky := m.Composer.Skybox(m.Camera.SkyboxMatrix(m.ScreenWidth, m.ScreenHeight))
	m.Device.Bind(screen)
	m.Pipeline.Render(m.Device, pipeline.Frame{
		Items:      m.Composer.Preview(m.clock() - m.previewStart),
		Skybox:     &sky,
		Camera:     m.Camera,
		Width:      m.ScreenWidth,
		Height:     m.ScreenHeight,
		ClearColor: placeholders.ColorPalette.Background,
	})
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Menu.SetScreenSize(outsideWidth, outsideHeight)
		m.HUD.SetScreenSize(outsideWidth, outsideHeight)
		if m.Game != nil {
			m.Game.ScreenWidth = outsideWidth
			m.Game.ScreenHeight = outsideHeight
		}
	}
	return outsideWidth, outsideHeight
}
