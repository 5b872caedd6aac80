package main

import (
	"errors"
	"flag"
	"log"

	"chosenoffset.com/jumpman/internal/audio"
	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/game"
	"chosenoffset.com/jumpman/internal/model"
	"chosenoffset.com/jumpman/internal/placeholders"
	ebitenrender "chosenoffset.com/jumpman/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "jumpman.toml", "path to the game config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Models are generated in code, no asset files needed
	models, err := model.LoadAll(placeholders.NewLoader(cfg), placeholders.ModelNames()...)
	if err != nil {
		log.Fatalf("Failed to load models: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	device := ebitenrender.NewDevice(placeholders.CreateSkyGradient(placeholders.SkyWidth, placeholders.SkyHeight))
	engine := ebitenrender.NewEngine()

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	defer sounds.Cleanup()

	gameManager, err := game.NewManager(cfg, models, renderer, inputMgr, device, sounds)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Loop.TickRate)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
	log.Println("Goodbye")
}
