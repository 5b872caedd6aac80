package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/jumpman/internal/audio"
	"chosenoffset.com/jumpman/internal/camera"
	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/game"
	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render/lighting"
	"chosenoffset.com/jumpman/internal/term"
	"chosenoffset.com/jumpman/internal/world"
)

func main() {
	configPath := flag.String("config", "jumpman.toml", "path to the game config")
	logPath := flag.String("log", "jumpman-term.log", "file receiving log output while the screen is in use")
	colorName := flag.String("color", "purple", "jumpman body color")
	seed := flag.Int64("seed", 0, "random seed for obstacles and coins, 0 for the clock")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var body placeholders.JumpmanColor
	found := false
	for _, c := range placeholders.JumpmanColors {
		if c.Name == *colorName {
			body, found = c, true
		}
	}
	if !found {
		log.Fatalf("Unknown color %q", *colorName)
	}

	// The screen owns stdout, so logs go to a file
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	log.SetOutput(logFile)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting terminal game, color %s, seed %d", body.Name, *seed)

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}

	w, h := screen.Size()
	g := &game.Game{
		ScreenWidth:  w,
		ScreenHeight: h,
		World:        world.New(cfg, rand.New(rand.NewSource(*seed))),
		Camera:       camera.NewOrbit(cfg.Camera),
		Lighting:     lighting.NewManager(cfg.Light),
		Sounds:       sounds,
	}
	app := term.NewApp(screen, g, body.Color, cfg.Loop.MinFrameDelta, cfg.Loop.TickRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := app.Run(ctx)
	stop()

	screen.Fini()
	sounds.Cleanup()

	if runErr != nil {
		log.Printf("Terminal game failed: %v", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if g.Terminal() {
		fmt.Println(g.World.FinalMessage())
	}
	log.Printf("Terminal game ended after %d frames", g.FrameCount)
}
