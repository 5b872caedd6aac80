// Package config provides the tuning values for the jumpman game.
// Values are loaded from a TOML file on top of built-in defaults so a missing
// or partial file still yields a playable game.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable used by the game.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Player     PlayerConfig     `toml:"player"`
	Locomotion LocomotionConfig `toml:"locomotion"`
	Platform   PlatformConfig   `toml:"platform"`
	Obstacles  ObstacleConfig   `toml:"obstacles"`
	Coins      CoinConfig       `toml:"coins"`
	Collision  CollisionConfig  `toml:"collision"`
	Camera     CameraConfig     `toml:"camera"`
	Light      LightConfig      `toml:"light"`
	Loop       LoopConfig       `toml:"loop"`
	Audio      AudioConfig      `toml:"audio"`
}

// WindowConfig defines the host window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// PlayerConfig defines the jumpman's starting state and movement.
type PlayerConfig struct {
	Start      [3]float64 `toml:"start"`       // Feet-level spawn position
	StartYaw   float64    `toml:"start_yaw"`   // Degrees
	Scale      [3]float64 `toml:"scale"`       // Body scale
	Speed      float64    `toml:"speed"`       // Units per frame per held key
	HipOffset  float64    `toml:"hip_offset"`  // Feet-to-hip lift applied to the body transform
	FootSpread float64    `toml:"foot_spread"` // Lateral distance of each foot from the body axis
	Lives      int        `toml:"lives"`
}

// LocomotionConfig defines the foot cycle cadence.
type LocomotionConfig struct {
	Interval float64 `toml:"interval"` // Minimum seconds between foot transitions
}

// PlatformConfig is the walkable rectangle in the ground plane.
type PlatformConfig struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinZ float64 `toml:"min_z"`
	MaxZ float64 `toml:"max_z"`
}

// ObstacleConfig defines the scrolling obstacle wall.
type ObstacleConfig struct {
	Lanes  []float64 `toml:"lanes"`  // X position of each obstacle slot
	Height float64   `toml:"height"` // Y of every obstacle
	NearZ  float64   `toml:"near_z"` // Z where a disposition starts
	FarZ   float64   `toml:"far_z"`  // Z that triggers the next disposition
	Speed  float64   `toml:"speed"`  // Z advance per frame
	Gap    int       `toml:"gap"`    // Initial passable slot
}

// CoinConfig defines coin placement and pickup.
type CoinConfig struct {
	Initial      [][3]float64 `toml:"initial"`
	Count        int          `toml:"count"`         // Coins per regenerated set
	Height       float64      `toml:"height"`        // Y of regenerated coins
	PickupRadius float64      `toml:"pickup_radius"` // Planar pickup distance
}

// CollisionConfig defines hit tests and their consequences.
type CollisionConfig struct {
	BoundaryStep     float64 `toml:"boundary_step"`     // Per-frame push back into the platform
	ForwardMargin    float64 `toml:"forward_margin"`    // Obstacle half-extent on Z
	LateralMargin    float64 `toml:"lateral_margin"`    // Obstacle half-extent on X
	HitDistance      float64 `toml:"hit_distance"`      // Point-to-rectangle hit threshold
	GraceWindow      float64 `toml:"grace_window"`      // Seconds in which a second hit is refunded
	Pushback         float64 `toml:"pushback"`          // Z knock-back after a hit
	ForwardThreshold float64 `toml:"forward_threshold"` // Players at or behind this Z respawn instead
}

// CameraConfig defines the orbit camera.
type CameraConfig struct {
	Theta        float64 `toml:"theta"` // Degrees
	Phi          float64 `toml:"phi"`   // Degrees
	Distance     float64 `toml:"distance"`
	MinDistance  float64 `toml:"min_distance"`
	MaxDistance  float64 `toml:"max_distance"`
	ZoomStep     float64 `toml:"zoom_step"`
	FieldOfView  float64 `toml:"field_of_view"` // Degrees
	Near         float64 `toml:"near"`
	Far          float64 `toml:"far"`
	MaxDragDelta float64 `toml:"max_drag_delta"` // Radians per frame
}

// LightConfig defines the shadow-casting spot light.
type LightConfig struct {
	Position [3]float64 `toml:"position"`
	Target   [3]float64 `toml:"target"`
	Angle    float64    `toml:"angle"` // Cone angle in degrees
	Near     float64    `toml:"near"`
	Far      float64    `toml:"far"`
	Ambient  float64    `toml:"ambient"`
	Shadows  bool       `toml:"shadows"`
	Frustum  bool       `toml:"frustum"`
	MapSize  int        `toml:"map_size"` // Shadow texture edge in pixels
}

// LoopConfig defines frame scheduling.
type LoopConfig struct {
	MinFrameDelta float64 `toml:"min_frame_delta"` // Frames closer than this are skipped
	TickRate      int     `toml:"tick_rate"`       // Terminal frontend ticks per second
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	Soundtrack bool    `toml:"soundtrack"`
}

// DefaultConfig returns the tuning of the stock jumpman level.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Jumpman",
		},
		Player: PlayerConfig{
			Start:      [3]float64{0, 0.5, 12},
			StartYaw:   180,
			Scale:      [3]float64{0.8, 0.8, 0.8},
			Speed:      0.1,
			HipOffset:  2.1,
			FootSpread: 0.45,
			Lives:      5,
		},
		Locomotion: LocomotionConfig{
			Interval: 0.05,
		},
		Platform: PlatformConfig{
			MinX: -12.39,
			MaxX: 13.49,
			MinZ: -23.60,
			MaxZ: 20.30,
		},
		Obstacles: ObstacleConfig{
			Lanes:  []float64{-10, -3, 4, 11},
			Height: 2.7,
			NearZ:  -24,
			FarZ:   24,
			Speed:  0.1,
			Gap:    3,
		},
		Coins: CoinConfig{
			Initial: [][3]float64{
				{0, 1.5, 0},
				{-5, 1.5, -3},
				{4, 1.5, -9},
				{10, 1.5, -7},
				{4, 1.5, 4},
			},
			Count:        5,
			Height:       1.5,
			PickupRadius: 1,
		},
		Collision: CollisionConfig{
			BoundaryStep:     0.1,
			ForwardMargin:    3,
			LateralMargin:    0.5,
			HitDistance:      2,
			GraceWindow:      3,
			Pushback:         3,
			ForwardThreshold: 17,
		},
		Camera: CameraConfig{
			Theta:        90,
			Phi:          45,
			Distance:     20,
			MinDistance:  2,
			MaxDistance:  100,
			ZoomStep:     1,
			FieldOfView:  80,
			Near:         1,
			Far:          2000,
			MaxDragDelta: math.Pi / 4,
		},
		Light: LightConfig{
			Position: [3]float64{0, 15, 26},
			Target:   [3]float64{0, 0, -10},
			Angle:    50,
			Near:     10,
			Far:      200,
			Ambient:  0.2,
			Shadows:  true,
			Frustum:  false,
			MapSize:  512,
		},
		Loop: LoopConfig{
			MinFrameDelta: 0.004,
			TickRate:      60,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			Soundtrack: false,
		},
	}
}

// LoadConfig loads the game config from a TOML file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults

	if _, err := toml.DecodeFile(path, config); err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("invalid value")

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Platform.MinX >= c.Platform.MaxX || c.Platform.MinZ >= c.Platform.MaxZ:
		return fmt.Errorf("platform bounds inverted: %w", ErrInvalid)
	case len(c.Obstacles.Lanes) == 0:
		return fmt.Errorf("obstacles.lanes is empty: %w", ErrInvalid)
	case c.Obstacles.Gap < 0 || c.Obstacles.Gap >= len(c.Obstacles.Lanes):
		return fmt.Errorf("obstacles.gap %d out of range: %w", c.Obstacles.Gap, ErrInvalid)
	case c.Obstacles.FarZ <= c.Obstacles.NearZ:
		return fmt.Errorf("obstacles.far_z must exceed near_z: %w", ErrInvalid)
	case c.Coins.Count <= 0:
		return fmt.Errorf("coins.count must be positive: %w", ErrInvalid)
	case c.Player.Lives <= 0:
		return fmt.Errorf("player.lives must be positive: %w", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("player.speed must be positive: %w", ErrInvalid)
	case c.Collision.BoundaryStep <= 0:
		return fmt.Errorf("collision.boundary_step must be positive: %w", ErrInvalid)
	case c.Collision.HitDistance <= 0:
		return fmt.Errorf("collision.hit_distance must be positive: %w", ErrInvalid)
	case c.Collision.GraceWindow <= 0:
		return fmt.Errorf("collision.grace_window must be positive: %w", ErrInvalid)
	case c.Collision.Pushback <= 0:
		return fmt.Errorf("collision.pushback must be positive: %w", ErrInvalid)
	case c.Locomotion.Interval <= 0:
		return fmt.Errorf("locomotion.interval must be positive: %w", ErrInvalid)
	case c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance:
		return fmt.Errorf("camera distance range invalid: %w", ErrInvalid)
	case c.Light.MapSize <= 0:
		return fmt.Errorf("light.map_size must be positive: %w", ErrInvalid)
	}
	return nil
}
