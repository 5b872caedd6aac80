// Package world owns the jumpman game state and its per-frame update.
package world

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/collision"
	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/input"
	"chosenoffset.com/jumpman/internal/locomotion"
)

// Score is the coin and life count shown on the overlay.
type Score struct {
	Coins int
	Lives int
}

// State is the whole mutable game state. It is only touched from the tick.
type State struct {
	Player          Player
	Obstacles       Obstacles
	Coins           Coins
	Score           Score
	Invulnerability Invulnerability

	walk     *locomotion.Machine
	platform collision.Rect
	hits     collision.ObstacleTest

	start        mgl64.Vec3
	startYaw     float64
	speed        float64
	boundaryStep float64
	pushback     float64
	threshold    float64

	corrected bool
	terminal  bool

	cfg *config.Config
	rng *rand.Rand
}

// New builds a fresh game from cfg. rng drives obstacle gaps and coin
// placement; pass a seeded source for reproducible runs.
func New(cfg *config.Config, rng *rand.Rand) *State {
	s := &State{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset restarts the game with full lives and no coins.
func (s *State) Reset() {
	cfg := s.cfg

	s.platform = collision.Rect{
		MinX: cfg.Platform.MinX,
		MaxX: cfg.Platform.MaxX,
		MinZ: cfg.Platform.MinZ,
		MaxZ: cfg.Platform.MaxZ,
	}
	s.hits = collision.ObstacleTest{
		ForwardMargin: cfg.Collision.ForwardMargin,
		LateralMargin: cfg.Collision.LateralMargin,
		HitDistance:   cfg.Collision.HitDistance,
	}
	s.start = mgl64.Vec3(cfg.Player.Start)
	s.startYaw = cfg.Player.StartYaw
	s.speed = cfg.Player.Speed
	s.boundaryStep = cfg.Collision.BoundaryStep
	s.pushback = cfg.Collision.Pushback
	s.threshold = cfg.Collision.ForwardThreshold

	s.Player = Player{
		Position: s.start,
		Yaw:      s.startYaw,
		Scale:    mgl64.Vec3(cfg.Player.Scale),
	}
	s.walk = locomotion.New(cfg.Locomotion.Interval)
	s.Obstacles = NewObstacles(
		cfg.Obstacles.Lanes,
		cfg.Obstacles.Height,
		cfg.Obstacles.NearZ,
		cfg.Obstacles.FarZ,
		cfg.Obstacles.Speed,
		cfg.Obstacles.Gap,
		s.rng,
	)
	s.Coins = NewCoins(cfg.Coins.Initial, cfg.Coins.Count, cfg.Coins.Height, cfg.Coins.PickupRadius, s.platform, s.rng)
	s.Score = Score{Lives: cfg.Player.Lives}
	s.Invulnerability = Invulnerability{Window: cfg.Collision.GraceWindow}
	s.corrected = false
	s.terminal = false
}

// Update advances the game by one frame at animation time now (seconds).
// A terminal state ignores further updates.
func (s *State) Update(in input.State, now float64) Events {
	ev := Events{HitIndex: -1}
	if s.terminal {
		return ev
	}

	ev.Stepped = s.walk.Step(now, in.Moving())
	s.Player.Sway = s.walk.Pose().Sway

	// The frame after a boundary push ignores the keys
	if s.corrected {
		s.corrected = false
	} else {
		s.Player.Move(in.Move, s.speed)
	}

	ev.Redisposed = s.Obstacles.Advance()

	picked, regenerated := s.Coins.Collect(s.Player.Position)
	s.Score.Coins += picked
	ev.CoinsPicked = picked
	ev.Regenerated = regenerated

	s.Player.Position, s.corrected = collision.Contain(s.Player.Position, s.platform, s.boundaryStep)
	ev.Corrected = s.corrected

	if idx, hit := s.hits.FirstHit(s.Player.Position, s.Obstacles.Boxes()); hit {
		ev.Hit = true
		ev.HitIndex = idx
		ev.Refunded, ev.Respawned = s.HitObstacle(now)
	}

	if s.Score.Lives <= 0 {
		s.terminal = true
		ev.GameOver = true
	}
	return ev
}

// HitObstacle applies the consequences of an obstacle hit at time now: the
// grace refund, the life cost and the knock-back.
func (s *State) HitObstacle(now float64) (refunded, respawned bool) {
	if s.Invulnerability.Hit(now) {
		s.Score.Lives++
		refunded = true
	}
	s.Score.Lives--

	if s.Player.Position[2] < s.threshold {
		s.Player.Position[2] += s.pushback
	} else {
		s.Player.Position = s.start
		s.Player.Yaw = s.startYaw
		respawned = true
	}
	return refunded, respawned
}

// GraceRemaining returns how much longer a hit at now would be refunded, or
// 0 outside the grace window.
func (s *State) GraceRemaining(now float64) float64 {
	last, ok := s.Invulnerability.LastHit()
	if !ok {
		return 0
	}
	return max(s.Invulnerability.Window-(now-last), 0)
}

// Pose returns the current walk-cycle pose.
func (s *State) Pose() locomotion.Pose {
	return s.walk.Pose()
}

// Platform returns the walkable rectangle.
func (s *State) Platform() collision.Rect {
	return s.platform
}

// Terminal reports whether the game is over.
func (s *State) Terminal() bool {
	return s.terminal
}

// FinalMessage is the text shown once the game is over.
func (s *State) FinalMessage() string {
	return fmt.Sprintf("Game Over! coinPoint: %d", s.Score.Coins)
}
