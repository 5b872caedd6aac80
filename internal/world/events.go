package world

// Events reports what happened during one Update. Frontends use it for
// logging, sound cues and the overlay; the world never reads it back.
type Events struct {
	Stepped     bool // A foot transition fired
	CoinsPicked int
	Regenerated bool // The coin set was replaced
	Redisposed  bool // The obstacle wall restarted with a new gap
	Corrected   bool // The player was pushed back inside the platform
	Hit         bool
	HitIndex    int  // Obstacle slot of the hit, -1 without one
	Refunded    bool // The hit fell inside the grace window
	Respawned   bool // The hit sent the player back to the start
	GameOver    bool
}
