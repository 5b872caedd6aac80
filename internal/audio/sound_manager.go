package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/jumpman/internal/config"
)

// SoundManager owns the speaker and mixes cue sounds over the soundtrack.
// A disabled or uninitialized manager drops every request.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      beep.Streamer
	soundtrack  *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager for cfg. Nothing is played until
// Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		master: withGain(mixer, cfg.Volume),
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz", sm.rate)

	if sm.cfg.Soundtrack {
		sm.startSoundtrack()
	}
	return nil
}

// Enabled reports whether sounds are actually played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes in the sound of c.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CueStreamer(c, sm.rate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// startSoundtrack loops the background tune quietly. Callers hold mu.
func (sm *SoundManager) startSoundtrack() {
	if sm.soundtrack != nil {
		return
	}
	loop := Repeat(func() beep.Streamer { return Phrase(soundtrack, Triangle, sm.rate) })
	sm.soundtrack = &beep.Ctrl{Streamer: withGain(loop, 0.25)}
	speaker.Lock()
	sm.mixer.Add(sm.soundtrack)
	speaker.Unlock()
}

// SetSoundtrackPaused pauses or resumes the background tune.
func (sm *SoundManager) SetSoundtrackPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.soundtrack == nil {
		return
	}
	speaker.Lock()
	sm.soundtrack.Paused = paused
	speaker.Unlock()
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.soundtrack = nil
	sm.initialized = false
}
