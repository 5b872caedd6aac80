package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/jumpman/internal/render"
)

// defaultHold is how long a key stays held after its last press. Terminals
// report no key releases, only presses and auto-repeats.
const defaultHold = 0.15

// Keys latches terminal key presses into held and just-pressed state. It
// implements render.InputManager so the shared input sampler can read it.
// Presses arrive from the event goroutine; the rest is read by the loop.
type Keys struct {
	mu   sync.Mutex
	hold float64
	now  float64
	last map[render.Key]float64
	just map[render.Key]bool
}

// NewKeys creates a latch that keeps keys held for hold seconds.
func NewKeys(hold float64) *Keys {
	if hold <= 0 {
		hold = defaultHold
	}
	return &Keys{
		hold: hold,
		last: make(map[render.Key]float64),
		just: make(map[render.Key]bool),
	}
}

// Press records a press of key at time now.
func (k *Keys) Press(key render.Key, now float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if t, ok := k.last[key]; !ok || now-t > k.hold {
		k.just[key] = true
	}
	k.last[key] = now
}

// Advance sets the time held keys are judged against.
func (k *Keys) Advance(now float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.now = now
}

// EndFrame clears the just-pressed flags once a frame has read them.
func (k *Keys) EndFrame() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.just)
}

// IsKeyPressed reports whether key was pressed within the hold time.
func (k *Keys) IsKeyPressed(key render.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	t, ok := k.last[key]
	return ok && k.now-t <= k.hold
}

// IsKeyJustPressed reports whether key went down since the last frame.
func (k *Keys) IsKeyJustPressed(key render.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.just[key]
}

// GetCursorPosition has no pointer in a terminal.
func (k *Keys) GetCursorPosition() (x, y int) {
	return 0, 0
}

// IsMouseButtonPressed has no pointer in a terminal.
func (k *Keys) IsMouseButtonPressed(render.MouseButton) bool {
	return false
}

// translate maps a tcell key event to a game key. Arrow keys move like WASD.
func translate(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyW, true
	case tcell.KeyDown:
		return render.KeyS, true
	case tcell.KeyLeft:
		return render.KeyA, true
	case tcell.KeyRight:
		return render.KeyD, true
	case tcell.KeyEnter:
		return render.KeyEnter, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'l', 'L':
			return render.KeyL, true
		case 'f', 'F':
			return render.KeyF, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
