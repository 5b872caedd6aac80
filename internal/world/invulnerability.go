package world

// Invulnerability tracks the last obstacle hit so a second hit inside the
// grace window refunds the life the first one cost. The very first hit never
// refunds anything.
type Invulnerability struct {
	Window float64 // Seconds

	last  float64
	armed bool
}

// Hit records a hit at now and reports whether it falls inside the grace
// window of the previous one.
func (v *Invulnerability) Hit(now float64) (refund bool) {
	refund = v.armed && now-v.last < v.Window
	v.last = now
	v.armed = true
	return refund
}

// LastHit returns the time of the previous hit and whether there was one.
func (v *Invulnerability) LastHit() (float64, bool) {
	return v.last, v.armed
}
