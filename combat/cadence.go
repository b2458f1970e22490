package combat

import "time"

// FireGate enforces a minimum spacing between shots from one emitter.
type FireGate struct {
	Cadence time.Duration
	Elapsed time.Duration
}

func NewFireGate(cadence time.Duration) FireGate {
	return FireGate{Cadence: cadence}
}

// Advance accumulates tick time without emitting.
func (g *FireGate) Advance(dt time.Duration) {
	if g == nil || dt <= 0 {
		return
	}
	g.Elapsed += dt
}

// Ready reports whether a shot may be emitted now.
func (g *FireGate) Ready() bool {
	return g != nil && g.Elapsed >= g.Cadence
}

// Trigger records an emitted shot.
func (g *FireGate) Trigger() {
	if g == nil {
		return
	}
	g.Elapsed = 0
}

// Tick advances the gate and emits when the cadence has elapsed.
func (g *FireGate) Tick(dt time.Duration) bool {
	g.Advance(dt)
	if !g.Ready() {
		return false
	}
	g.Trigger()
	return true
}

func (g *FireGate) Reset() {
	if g == nil {
		return
	}
	g.Elapsed = 0
}

// Deadline is a deferred transition keyed by an absolute simulation time.
// The zero value is disarmed.
type Deadline struct {
	at    time.Duration
	armed bool
}

// Arm sets the deadline to now+d, replacing any pending one.
func (d *Deadline) Arm(now, after time.Duration) {
	if d == nil {
		return
	}
	if after < 0 {
		after = 0
	}
	d.at = now + after
	d.armed = true
}

func (d *Deadline) Armed() bool {
	return d != nil && d.armed
}

// Due reports whether an armed deadline has been reached.
func (d *Deadline) Due(now time.Duration) bool {
	return d.Armed() && now >= d.at
}

// Pending reports whether the deadline is armed and still in the future.
func (d *Deadline) Pending(now time.Duration) bool {
	return d.Armed() && now < d.at
}

func (d *Deadline) Clear() {
	if d == nil {
		return
	}
	d.armed = false
	d.at = 0
}

// Remaining returns the time left before the deadline, or 0.
func (d *Deadline) Remaining(now time.Duration) time.Duration {
	if !d.Armed() || now >= d.at {
		return 0
	}
	return d.at - now
}
