package combat

import "time"

// HostileState is the phase of an enemy combatant.
type HostileState int

const (
	HostileSeeking HostileState = iota
	HostileIdle
	HostileEngaging
	HostileReloading
	HostileDisabled
)

func (s HostileState) String() string {
	switch s {
	case HostileSeeking:
		return "seeking"
	case HostileIdle:
		return "idle"
	case HostileEngaging:
		return "engaging"
	case HostileReloading:
		return "reloading"
	case HostileDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

type HostileConfig struct {
	AcquireDelay      time.Duration
	RequeryInterval   time.Duration
	Cadence           time.Duration
	ShotsBeforeReload int
	ReloadDuration    time.Duration
	Range             float64
}

// Sense is what a hostile learns about the world this tick. Both callbacks
// read committed state from the previous tick.
type Sense struct {
	Now time.Duration
	Dt  time.Duration
	// Track reports the distance to target, or false when it is gone.
	Track func(target uint64) (distance float64, ok bool)
	// Acquire finds the nearest opposing combatant.
	Acquire func() (uint64, bool)
}

// HostileFSM is the targeting and firing state machine of an enemy.
// Once a target is acquired it is kept until it dies or leaves the
// simulation.
type HostileFSM struct {
	cfg   HostileConfig
	state HostileState

	gate     FireGate
	shots    int
	acquire  Deadline
	requery  Deadline
	reload   Deadline
	target   uint64
	tracking bool
	canShoot bool
}

func NewHostileFSM(cfg HostileConfig, now time.Duration) *HostileFSM {
	h := &HostileFSM{
		cfg:      cfg,
		state:    HostileSeeking,
		gate:     NewFireGate(cfg.Cadence),
		canShoot: true,
	}
	h.acquire.Arm(now, cfg.AcquireDelay)
	return h
}

// Update advances one tick and reports whether a shot should be fired.
func (h *HostileFSM) Update(s Sense) bool {
	if h == nil || h.state == HostileDisabled {
		return false
	}

	if h.reload.Due(s.Now) {
		h.reload.Clear()
		h.shots = 0
	}

	if !h.tracking && !h.seek(s) {
		h.state = HostileSeeking
		return false
	}

	distance, ok := s.track(h.target)
	if !ok {
		h.tracking = false
		h.target = 0
		h.gate.Reset()
		h.state = HostileSeeking
		return false
	}

	if h.reload.Armed() {
		h.state = HostileReloading
		return false
	}

	if !h.canShoot || distance > h.cfg.Range {
		h.state = HostileIdle
		return false
	}

	h.state = HostileEngaging
	if !h.gate.Tick(s.Dt) {
		return false
	}
	h.shots++
	if h.cfg.ShotsBeforeReload > 0 && h.shots >= h.cfg.ShotsBeforeReload {
		h.reload.Arm(s.Now, h.cfg.ReloadDuration)
		h.state = HostileReloading
	}
	return true
}

func (h *HostileFSM) seek(s Sense) bool {
	if !h.acquire.Due(s.Now) {
		return false
	}
	if h.requery.Pending(s.Now) {
		return false
	}
	h.requery.Arm(s.Now, h.cfg.RequeryInterval)
	if s.Acquire == nil {
		return false
	}
	id, ok := s.Acquire()
	if !ok {
		return false
	}
	h.target = id
	h.tracking = true
	h.state = HostileIdle
	return true
}

func (s Sense) track(target uint64) (float64, bool) {
	if s.Track == nil {
		return 0, false
	}
	return s.Track(target)
}

// Disable is the terminal transition on death. Pending reloads and
// cadence are abandoned.
func (h *HostileFSM) Disable() {
	if h == nil {
		return
	}
	h.state = HostileDisabled
	h.canShoot = false
	h.reload.Clear()
	h.requery.Clear()
	h.gate.Reset()
	h.tracking = false
}

// StopShooting keeps tracking but never fires again.
func (h *HostileFSM) StopShooting() {
	if h == nil {
		return
	}
	h.canShoot = false
}

func (h *HostileFSM) State() HostileState {
	if h == nil {
		return HostileDisabled
	}
	return h.state
}

func (h *HostileFSM) Target() (uint64, bool) {
	if h == nil || !h.tracking {
		return 0, false
	}
	return h.target, true
}

func (h *HostileFSM) CanShoot() bool { return h != nil && h.canShoot }

func (h *HostileFSM) Shots() int {
	if h == nil {
		return 0
	}
	return h.shots
}

func (h *HostileFSM) Config() HostileConfig {
	if h == nil {
		return HostileConfig{}
	}
	return h.cfg
}
