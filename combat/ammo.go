package combat

import "time"

// AmmoState is the reload sub-state of an AmmoPool.
type AmmoState int

const (
	AmmoReady AmmoState = iota
	AmmoFiring
	AmmoDepleted
	AmmoReloading
	AmmoExhausted
)

func (s AmmoState) String() string {
	switch s {
	case AmmoReady:
		return "ready"
	case AmmoFiring:
		return "firing"
	case AmmoDepleted:
		return "depleted"
	case AmmoReloading:
		return "reloading"
	case AmmoExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// AmmoPool is a reserve of rounds fed through a fixed-size magazine.
// Every round fired leaves both the magazine and the reserve, so the reserve
// always counts the rounds still loaded.
type AmmoPool struct {
	reserve  int
	magazine int
	capacity int
	reload   time.Duration
	elapsed  time.Duration
	state    AmmoState

	initialReserve int
}

func NewAmmoPool(reserve, capacity int, reload time.Duration) *AmmoPool {
	if capacity <= 0 {
		capacity = 1
	}
	if reserve < 0 {
		reserve = 0
	}
	p := &AmmoPool{capacity: capacity, reload: reload, initialReserve: reserve}
	p.Reset()
	return p
}

// Reset reinitializes the pool to its construction values.
func (p *AmmoPool) Reset() {
	if p == nil {
		return
	}
	p.reserve = p.initialReserve
	p.elapsed = 0
	p.refill()
}

func (p *AmmoPool) refill() {
	p.magazine = min(p.capacity, p.reserve)
	if p.magazine == 0 {
		p.state = AmmoExhausted
		return
	}
	p.state = AmmoReady
}

func (p *AmmoPool) CanFire() bool {
	if p == nil || p.magazine <= 0 {
		return false
	}
	return p.state == AmmoReady || p.state == AmmoFiring
}

// Fire spends one round. It reports false when the pool cannot fire.
func (p *AmmoPool) Fire() bool {
	if !p.CanFire() {
		return false
	}
	p.magazine--
	p.reserve--
	if p.magazine == 0 {
		p.state = AmmoDepleted
		return true
	}
	p.state = AmmoFiring
	return true
}

// Release marks the trigger as let go.
func (p *AmmoPool) Release() {
	if p == nil || p.state != AmmoFiring {
		return
	}
	p.state = AmmoReady
}

// Advance moves the reload clock. An emptied magazine starts reloading on
// the first Advance after the last shot, or exhausts the pool when the
// reserve is empty. It reports true on the tick a reload completes.
func (p *AmmoPool) Advance(dt time.Duration) bool {
	if p == nil {
		return false
	}
	if p.state == AmmoDepleted {
		if p.reserve == 0 {
			p.state = AmmoExhausted
			return false
		}
		p.state = AmmoReloading
		p.elapsed = 0
	}
	if p.state != AmmoReloading {
		return false
	}
	if dt > 0 {
		p.elapsed += dt
	}
	if p.elapsed < p.reload {
		return false
	}
	p.elapsed = 0
	p.refill()
	return p.state == AmmoReady
}

// AddAmmo adds rounds to the reserve. It reports true when the addition
// brought an exhausted pool back to Ready with a fresh magazine.
func (p *AmmoPool) AddAmmo(amount int) bool {
	if p == nil || amount <= 0 {
		return false
	}
	p.reserve += amount
	if p.state != AmmoExhausted {
		return false
	}
	p.elapsed = 0
	p.refill()
	return true
}

// ReloadProgress is a display-only fraction in [0,1].
func (p *AmmoPool) ReloadProgress() float64 {
	if p == nil {
		return 0
	}
	switch p.state {
	case AmmoReady, AmmoFiring:
		return 1
	case AmmoReloading:
		if p.reload <= 0 {
			return 1
		}
		return min(1, float64(p.elapsed)/float64(p.reload))
	default:
		return 0
	}
}

func (p *AmmoPool) Reserve() int {
	if p == nil {
		return 0
	}
	return p.reserve
}

func (p *AmmoPool) Magazine() int {
	if p == nil {
		return 0
	}
	return p.magazine
}

func (p *AmmoPool) Capacity() int {
	if p == nil {
		return 0
	}
	return p.capacity
}

func (p *AmmoPool) State() AmmoState {
	if p == nil {
		return AmmoExhausted
	}
	return p.state
}
