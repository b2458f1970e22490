package combat

import "time"

// LaunchResult is the outcome of a missile launch request.
type LaunchResult int

const (
	LaunchOK LaunchResult = iota
	LaunchReloading
	LaunchNotLoaded
	LaunchDepleted
	LaunchNoTarget
)

func (r LaunchResult) String() string {
	switch r {
	case LaunchOK:
		return "ok"
	case LaunchReloading:
		return "reloading"
	case LaunchNotLoaded:
		return "not_loaded"
	case LaunchDepleted:
		return "depleted"
	case LaunchNoTarget:
		return "no_target"
	default:
		return "unknown"
	}
}

// MissileBattery gates volleys behind a loaded flag and a shared count.
// One volley costs Cost regardless of how many launchers fire.
type MissileBattery struct {
	count     int
	cost      int
	reload    time.Duration
	elapsed   time.Duration
	loaded    bool
	reloading bool

	initialCount int
}

func NewMissileBattery(count, cost int, reload time.Duration) *MissileBattery {
	if cost <= 0 {
		cost = 1
	}
	if count < 0 {
		count = 0
	}
	b := &MissileBattery{cost: cost, reload: reload, initialCount: count}
	b.Reset()
	return b
}

func (b *MissileBattery) Reset() {
	if b == nil {
		return
	}
	b.count = b.initialCount
	b.loaded = true
	b.reloading = false
	b.elapsed = 0
}

// Precheck evaluates every launch precondition except target availability,
// in rejection order.
func (b *MissileBattery) Precheck() LaunchResult {
	switch {
	case b == nil:
		return LaunchNotLoaded
	case b.reloading:
		return LaunchReloading
	case !b.loaded:
		return LaunchNotLoaded
	case b.count <= 0:
		return LaunchDepleted
	default:
		return LaunchOK
	}
}

// Launch consumes one volley when every precondition holds. A rejected
// launch leaves the battery untouched.
func (b *MissileBattery) Launch(hasTarget bool) LaunchResult {
	if res := b.Precheck(); res != LaunchOK {
		return res
	}
	if !hasTarget {
		return LaunchNoTarget
	}
	b.count = max(0, b.count-b.cost)
	b.loaded = false
	b.reloading = true
	b.elapsed = 0
	return LaunchOK
}

// Advance runs the reload timer. It reports true on the tick the battery
// becomes loaded again.
func (b *MissileBattery) Advance(dt time.Duration) bool {
	if b == nil || !b.reloading {
		return false
	}
	if dt > 0 {
		b.elapsed += dt
	}
	if b.elapsed < b.reload {
		return false
	}
	b.elapsed = 0
	b.reloading = false
	b.loaded = true
	return true
}

// Disable unloads the battery without starting a reload.
func (b *MissileBattery) Disable() {
	if b == nil {
		return
	}
	b.loaded = false
	b.reloading = false
	b.elapsed = 0
}

func (b *MissileBattery) AddMissiles(amount int) {
	if b == nil || amount <= 0 {
		return
	}
	b.count += amount
}

func (b *MissileBattery) ReloadProgress() float64 {
	if b == nil {
		return 0
	}
	if !b.reloading {
		if b.loaded {
			return 1
		}
		return 0
	}
	if b.reload <= 0 {
		return 1
	}
	return min(1, float64(b.elapsed)/float64(b.reload))
}

func (b *MissileBattery) Count() int {
	if b == nil {
		return 0
	}
	return b.count
}

func (b *MissileBattery) Loaded() bool    { return b != nil && b.loaded }
func (b *MissileBattery) Reloading() bool { return b != nil && b.reloading }
