package combat

import (
	"testing"
	"time"
)

const tick = 100 * time.Millisecond

type fakeWorld struct {
	targets  map[uint64]float64
	acquires int
}

func (f *fakeWorld) sense(now time.Duration) Sense {
	return Sense{
		Now: now,
		Dt:  tick,
		Track: func(id uint64) (float64, bool) {
			d, ok := f.targets[id]
			return d, ok
		},
		Acquire: func() (uint64, bool) {
			f.acquires++
			for id := range f.targets {
				return id, true
			}
			return 0, false
		},
	}
}

func turretConfig() HostileConfig {
	return HostileConfig{
		AcquireDelay:      1500 * time.Millisecond,
		RequeryInterval:   500 * time.Millisecond,
		Cadence:           time.Second,
		ShotsBeforeReload: 5,
		ReloadDuration:    2 * time.Second,
		Range:             25,
	}
}

// run steps the fsm from start for n ticks and returns the tick indexes that fired.
func run(h *HostileFSM, w *fakeWorld, start time.Duration, n int) []int {
	var shots []int
	for i := 0; i < n; i++ {
		now := start + time.Duration(i+1)*tick
		if h.Update(w.sense(now)) {
			shots = append(shots, i)
		}
	}
	return shots
}

func TestHostileWaitsForAcquireDelay(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{7: 10}}
	h := NewHostileFSM(turretConfig(), 0)

	run(h, w, 0, 14)
	if h.State() != HostileSeeking || w.acquires != 0 {
		t.Fatalf("state=%v acquires=%d before delay", h.State(), w.acquires)
	}

	run(h, w, 14*tick, 1)
	if id, ok := h.Target(); !ok || id != 7 {
		t.Fatalf("target = %d,%v", id, ok)
	}
	if h.State() != HostileEngaging {
		t.Fatalf("state = %v, want engaging", h.State())
	}
}

func TestHostileRequeryIsThrottled(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{}}
	h := NewHostileFSM(turretConfig(), 0)
	run(h, w, 0, 15+20)
	// queries at 1.5s, 2.0s, 2.5s, 3.0s, 3.5s over ticks 1.5s..3.5s
	if w.acquires != 5 {
		t.Fatalf("acquires = %d, want 5", w.acquires)
	}
}

func TestHostileFiresAtCadenceThenReloads(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{1: 20}}
	h := NewHostileFSM(HostileConfig{
		Cadence:           time.Second,
		ShotsBeforeReload: 5,
		ReloadDuration:    2 * time.Second,
		Range:             25,
	}, 0)

	shots := run(h, w, 0, 50)
	if len(shots) != 5 {
		t.Fatalf("shots in first 5s = %d, want 5", len(shots))
	}
	if h.State() != HostileReloading {
		t.Fatalf("state = %v, want reloading", h.State())
	}

	shots = run(h, w, 50*tick, 30)
	if len(shots) != 1 {
		t.Fatalf("shots after reload window = %d, want 1", len(shots))
	}
}

func TestHostileIdleOutOfRange(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{1: 30}}
	h := NewHostileFSM(HostileConfig{Cadence: time.Second, Range: 25}, 0)
	if shots := run(h, w, 0, 30); len(shots) != 0 {
		t.Fatalf("fired out of range: %v", shots)
	}
	if h.State() != HostileIdle {
		t.Fatalf("state = %v, want idle", h.State())
	}
	w.targets[1] = 25
	if shots := run(h, w, 30*tick, 10); len(shots) != 1 {
		t.Fatalf("shots at range edge = %d, want 1", len(shots))
	}
}

func TestHostileKeepsTargetUntilItIsGone(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{1: 10}}
	h := NewHostileFSM(HostileConfig{Cadence: time.Second, Range: 25, RequeryInterval: time.Second}, 0)
	run(h, w, 0, 1)

	w.targets[2] = 1
	run(h, w, tick, 20)
	if id, _ := h.Target(); id != 1 {
		t.Fatalf("target switched to %d while original alive", id)
	}

	delete(w.targets, 1)
	run(h, w, 21*tick, 1)
	if _, ok := h.Target(); ok || h.State() != HostileSeeking {
		t.Fatalf("state = %v after target loss", h.State())
	}
	run(h, w, 22*tick, 1)
	if id, ok := h.Target(); !ok || id != 2 {
		t.Fatalf("reacquired %d,%v", id, ok)
	}
}

func TestHostileDisableIsTerminal(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{1: 10}}
	h := NewHostileFSM(HostileConfig{Cadence: tick, Range: 25, ShotsBeforeReload: 2, ReloadDuration: time.Second}, 0)
	run(h, w, 0, 3)
	h.Disable()
	if shots := run(h, w, 3*tick, 50); len(shots) != 0 {
		t.Fatalf("disabled hostile fired %d times", len(shots))
	}
	if h.State() != HostileDisabled || h.CanShoot() {
		t.Fatalf("state = %v", h.State())
	}
}

func TestHostileStopShooting(t *testing.T) {
	w := &fakeWorld{targets: map[uint64]float64{1: 10}}
	h := NewHostileFSM(HostileConfig{Cadence: tick, Range: 25}, 0)
	h.StopShooting()
	if shots := run(h, w, 0, 20); len(shots) != 0 {
		t.Fatal("hostile fired after StopShooting")
	}
	if _, ok := h.Target(); !ok {
		t.Fatal("hostile should keep tracking after StopShooting")
	}
}
