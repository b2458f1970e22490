package ecs

import (
	"time"

	"github.com/milk9111/gunship/ecs/component"
	"github.com/rs/zerolog"
)

// World owns entities, component stores, the simulation clock and the
// snapshot of last tick's committed state.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	now  time.Duration
	dt   time.Duration
	tick uint64

	snapshot *Snapshot
	logger   zerolog.Logger
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		snapshot: NewSnapshot(),
		logger:   zerolog.Nop(),
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Advance moves the clock forward by dt and starts a new tick.
func (w *World) Advance(dt time.Duration) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.now += dt
	w.tick++
}

// Now is the sum of all tick deltas so far.
func (w *World) Now() time.Duration {
	if w == nil {
		return 0
	}
	return w.now
}

// Dt is the delta of the current tick.
func (w *World) Dt() time.Duration {
	if w == nil {
		return 0
	}
	return w.dt
}

func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Snapshot returns the state committed at the end of the previous tick.
func (w *World) Snapshot() *Snapshot {
	if w == nil {
		return nil
	}
	return w.snapshot
}

// Commit replaces the committed snapshot.
func (w *World) Commit(s *Snapshot) {
	if w == nil || s == nil {
		return
	}
	w.snapshot = s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) SetLogger(l zerolog.Logger) {
	if w == nil {
		return
	}
	w.logger = l
}

// Logger returns the world logger, a no-op logger unless one was set.
func (w *World) Logger() *zerolog.Logger {
	if w == nil {
		l := zerolog.Nop()
		return &l
	}
	return &w.logger
}
