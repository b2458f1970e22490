package combat

import "github.com/milk9111/gunship/common"

// Faction identifies teams for targeting and friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// Opposing returns the faction f fights against.
func (f Faction) Opposing() Faction {
	switch f {
	case FactionPlayer:
		return FactionEnemy
	case FactionEnemy:
		return FactionPlayer
	default:
		return FactionNeutral
	}
}

// EventType defines the kind of combat event.
type EventType string

const (
	EventEnemyKilled      EventType = "enemy_killed"
	EventPlayerDied       EventType = "player_died"
	EventAmmoDepleted     EventType = "ammo_depleted"
	EventNoTargetInRange  EventType = "no_target_in_range"
	EventPickupConsumed   EventType = "pickup_consumed"
	EventMissileImpact    EventType = "missile_impact"
	EventMissilesDepleted EventType = "missiles_depleted"
	EventMissileReloading EventType = "missile_reloading"
	EventMissileLaunched  EventType = "missile_launched"
	EventShotFired        EventType = "shot_fired"
	EventDamageApplied    EventType = "damage_applied"
	EventHealed           EventType = "healed"
	EventReloaded         EventType = "reloaded"
)

// Event is a fire-and-forget notification for presentation and scoring.
type Event struct {
	Type     EventType
	SourceID uint64
	TargetID uint64
	// Kind carries the pickup tag, enemy variant or weapon class.
	Kind   string
	Amount int
	Pos    common.Vec3
	Time   float64
}

// EventHandler handles combat events.
type EventHandler func(evt Event)

// Emitter fans events out to its handlers in registration order.
type Emitter struct {
	Handlers []EventHandler
}

func (e *Emitter) Subscribe(h EventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends an event to all handlers.
func (e *Emitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// EventLog buffers events until drained.
type EventLog struct {
	items []Event
}

func (l *EventLog) Record(evt Event) {
	if l == nil {
		return
	}
	l.items = append(l.items, evt)
}

// Drain returns all buffered events and clears the log.
func (l *EventLog) Drain() []Event {
	if l == nil || len(l.items) == 0 {
		return nil
	}
	out := l.items
	l.items = nil
	return out
}
