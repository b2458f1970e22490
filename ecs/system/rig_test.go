package system

import (
	"testing"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
	"github.com/milk9111/gunship/levels"
	"github.com/milk9111/gunship/prefabs"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

// rig is a world wired with every system in tick order.
type rig struct {
	w          *ecs.World
	spawner    *entity.Spawner
	events     *combat.Emitter
	log        *combat.EventLog
	dispatcher *combat.Dispatcher
	ledger     *Ledger
	encounter  *EncounterSystem
	sched      *ecs.Scheduler
}

func newRig(t *testing.T, economy combat.Economy, scoreboard combat.Scoreboard, level *levels.Level) *rig {
	t.Helper()

	catalog, err := prefabs.LoadCatalog()
	require.NoError(t, err)

	r := &rig{
		w:       ecs.NewWorld(),
		spawner: entity.NewSpawner(catalog),
		events:  &combat.Emitter{},
		log:     &combat.EventLog{},
	}
	r.events.Subscribe(r.log.Record)
	table, err := catalog.Damage().Table()
	require.NoError(t, err)
	r.dispatcher = combat.NewDispatcher(table, catalog.Pickups().Rules())
	r.ledger = NewLedger(r.spawner, r.events, economy, scoreboard)
	r.encounter = NewEncounterSystem(r.spawner, level, r.events)

	collision := NewCollisionSystem(nil, r.dispatcher, r.ledger, r.spawner, r.events)
	commit := NewCommitSystem(nil)
	r.sched = ecs.NewScheduler(
		r.encounter,
		NewPlayerControllerSystem(),
		NewWeaponSystem(r.spawner, r.events),
		NewHostileSystem(r.spawner, r.events),
		NewProjectileSystem(r.spawner, r.events),
		NewPickupHoverSystem(),
		collision,
		NewDespawnSystem(r.dispatcher, collision.Index(), commit.Index()),
		commit,
	)
	return r
}

func (r *rig) step(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		r.sched.Step(r.w, dt)
	}
}

func (r *rig) player(t *testing.T) ecs.Entity {
	t.Helper()
	e, err := r.spawner.Player(r.w)
	require.NoError(t, err)
	return e
}

func (r *rig) spawn(t *testing.T, kind string, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := r.spawner.Spawn(r.w, kind, pos)
	require.NoError(t, err)
	return e
}

func (r *rig) input(t *testing.T, e ecs.Entity) *component.Input {
	t.Helper()
	in, ok := ecs.Get(r.w, e, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func (r *rig) combatant(t *testing.T, e ecs.Entity) *component.Combatant {
	t.Helper()
	c, ok := ecs.Get(r.w, e, component.CombatantComponent.Kind())
	require.True(t, ok)
	return c
}

func (r *rig) station(t *testing.T, e ecs.Entity) *component.WeaponStation {
	t.Helper()
	ws, ok := ecs.Get(r.w, e, component.WeaponStationComponent.Kind())
	require.True(t, ok)
	return ws
}

// drained returns buffered events of type typ, discarding the rest.
func drained(log *combat.EventLog, typ combat.EventType) []combat.Event {
	var out []combat.Event
	for _, evt := range log.Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func count(events []combat.Event, typ combat.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func arcMissiles(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
		if p.Kind == combat.TagMissile && p.Arc != nil {
			n++
		}
	})
	return n
}
