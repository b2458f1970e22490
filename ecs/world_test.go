package ecs

import (
	"testing"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func hostile(t *testing.T, w *World, x float64, health int) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: common.Vec3{X: x}}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.CombatantComponent.Kind(), &component.Combatant{
		Health:  combat.NewHealth(health),
		Faction: combat.FactionEnemy,
		Variant: "turret",
	}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.HostileTagComponent.Kind(), &component.HostileTag{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func bullet(t *testing.T, w *World) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Prefab: "bullet", Kind: combat.TagBullet}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCombatEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		hostiles     int
		bullets      int
		destroyIndex int // into hostiles, -1 = none
	}{
		{"one_hostile_destroyed", 1, 0, 0},
		{"middle_hostile_destroyed", 3, 2, 1},
		{"nothing_destroyed", 2, 1, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var hostiles []Entity
			for i := 0; i < c.hostiles; i++ {
				hostiles = append(hostiles, hostile(t, w, float64(i*10), 10))
			}
			for i := 0; i < c.bullets; i++ {
				bullet(t, w)
			}

			wantHostiles := c.hostiles
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, hostiles[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for a live hostile")
				}
				if DestroyEntity(w, hostiles[c.destroyIndex]) {
					t.Fatalf("destroying twice should report false")
				}
				wantHostiles--
			}

			if got := len(Entities(w)); got != wantHostiles+c.bullets {
				t.Fatalf("expected %d entities, got %d", wantHostiles+c.bullets, got)
			}
			if got := Count(w, component.CombatantComponent.Kind()); got != wantHostiles {
				t.Fatalf("expected %d combatants, got %d", wantHostiles, got)
			}
			if got := Count(w, component.TransformComponent.Kind()); got != wantHostiles {
				t.Fatalf("expected %d transforms, got %d", wantHostiles, got)
			}
			if got := Count(w, component.ProjectileComponent.Kind()); got != c.bullets {
				t.Fatalf("expected %d projectiles, got %d", c.bullets, got)
			}
		})
	}
}

func TestCombatantComponentEdits(t *testing.T) {
	w := NewWorld()
	e := hostile(t, w, 20, 10)

	tests := []struct {
		name  string
		edit  func(t *testing.T)
		check func(t *testing.T)
	}{
		{
			name: "damage_is_seen_through_get",
			edit: func(t *testing.T) {
				c, ok := Get(w, e, component.CombatantComponent.Kind())
				if !ok {
					t.Fatal("expected combatant")
				}
				c.Health.ApplyDamage(5)
			},
			check: func(t *testing.T) {
				c, _ := Get(w, e, component.CombatantComponent.Kind())
				if c.Health.Current != 5 {
					t.Fatalf("expected 5 health, got %d", c.Health.Current)
				}
			},
		},
		{
			name: "replace_transform",
			edit: func(t *testing.T) {
				if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: common.Vec3{X: 40}}); err != nil {
					t.Fatal(err)
				}
			},
			check: func(t *testing.T) {
				tr, _ := Get(w, e, component.TransformComponent.Kind())
				if tr.Position.X != 40 {
					t.Fatalf("expected x=40, got %v", tr.Position.X)
				}
				if Count(w, component.TransformComponent.Kind()) != 1 {
					t.Fatal("replacing a component must not duplicate it")
				}
			},
		},
		{
			name: "strip_hostile_tag",
			edit: func(t *testing.T) {
				if !Remove(w, e, component.HostileTagComponent.Kind()) {
					t.Fatal("expected tag removal")
				}
			},
			check: func(t *testing.T) {
				if Has(w, e, component.HostileTagComponent.Kind()) {
					t.Fatal("tag still present")
				}
				if !Has(w, e, component.CombatantComponent.Kind()) {
					t.Fatal("other components must survive")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.edit(t)
			tc.check(t)
		})
	}
}

func TestForEachOverHostiles(t *testing.T) {
	w := NewWorld()
	a := hostile(t, w, 10, 10)
	b := hostile(t, w, 20, 20)
	gone := hostile(t, w, 30, 10)
	// A combatant without the hostile tag, like the player.
	pilot := CreateEntity(w)
	_ = Add(w, pilot, component.CombatantComponent.Kind(), &component.Combatant{Health: combat.NewHealth(100), Faction: combat.FactionPlayer})
	bullet(t, w)
	DestroyEntity(w, gone)

	var combatants, pairs, triples []Entity
	ForEach(w, component.CombatantComponent.Kind(), func(e Entity, _ *component.Combatant) {
		combatants = append(combatants, e)
	})
	ForEach2(w, component.HostileTagComponent.Kind(), component.CombatantComponent.Kind(), func(e Entity, _ *component.HostileTag, _ *component.Combatant) {
		pairs = append(pairs, e)
	})
	var total int
	ForEach3(w, component.HostileTagComponent.Kind(), component.CombatantComponent.Kind(), component.TransformComponent.Kind(),
		func(e Entity, _ *component.HostileTag, c *component.Combatant, _ *component.Transform) {
			triples = append(triples, e)
			total += c.Health.Max
		})

	if len(combatants) != 3 {
		t.Fatalf("expected 3 combatants, got %v", combatants)
	}
	for _, got := range [][]Entity{pairs, triples} {
		set := map[Entity]bool{}
		for _, e := range got {
			set[e] = true
		}
		if len(got) != 2 || !set[a] || !set[b] {
			t.Fatalf("expected hostiles %v and %v, got %v", a, b, got)
		}
	}
	if total != 30 {
		t.Fatalf("expected summed max health 30, got %d", total)
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()

	old := hostile(t, w, 10, 10)
	oldRef := old.Ref()
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}

	reused := bullet(t, w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatal("reused handle must differ from the stale one")
	}

	// A missile holding the old target by ref must not see the new occupant.
	stale := FromRef(oldRef)
	if stale != old {
		t.Fatal("ref round trip changed the handle")
	}
	if IsAlive(w, stale) {
		t.Fatal("stale handle reported alive")
	}
	if _, ok := Get(w, stale, component.ProjectileComponent.Kind()); ok {
		t.Fatal("stale handle should not see the new occupant's components")
	}
	if _, ok := Get(w, stale, component.CombatantComponent.Kind()); ok {
		t.Fatal("stale handle should not see its old components")
	}
	if err := Add(w, stale, component.CombatantComponent.Kind(), &component.Combatant{}); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if Has(w, reused, component.CombatantComponent.Kind()) {
		t.Fatal("destroyed entity's components leaked into the reused slot")
	}
	if got := FromRef(reused.Ref()); got != reused || !IsAlive(w, got) {
		t.Fatal("live ref round trip failed")
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestCountAndFirst(t *testing.T) {
	w := NewWorld()

	if _, ok := First(w, component.CombatantComponent.Kind()); ok {
		t.Fatal("expected no combatant before any spawn")
	}

	e1 := hostile(t, w, 10, 10)
	e2 := hostile(t, w, 20, 20)
	b := bullet(t, w)

	if got := Count(w, component.CombatantComponent.Kind()); got != 2 {
		t.Fatalf("expected 2 combatants, got %d", got)
	}
	if first, ok := First(w, component.CombatantComponent.Kind()); !ok || first != e1 {
		t.Fatalf("expected e1 first, got %v ok=%v", first, ok)
	}
	if first, ok := First(w, component.ProjectileComponent.Kind()); !ok || first != b {
		t.Fatalf("expected bullet first, got %v ok=%v", first, ok)
	}

	DestroyEntity(w, e1)
	if got := Count(w, component.CombatantComponent.Kind()); got != 1 {
		t.Fatalf("expected 1 after destroy, got %d", got)
	}
	if first, ok := First(w, component.CombatantComponent.Kind()); !ok || first != e2 {
		t.Fatalf("expected e2 first after destroy, got %v ok=%v", first, ok)
	}

	DestroyEntity(w, b)
	if _, ok := First(w, component.ProjectileComponent.Kind()); ok {
		t.Fatal("expected no projectile after destroy")
	}
}

type recordingSystem struct {
	name string
	log  *[]string
	now  *[]time.Duration
}

func (s recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	*s.now = append(*s.now, w.Now())
}

func TestSchedulerStepRunsSystemsInOrder(t *testing.T) {
	var (
		log []string
		now []time.Duration
	)
	sched := NewScheduler(
		recordingSystem{name: "a", log: &log, now: &now},
		nil,
		recordingSystem{name: "b", log: &log, now: &now},
	)
	w := NewWorld()

	sched.Step(w, 100*time.Millisecond)
	sched.Step(w, 50*time.Millisecond)

	want := []string{"a", "b", "a", "b"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if now[3] != 150*time.Millisecond {
		t.Fatalf("expected clock at 150ms, got %v", now[3])
	}
	if w.Tick() != 2 || w.Dt() != 50*time.Millisecond {
		t.Fatalf("unexpected tick=%d dt=%v", w.Tick(), w.Dt())
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	w.Events().Despawn(e)
	w.Events().Push(Event{Type: "custom", Entity: e, Data: 3})
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.Events().Len())
	}

	events := w.Events().Drain()
	if len(events) != 2 || events[0].Type != EventDespawn || events[1].Data != 3 {
		t.Fatalf("unexpected events %+v", events)
	}
	if w.Events().Drain() != nil {
		t.Fatal("expected empty queue after drain")
	}
}
