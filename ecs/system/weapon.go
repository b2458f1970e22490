package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
)

// forward is the player's firing direction: straight down the route.
var forward = common.Vec3{X: 1}

// WeaponSystem runs the player's guns and missile battery.
type WeaponSystem struct {
	spawner *entity.Spawner
	events  *combat.Emitter
}

func NewWeaponSystem(spawner *entity.Spawner, events *combat.Emitter) *WeaponSystem {
	return &WeaponSystem{spawner: spawner, events: events}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.WeaponStationComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ws *component.WeaponStation, t *component.Transform, in *component.Input) {
		dt := w.Dt()
		if ws.Bullets.Advance(dt) {
			s.emit(w, combat.Event{Type: combat.EventReloaded, SourceID: e.Ref(), Kind: string(combat.TagBullet), Amount: ws.Bullets.Magazine()})
		}
		if ws.Missiles.Advance(dt) {
			s.emit(w, combat.Event{Type: combat.EventReloaded, SourceID: e.Ref(), Kind: string(combat.TagMissile), Amount: ws.Missiles.Count()})
		}

		missile := in.Missile
		in.Missile = false
		if !ws.Enabled {
			return
		}

		if in.Fire {
			s.fireGuns(w, e, ws, t)
		} else {
			ws.Bullets.Release()
		}

		if missile {
			s.launchMissiles(w, e, ws, t)
		}
	})
}

func (s *WeaponSystem) fireGuns(w *ecs.World, owner ecs.Entity, ws *component.WeaponStation, t *component.Transform) {
	if len(ws.Guns) == 0 || ws.Bullets == nil {
		return
	}

	now := w.Now()
	if !ws.Bullets.CanFire() {
		if ws.Bullets.State() == combat.AmmoExhausted && !ws.BulletWarning.Pending(now) {
			ws.BulletWarning.Arm(now, ws.WarningBlink)
			s.emit(w, combat.Event{Type: combat.EventAmmoDepleted, SourceID: owner.Ref(), Kind: string(combat.TagBullet)})
		}
		return
	}

	for i := range ws.GunGates {
		ws.GunGates[i].Advance(w.Dt())
	}
	for i, gun := range ws.Guns {
		if i >= len(ws.GunGates) {
			break
		}
		gate := &ws.GunGates[i]
		if !gate.Ready() {
			continue
		}
		// A gun whose shot the pool refuses keeps its accumulated time.
		if !ws.Bullets.Fire() {
			break
		}
		gate.Trigger()

		muzzle := t.Position.Add(gun.Offset)
		if _, err := s.spawner.Bullet(w, ws.BulletKind, muzzle, forward, owner); err != nil {
			w.Logger().Debug().Err(err).Str("entity", owner.String()).Msg("gun misfire")
			continue
		}
		s.emit(w, combat.Event{Type: combat.EventShotFired, SourceID: owner.Ref(), Kind: string(combat.TagBullet), Pos: muzzle})
	}
}

// launchMissiles checks the battery, then the target, and fires one volley
// from every launcher. Rejections arm the matching warning.
func (s *WeaponSystem) launchMissiles(w *ecs.World, owner ecs.Entity, ws *component.WeaponStation, t *component.Transform) {
	now := w.Now()
	want := faction(w, owner).Opposing()

	result := ws.Missiles.Precheck()
	if result == combat.LaunchOK {
		_, found := w.Snapshot().Nearest(t.Position, ws.LaunchRadius, want)
		result = ws.Missiles.Launch(found)
	}

	switch result {
	case combat.LaunchOK:
	case combat.LaunchNoTarget:
		ws.NoTargetWarning.Arm(now, ws.WarningBlink)
		s.emit(w, combat.Event{Type: combat.EventNoTargetInRange, SourceID: owner.Ref(), Kind: string(combat.TagMissile)})
		return
	case combat.LaunchDepleted:
		ws.MissileWarning.Arm(now, ws.WarningBlink)
		s.emit(w, combat.Event{Type: combat.EventMissilesDepleted, SourceID: owner.Ref(), Kind: string(combat.TagMissile)})
		return
	default:
		s.emit(w, combat.Event{Type: combat.EventMissileReloading, SourceID: owner.Ref(), Kind: string(combat.TagMissile)})
		return
	}

	spec, _ := s.spawner.ProjectileSpec(ws.MissileKind)
	for _, launcher := range ws.Launchers {
		muzzle := t.Position.Add(launcher.Offset)

		// Each missile homes independently; the target set may have
		// changed since the launch check.
		var target entity.MissileTarget
		if c, ok := w.Snapshot().Nearest(muzzle, spec.SearchRadius, want); ok {
			target = entity.MissileTarget{Entity: ecs.FromRef(c.ID), Position: c.Position, Found: true}
		}

		if _, err := s.spawner.Missile(w, ws.MissileKind, muzzle, target, owner); err != nil {
			w.Logger().Debug().Err(err).Str("entity", owner.String()).Msg("missile misfire")
			continue
		}
	}
	s.emit(w, combat.Event{Type: combat.EventMissileLaunched, SourceID: owner.Ref(), Kind: string(combat.TagMissile), Amount: ws.Missiles.Count(), Pos: t.Position})
}

func (s *WeaponSystem) emit(w *ecs.World, evt combat.Event) {
	if s.events == nil {
		return
	}
	evt.Time = w.Now().Seconds()
	s.events.Emit(evt)
}

func faction(w *ecs.World, e ecs.Entity) combat.Faction {
	if c, ok := ecs.Get(w, e, component.CombatantComponent.Kind()); ok {
		return c.Faction
	}
	return combat.FactionPlayer
}
