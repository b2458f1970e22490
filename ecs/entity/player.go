package entity

import (
	"fmt"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Transform.Vec3(),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Tag:    combat.TagPlayer,
		Radius: spec.Collider.Radius,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.CombatantComponent.Kind(), &component.Combatant{
		Health:  combat.NewHealth(spec.Health),
		Faction: combat.FactionPlayer,
		Variant: spec.Name,
	}); err != nil {
		return 0, fmt.Errorf("player: add combatant: %w", err)
	}

	if err := ecs.Add(w, entity, component.PilotComponent.Kind(), &component.Pilot{
		ForwardSpeed:  spec.Pilot.ForwardSpeed,
		LateralSpeed:  spec.Pilot.LateralSpeed,
		VerticalSpeed: spec.Pilot.VerticalSpeed,
		MinZ:          spec.Pilot.MinZ,
		MaxZ:          spec.Pilot.MaxZ,
		MinY:          spec.Pilot.MinY,
		MaxY:          spec.Pilot.MaxY,
		GameOverDelay: spec.GameOverDelay,
	}); err != nil {
		return 0, fmt.Errorf("player: add pilot: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeaponStationComponent.Kind(), newWeaponStation(spec)); err != nil {
		return 0, fmt.Errorf("player: add weapon station: %w", err)
	}

	return entity, nil
}

func newWeaponStation(spec prefabs.PlayerSpec) *component.WeaponStation {
	station := &component.WeaponStation{
		Bullets:      combat.NewAmmoPool(spec.Guns.Reserve, spec.Guns.Magazine, spec.Guns.Reload),
		Missiles:     combat.NewMissileBattery(spec.Missiles.Count, spec.Missiles.Cost, spec.Missiles.Reload),
		LaunchRadius: spec.Missiles.LaunchRadius,
		Enabled:      true,
		BulletKind:   spec.Guns.Projectile,
		MissileKind:  spec.Missiles.Projectile,
		WarningBlink: spec.WarningBlink,
	}
	for _, e := range spec.Guns.Emitters {
		station.Guns = append(station.Guns, component.Emitter{Offset: e.Vec3()})
		station.GunGates = append(station.GunGates, combat.NewFireGate(spec.Guns.Cadence))
	}
	for _, e := range spec.Missiles.Emitters {
		station.Launchers = append(station.Launchers, component.Emitter{Offset: e.Vec3()})
	}
	return station
}
