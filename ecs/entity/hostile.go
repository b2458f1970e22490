package entity

import (
	"fmt"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/prefabs"
)

// NewHostile spawns a turret or tank at pos. Its acquisition delay starts
// from the world clock at spawn time.
func NewHostile(w *ecs.World, spec prefabs.HostileSpec, pos common.Vec3) (ecs.Entity, error) {
	name := spec.Name
	if name == "" {
		name = "hostile"
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.HostileTagComponent.Kind(), &component.HostileTag{}); err != nil {
		return 0, fmt.Errorf("%s: add hostile tag: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Tag:    combat.TagEnemy,
		Radius: spec.Collider.Radius,
	}); err != nil {
		return 0, fmt.Errorf("%s: add collider: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.CombatantComponent.Kind(), &component.Combatant{
		Health:  combat.NewHealth(spec.Health),
		Faction: combat.FactionEnemy,
		Variant: spec.Name,
		Reward:  spec.Reward,
		Grace:   spec.Grace,
		Wreck:   spec.Wreck,
		Drop:    spec.Drop,
	}); err != nil {
		return 0, fmt.Errorf("%s: add health: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.HostileComponent.Kind(), &component.Hostile{
		FSM:         combat.NewHostileFSM(spec.FSMConfig(), w.Now()),
		Aim:         combat.NewAimServo(spec.Aim.Slew, spec.Aim.MinPitch, spec.Aim.MaxPitch),
		Gun:         component.Emitter{Offset: spec.Gun.Vec3()},
		AimAtTarget: spec.AimAtTarget,
		Projectile:  spec.Projectile,
	}); err != nil {
		return 0, fmt.Errorf("%s: add hostile: %w", name, err)
	}

	return entity, nil
}
