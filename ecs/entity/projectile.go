package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/prefabs"
)

// NewBullet spawns a straight-line projectile. Orientation is fixed at spawn.
func NewBullet(w *ecs.World, spec prefabs.ProjectileSpec, pos, dir common.Vec3, owner ecs.Entity) (ecs.Entity, error) {
	if !spec.Kind.IsProjectile() {
		return 0, fmt.Errorf("bullet: %q is not a projectile kind", spec.Kind)
	}

	linear := combat.NewLinear(dir, spec.Speed)
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Yaw:      common.Yaw(linear.Direction),
		Pitch:    common.Pitch(linear.Direction),
	}); err != nil {
		return 0, fmt.Errorf("bullet: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Tag:    spec.Kind,
		Radius: spec.Collider.Radius,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		Prefab: spec.Name,
		Kind:   spec.Kind,
		Linear: linear,
		Owner:  owner.Ref(),
	}); err != nil {
		return 0, fmt.Errorf("bullet: add projectile: %w", err)
	}

	if err := addLifetime(w, entity, spec.Lifetime); err != nil {
		return 0, fmt.Errorf("bullet: add lifetime: %w", err)
	}

	return entity, nil
}

// MissileTarget is the result of the launch-time target search.
type MissileTarget struct {
	Entity   ecs.Entity
	Position common.Vec3
	Found    bool
}

// NewMissile spawns a homing missile. Without a target it never arms: it has
// no collider and fizzles after spec.FizzleAfter.
func NewMissile(w *ecs.World, spec prefabs.ProjectileSpec, pos common.Vec3, target MissileTarget, owner ecs.Entity) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("missile: add transform: %w", err)
	}

	proj := &component.Projectile{Prefab: spec.Name, Kind: combat.TagMissile, Owner: owner.Ref()}
	if !target.Found {
		if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), proj); err != nil {
			return 0, fmt.Errorf("missile: add projectile: %w", err)
		}
		if err := addLifetime(w, entity, spec.FizzleAfter); err != nil {
			return 0, fmt.Errorf("missile: add lifetime: %w", err)
		}
		return entity, nil
	}

	arc := combat.NewArc(pos, target.Position, spec.ArcHeight, spec.Speed)
	proj.Arc = &arc
	proj.Target = target.Entity.Ref()

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), proj); err != nil {
		return 0, fmt.Errorf("missile: add projectile: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Tag:    combat.TagMissile,
		Radius: spec.Collider.Radius,
	}); err != nil {
		return 0, fmt.Errorf("missile: add collider: %w", err)
	}

	if err := addLifetime(w, entity, spec.Lifetime); err != nil {
		return 0, fmt.Errorf("missile: add lifetime: %w", err)
	}

	return entity, nil
}

func addLifetime(w *ecs.World, e ecs.Entity, ttl time.Duration) error {
	lifetime := &component.Lifetime{}
	lifetime.Expires.Arm(w.Now(), ttl)
	return ecs.Add(w, e, component.LifetimeComponent.Kind(), lifetime)
}
