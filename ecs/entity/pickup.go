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

func NewPickup(w *ecs.World, spec prefabs.PickupsSpec, kind combat.Tag, pos common.Vec3) (ecs.Entity, error) {
	if !kind.IsPickup() {
		return 0, fmt.Errorf("pickup: %q is not a pickup kind", kind)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Tag:    kind,
		Radius: spec.Collider.Radius,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		Kind:         kind,
		BaseY:        pos.Y,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
		BobPhase:     pos.X,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}

	return entity, nil
}

// NewMarker spawns a cosmetic effect that expires after ttl.
func NewMarker(w *ecs.World, kind string, pos common.Vec3, ttl time.Duration) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("marker: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.MarkerComponent.Kind(), &component.Marker{Kind: kind}); err != nil {
		return 0, fmt.Errorf("marker: add marker: %w", err)
	}

	if err := addLifetime(w, entity, ttl); err != nil {
		return 0, fmt.Errorf("marker: add lifetime: %w", err)
	}

	return entity, nil
}
