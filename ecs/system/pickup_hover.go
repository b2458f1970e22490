package system

import (
	"math"

	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
)

type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Now().Seconds()
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		t.Position.Y = pickup.BaseY + math.Sin(pickup.BobPhase+now*pickup.BobSpeed)*pickup.BobAmplitude
	})
}
