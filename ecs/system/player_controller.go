package system

import (
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
)

// PlayerControllerSystem scrolls the player forward and applies steering
// inside the flight envelope. A dead pilot stops moving.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem { return &PlayerControllerSystem{} }

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Dt().Seconds()
	ecs.ForEach3(w, component.PilotComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, pilot *component.Pilot, t *component.Transform, in *component.Input) {
		if pilot.Dead {
			return
		}

		steer := in.Steer.Clamped()
		pos := t.Position
		pos.X += pilot.ForwardSpeed * dt
		pos.Z = common.Clamp(pos.Z+steer.X*pilot.LateralSpeed*dt, pilot.MinZ, pilot.MaxZ)
		pos.Y = common.Clamp(pos.Y+steer.Y*pilot.VerticalSpeed*dt, pilot.MinY, pilot.MaxY)
		t.Position = pos
	})
}
