package component

import "github.com/milk9111/gunship/common"

// Transform places an entity in world space. Yaw and Pitch are radians.
type Transform struct {
	Position common.Vec3
	Yaw      float64
	Pitch    float64
}

var TransformComponent = NewComponent[Transform]()
