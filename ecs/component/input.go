package component

import "github.com/milk9111/gunship/common"

// Input is the per-tick player command. Missile is a one-tick request.
type Input struct {
	Steer   common.Vec2
	Fire    bool
	Missile bool
}

var InputComponent = NewComponent[Input]()
