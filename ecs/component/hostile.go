package component

import "github.com/milk9111/gunship/combat"

// Hostile drives an enemy gun through its targeting state machine.
type Hostile struct {
	FSM *combat.HostileFSM
	Aim combat.AimServo
	Gun Emitter
	// AimAtTarget fires straight at the target instead of along the barrel.
	AimAtTarget bool
	// Projectile is the prefab name of what the gun fires.
	Projectile string
}

var HostileComponent = NewComponent[Hostile]()
