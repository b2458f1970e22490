package component

import (
	"time"

	"github.com/milk9111/gunship/combat"
)

// Pilot moves the player: constant forward scroll plus clamped lateral and
// vertical slide.
type Pilot struct {
	ForwardSpeed  float64
	LateralSpeed  float64
	VerticalSpeed float64
	MinZ, MaxZ    float64
	MinY, MaxY    float64

	Dead bool
	// GameOver comes due GameOverDelay after death.
	GameOverDelay time.Duration
	GameOver      combat.Deadline
}

var PilotComponent = NewComponent[Pilot]()
