package component

import "github.com/milk9111/gunship/combat"

// Pickup is a collectible that bobs in place until the player touches it.
type Pickup struct {
	Kind         combat.Tag
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
}

var PickupComponent = NewComponent[Pickup]()
