package component

import "github.com/milk9111/gunship/combat"

// Collider is a sphere used for overlap tests. Tag selects the reaction
// when it touches another collider.
type Collider struct {
	Tag    combat.Tag
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
