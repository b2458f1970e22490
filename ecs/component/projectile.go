package component

import "github.com/milk9111/gunship/combat"

// Projectile moves linearly, or along Arc when it is a homing missile.
// Target is a weak reference; the entity may be gone.
type Projectile struct {
	// Prefab is the projectile spec it was built from.
	Prefab string
	Kind   combat.Tag
	Linear combat.Linear
	Arc    *combat.Arc
	Target uint64
	// Owner is the entity that fired it.
	Owner uint64
	// Detonated is set once a missile has resolved its hit.
	Detonated bool
}

var ProjectileComponent = NewComponent[Projectile]()

// Lifetime removes an entity once Expires is due.
type Lifetime struct {
	Expires combat.Deadline
}

var LifetimeComponent = NewComponent[Lifetime]()

// Marker is a short-lived effect such as an explosion or a wreck.
type Marker struct {
	Kind string
}

var MarkerComponent = NewComponent[Marker]()
