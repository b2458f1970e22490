package component

import (
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
)

// Emitter is a muzzle offset relative to the owner's position.
type Emitter struct {
	Offset common.Vec3
}

// WeaponStation is the player's armament. Every gun shares Bullets and
// every launcher shares Missiles.
type WeaponStation struct {
	Guns      []Emitter
	GunGates  []combat.FireGate
	Bullets   *combat.AmmoPool
	Launchers []Emitter
	Missiles  *combat.MissileBattery
	// LaunchRadius is the search radius for missile targets.
	LaunchRadius float64
	Enabled      bool
	// BulletKind and MissileKind are projectile prefab names.
	BulletKind  string
	MissileKind string

	// WarningBlink is how long a warning stays visible.
	WarningBlink    time.Duration
	BulletWarning   combat.Deadline
	MissileWarning  combat.Deadline
	NoTargetWarning combat.Deadline
}

var WeaponStationComponent = NewComponent[WeaponStation]()
