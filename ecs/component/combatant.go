package component

import (
	"time"

	"github.com/milk9111/gunship/combat"
)

// Combatant is anything with health that can be targeted.
type Combatant struct {
	Health  combat.Health
	Faction combat.Faction
	// Variant is the prefab name, e.g. "turret" or "tank".
	Variant string
	// Reward is paid to the scoreboard when this combatant is killed.
	Reward int
	// Grace is how long a dead combatant lingers before removal.
	Grace   time.Duration
	Removal combat.Deadline
	// Wreck spawns a marker of this kind on death.
	Wreck string
	// Drop spawns a pickup of this tag on death.
	Drop combat.Tag
}

var CombatantComponent = NewComponent[Combatant]()
