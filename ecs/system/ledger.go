package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
)

// dropHeight lifts pickups dropped by dead vehicles off the ground.
const dropHeight = 6.0

// Ledger applies resolved reactions to health, ammo and the economy. It is
// the only place a death transition happens, so side effects run once.
type Ledger struct {
	spawner    *entity.Spawner
	events     *combat.Emitter
	economy    combat.Economy
	scoreboard combat.Scoreboard
}

// NewLedger wires the ledger to its collaborators. Any of them may be nil.
func NewLedger(spawner *entity.Spawner, events *combat.Emitter, economy combat.Economy, scoreboard combat.Scoreboard) *Ledger {
	return &Ledger{
		spawner:    spawner,
		events:     events,
		economy:    economy,
		scoreboard: scoreboard,
	}
}

// Apply performs the effect of one reaction on its receiver.
func (l *Ledger) Apply(w *ecs.World, r combat.Reaction) {
	if l == nil || w == nil {
		return
	}

	receiver := ecs.FromRef(r.Receiver)
	switch r.Kind {
	case combat.ReactDamage:
		l.ApplyDamage(w, receiver, r.Amount, r.Source, ecs.FromRef(r.Consumed))
	case combat.ReactHeal:
		l.Heal(w, receiver, r.Amount)
		l.pickupConsumed(w, receiver, r)
	case combat.ReactAddBullets:
		if ws, ok := ecs.Get(w, receiver, component.WeaponStationComponent.Kind()); ok {
			if ws.Bullets.AddAmmo(r.Amount) {
				l.emit(w, combat.Event{Type: combat.EventReloaded, TargetID: receiver.Ref(), Kind: string(combat.TagBullet)})
			}
		}
		l.pickupConsumed(w, receiver, r)
	case combat.ReactAddMissiles:
		if ws, ok := ecs.Get(w, receiver, component.WeaponStationComponent.Kind()); ok {
			ws.Missiles.AddMissiles(r.Amount)
		}
		l.pickupConsumed(w, receiver, r)
	case combat.ReactAddCoins:
		if l.economy != nil {
			l.economy.AddCoins(r.Amount)
		}
		l.pickupConsumed(w, receiver, r)
	}
}

// ApplyDamage damages target and runs the death transition when it is the
// hit that kills. It reports whether target died.
func (l *Ledger) ApplyDamage(w *ecs.World, target ecs.Entity, amount int, source combat.Tag, by ecs.Entity) bool {
	c, ok := ecs.Get(w, target, component.CombatantComponent.Kind())
	if !ok {
		return false
	}

	applied, died := c.Health.ApplyDamage(amount)
	if applied > 0 {
		l.emit(w, combat.Event{
			Type:     combat.EventDamageApplied,
			SourceID: by.Ref(),
			TargetID: target.Ref(),
			Kind:     string(source),
			Amount:   applied,
			Pos:      position(w, target),
		})
	}
	if !died {
		return false
	}

	if c.Faction == combat.FactionPlayer {
		l.playerDied(w, target)
	} else {
		l.enemyKilled(w, target, c)
	}
	return true
}

// Heal restores health and reports how much was restored.
func (l *Ledger) Heal(w *ecs.World, target ecs.Entity, amount int) int {
	c, ok := ecs.Get(w, target, component.CombatantComponent.Kind())
	if !ok {
		return 0
	}
	healed := c.Health.Heal(amount)
	if healed > 0 {
		l.emit(w, combat.Event{Type: combat.EventHealed, TargetID: target.Ref(), Amount: healed})
	}
	return healed
}

func (l *Ledger) enemyKilled(w *ecs.World, e ecs.Entity, c *component.Combatant) {
	if h, ok := ecs.Get(w, e, component.HostileComponent.Kind()); ok {
		h.FSM.Disable()
	}
	c.Removal.Arm(w.Now(), c.Grace)

	if l.scoreboard != nil {
		l.scoreboard.AddDeathCount()
		l.scoreboard.AddCoins(c.Reward)
	}

	pos := position(w, e)
	l.emit(w, combat.Event{
		Type:     combat.EventEnemyKilled,
		TargetID: e.Ref(),
		Kind:     c.Variant,
		Amount:   c.Reward,
		Pos:      pos,
	})
	w.Logger().Info().Str("entity", e.String()).Str("kind", c.Variant).Int("amount", c.Reward).Msg("enemy killed")

	if l.spawner == nil {
		return
	}
	if c.Wreck != "" {
		if _, err := l.spawner.Marker(w, c.Wreck, pos); err != nil {
			w.Logger().Debug().Err(err).Str("kind", c.Wreck).Msg("wreck marker skipped")
		}
	}
	if c.Drop != "" {
		dropAt := pos.Add(common.Vec3{Y: dropHeight})
		if _, err := l.spawner.Spawn(w, string(c.Drop), dropAt); err != nil {
			w.Logger().Debug().Err(err).Str("kind", string(c.Drop)).Msg("drop skipped")
		}
	}
}

func (l *Ledger) playerDied(w *ecs.World, e ecs.Entity) {
	if pilot, ok := ecs.Get(w, e, component.PilotComponent.Kind()); ok {
		if pilot.Dead {
			return
		}
		pilot.Dead = true
		pilot.GameOver.Arm(w.Now(), pilot.GameOverDelay)
	}
	if ws, ok := ecs.Get(w, e, component.WeaponStationComponent.Kind()); ok {
		ws.Enabled = false
		ws.Bullets.Release()
		ws.Missiles.Disable()
	}

	ecs.ForEach(w, component.HostileComponent.Kind(), func(_ ecs.Entity, h *component.Hostile) {
		h.FSM.StopShooting()
	})

	if l.scoreboard != nil {
		l.scoreboard.GameOver()
	}

	l.emit(w, combat.Event{Type: combat.EventPlayerDied, TargetID: e.Ref(), Pos: position(w, e)})
	w.Logger().Info().Str("entity", e.String()).Msg("player died")
}

func (l *Ledger) pickupConsumed(w *ecs.World, receiver ecs.Entity, r combat.Reaction) {
	l.emit(w, combat.Event{
		Type:     combat.EventPickupConsumed,
		SourceID: r.Consumed,
		TargetID: receiver.Ref(),
		Kind:     string(r.Source),
		Amount:   r.Amount,
		Pos:      position(w, ecs.FromRef(r.Consumed)),
	})
}

func (l *Ledger) emit(w *ecs.World, evt combat.Event) {
	if l == nil || l.events == nil {
		return
	}
	evt.Time = w.Now().Seconds()
	l.events.Emit(evt)
}

func position(w *ecs.World, e ecs.Entity) common.Vec3 {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Position
	}
	return common.Vec3{}
}
