package system

import (
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
	"github.com/milk9111/gunship/levels"
)

// EncounterSystem places a level's hostiles and pickups as the player
// approaches them, and runs the level's wave script if it has one.
type EncounterSystem struct {
	spawner *entity.Spawner
	level   *levels.Level
	next    int
	kills   int
	script  *waveScript
}

// NewEncounterSystem tracks kills through events so scripts can react to them.
func NewEncounterSystem(spawner *entity.Spawner, level *levels.Level, events *combat.Emitter) *EncounterSystem {
	s := &EncounterSystem{spawner: spawner, level: level}
	if level != nil && level.Script != "" {
		s.script = newWaveScript(level.Script)
	}
	events.Subscribe(func(evt combat.Event) {
		if evt.Type == combat.EventEnemyKilled {
			s.kills++
		}
	})
	return s
}

func (s *EncounterSystem) Kills() int {
	return s.kills
}

// Remaining is the number of placements not yet spawned.
func (s *EncounterSystem) Remaining() int {
	if s.level == nil {
		return 0
	}
	return len(s.level.Entities) - s.next
}

// ReloadScript recompiles the wave script on the next tick. Script state
// survives the reload.
func (s *EncounterSystem) ReloadScript() {
	if s.script != nil {
		s.script.invalidate()
	}
}

func (s *EncounterSystem) Update(w *ecs.World) {
	if w == nil || s.level == nil || s.spawner == nil {
		return
	}

	playerX, ok := playerX(w)
	if !ok {
		return
	}

	horizon := playerX + s.level.SpawnAhead
	for s.next < len(s.level.Entities) && s.level.Entities[s.next].X <= horizon {
		placement := s.level.Entities[s.next]
		s.next++
		pos := common.Vec3{X: placement.X, Y: placement.Y, Z: placement.Z}
		if _, err := s.spawner.Spawn(w, placement.Type, pos); err != nil {
			w.Logger().Warn().Err(err).Str("kind", placement.Type).Msg("encounter: placement skipped")
		}
	}

	if s.script != nil {
		s.script.update(w, s, playerX)
	}
}

func playerX(w *ecs.World) (float64, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return t.Position.X, true
}
