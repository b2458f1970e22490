package sim

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/ecs/component"
	"github.com/milk9111/gunship/ecs/entity"
	"github.com/milk9111/gunship/ecs/system"
	"github.com/milk9111/gunship/levels"
	"github.com/milk9111/gunship/prefabs"
	"github.com/rs/zerolog"
)

// Input is the player's command for one tick.
type Input struct {
	// Steer is lateral (X) and vertical (Y), each in [-1, 1].
	Steer   common.Vec2
	Fire    bool
	Missile bool
}

type Options struct {
	// Catalog defaults to the prefabs on disk or embedded.
	Catalog *prefabs.Catalog
	// Level is optional; without one only explicit spawns appear.
	Level      *levels.Level
	Economy    combat.Economy
	Scoreboard combat.Scoreboard
	Logger     zerolog.Logger
	// Metrics reports combat counters through the global otel meter.
	Metrics bool
}

// Sim is one run of the combat simulation. It is not safe for concurrent
// use; the host drives it from a single loop.
type Sim struct {
	runID      string
	world      *ecs.World
	sched      *ecs.Scheduler
	catalog    *prefabs.Catalog
	spawner    *entity.Spawner
	dispatcher *combat.Dispatcher
	ledger     *system.Ledger
	encounter  *system.EncounterSystem
	events     *combat.Emitter
	log        *combat.EventLog
	metrics    *metrics
	player     ecs.Entity
	logger     zerolog.Logger

	kills  int
	earned int
}

func New(opts Options) (*Sim, error) {
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = prefabs.LoadCatalog(); err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
	}

	table, err := catalog.Damage().Table()
	if err != nil {
		return nil, fmt.Errorf("sim: damage table: %w", err)
	}

	s := &Sim{
		runID:   uuid.NewString(),
		world:   ecs.NewWorld(),
		catalog: catalog,
		spawner: entity.NewSpawner(catalog),
		events:  &combat.Emitter{},
		log:     &combat.EventLog{},
	}
	s.logger = opts.Logger.With().Str("run", s.runID).Logger()
	s.world.SetLogger(s.logger)

	if opts.Metrics {
		if s.metrics, err = newMetrics(); err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		s.events.Subscribe(s.metrics.record)
	}
	s.events.Subscribe(s.log.Record)
	s.events.Subscribe(s.score)

	s.dispatcher = combat.NewDispatcher(table, catalog.Pickups().Rules())
	s.ledger = system.NewLedger(s.spawner, s.events, opts.Economy, opts.Scoreboard)
	s.encounter = system.NewEncounterSystem(s.spawner, opts.Level, s.events)

	collision := system.NewCollisionSystem(nil, s.dispatcher, s.ledger, s.spawner, s.events)
	commit := system.NewCommitSystem(nil)
	s.sched = ecs.NewScheduler(
		s.encounter,
		system.NewPlayerControllerSystem(),
		system.NewWeaponSystem(s.spawner, s.events),
		system.NewHostileSystem(s.spawner, s.events),
		system.NewProjectileSystem(s.spawner, s.events),
		system.NewPickupHoverSystem(),
		collision,
		system.NewDespawnSystem(s.dispatcher, collision.Index(), commit.Index()),
		commit,
	)

	if s.player, err = s.spawner.Player(s.world); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	// Publish the starting state so the first tick has something to read.
	commit.Update(s.world)

	level := ""
	if opts.Level != nil {
		level = opts.Level.Name
	}
	s.logger.Info().Str("level", level).Msg("simulation started")
	return s, nil
}

// Step advances the simulation by dt with in as the player's command.
func (s *Sim) Step(dt time.Duration, in Input) {
	if cmd, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		cmd.Steer = in.Steer
		cmd.Fire = in.Fire
		cmd.Missile = cmd.Missile || in.Missile
	}
	s.sched.Step(s.world, dt)

	if s.metrics != nil {
		s.metrics.alive.Store(int64(s.hostilesAlive()))
	}
}

// Drain returns the events emitted since the last call.
func (s *Sim) Drain() []combat.Event {
	return s.log.Drain()
}

func (s *Sim) Spawn(kind string, pos common.Vec3) (ecs.Entity, error) {
	return s.spawner.Spawn(s.world, kind, pos)
}

// Reload applies a changed prefab or script file. Files the simulation does
// not know about return an error wrapping entity.ErrUnknownPrefab.
func (s *Sim) Reload(name string) error {
	base := filepath.Base(name)
	if strings.EqualFold(filepath.Ext(base), ".tengo") {
		s.encounter.ReloadScript()
		s.logger.Info().Str("kind", base).Msg("wave script reloaded")
		return nil
	}

	known, err := s.catalog.Reload(base)
	if !known {
		return fmt.Errorf("%w: %q", entity.ErrUnknownPrefab, base)
	}
	if err != nil {
		return err
	}

	if base == prefabs.DamageFile {
		table, err := s.catalog.Damage().Table()
		if err != nil {
			return err
		}
		s.dispatcher.SetDamageTable(table)
	}
	s.logger.Info().Str("kind", base).Msg("prefab reloaded")
	return nil
}

func (s *Sim) Close() error {
	return s.metrics.close()
}

func (s *Sim) RunID() string { return s.runID }
func (s *Sim) World() *ecs.World { return s.world }
func (s *Sim) Player() ecs.Entity { return s.player }
func (s *Sim) Catalog() *prefabs.Catalog { return s.catalog }
func (s *Sim) Ledger() *system.Ledger { return s.ledger }
func (s *Sim) Dispatcher() *combat.Dispatcher { return s.dispatcher }

func (s *Sim) score(evt combat.Event) {
	if evt.Type != combat.EventEnemyKilled {
		return
	}
	s.kills++
	s.earned += evt.Amount
}

func (s *Sim) hostilesAlive() int {
	n := 0
	ecs.ForEach2(s.world, component.HostileTagComponent.Kind(), component.CombatantComponent.Kind(), func(_ ecs.Entity, _ *component.HostileTag, c *component.Combatant) {
		if c.Health.Alive() {
			n++
		}
	})
	return n
}
