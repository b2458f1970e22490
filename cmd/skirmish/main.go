package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/config"
	"github.com/milk9111/gunship/economy"
	"github.com/milk9111/gunship/ecs/entity"
	"github.com/milk9111/gunship/levels"
	"github.com/milk9111/gunship/logging"
	"github.com/milk9111/gunship/prefabs"
	"github.com/milk9111/gunship/sim"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory containing gunship.yaml")
	levelName := flag.String("level", "", "level file in levels/ (overrides config)")
	duration := flag.Duration("duration", 2*time.Minute, "stop after this much simulated time")
	fast := flag.Bool("fast", false, "step as fast as possible instead of in real time")
	logFile := flag.String("log", "", "also write plain log lines to this file")
	flag.Parse()

	if err := run(*configDir, *levelName, *duration, *fast, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configDir, levelName string, duration time.Duration, fast bool, logFile string) error {
	if err := config.Load(configDir); err != nil {
		return err
	}
	settings, err := config.Get()
	if err != nil {
		return err
	}

	var file io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		file = f
	}
	logger := logging.Console(settings.LogLevel, os.Stderr, file)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := economy.OpenStore(settings.Store.Driver, settings.Store.SQLitePath, settings.Store.DSN)
	if err != nil {
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	wallet, err := economy.NewWallet(store, logger)
	if err != nil {
		return err
	}
	stats := economy.NewStats(wallet, store, logger)

	prefabs.SetOverrideDir(settings.Prefabs.Dir)
	if levelName == "" {
		levelName = settings.Level
	}
	level, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return err
	}

	s, err := sim.New(sim.Options{
		Level:      level,
		Economy:    wallet,
		Scoreboard: stats,
		Logger:     logger,
		Metrics:    settings.Metrics.Enabled,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	var reloads <-chan string
	if settings.Prefabs.HotReload && settings.Prefabs.Dir != "" {
		watcher, err := prefabs.NewWatcher(settings.Prefabs.Dir, filepath.Join(settings.Prefabs.Dir, "scripts"))
		if err != nil {
			logger.Warn().Err(err).Str("dir", settings.Prefabs.Dir).Msg("hot reload disabled")
		} else {
			defer watcher.Close()
			reloads = watcher.Events
		}
	}

	dt := time.Second / time.Duration(settings.TickRate)
	var ticks <-chan time.Time
	if !fast {
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		ticks = ticker.C
	}

	pilot := autopilot{}
	for {
		if fast {
			select {
			case <-ctx.Done():
				return finish(logger, s, stats, ctx.Err())
			case name, ok := <-reloads:
				if !ok {
					reloads = nil
					continue
				}
				reload(logger, s, name)
				continue
			default:
			}
		} else {
			select {
			case <-ctx.Done():
				return finish(logger, s, stats, ctx.Err())
			case name, ok := <-reloads:
				if !ok {
					reloads = nil
					continue
				}
				reload(logger, s, name)
				continue
			case <-ticks:
			}
		}

		snap := s.Snapshot()
		s.Step(dt, pilot.next(snap, dt))
		for _, evt := range s.Drain() {
			logEvent(logger, evt)
		}

		snap = s.Snapshot()
		if snap.GameOverVisible {
			return finish(logger, s, stats, nil)
		}
		if snap.Time >= duration {
			// The run ends with the player alive; settle it all the same.
			stats.GameOver()
			return finish(logger, s, stats, nil)
		}
	}
}

func reload(logger zerolog.Logger, s *sim.Sim, name string) {
	err := s.Reload(name)
	switch {
	case errors.Is(err, entity.ErrUnknownPrefab):
		logger.Debug().Str("file", name).Msg("ignoring change")
	case err != nil:
		logger.Error().Err(err).Str("file", name).Msg("reload failed")
	}
}

func finish(logger zerolog.Logger, s *sim.Sim, stats *economy.Stats, cause error) error {
	snap := s.Snapshot()
	evt := logger.Info().
		Str("run", s.RunID()).
		Dur("elapsed", snap.Time).
		Int("kills", snap.Kills).
		Bool("dead", snap.Dead)
	if res, over := stats.Result(); over {
		evt = evt.Int("bonus", res.Bonus).Int("total", res.Total).Int("trophies", res.Trophies)
	}
	evt.Msg("run finished")

	if errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}

func logEvent(logger zerolog.Logger, evt combat.Event) {
	level := zerolog.DebugLevel
	switch evt.Type {
	case combat.EventEnemyKilled, combat.EventPlayerDied:
		level = zerolog.InfoLevel
	case combat.EventAmmoDepleted, combat.EventNoTargetInRange:
		level = zerolog.WarnLevel
	}
	logger.WithLevel(level).
		Str("event", string(evt.Type)).
		Str("kind", evt.Kind).
		Int("amount", evt.Amount).
		Msg("combat")
}

// autopilot weaves across the route, keeps the guns hot and sends a missile
// every few seconds.
type autopilot struct {
	elapsed      time.Duration
	sinceMissile time.Duration
}

const missileEvery = 3 * time.Second

func (a *autopilot) next(snap sim.Snapshot, dt time.Duration) sim.Input {
	a.elapsed += dt
	a.sinceMissile += dt

	in := sim.Input{
		Steer: common.Vec2{X: math.Sin(a.elapsed.Seconds() / 2)},
		Fire:  snap.BulletState != combat.AmmoReloading,
	}
	if a.sinceMissile >= missileEvery && snap.MissileLoaded {
		in.Missile = true
		a.sinceMissile = 0
	}
	return in
}
