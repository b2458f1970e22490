package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gunship/config"
	"github.com/milk9111/gunship/economy"
	"github.com/milk9111/gunship/levels"
	"github.com/milk9111/gunship/logging"
	"github.com/milk9111/gunship/prefabs"
	"github.com/milk9111/gunship/sim"
)

func main() {
	configDir := flag.String("config", ".", "directory containing gunship.yaml")
	levelName := flag.String("level", "", "level file in levels/ (overrides config)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal(err)
	}
	settings, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.Console(settings.LogLevel, os.Stderr, nil)

	store, err := economy.OpenStore(settings.Store.Driver, settings.Store.SQLitePath, settings.Store.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	wallet, err := economy.NewWallet(store, logger)
	if err != nil {
		log.Fatal(err)
	}
	stats := economy.NewStats(wallet, store, logger)

	prefabs.SetOverrideDir(settings.Prefabs.Dir)
	if *levelName == "" {
		*levelName = settings.Level
	}
	level, err := levels.LoadLevelFromFS(*levelName)
	if err != nil {
		log.Fatal(err)
	}

	s, err := sim.New(sim.Options{
		Level:      level,
		Economy:    wallet,
		Scoreboard: stats,
		Logger:     logger,
		Metrics:    settings.Metrics.Enabled,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	game := NewGame(s, wallet, stats, logger)
	if settings.Prefabs.HotReload && settings.Prefabs.Dir != "" {
		watcher, err := prefabs.NewWatcher(settings.Prefabs.Dir, filepath.Join(settings.Prefabs.Dir, "scripts"))
		if err != nil {
			logger.Warn().Err(err).Msg("hot reload disabled")
		} else {
			defer watcher.Close()
			game.reloads = watcher.Events
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetTPS(settings.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("gunship")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
