package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/skirmish/archetypes"
	"github.com/milk9111/skirmish/battle"
	"github.com/milk9111/skirmish/ecs/component"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario yaml (built-in brawl when empty)")
	dataDir := flag.String("data", "", "archetype data directory overriding the embedded defaults")
	watch := flag.Bool("watch", false, "reload archetypes from -data between rounds")
	rounds := flag.Int("rounds", 1, "number of rounds to run")
	duration := flag.Duration("duration", 60*time.Second, "battle time limit")
	tickRate := flag.Int("tick", 30, "simulation ticks per second")
	verbose := flag.Bool("v", false, "verbose (debug) logging")
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *scenarioPath, *dataDir, *watch, *rounds, *duration, *tickRate); err != nil {
		log.Fatal("skirmish failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(log *zap.Logger, scenarioPath, dataDir string, watch bool, rounds int, duration time.Duration, tickRate int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if dataDir != "" {
		archetypes.SetDataDir(dataDir)
	}
	lib, err := archetypes.LoadLibrary()
	if err != nil {
		return err
	}

	var watcher *archetypes.Watcher
	if watch {
		if dataDir == "" {
			return fmt.Errorf("-watch requires -data")
		}
		watcher, err = archetypes.NewWatcher(dataDir)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	sc := defaultScenario()
	if scenarioPath != "" {
		sc, err = loadScenario(scenarioPath)
		if err != nil {
			return err
		}
	}

	sess := battle.NewSession(battle.Config{
		TickRate: tickRate,
		Duration: duration,
		Logger:   log,
	})

	for round := 1; round <= rounds; round++ {
		if watcher != nil && drainWatcher(watcher) {
			log.Info("archetype data changed, reloading")
			if lib, err = archetypes.LoadLibrary(); err != nil {
				return err
			}
		}

		sess.Clear()
		if err := spawnSide(sess, lib, sc.Player, component.FactionPlayer); err != nil {
			return err
		}
		if err := spawnSide(sess, lib, sc.Enemy, component.FactionEnemy); err != nil {
			return err
		}

		result, err := sess.Run(ctx)
		if err != nil {
			return err
		}
		log.Info("round finished",
			zap.Int("round", round),
			zap.String("winner", result.Winner.String()),
			zap.String("outcome", result.Outcome.String()),
			zap.Duration("elapsed", result.Elapsed),
			zap.Int("ticks", result.Ticks),
			zap.Int("player_alive", sess.AliveCount(component.FactionPlayer)),
			zap.Int("enemy_alive", sess.AliveCount(component.FactionEnemy)))
	}
	return nil
}

// drainWatcher consumes any pending change notifications without blocking.
func drainWatcher(w *archetypes.Watcher) bool {
	changed := false
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return changed
			}
			changed = true
		case _, ok := <-w.Errors:
			if !ok {
				return changed
			}
		default:
			return changed
		}
	}
}
