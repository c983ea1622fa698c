package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/grove/config"
	"github.com/lixenwraith/grove/content"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
	"github.com/lixenwraith/grove/save"
	"github.com/lixenwraith/grove/system"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	contentDir := flag.String("content", "", "plant definition directory (overrides config)")
	seed := flag.Uint64("seed", 0, "deterministic RNG seed (overrides config, 0 = wall clock)")
	logLevel := flag.String("log", "", "log level (overrides config)")
	plant := flag.String("plant", "", "plant this definition at the origin on startup")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grove: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := initLogger(cfg.LogLevel)

	if err := run(cfg, log, *plant); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

func initLogger(level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "grove").Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		logger = logger.Level(lvl)
	}
	return logger
}

func run(cfg config.Config, log zerolog.Logger, plantName string) error {
	defs := content.NewManager(log)
	if err := defs.LoadDir(cfg.ContentDir); err != nil {
		return err
	}

	rngSeed := int64(cfg.Seed)
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	res := engine.NewResource(engine.NewMonotonicTimeProvider(), rngSeed, log)
	world := engine.NewWorld(res)
	sched := engine.NewDelayScheduler(res.Time)
	router := event.NewRouter(res.Events)

	dropper := system.NewItemDropper(world)
	inventory := system.NewInventorySystem(world)
	destroy := system.NewDestroySystem(world, dropper)
	growth := system.NewGrowthSystem(world, sched, defs)
	harvest := system.NewHarvestSystem(world, growth, destroy, inventory, dropper)
	vine := system.NewVineSystem(world, growth, destroy)
	genome := system.NewGenomeSystem(world)

	growth.RegisterObserver(genome)
	growth.RegisterObserver(vine)

	for _, sys := range []engine.System{growth, harvest, destroy, vine, genome, inventory} {
		world.AddSystem(sys)
	}
	router.Register(growth)
	router.Register(harvest)
	router.Register(destroy)
	router.Register(vine)

	store := newStore(cfg, log)
	if snap, ok, err := store.Load(); err != nil {
		log.Warn().Err(err).Msg("snapshot load failed, starting fresh")
	} else if ok {
		save.Restore(snap, world, growth, vine, defs)
		log.Info().Int64("frame", snap.Frame).Int("bushes", len(snap.Bushes)).
			Int("stems", len(snap.Stems)).Msg("world restored from snapshot")
	}

	if plantName != "" {
		name := plantName
		if resolved, ok := defs.FindClosest(name); ok {
			name = resolved
		}
		world.PushEvent(event.EventSeedPlanted, &event.SeedPlantedPayload{
			Pos:        core.Vec3i{},
			Definition: name,
		})
	}

	log.Info().
		Dur("tick", cfg.TickInterval).
		Int64("seed", rngSeed).
		Int("definitions", defs.Len()).
		Msg("simulation starting")

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	var lastSave time.Time
	for {
		select {
		case <-sig:
			log.Info().Msg("shutting down")
			if err := store.Save(save.Capture(world)); err != nil {
				log.Error().Err(err).Msg("final snapshot save failed")
			}
			return nil

		case <-ticker.C:
			router.DispatchAll()
			sched.Update()
			world.Update()
			res.Frame++

			if cfg.SaveInterval > 0 && time.Since(lastSave) >= cfg.SaveInterval {
				if err := store.Save(save.Capture(world)); err != nil {
					log.Error().Err(err).Msg("snapshot save failed")
				}
				lastSave = time.Now()
			}
		}
	}
}

func newStore(cfg config.Config, log zerolog.Logger) *save.Store {
	manager, err := gdata.Open(gdata.Config{AppName: "grove"})
	if err != nil {
		// Degraded mode: the simulation runs without persistence
		log.Warn().Err(err).Msg("platform storage unavailable, persistence disabled")
		manager = nil
	}
	return save.NewStore(manager, cfg.SaveName, log)
}
