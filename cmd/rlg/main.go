package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"rlg327/internal/agent"
	"rlg327/internal/domain"
	"rlg327/internal/engine"
	"rlg327/internal/infrastructure/storage"
	"rlg327/internal/terminal"
	"rlg327/internal/version"
	"rlg327/pkg/logger"
	"syscall"
	"time"
)

func init() {
	logger.Init()
}

func defaultDir() string {
	if dir := os.Getenv("RLG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rlg327"
	}
	return filepath.Join(home, ".rlg327")
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()
	var (
		seed        uint64
		save, load  bool
		stairs      bool
		showVersion bool
		dir, ui     string
		delay       time.Duration
	)
	// -seed 0 значит "сгенерировать случайно"
	flag.Uint64Var(&seed, "seed", 0, "Simulation seed (0 for random)")
	flag.IntVar(&cfg.Rooms, "rooms", cfg.Rooms, "Number of rooms, clamped to [10,50]")
	flag.IntVar(&cfg.Monsters, "nummon", cfg.Monsters, "Number of monsters")
	flag.IntVar(&cfg.StartX, "player_x", 0, "Player start column (requires -player_y)")
	flag.IntVar(&cfg.StartY, "player_y", 0, "Player start row (requires -player_x)")
	flag.BoolVar(&save, "save", false, "Save the level after the run")
	flag.BoolVar(&load, "load", false, "Load the level instead of generating one")
	flag.BoolVar(&stairs, "stairs", false, "Place stairs and allow level transitions")
	flag.StringVar(&dir, "dir", defaultDir(), "Save directory")
	flag.StringVar(&ui, "ui", "auto", "Player controller: auto (autopilot) or term (keyboard)")
	flag.DurationVar(&delay, "delay", 0, "Autopilot delay between player turns")
	flag.BoolVar(&showVersion, "v", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Log.Info("Starting RLG327...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}
	cfg.Stairs = stairs

	store, err := storage.NewLevelStore(dir)
	if err != nil {
		logger.Log.Fatal("Save directory error: ", err)
	}

	// 2. Источник действий игрока
	var controller domain.PlayerController
	var term *terminal.Terminal
	switch ui {
	case "term":
		term, err = terminal.New()
		if err != nil {
			logger.Log.Fatal("Terminal error: ", err)
		}
		logger.Silence()
		controller = term
	case "auto":
		controller = agent.NewAutopilot(cfg.Seed, delay)
	default:
		logger.Log.Fatalf("Unknown -ui %q (want auto or term)", ui)
	}

	// 3. Уровень: загрузка или генерация
	var sim *engine.Simulation
	if load {
		var level *domain.Level
		if level, err = store.Load(); err != nil {
			closeTerminal(term)
			logger.Log.Fatal("Cannot start without a level: ", err)
		}
		sim, err = engine.New(cfg, level, controller)
	} else {
		sim, err = engine.NewFromConfig(cfg, controller)
	}
	if err != nil {
		closeTerminal(term)
		logger.Log.Fatal("Simulation setup failed: ", err)
	}

	// Graceful Shutdown: сигнал прерывает ожидание хода игрока
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Игра
	outcome, runErr := sim.Run(ctx)
	closeTerminal(term)
	if runErr != nil {
		logger.Log.Error("Simulation stopped: ", runErr)
	}

	if err := sim.Render(os.Stdout); err != nil {
		logger.Log.Error("Render failed: ", err)
	}
	for _, entry := range sim.Logs() {
		if entry.Type != domain.LogInfo {
			continue
		}
		fmt.Println(entry.Text)
	}
	fmt.Printf("Итог: %s, глубина %d, тиков %d\n", outcome, sim.Depth(), sim.Ticks())

	if save {
		if err := store.Save(sim.Level()); err != nil {
			logger.Log.Fatal("Save failed: ", err)
		}
	}
	logger.Log.Info("Done.")
}

func closeTerminal(term *terminal.Terminal) {
	if term != nil {
		term.Close()
	}
}
