package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/turmite/config"
	"github.com/lixenwraith/turmite/engine"
	"github.com/lixenwraith/turmite/parameter"
	"github.com/lixenwraith/turmite/pattern"
	"github.com/lixenwraith/turmite/status"
)

var (
	flagPattern string
	flagRate    int
	flagTicks   uint64
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "turmite",
		Short: "Headless generalized Langton's ant simulation",
		Long: `turmite runs a pattern-driven turning automaton on an unbounded
grid at a fixed tick rate. The pattern string maps each marker to a
turn command: l (left), r (right), u (u-turn), n (none).

SIGUSR1 toggles pause; SIGINT/SIGTERM stop the run.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&flagPattern, "pattern", "p", parameter.DefaultPattern, "turn pattern, e.g. RL or ruln")
	root.Flags().IntVarP(&flagRate, "rate", "r", parameter.DefaultTickRate, "tick rate in ticks per second")
	root.Flags().Uint64VarP(&flagTicks, "ticks", "t", 0, "stop after this many ticks (0 = run until signal)")
	root.Flags().Int64Var(&flagSeed, "seed", 0, "marker color seed (0 = time-based)")
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "turmite: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers file values under explicitly set flags
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = flagPattern
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = flagRate
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = flagTicks
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger = logger.With("run_id", uuid.NewString())

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	table, err := pattern.Parse(cfg.Pattern, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	reg := status.NewRegistry()
	sim := engine.NewSim(table, reg, nil)

	tickInterval := time.Second / time.Duration(cfg.Rate)
	scheduler, err := engine.NewClockScheduler(sim, tickInterval, cfg.Ticks, reg)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"pattern", cfg.Pattern,
		"entries", table.Len(),
		"rate", cfg.Rate,
		"ticks", cfg.Ticks,
		"seed", seed,
	)

	stopSig := make(chan os.Signal, 1)
	signal.Notify(stopSig, syscall.SIGINT, syscall.SIGTERM)
	pauseSig := make(chan os.Signal, 1)
	signal.Notify(pauseSig, syscall.SIGUSR1)
	defer signal.Stop(stopSig)
	defer signal.Stop(pauseSig)

	scheduler.Start()
	defer scheduler.Stop()

	progress := time.NewTicker(5 * time.Second)
	defer progress.Stop()

	statTicks := reg.Ints.Get("engine.ticks")
	statCells := reg.Ints.Get("sim.cells")
	statRevisits := reg.Ints.Get("sim.revisits")

	for {
		select {
		case <-scheduler.Done():
			if err := scheduler.Err(); err != nil {
				logger.Error("simulation failed", "error", err, "tick", scheduler.TickCount())
				return err
			}
			logSummary(logger, statTicks.Load(), statCells.Load(), statRevisits.Load())
			return nil

		case <-stopSig:
			logger.Info("stopping on signal")
			scheduler.Stop()
			if err := scheduler.Err(); err != nil {
				return err
			}
			logSummary(logger, statTicks.Load(), statCells.Load(), statRevisits.Load())
			return nil

		case <-pauseSig:
			if scheduler.IsPaused() {
				scheduler.Resume()
				logger.Info("resumed", "tick", scheduler.TickCount())
			} else {
				scheduler.Pause()
				logger.Info("paused", "tick", scheduler.TickCount())
			}

		case <-progress.C:
			logger.Debug("progress",
				"ticks", statTicks.Load(),
				"cells", statCells.Load(),
				"revisits", statRevisits.Load(),
			)
		}
	}
}

func logSummary(logger *slog.Logger, ticks, cells, revisits int64) {
	logger.Info("simulation finished",
		"ticks", ticks,
		"cells", cells,
		"revisits", revisits,
	)
}
