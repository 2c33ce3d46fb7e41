// Package main provides the simfight binary: it loads two fighter templates
// and a parameter version, simulates one or more bouts, and reports the
// results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pugilist/ringside/internal/config"
	"github.com/pugilist/ringside/internal/game/engine"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/rng"
	"github.com/pugilist/ringside/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	red := flag.String("red", "", "red-corner template name (overrides config)")
	blue := flag.String("blue", "", "blue-corner template name (overrides config)")
	fights := flag.Int("fights", 0, "number of bouts to simulate (overrides config)")
	seed := flag.Int64("seed", 0, "random seed; 0 keeps the configured seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *red != "" {
		cfg.Fighters.Red = *red
	}
	if *blue != "" {
		cfg.Fighters.Blue = *blue
	}
	if *fights > 0 {
		cfg.Sim.Fights = *fights
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	p := loadParams(cfg, logger)
	p = p.WithOverride("fight.rounds", cfg.Sim.Rounds).
		WithOverride("fight.ticks_per_round", cfg.Sim.TicksPerRound)

	registry, err := fighter.LoadDirectory(cfg.Fighters.Dir)
	if err != nil {
		logger.Fatal("loading fighter templates", zap.Error(err))
	}
	redTpl, ok := registry.Get(cfg.Fighters.Red)
	if !ok {
		logger.Fatal("unknown red-corner fighter", zap.String("name", cfg.Fighters.Red))
	}
	blueTpl, ok := registry.Get(cfg.Fighters.Blue)
	if !ok {
		logger.Fatal("unknown blue-corner fighter", zap.String("name", cfg.Fighters.Blue))
	}

	baseSeed := cfg.Sim.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting simulation",
		zap.String("red", redTpl.Name),
		zap.String("blue", blueTpl.Name),
		zap.String("params", p.Version()),
		zap.Int("fights", cfg.Sim.Fights),
		zap.Int64("seed", baseSeed))

	outcomes := runFights(ctx, cfg, p, redTpl, blueTpl, baseSeed, logger)
	if len(outcomes) == 0 {
		logger.Warn("no fights completed")
		os.Exit(1)
	}

	report(outcomes, redTpl.Name, blueTpl.Name)
	logger.Info("simulation complete",
		zap.Int("fights", len(outcomes)),
		zap.Duration("elapsed", time.Since(start)))
}

// loadParams builds the parameter store from the configured version
// directory, or the built-in defaults when no directory is configured.
func loadParams(cfg config.Config, logger *zap.Logger) *params.Store {
	if cfg.Params.Dir == "" {
		return params.NewDefault(logger)
	}
	p, err := params.LoadVersion(cfg.Params.Dir, cfg.Params.Version, logger)
	if err != nil {
		logger.Fatal("loading parameter version",
			zap.String("dir", cfg.Params.Dir),
			zap.String("version", cfg.Params.Version),
			zap.Error(err))
	}
	return p
}

// runFights simulates the configured number of bouts across a bounded worker
// pool. Each fight owns its fighters and random source; the parameter store
// is shared read-only.
func runFights(ctx context.Context, cfg config.Config, p *params.Store, redTpl, blueTpl *fighter.Template, baseSeed int64, logger *zap.Logger) []*engine.Outcome {
	sem := make(chan struct{}, cfg.Sim.Parallelism)
	results := make([]*engine.Outcome, cfg.Sim.Fights)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Sim.Fights; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			red := fighter.New(redTpl.Profile(), p, ring.Position{})
			blue := fighter.New(blueTpl.Profile(), p, ring.Position{})
			f := engine.New(p, red, blue, rng.NewSeeded(baseSeed+int64(n)), logger)
			out, err := f.Run(ctx)
			if err != nil {
				logger.Warn("fight aborted", zap.String("fight", f.ID()), zap.Error(err))
				return
			}
			results[n] = out
		}(i)
	}
	wg.Wait()

	outcomes := results[:0]
	for _, out := range results {
		if out != nil {
			outcomes = append(outcomes, out)
		}
	}
	return outcomes
}

// report prints the win/method tally to stdout.
func report(outcomes []*engine.Outcome, redName, blueName string) {
	wins := map[string]int{}
	methods := map[engine.Method]int{}
	for _, out := range outcomes {
		methods[out.Method]++
		if out.WinnerName != "" {
			wins[out.WinnerName]++
		}
	}
	draws := len(outcomes) - wins[redName] - wins[blueName]

	fmt.Printf("%s vs %s over %d fights\n", redName, blueName, len(outcomes))
	fmt.Printf("  %-20s %d\n", redName, wins[redName])
	fmt.Printf("  %-20s %d\n", blueName, wins[blueName])
	fmt.Printf("  %-20s %d\n", "draws", draws)
	fmt.Printf("  by KO %d, TKO %d, decision %d\n",
		methods[engine.MethodKO], methods[engine.MethodTKO], methods[engine.MethodDecision])

	if len(outcomes) == 1 {
		out := outcomes[0]
		fmt.Printf("\nresult: %s by %s in round %d\n", out.WinnerName, out.Method, out.Round)
		for _, rs := range out.Scores {
			fmt.Printf("  round %2d: %d-%d\n", rs.Round, rs.PointsA, rs.PointsB)
		}
	}
}
