package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cushmily/ecs"
)

//go:generate go run ../ecs-stressgen -components 24 -systems 8 -out .

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a TOML scenario file.")
	duration := flag.Duration("duration", 0, "Override the scenario run duration.")
	entityCount := flag.Int("entities", 0, "Override the initial entity count.")
	profileMode := flag.String("profile", "", "Override the profile mode (off, cpu, mem).")
	flag.Parse()

	cfg, err := Load(*cfgPath)
	if err != nil {
		return err
	}
	if *duration > 0 {
		cfg.Scenario.Duration = *duration
	}
	if *entityCount > 0 {
		cfg.Scenario.Entities = *entityCount
	}
	if *profileMode != "" {
		cfg.Profile.Mode = *profileMode
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch cfg.Profile.Mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "off", "":
	default:
		return fmt.Errorf("unknown profile mode %q", cfg.Profile.Mode)
	}

	logger.Info("starting stress run",
		zap.Duration("duration", cfg.Scenario.Duration),
		zap.Int("entities", cfg.Scenario.Entities),
		zap.Int("components", generatedComponentCount),
		zap.Int("systems", generatedSystemCount))

	w := ecs.NewWorld(ecs.WithEntityCapacity(cfg.Scenario.Entities))
	g := ecs.NewSystemGroup(w)
	if err := RegisterGeneratedSystems(g); err != nil {
		return err
	}
	if err := g.Initialize(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Scenario.Seed))
	live := make([]ecs.Entity, 0, cfg.Scenario.Entities)
	for i := 0; i < cfg.Scenario.Entities; i++ {
		n := rng.Intn(cfg.Scenario.ComponentsEach) + 1
		live = append(live, SpawnRandomEntity(w, n, rng))
	}
	w.Flush()
	logger.Info("population complete", zap.Int("entities", len(live)))

	report := &Report{
		Duration:       cfg.Scenario.Duration,
		Entities:       cfg.Scenario.Entities,
		Components:     generatedComponentCount,
		Systems:        generatedSystemCount,
		GCPauseMetrics: cfg.Report.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scenario.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			for i := 0; i < cfg.Scenario.FixedPerUpdate; i++ {
				if err := g.RunFixed(); err != nil {
					return err
				}
			}
			if err := g.Run(); err != nil {
				return err
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++

			live = churn(w, cfg.Churn, live, rng, cfg.Scenario.ComponentsEach)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.World = w.CollectStats()
	report.Group = g.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished",
		zap.Int64("updates", totalUpdates),
		zap.Duration("avg_update", report.UpdateTime.Avg))

	out := os.Stdout
	if cfg.Report.Output != "" {
		f, err := os.Create(cfg.Report.Output)
		if err != nil {
			return fmt.Errorf("create report %s: %w", cfg.Report.Output, err)
		}
		defer f.Close()
		out = f
	}
	if err := report.Generate(out); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	if err := g.Destroy(); err != nil {
		return err
	}
	return nil
}

// churn applies the configured spawn and despawn load for one pass. Despawns
// pick random live entities; the returned slice tracks what is still alive.
func churn(w *ecs.World, cfg ChurnConfig, live []ecs.Entity, rng *rand.Rand, componentsEach int) []ecs.Entity {
	for i := 0; i < cfg.DespawnPerPass && len(live) > 0; i++ {
		idx := rng.Intn(len(live))
		if err := w.RemoveEntity(live[idx]); err == nil {
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}
	for i := 0; i < cfg.SpawnPerPass; i++ {
		n := rng.Intn(componentsEach) + 1
		live = append(live, SpawnRandomEntity(w, n, rng))
	}
	w.Flush()
	return live
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
