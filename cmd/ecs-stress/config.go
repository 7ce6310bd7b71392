package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config drives a stress run. Flags override the scenario section; everything
// has a usable default so the tool runs without a config file.
type Config struct {
	Scenario Scenario      `toml:"scenario"`
	Churn    ChurnConfig   `toml:"churn"`
	Logging  LoggingConfig `toml:"logging"`
	Profile  ProfileConfig `toml:"profile"`
	Report   ReportConfig  `toml:"report"`
}

type Scenario struct {
	Duration       time.Duration `toml:"duration"`
	Entities       int           `toml:"entities"`
	ComponentsEach int           `toml:"components_each"`
	FixedPerUpdate int           `toml:"fixed_per_update"`
	Seed           int64         `toml:"seed"`
}

// ChurnConfig adds structural churn on top of the generated systems: every
// update pass spawns and despawns entities so the delayed queue, pools and
// filters stay hot.
type ChurnConfig struct {
	SpawnPerPass   int `toml:"spawn_per_pass"`
	DespawnPerPass int `toml:"despawn_per_pass"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ProfileConfig selects a pprof profile written to the working directory.
// Mode is one of "off", "cpu" or "mem".
type ProfileConfig struct {
	Mode string `toml:"mode"`
}

type ReportConfig struct {
	GCPauseMetrics bool   `toml:"gc_pause_metrics"`
	Output         string `toml:"output"`
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Scenario: Scenario{
			Duration:       10 * time.Second,
			Entities:       10000,
			ComponentsEach: 5,
			FixedPerUpdate: 2,
			Seed:           1,
		},
		Churn: ChurnConfig{
			SpawnPerPass:   50,
			DespawnPerPass: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Mode: "off",
		},
		Report: ReportConfig{
			GCPauseMetrics: false,
			Output:         "",
		},
	}
}
