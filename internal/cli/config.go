// Package cli wires the giftswap binary: configuration from the environment
// and flags, roster loading, running the allocator and rendering pairs.
package cli

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/giftswap/allocator"
)

// Config holds everything the binary needs. Environment variables are read
// first; flags given on the command line override them.
type Config struct {
	// Input is the roster path; "-" reads stdin and "" uses the demo roster.
	Input      string `env:"GIFTSWAP_INPUT"`
	Steps      int    `env:"GIFTSWAP_STEPS"`
	MaxOptions int    `env:"GIFTSWAP_MAX_OPTIONS"`
	Restarts   int    `env:"GIFTSWAP_RESTARTS"`
	// Seed selects the random stream; 0 draws a fresh one per run.
	Seed      int64  `env:"GIFTSWAP_SEED"`
	Workers   int    `env:"GIFTSWAP_WORKERS"`
	LogLevel  string `env:"GIFTSWAP_LOG_LEVEL" envDefault:"info"`
	ShowScore bool   `env:"GIFTSWAP_SHOW_SCORE"`
}

// defaultConfig mirrors allocator.DefaultOptions so unset variables keep the
// library defaults.
func defaultConfig() Config {
	d := allocator.DefaultOptions()

	return Config{
		Steps:      d.Steps,
		MaxOptions: d.MaxOptions,
		Restarts:   d.Restarts,
		Workers:    d.Workers,
		LogLevel:   "info",
	}
}

// ParseConfig resolves a Config from environ (nil ⇒ the process environment)
// and then from flags in args.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	cfg := defaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var verbose bool
	fs.StringVar(&cfg.Input, "input", cfg.Input, `roster JSON file ("-" for stdin, empty for the demo roster)`)
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "local-search iterations per restart")
	fs.IntVar(&cfg.MaxOptions, "max-options", cfg.MaxOptions, "swap candidates sampled per iteration")
	fs.IntVar(&cfg.Restarts, "restarts", cfg.Restarts, "independent restarts")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fresh seed each run)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines running restarts")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&verbose, "v", false, "shorthand for -log-level=debug")
	fs.BoolVar(&cfg.ShowScore, "score", cfg.ShowScore, "print the aggregate score after the pairs")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// Options converts the config into allocator options for the given seed.
func (c Config) Options(seed int64) allocator.Options {
	opts := allocator.DefaultOptions()
	opts.Steps = c.Steps
	opts.MaxOptions = c.MaxOptions
	opts.Restarts = c.Restarts
	opts.Workers = c.Workers
	opts.Seed = seed

	return opts
}
