// Package config holds the run parameter surface and its defaults. Flags win
// over environment variables, which win over an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Joe-Costa/ClusterPopulator/internal/plan"
)

// Defaults applied when neither flag, env, nor config file say otherwise.
const (
	DefaultOut         = "./test_data"
	DefaultCount       = 100
	DefaultDepth       = 2
	DefaultConcurrency = 10
)

// Params is the full invocation surface, populated by the CLI layer and
// consumed read-only by the core.
type Params struct {
	OutputPath   string
	Count        int
	Depth        int
	Seed         int64
	SeedSet      bool
	Concurrency  int
	Preview      bool
	Windows      bool
	NoTimestamps bool
	Quiet        bool
}

// Validate rejects bad parameters before any side effect.
func (p *Params) Validate() error {
	if p.OutputPath == "" {
		return fmt.Errorf("%w: output path must not be empty", plan.ErrArgument)
	}
	if err := plan.ValidateShape(p.Count, p.Depth); err != nil {
		return err
	}
	if p.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", plan.ErrArgument, p.Concurrency)
	}
	if info, err := os.Stat(p.OutputPath); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s exists and is not a directory", plan.ErrArgument, p.OutputPath)
	}
	return nil
}

// Load builds the defaults store: optional $HOME/.populator.yaml merged with
// POPULATOR_* environment variables.
func Load() *viper.Viper {
	v := viper.New()
	v.SetDefault("out", DefaultOut)
	v.SetDefault("count", DefaultCount)
	v.SetDefault("depth", DefaultDepth)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("windows", false)
	v.SetDefault("timestamps", true)
	v.SetDefault("quiet", false)

	v.SetEnvPrefix("POPULATOR")
	v.AutomaticEnv()

	v.SetConfigName(".populator")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	// A missing config file is the normal case; anything else is surfaced
	// but not fatal, defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: ignoring config file: %v\n", err)
		}
	}
	return v
}
