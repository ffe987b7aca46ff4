package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/config"
	"github.com/jonathan/password-guesser/internal/pipeline"
	"github.com/jonathan/password-guesser/internal/types"
)

// generationFlags are shared by every command that builds candidates from a profile.
type generationFlags struct {
	profile    string
	depth      string
	minLength  int
	maxLength  int
	useBrowser bool
	verbose    bool
}

func (f *generationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "Path to target profile (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&f.depth, "depth", "d", "", "Generation depth: 1-3 or fast, medium, deep (default medium)")
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "Shortest candidate to emit (default 6)")
	cmd.Flags().IntVar(&f.maxLength, "max-length", 0, "Longest candidate to emit (default 32)")
	cmd.Flags().BoolVar(&f.useBrowser, "use-browser", false, "Render harvest URLs in headless Chrome when plain HTTP is not enough")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolve loads --config, applies the flags that were set explicitly and fills the rest from the
// environment.
func (f *generationFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if f.verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("depth") {
		cfg.Depth = f.depth
	}
	if cmd.Flags().Changed("min-length") {
		if f.minLength <= 0 {
			return cfg, &types.InvalidConfigError{Message: fmt.Sprintf("--min-length must be positive, got %d", f.minLength)}
		}
		cfg.MinLength = f.minLength
	}
	if cmd.Flags().Changed("max-length") {
		if f.maxLength <= 0 {
			return cfg, &types.InvalidConfigError{Message: fmt.Sprintf("--max-length must be positive, got %d", f.maxLength)}
		}
		cfg.MaxLength = f.maxLength
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = f.useBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{DatabaseURL: config.DatabaseURLFromEnv()})
	return cfg, cfg.Validate()
}

// runOptions turns a resolved config into pipeline options.
func (f *generationFlags) runOptions(cfg config.Config) (pipeline.RunOptions, error) {
	gen, err := cfg.GenerationConfig()
	if err != nil {
		return pipeline.RunOptions{}, err
	}
	return pipeline.RunOptions{
		ProfilePath: f.profile,
		Generation:  gen,
		Workers:     cfg.Workers,
		ChunkSize:   cfg.ChunkSize,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	}, nil
}
