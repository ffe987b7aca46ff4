// Package pipeline provides the high-level orchestration of profile loading, candidate
// generation and cracking.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/password-guesser/internal/config"
	"github.com/jonathan/password-guesser/internal/db"
	"github.com/jonathan/password-guesser/internal/generator"
	"github.com/jonathan/password-guesser/internal/harvest"
	"github.com/jonathan/password-guesser/internal/observability"
	"github.com/jonathan/password-guesser/internal/profile"
	"github.com/jonathan/password-guesser/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step categories
const (
	CategoryGeneration = "generation"
	CategoryCracking   = "cracking"
)

// Potfile is the persistence the crack pipeline needs; *db.DB implements it.
type Potfile interface {
	LookupCracked(ctx context.Context, targets []types.CrackTarget) (map[int]db.CrackedHash, error)
	CreateSession(ctx context.Context, depth types.Depth, targetCount int) (uuid.UUID, error)
	SaveResult(ctx context.Context, sessionID uuid.UUID, res types.CrackResult) error
	CompleteSession(ctx context.Context, id uuid.UUID, candidates int64, found int, status string) error
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ProfilePath string
	Profile     *types.Profile // Direct data injection; takes precedence over ProfilePath
	Generation  types.GenerationConfig
	Workers     int
	ChunkSize   int
	UseBrowser  bool
	Verbose     bool
	DatabaseURL string
	Potfile     Potfile          // Overrides DatabaseURL when set
	Harvest     *harvest.Options // Base harvest options; UseBrowser and Verbose are applied on top
	Out         io.Writer        // Verbose box output; defaults to stdout
	OnProgress  ProgressCallback
}

// Seeds is the vocabulary a generation run starts from.
type Seeds struct {
	Words     []string
	Numbers   []string
	Harvested int
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

func printer(opts *RunOptions) *observability.Printer {
	if opts.Out != nil {
		return observability.NewPrinter(opts.Out)
	}
	return observability.NewPrinter(os.Stdout)
}

// loadProfile returns the injected profile, the file at ProfilePath, or nil if neither is set.
func loadProfile(opts *RunOptions) (*types.Profile, error) {
	if opts.Profile != nil {
		return opts.Profile, nil
	}
	if opts.ProfilePath == "" {
		return nil, nil
	}
	return profile.Load(opts.ProfilePath)
}

// PrepareSeeds loads the profile and harvests its URLs. Harvested words follow the profile's
// own words, in URL order.
func PrepareSeeds(ctx context.Context, opts *RunOptions, step, total int) (*Seeds, error) {
	fmt.Printf("Step %d/%d: Loading profile...\n", step, total)
	p, err := loadProfile(opts)
	if err != nil {
		return nil, fmt.Errorf("profile loading failed: %w", err)
	}
	seeds := &Seeds{}
	if p == nil {
		emitProgress(opts, "load_profile", CategoryGeneration, "No profile given; using generic candidates only", nil)
		return seeds, nil
	}
	seeds.Words = profile.SeedWords(p)
	seeds.Numbers = profile.SeedNumbers(p)
	emitProgress(opts, "load_profile", CategoryGeneration,
		fmt.Sprintf("Extracted %d seed words and %d numbers", len(seeds.Words), len(seeds.Numbers)), seeds)

	if len(p.Harvest.URLs) > 0 {
		fmt.Printf("Step %da/%d: Harvesting words from %d page(s)...\n", step, total, len(p.Harvest.URLs))
		hopts := harvest.Options{}
		if opts.Harvest != nil {
			hopts = *opts.Harvest
		}
		hopts.UseBrowser = hopts.UseBrowser || opts.UseBrowser || p.Harvest.UseBrowser
		hopts.Verbose = hopts.Verbose || opts.Verbose
		if p.Harvest.MaxWords > 0 {
			hopts.MaxWords = p.Harvest.MaxWords
		}
		if p.Harvest.SpiderDepth > 0 {
			hopts.SpiderDepth = p.Harvest.SpiderDepth
		}

		results, err := harvest.All(ctx, p.Harvest.URLs, &hopts)
		if err != nil {
			return nil, fmt.Errorf("harvest failed: %w", err)
		}
		words := harvest.Words(results)
		before := len(seeds.Words)
		seeds.Words = appendUnique(seeds.Words, words)
		seeds.Harvested = len(seeds.Words) - before
		emitProgress(opts, "harvest", CategoryGeneration, fmt.Sprintf("Harvested %d new seed words", seeds.Harvested), results)
	}

	if opts.Verbose {
		printer(opts).PrintSeeds(seeds.Words, seeds.Numbers)
	}
	return seeds, nil
}

// newGenerator builds the generator for seeds and reports each finished tier.
func newGenerator(opts *RunOptions, seeds *Seeds) (*generator.Generator, error) {
	return generator.New(opts.Generation, seeds.Words, seeds.Numbers,
		generator.WithTierCallback(func(ts generator.TierStats) {
			emitProgress(opts, "generate", CategoryGeneration,
				fmt.Sprintf("Tier %d (%s): %d candidates", int(ts.Tier), ts.Tier, ts.Emitted), ts)
		}),
	)
}

// workers resolves the pool size: explicit option, then MAX_WORKERS, then the matcher default.
func workers(opts *RunOptions) int {
	if opts.Workers > 0 {
		return opts.Workers
	}
	n, err := config.WorkersFromEnv()
	if err != nil {
		log.Printf("[CRACK] Ignoring %v", err)
		return 0
	}
	return n
}

// counted wraps seq and counts how many values the consumer pulled.
func counted(seq iter.Seq[string], n *int64) iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range seq {
			*n++
			if !yield(v) {
				return
			}
		}
	}
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, w := range dst {
		seen[w] = true
	}
	for _, w := range src {
		if !seen[w] {
			seen[w] = true
			dst = append(dst, w)
		}
	}
	return dst
}
