package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/password-guesser/internal/generator"
	"github.com/jonathan/password-guesser/internal/wordlist"
)

// GenerateResult summarizes a generate run.
type GenerateResult struct {
	OutputPath string
	Written    int
	Seeds      *Seeds
	Stats      generator.Stats
}

// RunGenerate writes the candidate list for the profile to outputPath.
func RunGenerate(ctx context.Context, opts RunOptions, outputPath string) (*GenerateResult, error) {
	if outputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}

	seeds, err := PrepareSeeds(ctx, &opts, 1, 2)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Step 2/2: Generating candidates (depth %s, length %d-%d)...\n",
		opts.Generation.Depth, opts.Generation.MinLength, opts.Generation.MaxLength)
	gen, err := newGenerator(&opts, seeds)
	if err != nil {
		return nil, err
	}

	written, err := wordlist.WriteFile(outputPath, gen.Candidates())
	if err != nil {
		return nil, fmt.Errorf("failed to write wordlist: %w", err)
	}
	stats := gen.Stats()
	for _, w := range stats.Warnings {
		fmt.Printf("Warning: %v\n", w)
	}
	if opts.Verbose {
		printer(&opts).PrintGenerationStats(stats)
	}
	emitProgress(&opts, "generate", CategoryGeneration, fmt.Sprintf("Wrote %d candidates to %s", written, outputPath), stats)

	return &GenerateResult{OutputPath: outputPath, Written: written, Seeds: seeds, Stats: stats}, nil
}
