package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/jonathan/password-guesser/internal/cracker"
	"github.com/jonathan/password-guesser/internal/db"
	"github.com/jonathan/password-guesser/internal/generator"
	"github.com/jonathan/password-guesser/internal/types"
	"github.com/jonathan/password-guesser/internal/wordlist"
)

// CrackOutcome summarizes a crack-hash run.
type CrackOutcome struct {
	Results    []types.CrackResult
	Candidates int64
	SessionID  uuid.UUID
	Stats      *generator.Stats
}

// Found counts the targets that were recovered.
func (o *CrackOutcome) Found() int {
	n := 0
	for _, r := range o.Results {
		if r.Found() {
			n++
		}
	}
	return n
}

// RunCrackHash recovers targets from a wordlist file when wordlistPath is set, and from the
// profile's generated candidates otherwise. Targets already in the potfile are answered from
// it and never reach the matcher.
func RunCrackHash(ctx context.Context, opts RunOptions, targets []types.CrackTarget, wordlistPath string) (*CrackOutcome, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("no target hashes given")
	}

	pot, closePot := openPotfile(ctx, &opts)
	defer closePot()

	// Step 1: candidate source
	var candidates iter.Seq[string]
	var gen *generator.Generator
	if wordlistPath != "" {
		fmt.Printf("Step 1/4: Reading wordlist %s...\n", wordlistPath)
		words, err := wordlist.ReadFile(wordlistPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read wordlist: %w", err)
		}
		candidates = slices.Values(words)
		emitProgress(&opts, "load_wordlist", CategoryCracking, fmt.Sprintf("Loaded %d candidates", len(words)), nil)
	} else {
		seeds, err := PrepareSeeds(ctx, &opts, 1, 4)
		if err != nil {
			return nil, err
		}
		gen, err = newGenerator(&opts, seeds)
		if err != nil {
			return nil, err
		}
		candidates = gen.Candidates()
	}

	// Step 2: potfile
	results := make([]types.CrackResult, len(targets))
	pending := make([]int, 0, len(targets))
	known := map[int]db.CrackedHash{}
	if pot != nil {
		fmt.Printf("Step 2/4: Checking potfile...\n")
		var err error
		known, err = pot.LookupCracked(ctx, targets)
		if err != nil {
			log.Printf("[CRACK] Potfile lookup failed, cracking everything: %v", err)
			known = map[int]db.CrackedHash{}
		}
		emitProgress(&opts, "potfile", CategoryCracking, fmt.Sprintf("%d target(s) already cracked", len(known)), nil)
	}
	for i, t := range targets {
		if c, ok := known[i]; ok {
			results[i] = c.Result(t)
			continue
		}
		pending = append(pending, i)
	}

	var sessionID uuid.UUID
	if pot != nil && len(pending) > 0 {
		id, err := pot.CreateSession(ctx, opts.Generation.Depth, len(pending))
		if err != nil {
			log.Printf("[CRACK] Failed to record session: %v", err)
		} else {
			sessionID = id
		}
	}

	// Step 3: crack what is left
	var pulled int64
	var crackErr error
	if len(pending) > 0 {
		n := workers(&opts)
		m := cracker.NewMatcher(cracker.Options{
			Workers:   n,
			ChunkSize: opts.ChunkSize,
			OnProgress: func(p cracker.Progress) {
				emitProgress(&opts, "crack", CategoryCracking,
					fmt.Sprintf("%d candidates tested, %d/%d resolved", p.Tested, p.Resolved, p.Total), p)
			},
		})
		fmt.Printf("Step 3/4: Cracking %d hash(es) with %d worker(s)...\n", len(pending), m.Workers())

		subset := make([]types.CrackTarget, len(pending))
		for j, i := range pending {
			subset[j] = targets[i]
		}
		var sub []types.CrackResult
		sub, crackErr = m.Crack(ctx, counted(candidates, &pulled), subset)
		for j, i := range pending {
			results[i] = sub[j]
		}
	} else {
		fmt.Printf("Step 3/4: All targets answered from potfile, nothing to crack\n")
	}

	outcome := &CrackOutcome{Results: results, Candidates: pulled, SessionID: sessionID}
	if gen != nil {
		stats := gen.Stats()
		outcome.Stats = &stats
	}

	// Step 4: persist
	if pot != nil && sessionID != uuid.Nil {
		fmt.Printf("Step 4/4: Saving results to potfile...\n")
		saveResults(ctx, pot, sessionID, outcome, crackErr)
	} else {
		fmt.Printf("Step 4/4: Done\n")
	}

	if opts.Verbose {
		if outcome.Stats != nil {
			printer(&opts).PrintGenerationStats(*outcome.Stats)
		}
		printer(&opts).PrintCrackResults(results)
	}
	emitProgress(&opts, "done", CategoryCracking, fmt.Sprintf("Cracked %d/%d", outcome.Found(), len(results)), results)

	if crackErr != nil {
		return outcome, fmt.Errorf("cracking interrupted: %w", crackErr)
	}
	return outcome, nil
}

func saveResults(ctx context.Context, pot Potfile, sessionID uuid.UUID, outcome *CrackOutcome, crackErr error) {
	// results are worth keeping even when the run was cancelled
	saveCtx := context.WithoutCancel(ctx)
	found := 0
	for _, r := range outcome.Results {
		if !r.Found() || r.FromPotfile {
			continue
		}
		found++
		if err := pot.SaveResult(saveCtx, sessionID, r); err != nil {
			log.Printf("[CRACK] Failed to save %s: %v", r.Target, err)
		}
	}

	status := db.StatusCompleted
	if crackErr != nil {
		status = db.StatusFailed
		if errors.Is(crackErr, context.Canceled) || errors.Is(crackErr, context.DeadlineExceeded) {
			status = db.StatusCancelled
		}
	}
	if err := pot.CompleteSession(saveCtx, sessionID, outcome.Candidates, found, status); err != nil {
		log.Printf("[CRACK] Failed to complete session: %v", err)
	}
}

// openPotfile returns the injected potfile, or connects to DatabaseURL. A database that cannot
// be reached is reported and the run continues without persistence.
func openPotfile(ctx context.Context, opts *RunOptions) (Potfile, func()) {
	if opts.Potfile != nil {
		return opts.Potfile, func() {}
	}
	if opts.DatabaseURL == "" {
		return nil, func() {}
	}

	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: Failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without potfile...\n")
		return nil, func() {}
	}
	if err := database.Migrate(ctx); err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Printf("Continuing without potfile...\n")
		database.Close()
		return nil, func() {}
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Connected to potfile database\n")
	}
	return database, database.Close
}
