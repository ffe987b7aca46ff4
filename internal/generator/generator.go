package generator

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/password-guesser/internal/types"
)

// TierStats counts what a single tier contributed to a run.
type TierStats struct {
	Tier              Tier `json:"tier"`
	Raw               int  `json:"raw"`
	Emitted           int  `json:"emitted"`
	RejectedLength    int  `json:"rejected_length"`
	RejectedDuplicate int  `json:"rejected_duplicate"`
	RejectedInvalid   int  `json:"rejected_invalid"`
}

// Stats summarizes the most recent generation pass.
type Stats struct {
	Seeds    int         `json:"seeds"`
	Numbers  int         `json:"numbers"`
	Tiers    []TierStats `json:"tiers"`
	Emitted  int         `json:"emitted"`
	Warnings []error     `json:"-"`
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTierCallback registers fn to be called after each tier finishes.
func WithTierCallback(fn func(TierStats)) Option {
	return func(g *Generator) {
		g.onTier = fn
	}
}

// Generator runs the tiered candidate pipeline for one seed set and config.
// A Generator is not safe for concurrent passes; each call to Candidates starts
// a fresh pass with its own dedup set.
type Generator struct {
	cfg     types.GenerationConfig
	seeds   []string
	numbers []string
	onTier  func(TierStats)
	stats   Stats
}

// New validates cfg and prepares a generator. Seeds and numbers are processed in the order
// given; blanks and repeats are dropped.
func New(cfg types.GenerationConfig, seeds, numbers []string, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:     cfg,
		seeds:   orderedUnique(seeds),
		numbers: orderedUnique(numbers),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generation config.
func (g *Generator) Config() types.GenerationConfig {
	return g.cfg
}

// Seeds returns the effective seed words in processing order.
func (g *Generator) Seeds() []string {
	return g.seeds
}

// Tiers returns the tiers that run at the configured depth.
func (g *Generator) Tiers() []Tier {
	var out []Tier
	for t := TierCommon; int(t) <= g.cfg.Depth.MaxTier(); t++ {
		out = append(out, t)
	}
	return out
}

// Candidates returns a single-use sequence over the run's candidates. Every yielded string
// satisfies the configured length bounds and appears at most once per pass.
func (g *Generator) Candidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		g.run(yield)
	}
}

// Collect runs a full pass and returns every candidate in emission order.
func (g *Generator) Collect() []string {
	var out []string
	for c := range g.Candidates() {
		out = append(out, c)
	}
	return out
}

// Stats returns the statistics of the last pass.
func (g *Generator) Stats() Stats {
	return g.stats
}

func (g *Generator) run(yield func(string) bool) {
	g.stats = Stats{Seeds: len(g.seeds), Numbers: len(g.numbers)}
	if len(g.seeds) == 0 {
		g.stats.Warnings = append(g.stats.Warnings, ErrEmptySeedSet)
	}

	seen := make(map[string]struct{})
	for _, tier := range g.Tiers() {
		if tier.seedDependent() && len(g.seeds) == 0 {
			continue
		}

		ts := TierStats{Tier: tier}
		stopped := !g.produce(tier, func(raw string) bool {
			ts.Raw++
			if strings.ContainsAny(raw, "\r\n") {
				ts.RejectedInvalid++
				return true
			}
			n := utf8.RuneCountInString(raw)
			if n < g.cfg.MinLength || n > g.cfg.MaxLength {
				ts.RejectedLength++
				return true
			}
			if _, dup := seen[raw]; dup {
				ts.RejectedDuplicate++
				return true
			}
			seen[raw] = struct{}{}
			ts.Emitted++
			g.stats.Emitted++
			return yield(raw)
		})

		g.stats.Tiers = append(g.stats.Tiers, ts)
		if g.onTier != nil {
			g.onTier(ts)
		}
		if stopped {
			return
		}
	}
}

func orderedUnique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
