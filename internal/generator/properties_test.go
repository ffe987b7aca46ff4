package generator

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"

	"github.com/jonathan/password-guesser/internal/types"
)

type genInput struct {
	seeds   []string
	numbers []string
	cfg     types.GenerationConfig
}

func drawInput(t *rapid.T) genInput {
	minLen := rapid.IntRange(1, 12).Draw(t, "min_length")
	return genInput{
		seeds:   rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z]{1,7}`), 0, 3).Draw(t, "seeds"),
		numbers: rapid.SliceOfN(rapid.StringMatching(`[0-9]{2,4}`), 0, 2).Draw(t, "numbers"),
		cfg: types.GenerationConfig{
			Depth:     rapid.SampledFrom([]types.Depth{types.DepthFast, types.DepthMedium, types.DepthDeep}).Draw(t, "depth"),
			MinLength: minLen,
			MaxLength: minLen + rapid.IntRange(0, 20).Draw(t, "span"),
		},
	}
}

func collect(t *rapid.T, in genInput, depth types.Depth) []string {
	cfg := in.cfg
	cfg.Depth = depth
	g, err := New(cfg, in.seeds, in.numbers)
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return g.Collect()
}

func TestProperty_LengthAndUniqueness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		seen := make(map[string]bool)
		for _, c := range collect(t, in, in.cfg.Depth) {
			n := utf8.RuneCountInString(c)
			if n < in.cfg.MinLength || n > in.cfg.MaxLength {
				t.Fatalf("candidate %q has length %d outside [%d, %d]", c, n, in.cfg.MinLength, in.cfg.MaxLength)
			}
			if seen[c] {
				t.Fatalf("candidate %q emitted twice", c)
			}
			seen[c] = true
		}
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		first := collect(t, in, in.cfg.Depth)
		second := collect(t, in, in.cfg.Depth)
		if len(first) != len(second) {
			t.Fatalf("run sizes differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("runs diverge at %d: %q vs %q", i, first[i], second[i])
			}
		}
	})
}

func TestProperty_DepthMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		fast := collect(t, in, types.DepthFast)
		medium := asSet(collect(t, in, types.DepthMedium))
		deep := asSet(collect(t, in, types.DepthDeep))

		for _, c := range fast {
			if !medium[c] {
				t.Fatalf("fast candidate %q missing at medium depth", c)
			}
		}
		for c := range medium {
			if !deep[c] {
				t.Fatalf("medium candidate %q missing at deep depth", c)
			}
		}
	})
}
