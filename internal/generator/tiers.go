package generator

import (
	"github.com/jonathan/password-guesser/internal/catalog"
	"github.com/jonathan/password-guesser/internal/rules"
)

// Tier identifies one stage of the generation pipeline. Tiers always run in ascending order.
type Tier int

const (
	TierCommon Tier = iota + 1
	TierMutated
	TierAffixed
	TierCombined
	TierKeyboard
	TierDeep
)

var tierNames = map[Tier]string{
	TierCommon:   "common passwords",
	TierMutated:  "mutated seeds",
	TierAffixed:  "affixed seeds",
	TierCombined: "word combinations",
	TierKeyboard: "keyboard patterns",
	TierDeep:     "deep mutations",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown tier"
}

// seedDependent reports whether the tier produces nothing without seed words.
func (t Tier) seedDependent() bool {
	switch t {
	case TierMutated, TierAffixed, TierCombined, TierDeep:
		return true
	default:
		return false
	}
}

// emitFunc receives raw strings; it returns false when generation must stop.
type emitFunc func(string) bool

func emitAll(emit emitFunc, words []string) bool {
	for _, w := range words {
		if !emit(w) {
			return false
		}
	}
	return true
}

// produce runs tier t, feeding its raw output to emit.
func (g *Generator) produce(t Tier, emit emitFunc) bool {
	switch t {
	case TierCommon:
		return emitAll(emit, catalog.CommonPasswords())
	case TierMutated:
		return g.mutatedTier(emit)
	case TierAffixed:
		return g.affixedTier(emit)
	case TierCombined:
		return g.combinedTier(emit)
	case TierKeyboard:
		return emitAll(emit, catalog.KeyboardPatterns())
	case TierDeep:
		return g.deepTier(emit)
	}
	return true
}

func (g *Generator) mutatedTier(emit emitFunc) bool {
	for _, seed := range g.seeds {
		if !emitAll(emit, rules.Mutate(seed)) {
			return false
		}
	}
	return true
}

func (g *Generator) affixedTier(emit emitFunc) bool {
	for _, seed := range g.seeds {
		for _, m := range rules.Mutate(seed) {
			if !emitAll(emit, rules.Affix(m, g.numbers)) {
				return false
			}
		}
	}
	return emitAll(emit, g.numbers)
}

func (g *Generator) combinedTier(emit emitFunc) bool {
	ok := g.eachPair(func(a, b string) bool {
		return emitAll(emit, rules.Combine(a, b))
	})
	if !ok {
		return false
	}
	for _, seed := range g.seeds {
		for _, n := range g.numbers {
			if !emitAll(emit, rules.CombineNumber(seed, n)) {
				return false
			}
		}
	}
	return true
}

func (g *Generator) deepTier(emit emitFunc) bool {
	ok := g.eachPair(func(a, b string) bool {
		for _, c := range rules.Combine(a, b) {
			if !emitAll(emit, rules.Mutate(c)) {
				return false
			}
			if !emitAll(emit, rules.AffixWith(c, catalog.ComboSuffixes())) {
				return false
			}
		}
		return true
	})
	if !ok {
		return false
	}
	for _, seed := range g.seeds {
		for _, n := range g.numbers {
			for _, c := range rules.CombineNumber(seed, n) {
				if !emitAll(emit, rules.Mutate(c)) {
					return false
				}
			}
		}
	}

	full := catalog.FullNumericSuffixes()
	for _, seed := range g.seeds {
		for _, m := range rules.Mutate(seed) {
			if !emitAll(emit, rules.AffixWith(m, full)) {
				return false
			}
		}
	}
	return true
}

// eachPair visits every unordered pair of distinct seeds in insertion order.
func (g *Generator) eachPair(fn func(a, b string) bool) bool {
	for i, a := range g.seeds {
		for _, b := range g.seeds[i+1:] {
			if !fn(a, b) {
				return false
			}
		}
	}
	return true
}
