package rules

import "github.com/jonathan/password-guesser/internal/catalog"

// Affix appends the reduced numeric suffixes, the symbol suffixes and every profile number to
// word, and prepends the common prefixes. It yields exactly one variant per catalog entry.
func Affix(word string, profileNumbers []string) []string {
	numeric := catalog.NumericSuffixes()
	symbols := catalog.SymbolSuffixes()
	prefixes := catalog.Prefixes()

	out := make([]string, 0, len(numeric)+len(symbols)+len(prefixes)+len(profileNumbers))
	for _, s := range numeric {
		out = append(out, word+s)
	}
	for _, s := range symbols {
		out = append(out, word+s)
	}
	for _, p := range prefixes {
		out = append(out, p+word)
	}
	for _, n := range profileNumbers {
		out = append(out, word+n)
	}
	return out
}

// AffixWith appends each of suffixes to word.
func AffixWith(word string, suffixes []string) []string {
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, word+s)
	}
	return out
}
