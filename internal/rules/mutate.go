// Package rules implements the pure word-transformation rules used by candidate generation:
// mutation, affixing and combination. Every function is deterministic and free of side
// effects so it can be called from any goroutine without synchronization.
package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/password-guesser/internal/catalog"
)

// Mutate returns the case, leet, reversal and doubling variants of word in a fixed order.
// Degenerate variants (for example the reverse of a one-letter word) are collapsed.
func Mutate(word string) []string {
	lower := strings.ToLower(word)
	title := Capitalize(lower)
	reversed := Reverse(lower)
	leet := Leet(lower)

	return uniq(
		word,
		lower,
		strings.ToUpper(word),
		title,
		AlternatingCase(lower),
		Reverse(word),
		reversed,
		Capitalize(reversed),
		leet,
		Capitalize(leet),
		word+word,
		lower+lower,
		lower+"_"+lower,
		title+title,
	)
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// AlternatingCase lowers even positions and upper-cases odd positions.
func AlternatingCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for _, r := range s {
		if i%2 == 0 {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(unicode.ToUpper(r))
		}
		i++
	}
	return sb.String()
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Leet applies catalog.LeetMap to every matching rune of s.
func Leet(s string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := catalog.LeetMap[r]; ok {
			return sub
		}
		return r
	}, s)
}

// uniq keeps the first occurrence of each variant, preserving argument order.
func uniq(variants ...string) []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		dup := false
		for _, o := range out {
			if o == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
