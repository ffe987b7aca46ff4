// Package catalog holds the static word and affix lists used by candidate generation.
// Every list is built once at package initialization and must be treated as read-only.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed data/common_passwords.txt
var commonPasswordsFile string

var (
	commonPasswords     = parseLines(commonPasswordsFile)
	keyboardPatterns    = buildKeyboardPatterns()
	numericSuffixes     = buildNumericSuffixes(false)
	fullNumericSuffixes = buildNumericSuffixes(true)
	symbolSuffixes      = dedupe([]string{
		"!", "!!", "!!!", "@", "#", "$", "?", "*", ".",
		"!@#", "!@", "@#", "#$", "!1", "@1", "#1", "1!", "123!",
	})
	prefixes = dedupe([]string{
		"my", "the", "i", "its", "mr", "ms", "im", "iam", "ilove", "ilike",
		"my1", "the1", "super", "mega", "big", "lil",
	})
	comboSuffixes = []string{"123", "!", "1", "12", "1!"}
)

// LeetMap is the single fixed substitution applied by leet-speak mutation.
var LeetMap = map[rune]rune{
	'a': '4',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '5',
	't': '7',
}

// CommonPasswords returns the embedded list of frequently used passwords.
func CommonPasswords() []string { return commonPasswords }

// KeyboardPatterns returns keyboard walks, repeats and digit runs.
func KeyboardPatterns() []string { return keyboardPatterns }

// NumericSuffixes returns the reduced numeric suffix set used for ordinary affixing.
func NumericSuffixes() []string { return numericSuffixes }

// FullNumericSuffixes returns NumericSuffixes plus every four digit year from 1950 to 2026.
func FullNumericSuffixes() []string { return fullNumericSuffixes }

// SymbolSuffixes returns common trailing symbol groups.
func SymbolSuffixes() []string { return symbolSuffixes }

// Prefixes returns common leading words.
func Prefixes() []string { return prefixes }

// ComboSuffixes returns the short suffixes appended to word combinations at deep depth.
func ComboSuffixes() []string { return comboSuffixes }

func parseLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return dedupe(out)
}

func buildNumericSuffixes(full bool) []string {
	var out []string
	for i := 0; i <= 9; i++ {
		out = append(out, fmt.Sprint(i))
	}
	for _, n := range []int{10, 11, 12, 13, 21, 22, 23, 69, 77, 88, 99} {
		out = append(out, fmt.Sprint(n))
	}
	out = append(out, "100", "111", "123", "321", "234", "420", "666", "777", "007", "911")
	for y := 0; y <= 26; y++ {
		out = append(out, fmt.Sprintf("%02d", y))
	}
	if full {
		for y := 1950; y <= 2026; y++ {
			out = append(out, fmt.Sprint(y))
		}
	}
	return dedupe(out)
}

func buildKeyboardPatterns() []string {
	out := []string{
		// rows
		"qwerty", "qwertyuiop", "qwert", "asdfgh", "asdfghjkl", "zxcvbn", "zxcvbnm",
		"qwer", "asdf", "zxcv",
		// diagonals
		"qazwsx", "1qaz2wsx", "1qaz2wsx3edc", "zaq1xsw2", "1q2w3e4r", "1q2w3e4r5t",
		// numpad
		"147258369", "159357", "789456123", "321654987",
		// repeats
		"aaaaaa", "000000", "111111", "222222", "555555", "666666", "777777", "88888888",
		"999999", "112233", "123123", "121212", "131313", "123321",
		// mixed
		"abcdef", "abcdefg", "abcdefgh", "abcd1234", "1234abcd", "asdf1234", "qwerty123",
		"abc123", "123abc", "aaa111", "zzz999",
	}

	const ascending = "1234567890"
	const descending = "9876543210"
	for n := 4; n <= len(ascending); n++ {
		out = append(out, ascending[:n])
	}
	for n := 4; n <= len(descending); n++ {
		out = append(out, descending[:n])
	}
	out = append(out, "0987654321", "0123456789")
	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
