package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertUnique(t *testing.T, name string, list []string) {
	t.Helper()
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		assert.False(t, seen[s], "%s contains duplicate %q", name, s)
		assert.NotEmpty(t, s, "%s contains an empty entry", name)
		seen[s] = true
	}
}

func TestCatalogs_NoDuplicates(t *testing.T) {
	assertUnique(t, "common passwords", CommonPasswords())
	assertUnique(t, "keyboard patterns", KeyboardPatterns())
	assertUnique(t, "numeric suffixes", NumericSuffixes())
	assertUnique(t, "full numeric suffixes", FullNumericSuffixes())
	assertUnique(t, "symbol suffixes", SymbolSuffixes())
	assertUnique(t, "prefixes", Prefixes())
}

func TestCommonPasswords_Embedded(t *testing.T) {
	list := CommonPasswords()
	assert.Greater(t, len(list), 200)
	assert.Contains(t, list, "password")
	assert.Contains(t, list, "123456")
	assert.Equal(t, "123456", list[0], "file order is preserved")
}

func TestNumericSuffixes_FullIsSuperset(t *testing.T) {
	full := make(map[string]bool)
	for _, s := range FullNumericSuffixes() {
		full[s] = true
	}
	for _, s := range NumericSuffixes() {
		assert.True(t, full[s], "full catalog misses %q", s)
	}

	assert.NotContains(t, NumericSuffixes(), "1990")
	assert.Contains(t, FullNumericSuffixes(), "1950")
	assert.Contains(t, FullNumericSuffixes(), "2026")
	assert.Contains(t, NumericSuffixes(), "07")
	assert.Contains(t, NumericSuffixes(), "007")
	assert.Len(t, FullNumericSuffixes(), len(NumericSuffixes())+77)
}

func TestKeyboardPatterns_DigitRuns(t *testing.T) {
	patterns := KeyboardPatterns()
	for _, want := range []string{"1234", "123456789", "1234567890", "9876", "9876543210", "0987654321", "qwerty", "asdf1234"} {
		assert.Contains(t, patterns, want)
	}
}

func TestLeetMap(t *testing.T) {
	assert.Equal(t, '4', LeetMap['a'])
	assert.Equal(t, '3', LeetMap['e'])
	assert.Equal(t, '1', LeetMap['i'])
	assert.Equal(t, '0', LeetMap['o'])
	assert.Equal(t, '5', LeetMap['s'])
	assert.Equal(t, '7', LeetMap['t'])
	assert.Len(t, LeetMap, 6)
}
