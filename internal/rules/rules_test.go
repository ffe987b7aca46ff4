package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/password-guesser/internal/catalog"
)

func TestMutate_Password(t *testing.T) {
	variants := Mutate("Password")

	for _, want := range []string{
		"password",
		"PASSWORD",
		"Password",
		"p455w0rd",
		"drowssaP",
		"PasswordPassword",
	} {
		assert.Contains(t, variants, want)
	}
	assert.Contains(t, variants, "pAsSwOrD")
	assert.Contains(t, variants, "drowssap")
	assert.Contains(t, variants, "password_password")
}

func TestMutate_Deterministic(t *testing.T) {
	assert.Equal(t, Mutate("buddy"), Mutate("buddy"))
}

func TestMutate_ShortWordCollapsesDuplicates(t *testing.T) {
	assert.Equal(t, []string{"a", "A", "4", "aa", "a_a", "AA"}, Mutate("a"))
}

func TestMutate_NoDuplicates(t *testing.T) {
	for _, w := range []string{"john", "Buddy", "x", "1990", "ÉCOLE"} {
		seen := map[string]bool{}
		for _, v := range Mutate(w) {
			assert.False(t, seen[v], "duplicate %q for %q", v, w)
			seen[v] = true
		}
	}
}

func TestLeet(t *testing.T) {
	tests := map[string]string{
		"password": "p455w0rd",
		"leet":     "l337",
		"tiesto":   "713570",
		"xyz":      "xyz",
	}
	for in, want := range tests {
		assert.Equal(t, want, Leet(in), in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hello"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Élan", Capitalize("élan"))
	assert.Equal(t, "1abc", Capitalize("1abc"))
}

func TestReverse_Unicode(t *testing.T) {
	assert.Equal(t, "ïan", Reverse("naï"))
}

func TestAffix(t *testing.T) {
	numbers := []string{"1990", "0515"}
	got := Affix("john", numbers)

	assert.Contains(t, got, "john1990")
	assert.Contains(t, got, "john0515")
	assert.Contains(t, got, "john123")
	assert.Contains(t, got, "john!")
	assert.Contains(t, got, "john1!")
	assert.Contains(t, got, "myjohn")
	assert.Contains(t, got, "ilovejohn")

	wantLen := len(catalog.NumericSuffixes()) + len(catalog.SymbolSuffixes()) + len(catalog.Prefixes()) + len(numbers)
	assert.Len(t, got, wantLen)
}

func TestAffix_NoProfileNumbers(t *testing.T) {
	got := Affix("x", nil)
	assert.Len(t, got, len(catalog.NumericSuffixes())+len(catalog.SymbolSuffixes())+len(catalog.Prefixes()))
}

func TestAffixWith(t *testing.T) {
	assert.Equal(t, []string{"ab1", "ab2"}, AffixWith("ab", []string{"1", "2"}))
	assert.Empty(t, AffixWith("ab", nil))
}

func TestCombine(t *testing.T) {
	got := Combine("john", "smith")

	for _, want := range []string{
		"johnsmith", "JohnSmith", "Johnsmith",
		"john_smith", "John_Smith", "john.smith",
		"smithjohn", "SmithJohn", "smith_john", "smith.john",
	} {
		assert.Contains(t, got, want)
	}
}

func TestCombine_BothOrders(t *testing.T) {
	ab := Combine("anna", "bob")
	ba := Combine("bob", "anna")
	assert.ElementsMatch(t, ab, ba)
}

func TestCombineNumber(t *testing.T) {
	assert.Equal(t, []string{"1990john", "1990John"}, CombineNumber("John", "1990"))
}
