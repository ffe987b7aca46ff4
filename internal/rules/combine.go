package rules

import "strings"

// Combine joins two seed words in both orders: plain, title-cased, underscore and dot separated.
func Combine(a, b string) []string {
	al, bl := strings.ToLower(a), strings.ToLower(b)
	at, bt := Capitalize(al), Capitalize(bl)

	return uniq(
		al+bl,
		at+bt,
		at+bl,
		al+"_"+bl,
		at+"_"+bt,
		al+"."+bl,
		bl+al,
		bt+at,
		bt+al,
		bl+"_"+al,
		bt+"_"+at,
		bl+"."+al,
	)
}

// CombineNumber prepends a profile number to a word in lower and title case.
func CombineNumber(word, number string) []string {
	lower := strings.ToLower(word)
	return uniq(
		number+lower,
		number+Capitalize(lower),
	)
}
