package profile

import (
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/password-guesser/internal/types"
)

// SeedWords returns the lowercased seed vocabulary of p in extraction order, without duplicates.
// Multi-part values also contribute each of their space, hyphen or underscore separated parts.
func SeedWords(p *types.Profile) []string {
	var s seedSet

	s.addWord(p.Personal.FirstName)
	s.addWord(p.Personal.LastName)
	s.addWord(p.Personal.Nickname)
	s.addWord(p.Personal.PartnerName)
	s.addWord(p.Personal.PetName)
	for _, name := range p.Personal.ChildrenNames {
		s.addWord(name)
	}

	s.addWord(p.Network.SSID)
	s.addWord(p.Network.RouterBrand)
	s.addWord(p.Network.ISP)

	s.addWord(p.Interests.FavoriteTeam)
	s.addWord(p.Interests.FavoriteBand)
	for _, h := range p.Interests.Hobbies {
		s.addWord(h)
	}
	s.addWord(p.Interests.FavoriteColor)

	for _, w := range p.Custom.Words {
		s.addWord(w)
	}
	return s.list
}

// SeedNumbers returns the numeric fragments of p: birthdate decompositions, phone digits,
// the favorite number and custom numbers, in that order and without duplicates.
func SeedNumbers(p *types.Profile) []string {
	var s seedSet

	for _, frag := range DecomposeDate(p.Personal.Birthdate) {
		s.add(frag)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, p.Personal.Phone)
	if digits != "" {
		s.add(digits)
		if len(digits) >= 4 {
			s.add(digits[len(digits)-4:])
		}
	}

	s.add(strings.TrimSpace(p.Interests.FavoriteNumber))
	for _, n := range p.Custom.Numbers {
		s.add(strings.TrimSpace(n))
	}
	return s.list
}

// DecomposeDate splits a YYYY-MM-DD date into the fragments people put in passwords:
// YYYY, YY, MM, DD, MMDD, DDMM, MMDDYYYY, DDMMYYYY, MMDDYY and DDMMYY.
// Anything that is not a valid calendar date in that layout yields nil.
func DecomposeDate(date string) []string {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return nil
	}
	year := parsed.Format("2006")
	short := parsed.Format("06")
	month := parsed.Format("01")
	day := parsed.Format("02")

	return []string{
		year,
		short,
		month,
		day,
		month + day,
		day + month,
		month + day + year,
		day + month + year,
		month + day + short,
		day + month + short,
	}
}

type seedSet struct {
	list []string
	seen map[string]bool
}

func (s *seedSet) add(v string) {
	if v == "" || s.seen[v] {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	s.seen[v] = true
	s.list = append(s.list, v)
}

func (s *seedSet) addWord(raw string) {
	whole := strings.ToLower(strings.TrimSpace(raw))
	if whole == "" {
		return
	}
	s.add(whole)
	parts := strings.FieldsFunc(whole, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	if len(parts) > 1 {
		for _, part := range parts {
			s.add(part)
		}
	}
}
