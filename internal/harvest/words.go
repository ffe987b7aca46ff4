package harvest

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultMinWordLength = 3
	DefaultMaxWordLength = 20
	DefaultMaxWords      = 100
	DefaultMaxPages      = 10
)

// noiseSelector matches elements whose text never describes the page owner.
const noiseSelector = "script, style, noscript, template, svg, iframe, nav, .cookie-banner, .popup, .ad, .ads, .advertisement"

// Options configures fetching and word extraction.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Client overrides the HTTP client built from Timeout.
	Client *http.Client

	// UseBrowser enables rendering with headless Chrome when the HTTP response is too thin.
	UseBrowser bool
	// Render replaces WithBrowser.
	Render Renderer

	// SpiderDepth is how many link hops Site follows from a seed page.
	SpiderDepth int
	// MaxPages caps the pages Site harvests per seed.
	MaxPages int

	MinWordLength int
	MaxWordLength int
	MaxWords      int
	Verbose       bool
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.Render == nil {
		out.Render = WithBrowser
	}
	if out.MinWordLength <= 0 {
		out.MinWordLength = DefaultMinWordLength
	}
	if out.MaxWordLength <= 0 {
		out.MaxWordLength = DefaultMaxWordLength
	}
	if out.MaxWords <= 0 {
		out.MaxWords = DefaultMaxWords
	}
	if out.MaxPages <= 0 {
		out.MaxPages = DefaultMaxPages
	}
	if out.SpiderDepth < 0 {
		out.SpiderDepth = 0
	}
	return &out
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true, "you": true,
	"all": true, "any": true, "can": true, "had": true, "her": true, "was": true, "one": true,
	"our": true, "out": true, "has": true, "have": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "old": true, "see": true, "two": true,
	"way": true, "who": true, "did": true, "get": true, "got": true, "let": true, "she": true,
	"too": true, "use": true, "with": true, "this": true, "that": true, "from": true, "they": true,
	"will": true, "would": true, "there": true, "their": true, "what": true, "about": true,
	"which": true, "when": true, "make": true, "like": true, "time": true, "just": true,
	"know": true, "take": true, "into": true, "your": true, "some": true, "could": true,
	"them": true, "than": true, "then": true, "look": true, "only": true, "come": true,
	"over": true, "also": true, "back": true, "after": true, "where": true, "most": true,
	"been": true, "were": true, "more": true, "here": true, "very": true, "much": true,
	"should": true, "these": true, "those": true, "each": true, "such": true, "because": true,
	"while": true, "other": true, "page": true, "home": true, "click": true, "menu": true,
	"cookie": true, "cookies": true, "privacy": true, "policy": true, "login": true,
}

// ExtractWords tokenizes the visible text of an HTML page into lowercase alphabetic words,
// ranked by frequency with ties broken alphabetically.
func ExtractWords(html string, opts *Options) ([]string, error) {
	opts = opts.withDefaults()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	var sb strings.Builder
	sb.WriteString(doc.Find("title").Text())
	sb.WriteByte(' ')
	doc.Find(`meta[name="description"], meta[name="keywords"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			sb.WriteString(content)
			sb.WriteByte(' ')
		}
	})
	doc.Find("img[alt]").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.AttrOr("alt", ""))
		sb.WriteByte(' ')
	})
	sb.WriteString(doc.Find("body").Text())

	return rankWords(sb.String(), opts), nil
}

func rankWords(text string, opts *Options) []string {
	counts := make(map[string]int)
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) {
		word := strings.ToLower(tok)
		n := utf8.RuneCountInString(word)
		if n < opts.MinWordLength || n > opts.MaxWordLength || stopWords[word] {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > opts.MaxWords {
		words = words[:opts.MaxWords]
	}
	return words
}

// visibleText returns the body text of html with noise elements removed.
func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(noiseSelector).Remove()
	return doc.Find("body").Text(), nil
}
