package harvest

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

// MinContentLength is the minimum extracted text length for an HTTP fetch to count as usable.
// Shorter pages are most likely rendered client-side.
const MinContentLength = 500

// Result is the word harvest of one page.
type Result struct {
	URL      string
	Words    []string
	Rendered bool
}

// URL fetches one page and extracts its ranked words. With UseBrowser set, a page whose
// HTTP response fails or is too thin is rendered in headless Chrome instead.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	opts = opts.withDefaults()
	res, _, err := harvestPage(ctx, urlStr, opts)
	return res, err
}

// Site harvests seed and, up to opts.SpiderDepth link hops away, the pages of the same host it
// links to. Pages are visited breadth first and at most opts.MaxPages are harvested. Only a
// failure of the seed page itself is returned as an error.
func Site(ctx context.Context, seed string, opts *Options) ([]Result, error) {
	opts = opts.withDefaults()

	seen := map[string]bool{strings.TrimSuffix(seed, "/"): true}
	frontier := []string{seed}
	var results []Result

	for depth := 0; depth <= opts.SpiderDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, u := range frontier {
			if len(results) >= opts.MaxPages {
				return results, nil
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			res, html, err := harvestPage(ctx, u, opts)
			if err != nil {
				if u == seed {
					return nil, err
				}
				log.Printf("[HARVEST] Skipping linked page %s: %v", u, err)
				continue
			}
			results = append(results, *res)
			if depth == opts.SpiderDepth {
				continue
			}

			links, err := ExtractLinks(html, u)
			if err != nil {
				continue
			}
			for _, l := range links {
				if !seen[l] {
					seen[l] = true
					next = append(next, l)
				}
			}
		}
		frontier = next
	}
	return results, nil
}

// All harvests each of urls with Site, concurrently, and returns the results grouped in input
// order. A seed that fails is logged and yields an empty result rather than aborting the others.
func All(ctx context.Context, urls []string, opts *Options) ([]Result, error) {
	perSeed := make([][]Result, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, u := range urls {
		perSeed[i] = []Result{{URL: u}}
		g.Go(func() error {
			res, err := Site(gctx, u, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Printf("[HARVEST] Skipping %s: %v", u, err)
				return nil
			}
			if len(res) > 0 {
				perSeed[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	var results []Result
	for _, res := range perSeed {
		results = append(results, res...)
	}
	return results, nil
}

// harvestPage loads one page and extracts its words. It also returns the HTML the words came
// from so callers can follow its links. opts must already carry defaults.
func harvestPage(ctx context.Context, urlStr string, opts *Options) (*Result, string, error) {
	page, fetchErr := Fetch(ctx, urlStr, opts)
	html := ""
	if fetchErr == nil {
		html = page.HTML
	}
	rendered := false

	if opts.UseBrowser && (fetchErr != nil || tooThin(html)) {
		if opts.Verbose {
			log.Printf("[HARVEST] Falling back to browser rendering for %s", urlStr)
		}
		out, err := opts.Render(ctx, urlStr, opts.Timeout, opts.Verbose)
		switch {
		case err == nil:
			html, rendered = out, true
		case fetchErr != nil:
			return nil, "", fetchErr
		default:
			log.Printf("[HARVEST] Browser rendering failed for %s, using HTTP content: %v", urlStr, err)
		}
	} else if fetchErr != nil {
		return nil, "", fetchErr
	}

	words, err := ExtractWords(html, opts)
	if err != nil {
		return nil, "", &Error{URL: urlStr, Message: "failed to extract words", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[HARVEST] %s: %d words", urlStr, len(words))
	}
	return &Result{URL: urlStr, Words: words, Rendered: rendered}, html, nil
}

// Words flattens results into a single list in URL order, dropping duplicates.
func Words(results []Result) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range results {
		for _, w := range r.Words {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

func tooThin(html string) bool {
	text, err := visibleText(html)
	if err != nil {
		return true
	}
	return len(strings.TrimSpace(text)) < MinContentLength
}
