package transparency

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LocateFiles fetches the retailer's listing page and returns the distinct
// set of currently published price-file URLs, resolved to absolute form.
//
// Full-catalog files ("PriceFull...") supersede incremental ones: if any
// full-catalog URL is present, the incremental URLs are discarded entirely.
// Callers treat an error (or an empty result) as a degraded-but-normal
// outcome, never a crawl abort.
func (c *Client) LocateFiles(ctx context.Context) ([]string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing page returned status %d", resp.StatusCode)
	}

	base, err := url.Parse(c.listingURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing URL: %w", err)
	}

	links := extractLinks(resp.Body, base)
	located := selectPriceFiles(links)

	if c.debug {
		log.Printf("[LOCATE] %d links on listing page, %d price files selected", len(links), len(located))
	}

	return located, nil
}

// extractLinks walks the page's anchor tags and returns their hrefs
// resolved against the listing URL. Malformed hrefs are skipped.
func extractLinks(body io.Reader, base *url.URL) []string {
	var links []string

	z := html.NewTokenizer(body)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a parse error; either way we keep what we have.
			return links
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		token := z.Token()
		if token.DataAtom != atom.A {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key != "href" || attr.Val == "" {
				continue
			}
			ref, err := url.Parse(strings.TrimSpace(attr.Val))
			if err != nil {
				continue
			}
			links = append(links, base.ResolveReference(ref).String())
		}
	}
}

// selectPriceFiles filters links down to price-file URLs, de-duplicates
// them preserving order, and applies the full-over-incremental preference.
func selectPriceFiles(links []string) []string {
	var full, incremental []string
	seen := make(map[string]bool)

	for _, link := range links {
		if seen[link] {
			continue
		}
		name := strings.ToLower(fileName(link))
		switch {
		case strings.HasPrefix(name, "pricefull"):
			seen[link] = true
			full = append(full, link)
		case strings.HasPrefix(name, "price"):
			seen[link] = true
			incremental = append(incremental, link)
		}
	}

	if len(full) > 0 {
		return full
	}
	return incremental
}

// fileName returns the last path segment of a URL, ignoring the query.
func fileName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return path.Base(link)
	}
	return path.Base(u.Path)
}
