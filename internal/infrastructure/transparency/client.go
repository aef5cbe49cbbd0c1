// Package transparency implements the retailer price-transparency source:
// discovering published price files on the retailer's listing page,
// downloading them (with transparent gzip decompression), and parsing item
// records out of their semi-structured contents.
package transparency

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the retailer's price-transparency publication.
// It implements domain.PriceSource.
type Client struct {
	httpClient  *http.Client
	listingURL  string
	rateLimiter *rate.Limiter
	debug       bool
}

// Options configures the transparency client.
type Options struct {
	Timeout           time.Duration // per-request HTTP timeout
	RequestsPerSecond float64       // outbound throttle toward the retailer host
}

// NewClient creates a client for the given listing page URL.
func NewClient(listingURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	// Small burst so a crawl's first few downloads start immediately.
	limiter := rate.NewLimiter(rate.Limit(rps), 4)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		listingURL:  listingURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}
