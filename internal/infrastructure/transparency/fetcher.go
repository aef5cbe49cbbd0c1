package transparency

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/pricepulse/backend/internal/domain"
)

const userAgent = "PricePulse/1.0"

// gzipMagic is the two-byte signature at the start of every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// FetchFile downloads a single price file and returns its contents as text.
//
// The retailer serves some files gzip-compressed and some plain; the payload
// is sniffed by its magic bytes rather than trusting Content-Type, so a
// plain-text payload is never run through the decompressor.
func (c *Client) FetchFile(ctx context.Context, fileURL string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d for %s", domain.ErrDownloadFailed, resp.StatusCode, fileURL)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrDownloadFailed, err)
	}

	text, err := decodePayload(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}

	if c.debug {
		log.Printf("[FETCH] %s: %d bytes payload, %d bytes text", fileURL, len(payload), len(text))
	}

	return text, nil
}

// decodePayload returns the payload as text, transparently decompressing
// gzip-compressed payloads.
func decodePayload(payload []byte) (string, error) {
	if !bytes.HasPrefix(payload, gzipMagic) {
		return string(payload), nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gzip header: %v", err)
	}
	defer zr.Close()

	text, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("gzip decompress: %v", err)
	}
	return string(text), nil
}
