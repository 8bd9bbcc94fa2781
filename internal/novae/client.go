package novae

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a minimal client for the Novae salepoints menu API. The upstream
// serves one JSON array of menu items per salepoint per day; the device trust
// model skips certificate verification unless told otherwise.
type Client struct {
	hc      *http.Client
	baseURL string
	key     string
	lang    string
}

type Options struct {
	BaseURL     string // e.g. https://api.mynovae.ch
	Key         string // Novae-Codes header value
	Lang        string // URL language segment, e.g. "en"
	InsecureTLS bool
	Timeout     time.Duration
}

const (
	maxAttempts = 3
	retryGap    = 2 * time.Second
)

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: opts.InsecureTLS},
	}
	return &Client{
		hc:      &http.Client{Timeout: opts.Timeout, Transport: tr},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		key:     opts.Key,
		lang:    opts.Lang,
	}
}

// LunchTitles fetches the menu for one salepoint and date (YYYY-MM-DD) and
// returns the raw titles of the lunch ("midi") items in source order. English
// titles win over French; items with neither are dropped. A transport failure
// is retried up to maxAttempts with a short gap; any HTTP status ends retries
// and only 200 yields a body parse.
func (c *Client) LunchTitles(ctx context.Context, salepoint, date string) ([]string, error) {
	url := fmt.Sprintf("%s/%s/api/v2/salepoints/%s/menus/%s", c.baseURL, c.lang, salepoint, date)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu fetch %s: status %d", date, resp.StatusCode)
	}

	var titles []string
	err = scanMenuArray(resp.Body, func(it item) {
		if strings.ToLower(it.Model.Service) != "midi" {
			return
		}
		switch {
		case it.Title.En != "":
			titles = append(titles, it.Title.En)
		case it.Title.Fr != "":
			titles = append(titles, it.Title.Fr)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("menu fetch %s: %w", date, err)
	}
	return titles, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryGap):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Novae-Codes", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Requested-With", "xmlhttprequest")

		resp, err := c.hc.Do(req)
		if err == nil {
			// Any status code ends the retry loop.
			return resp, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no response after %d attempts: %w", maxAttempts, lastErr)
}
