// Package fetch retrieves JSON documents over HTTP. Each request runs on its
// own goroutine and is delivered as a Result; nothing is returned as a bare
// error.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/time/rate"

	"github.com/ib-77/outcome/internal/decode"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
	"github.com/ib-77/outcome/pkg/rop/try"
)

var log = logging.Logger("fetch")

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Code)
}

type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

func New(opts Opts) *Client {
	opts.validate()

	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{
		http:    hc,
		limiter: rate.NewLimiter(opts.Limit, opts.Burst),
		timeout: opts.Timeout,
	}
}

// JSON fetches url and decodes the body as a JSON object. ctx cancels the
// request itself; the returned channel always receives exactly one Result.
func (c *Client) JSON(ctx context.Context, url string) <-chan rop.Of[decode.Document] {
	return try.Async(func() (decode.Document, error) {
		return c.get(ctx, url)
	})
}

// All fetches every url concurrently. The i-th Result belongs to urls[i].
func (c *Client) All(ctx context.Context, urls []string) []rop.Of[decode.Document] {
	pending := make([]<-chan rop.Of[decode.Document], len(urls))
	for i, u := range urls {
		pending[i] = c.JSON(ctx, u)
	}

	res := make([]rop.Of[decode.Document], len(urls))
	for i, ch := range pending {
		res[i] = solo.TeeErr(<-ch, func(err error) {
			if rop.IsCancellationError(err) {
				log.Warnf("GET %s gave up: %v", urls[i], err)
				return
			}
			log.Errorf("GET %s failed: %v", urls[i], err)
		})
	}
	return res
}

func (c *Client) get(ctx context.Context, url string) (decode.Document, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	doc := decode.Reader[decode.Document](resp.Body)
	return doc.Result(), doc.Err()
}
