package fetch

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// A rate limit expressed as N requests per second
type Limit = rate.Limit

// Unlimited disables request rate limiting.
const Unlimited = rate.Inf

// Every converts the provided duration into a number of requests per second
// for instance Every(100 * time.Millisecond) will yield 10 requests per second
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a Client via the New function.
type Opts struct {
	// Limit is the rate limit expressed in requests per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// Timeout bounds each request including the wait for a token. Zero means
	// no timeout.
	Timeout time.Duration
	// HTTPClient performs the requests. http.DefaultClient when nil.
	HTTPClient *http.Client
}

// DefaultOpts allows 10 requests per second with a 10 second timeout.
func DefaultOpts() Opts {
	return Opts{
		Limit:   Every(100 * time.Millisecond),
		Burst:   1,
		Timeout: 10 * time.Second,
	}
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("fetch limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("fetch burst must be 1 or greater")
	}

	if o.Timeout < 0 {
		panic("fetch timeout must be 0 or greater")
	}
}
