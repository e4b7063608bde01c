package connector

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newHTTPClient(cfg Config) *resty.Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", ua).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
}
