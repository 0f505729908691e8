package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	readRetries     = 2
	readRetryWait   = 200 * time.Millisecond
	readRetryMaxGap = 2 * time.Second
)

// NewAPIClient returns a JSON client for the diary API rooted at baseURL.
//
// Reads are retried when the server is briefly unavailable (502, 503, 504).
// Writes are never retried: a comment or todo that reached the server before
// the gateway timed out would otherwise be stored twice.
func NewAPIClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(readRetries).
		SetRetryWaitTime(readRetryWait).
		SetRetryMaxWaitTime(readRetryMaxGap).
		AddRetryCondition(retryUnavailableRead)
}

func retryUnavailableRead(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
