package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

const (
	DefaultProbeTimeout = 30 * time.Second
	DefaultUserAgent    = "site-monitor-bot/1.0"

	// bodies are drained up to this size so keep-alive connections can be reused
	maxDrainBytes = 64 << 10
)

// HTTPChecker probes endpoints with a single GET request each.
type HTTPChecker struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	now       func() time.Time
}

func NewHTTPChecker(client *http.Client, timeout time.Duration, userAgent string) *HTTPChecker {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPChecker{
		client:    client,
		timeout:   timeout,
		userAgent: userAgent,
		now:       time.Now,
	}
}

// Probe never fails: transport errors are reported as an unreachable outcome
func (c *HTTPChecker) Probe(ctx context.Context, url string) dal.Outcome {
	res := dal.Outcome{URL: url, CheckedAt: c.now()}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Status = dal.Unreachable
		res.Cause = fmt.Sprintf("create request: %v", err)
		return res
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	res.Latency = time.Since(start)
	if err != nil {
		res.Status = dal.Unreachable
		res.Cause = err.Error()
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	res.Code = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		res.Status = dal.Healthy
	} else {
		res.Status = dal.Unhealthy
	}
	return res
}
