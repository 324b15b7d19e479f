package api

import (
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds every outbound call, including all retries of it.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries retries a call on a network error or a 5xx answer.
	DefaultMaxRetries = 3

	defaultBackoff = time.Second
)

// RetryTransport retries requests on network errors and 5xx responses with a
// linear backoff (1s, 2s, 3s). Requests whose body cannot be replayed are
// issued exactly once.
type RetryTransport struct {
	Base       http.RoundTripper
	MaxRetries int
	Backoff    time.Duration
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	maxRetries := t.MaxRetries
	if req.Body != nil && req.GetBody == nil {
		maxRetries = 0
	}

	backoff := t.Backoff
	if backoff == 0 {
		backoff = defaultBackoff
	}

	var resp *http.Response
	var err error
	for attempt := 0; ; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		resp, err = base.RoundTrip(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		if attempt >= maxRetries {
			return resp, err
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(time.Duration(attempt+1) * backoff):
		}
	}
}

// NewHTTPClient returns the client used for calls to the remote platforms.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: &RetryTransport{MaxRetries: DefaultMaxRetries},
	}
}

// NewHTTPClientWithoutRetry returns a bounded client that never retries. The
// webhook forwarding call uses it so the webhook acknowledgment is not held up
// by a backoff loop.
func NewHTTPClientWithoutRetry() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
