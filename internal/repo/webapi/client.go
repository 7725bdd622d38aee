package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Egor213/LogiBoard/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout       = 10 * time.Second
	DefaultRateLimit     = 20
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 500 * time.Millisecond

	maxErrorBody = 512
)

// Client talks to the log analytics REST service.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	attempts   int
	retryDelay time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithRetry sets how many times an idempotent request is attempted in total.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.attempts = attempts
		c.retryDelay = delay
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("invalid base url %q", baseURL))
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		attempts:   DefaultRetryAttempts,
		retryDelay: DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.RawPath = c.baseURL.EscapedPath() + path
	u.Path, _ = url.PathUnescape(u.RawPath)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// get performs an idempotent GET and retries it on network failures and
// retryable statuses.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		err = c.do(ctx, http.MethodGet, path, query, nil, out)
		if err == nil || !repoerrs.IsRetryable(err) || attempt == c.attempts {
			break
		}

		log.WithFields(log.Fields{
			"endpoint": path,
			"attempt":  attempt,
			"error":    err,
		}).Debug("Retrying request to log service")

		select {
		case <-ctx.Done():
			return &repoerrs.NetworkError{Endpoint: path, Err: ctx.Err()}
		case <-time.After(c.retryDelay):
		}
	}
	return err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &repoerrs.NetworkError{Endpoint: path, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &repoerrs.NetworkError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &repoerrs.FetchError{
			Status:   resp.StatusCode,
			Message:  msg,
			Endpoint: path,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errorsUtils.WrapPathErr(fmt.Errorf("decode %s: %w", path, err))
	}

	return nil
}
