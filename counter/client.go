package counter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudresume/visitors/models"
)

var errMissingCount = errors.New("new_count missing from response")

// Logger receives request traces. logxi loggers satisfy it.
type Logger interface {
	Debug(msg string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

type Client struct {
	endpoint string
	http     *http.Client
	log      Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client. The default has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(l Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Increment posts an empty JSON object to the endpoint and returns the
// new_count it answers with. Failures are *TransportError, *NetworkError or
// *ParseError.
func (c *Client) Increment(ctx context.Context) (models.Count, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return 0, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.logAndDo(req)
	if err != nil {
		return 0, &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, &NetworkError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	return parseCount(body)
}

func (c *Client) logAndDo(req *http.Request) (*http.Response, error) {
	c.log.Debug("sending increment", "method", req.Method, "url", req.URL.String())

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	c.log.Debug("received response", "status", res.StatusCode)
	return res, nil
}

func parseCount(body []byte) (models.Count, error) {
	var payload models.CountResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, &ParseError{Body: body, Err: err}
	}
	if payload.NewCount == nil {
		return 0, &ParseError{Body: body, Err: errMissingCount}
	}

	return models.Count(*payload.NewCount), nil
}
