package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/oncoflow/mobilecore/domain"
)

// Config holds the wire settings of the fasthttp client.
type Config struct {
	// BaseURL is the backend origin including any API prefix.
	BaseURL string
	// RequestTimeout applies when the caller's context has no earlier deadline.
	RequestTimeout time.Duration
	UserAgent      string
}

// Client is the production Transport over fasthttp.
type Client struct {
	base    string
	timeout time.Duration
	agent   string
	http    *fasthttp.Client
	logger  *zap.Logger
}

// NewClient builds a Transport talking to cfg.BaseURL.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:    cfg.BaseURL,
		timeout: timeout,
		agent:   cfg.UserAgent,
		http: &fasthttp.Client{
			Name:                cfg.UserAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		logger: logger,
	}
}

// RoundTrip transmits the descriptor and copies the response out of fasthttp's
// pooled buffers before returning it.
func (c *Client) RoundTrip(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	freq := fasthttp.AcquireRequest()
	fresp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(freq)
	defer fasthttp.ReleaseResponse(fresp)

	freq.SetRequestURI(c.buildURI(req))
	freq.Header.SetMethod(req.Method)
	freq.Header.SetContentType("application/json")
	if c.agent != "" {
		freq.Header.SetUserAgent(c.agent)
	}
	for k, v := range req.Header {
		freq.Header.Set(k, v)
	}

	if req.Body != nil {
		body, err := encodeBody(req.Body)
		if err != nil {
			return nil, err
		}
		freq.SetBody(body)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(freq, fresp, deadline); err != nil {
		c.logger.Debug("transport error",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return nil, err
	}

	resp := &domain.Response{
		StatusCode: fresp.StatusCode(),
		Body:       append([]byte(nil), fresp.Body()...),
		Header:     map[string]string{},
	}
	fresp.Header.VisitAll(func(key, value []byte) {
		resp.Header[string(key)] = string(value)
	})
	return resp, nil
}

func (c *Client) buildURI(req domain.Request) string {
	uri := c.base + req.Path
	if len(req.Query) == 0 {
		return uri
	}
	values := url.Values{}
	for k, v := range req.Query {
		values.Set(k, v)
	}
	return fmt.Sprintf("%s?%s", uri, values.Encode())
}

// encodeBody accepts the dispatcher's pre-encoded payload, or encodes a plain
// value for callers driving the transport directly.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(b)
	}
}
