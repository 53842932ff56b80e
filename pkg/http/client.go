package http

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
	"github.com/klwxsrx/go-token-service/pkg/observability"
)

type (
	Destination string

	ClientOption func(*resty.Client)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	client struct {
		impl *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	impl := resty.New()
	for _, opt := range opts {
		opt(impl)
	}

	return client{impl: impl}
}

func (c client) NewRequest(ctx context.Context) *resty.Request {
	return c.impl.NewRequest().SetContext(ctx)
}

func WithBaseURL(url string) ClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *resty.Client) {
		c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(dest Destination, logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			level := infoLevel
			if resp.IsError() {
				level = errorLevel
			}

			logger.With(log.Fields{
				"destination":  string(dest),
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
				"duration":     resp.Time().String(),
			}).Log(resp.Request.Context(), level, "request sent")
			return nil
		})
		c.OnError(func(req *resty.Request, err error) {
			logger.WithError(err).With(log.Fields{
				"destination": string(dest),
				"method":      req.Method,
				"url":         req.URL,
			}).Log(req.Context(), errorLevel, "request failed")
		})
	}
}

func WithRequestMetrics(dest Destination, metrics metric.Metrics) ClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": string(dest),
				"method":      resp.Request.Method,
				"code":        strconv.Itoa(resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}
