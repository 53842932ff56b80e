package http

import (
	"fmt"

	pkgenv "github.com/klwxsrx/go-token-service/pkg/env"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
	pkglog "github.com/klwxsrx/go-token-service/pkg/log"
	pkgmetric "github.com/klwxsrx/go-token-service/pkg/metric"
	pkgobservability "github.com/klwxsrx/go-token-service/pkg/observability"
	pkgstrings "github.com/klwxsrx/go-token-service/pkg/strings"
)

const DestinationTokenService pkghttp.Destination = "token"

type ClientFactory struct {
	observer pkgobservability.Observer
	metrics  pkgmetric.Metrics
	logger   pkglog.Logger
}

func NewClientFactory(
	observer pkgobservability.Observer,
	metrics pkgmetric.Metrics,
	logger pkglog.Logger,
) *ClientFactory {
	return &ClientFactory{
		observer: observer,
		metrics:  metrics,
		logger:   logger,
	}
}

// MustInitClient reads the base url from <DESTINATION>_SERVICE_URL
func (f *ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	return f.InitClient(dest, pkgenv.Must(pkgenv.Parse[string](hostEnv)), extraOpts...)
}

func (f *ClientFactory) InitClient(dest pkghttp.Destination, baseURL string, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	opts := append([]pkghttp.ClientOption{
		pkghttp.WithBaseURL(baseURL),
		pkghttp.WithRequestObservability(f.observer, RequestIDHeader),
		pkghttp.WithRequestLogging(dest, f.logger, pkglog.LevelInfo, pkglog.LevelWarn),
		pkghttp.WithRequestMetrics(dest, f.metrics),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}
