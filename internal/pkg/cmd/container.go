package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/klwxsrx/go-token-service/internal/pkg/auth"
	commonhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	pkgauth "github.com/klwxsrx/go-token-service/pkg/auth"
	"github.com/klwxsrx/go-token-service/pkg/cmd"
	"github.com/klwxsrx/go-token-service/pkg/env"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
	"github.com/klwxsrx/go-token-service/pkg/observability"
	"github.com/klwxsrx/go-token-service/pkg/properties"
	"github.com/klwxsrx/go-token-service/pkg/sql"
)

const (
	metricsNamespace       = "dataease"
	propertiesEnvNamespace = "DATAEASE"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[pkghttp.Server]
	HTTPClientFactory lazy.Loader[*commonhttp.ClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Properties        lazy.Loader[properties.Provider]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	prometheus := prometheusProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheus.Load() })
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(prometheus, observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Properties:        propertiesProvider(),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusProvider() lazy.Loader[*metric.Prometheus] {
	return lazy.New(func() (*metric.Prometheus, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel := env.Must(env.ParseWithDefault("LOG_LEVEL", "info"))
		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func propertiesProvider() lazy.Loader[properties.Provider] {
	return lazy.New(func() (properties.Provider, error) {
		opts := []properties.Option{properties.WithEnvNamespace(propertiesEnvNamespace)}

		path := env.Must(env.ParseOptional[*string]("PROPERTIES_FILE"))
		if path != nil {
			opts = append([]properties.Option{properties.WithFile(*path)}, opts...)
		}

		props, err := properties.Load(opts...)
		if err != nil {
			return nil, fmt.Errorf("load properties: %w", err)
		}

		return props, nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 10)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	prometheus lazy.Loader[*metric.Prometheus],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", pkghttp.DefaultServerAddress))
		return pkghttp.NewServer(
			address,
			pkghttp.WithHealthCheck(nil),
			pkghttp.WithRawHandler(http.MethodGet, "/metrics", prometheus.MustLoad().Handler()),
			pkghttp.WithCORSHandler(),
			pkghttp.WithObservability(
				observer.MustLoad(),
				pkghttp.NewHTTPHeaderRequestIDExtractor(commonhttp.RequestIDHeader),
				pkghttp.NewRandomUUIDRequestIDExtractor(),
			),
			pkghttp.WithMetrics(metrics.MustLoad()),
			pkghttp.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
			pkghttp.WithErrorMapping(map[int][]error{
				http.StatusUnauthorized: {pkgauth.ErrUnauthenticated},
			}),
			pkghttp.WithAuth[auth.Principal](auth.NewProvider(), commonhttp.UserIDTokenProvider),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*commonhttp.ClientFactory] {
	return lazy.New(func() (*commonhttp.ClientFactory, error) {
		return commonhttp.NewClientFactory(
			observer.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}
