package token

import (
	"errors"

	"github.com/klwxsrx/go-token-service/internal/pkg/cmd"
	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/app/encoding"
	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/internal/token/infra"
	"github.com/klwxsrx/go-token-service/internal/token/infra/config"
	"github.com/klwxsrx/go-token-service/internal/token/infra/http"
	"github.com/klwxsrx/go-token-service/internal/token/infra/jwt"
	"github.com/klwxsrx/go-token-service/internal/token/infra/password"
	pkghttp "github.com/klwxsrx/go-token-service/pkg/http"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
	"github.com/klwxsrx/go-token-service/pkg/properties"
	"github.com/klwxsrx/go-token-service/pkg/sql"
	pkgtime "github.com/klwxsrx/go-token-service/pkg/time"
)

const passwordHashCost = 10

var errLinkSecretNotConfigured = errors.New(config.LinkSecretKey + " is not configured")

type DependencyContainer struct {
	Codec       lazy.Loader[codec.Codec]
	AuthService lazy.Loader[service.Authentication]
	LinkService lazy.Loader[service.Link]

	registerCredentialHandler   lazy.Loader[http.RegisterCredentialHandler]
	authenticateHandler         lazy.Loader[http.AuthenticateHandler]
	verifyAuthenticationHandler lazy.Loader[http.VerifyAuthenticationHandler]
	tokenInfoHandler            lazy.Loader[http.TokenInfoHandler]
	issueLinkHandler            lazy.Loader[http.IssueLinkHandler]
	verifyLinkHandler           lazy.Loader[http.VerifyLinkHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	props lazy.Loader[properties.Provider],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)

	settings := config.NewSettingsLoader(props)
	tokenCodec := CodecProvider(settings)
	passwordEncoder := passwordEncoderProvider()

	authService := authServiceProvider(sqlContainer, tokenCodec, passwordEncoder, metrics, logger)
	linkService := linkServiceProvider(tokenCodec, settings, metrics, logger)

	return DependencyContainer{
		Codec:       tokenCodec,
		AuthService: authService,
		LinkService: linkService,
		registerCredentialHandler: lazy.New(func() (http.RegisterCredentialHandler, error) {
			return http.NewRegisterCredentialHandler(authService.MustLoad()), nil
		}),
		authenticateHandler: lazy.New(func() (http.AuthenticateHandler, error) {
			return http.NewAuthenticateHandler(authService.MustLoad()), nil
		}),
		verifyAuthenticationHandler: lazy.New(func() (http.VerifyAuthenticationHandler, error) {
			return http.NewVerifyAuthenticationHandler(authService.MustLoad()), nil
		}),
		tokenInfoHandler: lazy.New(func() (http.TokenInfoHandler, error) {
			return http.NewTokenInfoHandler(authService.MustLoad()), nil
		}),
		issueLinkHandler: lazy.New(func() (http.IssueLinkHandler, error) {
			return http.NewIssueLinkHandler(linkService.MustLoad()), nil
		}),
		verifyLinkHandler: lazy.New(func() (http.VerifyLinkHandler, error) {
			return http.NewVerifyLinkHandler(linkService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.registerCredentialHandler.MustLoad())
	registry.Register(c.authenticateHandler.MustLoad())
	registry.Register(c.verifyAuthenticationHandler.MustLoad())
	registry.Register(c.tokenInfoHandler.MustLoad())
	registry.Register(c.issueLinkHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
	registry.Register(c.verifyLinkHandler.MustLoad())
}

// CodecProvider builds the jwt codec on top of the given settings, tokenctl shares it
func CodecProvider(settings lazy.Loader[config.Settings]) lazy.Loader[codec.Codec] {
	return lazy.New(func() (codec.Codec, error) {
		return jwt.NewCodec(settings, pkgtime.NewAdjustableClock()), nil
	})
}

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(passwordHashCost), nil
	})
}

func authServiceProvider(
	sqlContainer lazy.Loader[infra.SQLContainer],
	tokenCodec lazy.Loader[codec.Codec],
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			sqlContainer.MustLoad().CredentialRepo.MustLoad(),
			tokenCodec.MustLoad(),
			passwordEncoder.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad().WithField("domain", domain.Name),
		), nil
	})
}

func linkServiceProvider(
	tokenCodec lazy.Loader[codec.Codec],
	settings lazy.Loader[config.Settings],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Link] {
	return lazy.New(func() (service.Link, error) {
		return service.NewLink(
			tokenCodec.MustLoad(),
			LinkSecretProvider(settings),
			metrics.MustLoad(),
			logger.MustLoad().WithField("domain", domain.Name),
		), nil
	})
}

// LinkSecretProvider fails on first use when no link secret is configured
func LinkSecretProvider(settings lazy.Loader[config.Settings]) lazy.Loader[codec.Secret] {
	return lazy.New(func() (codec.Secret, error) {
		s, err := settings.Load()
		if err != nil {
			return "", err
		}
		if s.LinkSecret == "" {
			return "", errLinkSecretNotConfigured
		}

		return s.LinkSecret, nil
	})
}
