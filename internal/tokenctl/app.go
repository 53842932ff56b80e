// Package tokenctl holds the commands of the offline token tool
package tokenctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	internalhttp "github.com/klwxsrx/go-token-service/internal/pkg/http"
	"github.com/klwxsrx/go-token-service/internal/pkg/session"
	"github.com/klwxsrx/go-token-service/internal/token"
	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/app/service"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/internal/token/infra/config"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
	"github.com/klwxsrx/go-token-service/pkg/observability"
	"github.com/klwxsrx/go-token-service/pkg/properties"
)

const (
	flagToken          = "token"
	flagUsername       = "username"
	flagUserID         = "user-id"
	flagSecret         = "secret"
	flagTimeoutMinutes = "timeout-minutes"
	flagResourceID     = "resource-id"
	flagURL            = "url"
)

func NewApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "tokenctl",
		Usage:  "Sign, verify and inspect session and link tokens",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "sign",
				Usage: "Sign a session token",
				Flags: []cli.Flag{
					usernameFlag(),
					userIDFlag(true),
					secretFlag(),
					&cli.IntFlag{
						Name:  flagTimeoutMinutes,
						Value: config.DefaultLoginTimeoutMinutes,
						Usage: "Session lifetime in minutes",
					},
				},
				Action: sign,
			},
			{
				Name:   "verify",
				Usage:  "Verify a session token against the expected identity",
				Flags:  []cli.Flag{tokenFlag(), usernameFlag(), userIDFlag(true), secretFlag()},
				Action: verify,
			},
			{
				Name:   "inspect",
				Usage:  "Print the claims of a session token without checking the signature",
				Flags:  []cli.Flag{tokenFlag()},
				Action: inspect,
			},
			{
				Name:   "sign-link",
				Usage:  "Sign a link token",
				Flags:  []cli.Flag{resourceIDFlag(), userIDFlag(false), secretFlag()},
				Action: signLink,
			},
			{
				Name:   "verify-link",
				Usage:  "Check a link token against a resource and an optional user",
				Flags:  []cli.Flag{tokenFlag(), resourceIDFlag(), userIDFlag(false), secretFlag()},
				Action: verifyLink,
			},
			{
				Name:  "remote-verify",
				Usage: "Verify a session token with a running token service",
				Flags: []cli.Flag{
					tokenFlag(),
					&cli.StringFlag{
						Name:     flagURL,
						Usage:    "Token service base url",
						EnvVars:  []string{"TOKEN_SERVICE_URL"},
						Required: true,
					},
				},
				Action: remoteVerify,
			},
		},
	}
}

func sign(c *cli.Context) error {
	info, err := domain.NewTokenInfo(c.String(flagUsername), c.Int64(flagUserID))
	if err != nil {
		return err
	}

	tokenCodec := newCodec(map[string]any{config.LoginTimeoutKey: c.Int(flagTimeoutMinutes)})
	encoded, err := tokenCodec.Sign(c.Context, info, codec.Secret(c.String(flagSecret)))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, encoded)
	return err
}

func verify(c *cli.Context) error {
	info, err := domain.NewTokenInfo(c.String(flagUsername), c.Int64(flagUserID))
	if err != nil {
		return err
	}

	err = newCodec(nil).Verify(c.Context, codec.EncodedToken(c.String(flagToken)), info, codec.Secret(c.String(flagSecret)))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, "ok")
	return err
}

func inspect(c *cli.Context) error {
	info, err := newCodec(nil).TokenInfoByToken(codec.EncodedToken(c.String(flagToken)))
	if err != nil {
		return err
	}

	return json.NewEncoder(c.App.Writer).Encode(tokenInfoOut{
		Username: info.Username,
		UserID:   info.UserID,
	})
}

func signLink(c *cli.Context) error {
	scope := domain.LinkScope{ResourceID: c.String(flagResourceID)}
	if c.IsSet(flagUserID) {
		userID := c.Int64(flagUserID)
		scope.UserID = &userID
	}

	encoded, err := newCodec(nil).SignLink(c.Context, scope, codec.Secret(c.String(flagSecret)))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, encoded)
	return err
}

func verifyLink(c *cli.Context) error {
	var userID *int64
	if c.IsSet(flagUserID) {
		id := c.Int64(flagUserID)
		userID = &id
	}

	linkService := service.NewLink(
		newCodec(nil),
		lazy.Value(codec.Secret(c.String(flagSecret))),
		metric.NewMetricsStub(),
		log.NewStub(),
	)
	valid, err := linkService.VerifyLink(c.Context, service.LinkToken(c.String(flagToken)), c.String(flagResourceID), userID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, valid)
	return err
}

func remoteVerify(c *cli.Context) error {
	clientFactory := internalhttp.NewClientFactory(
		observability.New(),
		metric.NewMetricsStub(),
		log.NewStub(),
	)
	verifier := session.NewVerifier(clientFactory.InitClient(internalhttp.DestinationTokenService, c.String(flagURL)))

	identity, err := verifier.Verify(c.Context, c.String(flagToken))
	if err != nil {
		return err
	}

	return json.NewEncoder(c.App.Writer).Encode(tokenInfoOut{
		Username: identity.Username,
		UserID:   identity.UserID,
	})
}

// newCodec builds the codec on top of command line settings, nil values fall back to the defaults
func newCodec(values map[string]any) codec.Codec {
	props := properties.NewMapProvider(values)
	return token.CodecProvider(config.NewSettingsLoader(lazy.Value(props))).MustLoad()
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{Name: flagToken, Aliases: []string{"t"}, Usage: "Encoded token", Required: true}
}

func usernameFlag() cli.Flag {
	return &cli.StringFlag{Name: flagUsername, Aliases: []string{"u"}, Usage: "Username claim", Required: true}
}

func userIDFlag(required bool) cli.Flag {
	return &cli.Int64Flag{Name: flagUserID, Usage: "User id claim", Required: required}
}

func secretFlag() cli.Flag {
	return &cli.StringFlag{Name: flagSecret, Aliases: []string{"s"}, Usage: "HMAC secret", EnvVars: []string{"TOKEN_SECRET"}, Required: true}
}

func resourceIDFlag() cli.Flag {
	return &cli.StringFlag{Name: flagResourceID, Aliases: []string{"r"}, Usage: "Linked resource id", Required: true}
}

type tokenInfoOut struct {
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
}
