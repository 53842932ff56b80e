package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	"github.com/klwxsrx/go-token-service/pkg/properties"
)

const (
	LoginTimeoutKey = "dataease.login_timeout"
	LinkSecretKey   = "dataease.link_secret"

	DefaultLoginTimeoutMinutes = 480
)

var ErrInvalidSettings = errors.New("invalid token settings")

type Settings struct {
	LoginTimeout time.Duration
	LinkSecret   codec.Secret
}

// NewSettingsLoader reads the settings once per loader, a failed read of the properties or of the settings is kept as well
func NewSettingsLoader(props lazy.Loader[properties.Provider]) lazy.Loader[Settings] {
	return lazy.New(func() (Settings, error) {
		p, err := props.Load()
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}

		return LoadSettings(p)
	})
}

func LoadSettings(props properties.Provider) (Settings, error) {
	minutes, err := props.Int(LoginTimeoutKey, DefaultLoginTimeoutMinutes)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if minutes <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSettings, LoginTimeoutKey, minutes)
	}

	return Settings{
		LoginTimeout: time.Duration(minutes) * time.Minute,
		LinkSecret:   codec.Secret(props.String(LinkSecretKey, "")),
	}, nil
}
