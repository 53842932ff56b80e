package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/internal/token/infra/config"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	pkgtime "github.com/klwxsrx/go-token-service/pkg/time"
)

var (
	ErrEmptySecret   = errors.New("secret is empty")
	ErrClaimMismatch = errors.New("claim mismatch")
)

var signingMethod = jwt.SigningMethodHS256

type tokenCodec struct {
	settings lazy.Loader[config.Settings]
	clock    pkgtime.Clock
	parser   *jwt.Parser
}

func NewCodec(settings lazy.Loader[config.Settings], clock pkgtime.Clock) codec.Codec {
	return tokenCodec{
		settings: settings,
		clock:    clock,
		parser:   jwt.NewParser(),
	}
}

func (c tokenCodec) Sign(ctx context.Context, info domain.TokenInfo, secret codec.Secret) (codec.EncodedToken, error) {
	info, err := domain.NewTokenInfo(info.Username, info.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", codec.ErrSigningFailed, err)
	}

	settings, err := c.settings.Load()
	if err != nil {
		return "", fmt.Errorf("%w: %w", codec.ErrSigningFailed, err)
	}

	claims := sessionClaims{
		Username: &info.Username,
		UserID:   &info.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.clock.Now(ctx).Add(settings.LoginTimeout)),
		},
	}

	token, err := sign(claims, secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", codec.ErrSigningFailed, err)
	}

	return token, nil
}

func (c tokenCodec) Verify(ctx context.Context, token codec.EncodedToken, expected domain.TokenInfo, secret codec.Secret) error {
	err := c.verify(ctx, token, expected, secret)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrVerificationFailed, err)
	}

	return nil
}

func (c tokenCodec) verify(ctx context.Context, token codec.EncodedToken, expected domain.TokenInfo, secret codec.Secret) error {
	key, err := signingKey(secret)
	if err != nil {
		return err
	}

	err = c.verifySignature(token, key)
	if err != nil {
		return err
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(
		string(token),
		&claims,
		staticKey(key),
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.clock.Now(ctx) }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return err
	}

	if claims.Username == nil || *claims.Username != expected.Username {
		return fmt.Errorf("%w: %s", ErrClaimMismatch, claimUsername)
	}
	if claims.UserID == nil || *claims.UserID != expected.UserID {
		return fmt.Errorf("%w: %s", ErrClaimMismatch, claimUserID)
	}

	return nil
}

// verifySignature checks the algorithm header and the signature alone, claims are not validated here
func (c tokenCodec) verifySignature(token codec.EncodedToken, key []byte) error {
	parts := strings.Split(string(token), ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: token contains %d segments", jwt.ErrTokenMalformed, len(parts))
	}

	decoded, _, err := c.parser.ParseUnverified(string(token), jwt.MapClaims{})
	if err != nil {
		return err
	}
	if decoded.Method.Alg() != signingMethod.Alg() {
		return fmt.Errorf("%w: unexpected signing method %s", jwt.ErrTokenSignatureInvalid, decoded.Method.Alg())
	}

	signature, err := c.parser.DecodeSegment(parts[2])
	if err != nil {
		return fmt.Errorf("%w: decode signature: %w", jwt.ErrTokenMalformed, err)
	}

	err = signingMethod.Verify(strings.Join(parts[:2], "."), signature, key)
	if err != nil {
		return fmt.Errorf("%w: %w", jwt.ErrTokenSignatureInvalid, err)
	}

	return nil
}

func (c tokenCodec) TokenInfoByToken(token codec.EncodedToken) (domain.TokenInfo, error) {
	var claims sessionClaims
	_, _, err := c.parser.ParseUnverified(string(token), &claims)
	if err != nil {
		return domain.TokenInfo{}, fmt.Errorf("%w: %w", codec.ErrMalformedToken, err)
	}

	if claims.Username == nil || *claims.Username == "" {
		return domain.TokenInfo{}, fmt.Errorf("%w: %s claim is missing", codec.ErrMalformedToken, claimUsername)
	}
	if claims.UserID == nil {
		return domain.TokenInfo{}, fmt.Errorf("%w: %s claim is missing", codec.ErrMalformedToken, claimUserID)
	}

	return domain.TokenInfo{
		Username: *claims.Username,
		UserID:   *claims.UserID,
	}, nil
}

func (c tokenCodec) ExpiresAt(token codec.EncodedToken) (*time.Time, error) {
	var claims jwt.RegisteredClaims
	_, _, err := c.parser.ParseUnverified(string(token), &claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return nil, nil
	}

	return &claims.ExpiresAt.Time, nil
}

func (c tokenCodec) SignLink(_ context.Context, scope domain.LinkScope, secret codec.Secret) (codec.EncodedToken, error) {
	return sign(linkClaims{
		ResourceID: &scope.ResourceID,
		UserID:     scope.UserID,
	}, secret)
}

func (c tokenCodec) VerifyLink(ctx context.Context, token codec.EncodedToken, expected domain.LinkScope, secret codec.Secret) error {
	err := c.verifyLink(ctx, token, expected, secret)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrLinkVerificationFailed, err)
	}

	return nil
}

func (c tokenCodec) verifyLink(ctx context.Context, token codec.EncodedToken, expected domain.LinkScope, secret codec.Secret) error {
	key, err := signingKey(secret)
	if err != nil {
		return err
	}

	var claims linkClaims
	_, err = jwt.ParseWithClaims(
		string(token),
		&claims,
		staticKey(key),
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.clock.Now(ctx) }),
	)
	if err != nil {
		return err
	}

	if claims.ResourceID == nil || *claims.ResourceID != expected.ResourceID {
		return fmt.Errorf("%w: %s", ErrClaimMismatch, claimResourceID)
	}

	// a link bound to a user never matches a scope without one
	switch {
	case expected.UserID == nil && claims.UserID != nil,
		expected.UserID != nil && (claims.UserID == nil || *claims.UserID != *expected.UserID):
		return fmt.Errorf("%w: %s", ErrClaimMismatch, claimUserID)
	}

	return nil
}

func sign(claims jwt.Claims, secret codec.Secret) (codec.EncodedToken, error) {
	key, err := signingKey(secret)
	if err != nil {
		return "", err
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return codec.EncodedToken(token), nil
}

func signingKey(secret codec.Secret) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return []byte(secret), nil
}

func staticKey(key []byte) jwt.Keyfunc {
	return func(*jwt.Token) (any, error) {
		return key, nil
	}
}
