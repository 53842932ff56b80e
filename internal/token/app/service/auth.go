//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Authentication=Authentication"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/app/encoding"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	errSessionTokenWithoutExpiration = errors.New("session token has no expiration")
)

type (
	Authentication interface {
		Register(ctx context.Context, login, password string) (int64, error)
		Authenticate(ctx context.Context, login, password string) (SessionTokenData, error)
		VerifyAuthentication(context.Context, SessionToken) (domain.TokenInfo, error)
		InspectSessionToken(SessionToken) (domain.TokenInfo, error)
	}

	SessionTokenData struct {
		Token     SessionToken
		ValidTill time.Time
	}

	SessionToken string

	authenticationService struct {
		credentialRepo  domain.CredentialRepository
		codec           codec.Codec
		passwordEncoder encoding.PasswordEncoder
		metrics         metric.Metrics
		logger          log.Logger
	}
)

func NewAuthentication(
	credentialRepo domain.CredentialRepository,
	tokenCodec codec.Codec,
	passwordEncoder encoding.PasswordEncoder,
	metrics metric.Metrics,
	logger log.Logger,
) Authentication {
	return &authenticationService{
		credentialRepo:  credentialRepo,
		codec:           tokenCodec,
		passwordEncoder: passwordEncoder,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *authenticationService) Register(ctx context.Context, login, password string) (int64, error) {
	login, password, ok := normalizeCredentials(login, password)
	if !ok {
		return 0, fmt.Errorf("%w: login and password must be not empty", ErrInvalidCredentials)
	}

	hash, err := s.passwordEncoder.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.credentialRepo.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("get next credential id: %w", err)
	}

	err = s.credentialRepo.Store(ctx, &domain.Credential{
		UserID:     id,
		Username:   login,
		SecretHash: hash,
	})
	if err != nil {
		return 0, fmt.Errorf("store credential: %w", err)
	}

	return id, nil
}

func (s *authenticationService) Authenticate(ctx context.Context, login, password string) (SessionTokenData, error) {
	login, password, ok := normalizeCredentials(login, password)
	if !ok {
		return SessionTokenData{}, auth.ErrUnauthenticated
	}

	credential, err := s.credentialRepo.FindOne(ctx, domain.FindCredentialSpecification{Usernames: []string{login}})
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return SessionTokenData{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return SessionTokenData{}, fmt.Errorf("find credential by login: %w", err)
	}

	if !s.passwordEncoder.CompareHash(credential.SecretHash, password) {
		return SessionTokenData{}, auth.ErrUnauthenticated
	}

	token, err := s.codec.Sign(ctx, credential.TokenInfo(), codec.Secret(credential.SecretHash))
	if err != nil {
		return SessionTokenData{}, fmt.Errorf("sign session token: %w", err)
	}

	expiresAt, err := s.codec.ExpiresAt(token)
	if err != nil {
		return SessionTokenData{}, fmt.Errorf("read session token expiration: %w", err)
	}
	if expiresAt == nil {
		return SessionTokenData{}, errSessionTokenWithoutExpiration
	}

	s.metrics.Increment("token_session_issued_total")
	return SessionTokenData{
		Token:     SessionToken(token),
		ValidTill: *expiresAt,
	}, nil
}

func (s *authenticationService) VerifyAuthentication(ctx context.Context, token SessionToken) (domain.TokenInfo, error) {
	claimed, err := s.codec.TokenInfoByToken(codec.EncodedToken(token))
	if err != nil {
		s.verificationFailed(ctx, "malformed", err)
		return domain.TokenInfo{}, auth.ErrUnauthenticated
	}

	credential, err := s.credentialRepo.FindOne(ctx, domain.FindCredentialSpecification{UserIDs: []int64{claimed.UserID}})
	if errors.Is(err, domain.ErrCredentialNotFound) {
		s.verificationFailed(ctx, "unknown_user", err)
		return domain.TokenInfo{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return domain.TokenInfo{}, fmt.Errorf("find credential by id: %w", err)
	}

	err = s.codec.Verify(ctx, codec.EncodedToken(token), credential.TokenInfo(), codec.Secret(credential.SecretHash))
	if errors.Is(err, codec.ErrVerificationFailed) {
		s.verificationFailed(ctx, "invalid", err)
		return domain.TokenInfo{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return domain.TokenInfo{}, fmt.Errorf("verify session token: %w", err)
	}

	s.metrics.WithLabel("result", "success").Increment("token_session_verification_total")
	return credential.TokenInfo(), nil
}

func (s *authenticationService) InspectSessionToken(token SessionToken) (domain.TokenInfo, error) {
	return s.codec.TokenInfoByToken(codec.EncodedToken(token))
}

func (s *authenticationService) verificationFailed(ctx context.Context, result string, err error) {
	s.metrics.WithLabel("result", result).Increment("token_session_verification_total")
	s.logger.WithError(err).WithField("result", result).Warn(ctx, "session token rejected")
}

// normalizeCredentials folds the login only, password whitespace is significant
func normalizeCredentials(login, password string) (string, string, bool) {
	login = strings.ToLower(strings.TrimSpace(login))
	return login, password, login != "" && password != ""
}
