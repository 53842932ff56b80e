//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Link=Link"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	internalauth "github.com/klwxsrx/go-token-service/internal/pkg/auth"
	"github.com/klwxsrx/go-token-service/internal/token/app/codec"
	"github.com/klwxsrx/go-token-service/internal/token/domain"
	"github.com/klwxsrx/go-token-service/pkg/auth"
	"github.com/klwxsrx/go-token-service/pkg/lazy"
	"github.com/klwxsrx/go-token-service/pkg/log"
	"github.com/klwxsrx/go-token-service/pkg/metric"
)

var ErrInvalidResourceID = errors.New("invalid resource id")

type (
	Link interface {
		IssueLink(ctx context.Context, resourceID string, bindToUser bool) (LinkToken, error)
		// VerifyLink reports false for any invalid token, errors are returned only when verification could not run
		VerifyLink(ctx context.Context, token LinkToken, resourceID string, userID *int64) (bool, error)
	}

	LinkToken string

	linkService struct {
		codec      codec.Codec
		linkSecret lazy.Loader[codec.Secret]
		metrics    metric.Metrics
		logger     log.Logger
	}
)

func NewLink(
	tokenCodec codec.Codec,
	linkSecret lazy.Loader[codec.Secret],
	metrics metric.Metrics,
	logger log.Logger,
) Link {
	return &linkService{
		codec:      tokenCodec,
		linkSecret: linkSecret,
		metrics:    metrics,
		logger:     logger,
	}
}

func (s *linkService) IssueLink(ctx context.Context, resourceID string, bindToUser bool) (LinkToken, error) {
	principal, err := auth.GetPrincipal[internalauth.Principal](ctx)
	if err != nil {
		return "", err
	}
	if principal.UserID == nil {
		return "", auth.ErrUnauthenticated
	}

	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return "", fmt.Errorf("%w: resource id must be not empty", ErrInvalidResourceID)
	}

	secret, err := s.linkSecret.Load()
	if err != nil {
		return "", fmt.Errorf("load link secret: %w", err)
	}

	scope := domain.LinkScope{ResourceID: resourceID}
	if bindToUser {
		scope.UserID = principal.UserID
	}

	token, err := s.codec.SignLink(ctx, scope, secret)
	if err != nil {
		return "", fmt.Errorf("sign link token: %w", err)
	}

	s.metrics.Increment("token_link_issued_total")
	return LinkToken(token), nil
}

func (s *linkService) VerifyLink(ctx context.Context, token LinkToken, resourceID string, userID *int64) (bool, error) {
	secret, err := s.linkSecret.Load()
	if err != nil {
		return false, fmt.Errorf("load link secret: %w", err)
	}

	err = s.codec.VerifyLink(ctx, codec.EncodedToken(token), domain.LinkScope{ResourceID: resourceID, UserID: userID}, secret)
	if errors.Is(err, codec.ErrLinkVerificationFailed) {
		s.metrics.WithLabel("result", "invalid").Increment("token_link_verification_total")
		s.logger.WithError(err).WithField("resourceID", resourceID).Warn(ctx, "link token rejected")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify link token: %w", err)
	}

	s.metrics.WithLabel("result", "success").Increment("token_link_verification_total")
	return true, nil
}
