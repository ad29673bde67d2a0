package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs err unless it is an expected client error (not found, invalid input, conflict...).
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrInternal) || apperrors.Kind(err) == "internal" {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
}

// RequireCaller rejects calls made without an authenticated caller.
func (s *BaseService) RequireCaller(callerID string) error {
	if callerID == "" {
		return apperrors.NewUnauthenticatedError("authentication required")
	}
	return nil
}

// AuthorizeCompanyMember checks that the caller belongs to the company.
func (s *BaseService) AuthorizeCompanyMember(ctx context.Context, callerID string, companyID int64) error {
	if s.CompanyAuthorizer == nil {
		s.LogError(ctx, errors.New("no company authorizer configured"), "Denying company access",
			slog.Int64("company_id", companyID))
		return apperrors.NewForbiddenError("company access cannot be verified")
	}
	return s.CompanyAuthorizer.AuthorizeMember(ctx, callerID, companyID)
}
