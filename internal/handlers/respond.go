package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

var statusByKind = map[string]int{
	"unauthenticated": http.StatusUnauthorized,
	"forbidden":       http.StatusForbidden,
	"not_found":       http.StatusNotFound,
	"conflict":        http.StatusConflict,
	"invalid_input":   http.StatusBadRequest,
	"internal":        http.StatusInternalServerError,
}

// respondWithError writes the error envelope for err. Internal failures are logged and masked.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.Kind(err)
	status := statusByKind[kind]

	if kind == "internal" {
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(status, dto.NewErrorEnvelope(kind, internalErrorMessage))
		return
	}

	message := err.Error()
	body := dto.NewErrorEnvelope(kind, message)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body.Error.Message = appErr.Message
		if appErr.Details != nil {
			body.Data = appErr.Details
		}
	}
	logger.Warn("Request rejected", slog.String("kind", kind), slog.String("error", message))
	c.JSON(status, body)
}

// respondBindError reports a body or query that failed to bind or validate.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).
		Warn("Failed to bind request", slog.String("error", err.Error()))
	body := dto.NewErrorEnvelope("invalid_input", "invalid request")
	if fields := middleware.FormatValidationErrors(err); fields != nil {
		body.Error.Message = "validation failed"
		body.Error.Fields = fields
	} else {
		body.Error.Message = "invalid request: " + err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// callerID returns the authenticated user id, answering 401 itself when there is none.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope("unauthenticated", "Unauthorized"))
		return "", false
	}
	return userID, true
}

// int64Param parses a numeric path parameter, answering 400 itself when it is malformed.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope("invalid_input", "invalid "+name))
		return 0, false
	}
	return id, true
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, dto.NewDataEnvelope(data))
}
