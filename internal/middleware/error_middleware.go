package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every error body
// uses the single-field {"error": ...} envelope.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(status, dto.NewErrorResponse(apperrors.ErrInternal.Error()))
		return
	}
	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrSessionRequired),
		errors.Is(err, apperrors.ErrSessionInvalid),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrLinkNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrClassNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrLikeNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrStudentExists),
		errors.Is(err, apperrors.ErrLinkExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrAlreadyLiked):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidRequest),
		errors.Is(err, apperrors.ErrSelfLink),
		errors.Is(err, apperrors.ErrEmptyComment),
		errors.Is(err, apperrors.ErrInvalidTarget),
		errors.Is(err, apperrors.ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
