package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/pkg/apperrors"
)

func respond(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return rec
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrSessionExpired, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrStudentNotFound, http.StatusNotFound},
		{apperrors.ErrPostNotFound, http.StatusNotFound},
		{apperrors.ErrEnrollmentNotFound, http.StatusNotFound},
		{apperrors.ErrLikeNotFound, http.StatusNotFound},
		{apperrors.ErrStudentExists, http.StatusConflict},
		{apperrors.ErrLinkExists, http.StatusConflict},
		{apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{apperrors.ErrAlreadyLiked, http.StatusConflict},
		{apperrors.ErrSelfLink, http.StatusBadRequest},
		{apperrors.ErrEmptyComment, http.StatusBadRequest},
		{apperrors.ErrInvalidTarget, http.StatusBadRequest},
		{apperrors.ErrInvalidRating, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := respond(tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.JSONEq(t, `{"error":"`+tc.err.Error()+`"}`, rec.Body.String())
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	rec := respond(apperrors.NewInvalidRequestError("title is required"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"title is required"}`, rec.Body.String())

	rec = respond(apperrors.NewNotFoundError("campus not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"campus not found"}`, rec.Body.String())
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	rec := respond(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
