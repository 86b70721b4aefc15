package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/reading"
	"github.com/at-ishikawa/increader/internal/srs"
)

const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

var errInternal = errors.New("internal error")

// respondServiceError maps service errors to HTTP statuses. Internal details are logged, not returned.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, learning.ErrNotFound), errors.Is(err, document.ErrNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, srs.ErrInvalidGrade),
		errors.Is(err, srs.ErrUnknownTreatment),
		errors.Is(err, reading.ErrInvalidRating),
		errors.Is(err, reading.ErrInvalidProgress),
		errors.Is(err, learning.ErrNoCloze):
		RespondError(c, http.StatusBadRequest, CodeInvalidArgument, err)
	default:
		slog.Default().Error("request failed",
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		RespondError(c, http.StatusInternalServerError, CodeInternal, errInternal)
	}
}

func respondBadRequest(c *gin.Context, err error) {
	RespondError(c, http.StatusBadRequest, CodeInvalidArgument, err)
}
