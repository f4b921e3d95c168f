package http

import (
	"net/http"
	"strings"

	"lendbridge/pkg/apperror"

	"github.com/labstack/echo/v4"
)

// statusOf maps coded usecase errors onto HTTP statuses.
func statusOf(err error) int {
	switch apperror.CodeOf(err) {
	case apperror.CodeValidation:
		return http.StatusBadRequest
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeInvalidState, apperror.CodeConflict:
		return http.StatusConflict
	case apperror.CodePrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		// never leak driver/database detail to the client
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
