package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// New writes an HTTPError with the formatted message.
func New(c *gin.Context, status int, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	c.JSON(status, HTTPError{Error: msg})
}

// Status returns the HTTP status code for an error.
//
// Errors that are not known to be caused by the server or by
// authorization are validation errors.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrPlanLimit):
		return http.StatusPaymentRequired
	}

	return http.StatusBadRequest
}

// Message returns the message for the error that is sent to the client.
//
// Server errors include the request ID so that administrators can find
// the cause in the logs.
func Message(c *gin.Context, err error) string {
	if Status(err) == http.StatusInternalServerError {
		return fmt.Sprintf("%s, please contact your server administrator. The request id is '%s', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c))
	}

	return err.Error()
}

// Handler writes the error with the matching status code.
func Handler(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(status, HTTPError{
		Error: Message(c, err),
	})
}
