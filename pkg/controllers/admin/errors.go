package admin

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httperrors"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	return httperrors.Status(err)
}

// message returns the error message sent to the client.
func message(c *gin.Context, err error) *string {
	if status(err) == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	s := httperrors.Message(c, err)
	return &s
}

var errNoID = errors.New("no ID specified, the nil UUID is not a valid ID")
