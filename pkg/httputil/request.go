package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
//
// Values of the wrong type are reported with the name of the field so
// that clients can fix their request. All other decoding errors are
// reported as ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		field := typeError.Field
		if field == "" {
			field = "body"
		}
		return fmt.Errorf("%w: %s must be of type %s, got %s", ErrInvalidBody, field, typeError.Type, typeError.Value)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("binding request body")
	return ErrInvalidBody
}

// UUIDFromString parses a UUID from a query or path parameter.
// gin cannot bind uuid.UUID from forms. The empty string parses to
// the nil UUID.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}

	return u, nil
}
