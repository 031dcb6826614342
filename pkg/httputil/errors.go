package httputil

import "errors"

var (
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
	ErrInvalidUUID        = errors.New("the specified resource ID is not a valid UUID")
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
)
