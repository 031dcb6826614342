package httperrors

// HTTPError is the response body for endpoints that only return an error.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
