package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hivebudget/backend/internal/config"
	"github.com/hivebudget/backend/pkg/router"
	"github.com/stretchr/testify/require"
)

// requestBody encodes a test request body. Strings and byte slices are
// sent as they are, readers are streamed and everything else is sent
// as JSON.
func requestBody(t *testing.T, body any) io.Reader {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(b)
	case []byte:
		return bytes.NewReader(b)
	case io.Reader:
		return b
	default:
		encoded, err := json.Marshal(b)
		require.Nil(t, err, "encoding the request body")
		return bytes.NewReader(encoded)
	}
}

// Request sends a request through a router configured from the
// environment and returns the recorded response. Every request uses a
// fresh router so that tests can change the environment in between.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	cfg, err := config.Load()
	require.Nil(t, err, "loading the configuration")

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err, "configuring the router")
	defer teardown()

	router.AttachRoutes(cfg, r.Group(cfg.APIURL.Path))

	req := httptest.NewRequest(method, url, requestBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the JSON body of the response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "decoding %q into %T, request id %s", r.Body.String(), target, r.Header().Get("x-request-id"))
}

// AssertHTTPStatus stops the test unless the response has one of the
// expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	t.Helper()
	require.Contains(t, expectedStatus, r.Code, "unexpected status, request id %s, body %s", r.Header().Get("x-request-id"), r.Body.String())
}
