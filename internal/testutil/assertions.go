package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies an {"error": ...} body with the expected status.
// The body must not also carry an "errors" list.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var body map[string]json.RawMessage
	AssertJSONResponse(t, resp, &body)

	var message string
	require.Contains(t, body, "error")
	require.NoError(t, json.Unmarshal(body["error"], &message))
	assert.Equal(t, expectedMessage, message, "error message mismatch")
	assert.NotContains(t, body, "errors")
}

// AssertValidationErrorResponse verifies a 400 with a non-empty {"errors": [...]} body
func AssertValidationErrorResponse(t *testing.T, resp *http.Response) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unexpected status code")

	var body map[string]json.RawMessage
	AssertJSONResponse(t, resp, &body)

	var messages []string
	require.Contains(t, body, "errors")
	require.NoError(t, json.Unmarshal(body["errors"], &messages))
	assert.NotEmpty(t, messages)
	assert.NotContains(t, body, "error")
}
