//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorEnvelope mirrors the body written by httperr.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status code and, when target is non-nil,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"response body did not decode: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and the error envelope. An empty
// expectedMessage only verifies the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env),
		"error body is not the standard envelope: %s", w.Body.String())

	if expectedMessage != "" {
		assert.Contains(t, env.Error.Message, expectedMessage)
	}
}
