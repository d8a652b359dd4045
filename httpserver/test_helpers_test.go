package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(readBody(t, rec), target)
	require.NoError(t, err, "failed to decode response body")
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeJSON(t, rec, &body)
	return body["message"]
}

func readBody(t *testing.T, rec *httptest.ResponseRecorder) []byte {
	t.Helper()
	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return raw
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func newAdminRequest(method, target, body string) *http.Request {
	request := newJSONRequest(method, target, body)
	request.Header.Set("role", "admin")
	return request
}
