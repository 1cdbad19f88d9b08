package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TestContext drives a running mortar server over HTTP and holds the last
// response for the assertion steps. Scenarios are read-only against the
// server, so a single context is shared across the suite.
type TestContext struct {
	baseURL string
	client  *http.Client

	status int
	body   []byte
}

// NewTestContext creates a context targeting the server at baseURL.
func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears the recorded response between scenarios.
func (tc *TestContext) Reset() {
	tc.status = 0
	tc.body = nil
}

// GET performs a GET request against the server and records the response.
func (tc *TestContext) GET(path string) error {
	resp, err := tc.client.Get(tc.baseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response of GET %s: %w", path, err)
	}
	tc.status = resp.StatusCode
	tc.body = body
	return nil
}

// Status returns the status code of the last response.
func (tc *TestContext) Status() int {
	return tc.status
}

// GetResponseField returns a top-level field from the last JSON response.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(tc.body, &payload); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	value, ok := payload[field]
	if !ok {
		return nil, fmt.Errorf("response has no field %q", field)
	}
	return value, nil
}

// DecodeResponse unmarshals the last response body into v.
func (tc *TestContext) DecodeResponse(v interface{}) error {
	return json.Unmarshal(tc.body, v)
}
