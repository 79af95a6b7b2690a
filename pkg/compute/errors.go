package compute

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/cloudres/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrNotFound       = errors.New("no resource matches")
	ErrAmbiguous      = errors.New("more than one resource matches")
)

// APIError is a non-2xx response from the compute API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == constants.HTTPStatusNotFound
	}

	return false
}

// faultBody is the error envelope used by the API, keyed by fault name:
// {"itemNotFound": {"message": "...", "code": 404}}.
type faultBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// parseError builds an *APIError from an error response. Bodies that are not
// a fault envelope are used verbatim as the message.
func parseError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err == nil {
		apiErr.Message = messageFrom(envelope)
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}

func messageFrom(envelope map[string]json.RawMessage) string {
	if raw, ok := envelope["message"]; ok {
		var message string
		if json.Unmarshal(raw, &message) == nil {
			return message
		}
	}

	for _, raw := range envelope {
		var fault faultBody
		if json.Unmarshal(raw, &fault) == nil && fault.Message != "" {
			return fault.Message
		}
	}

	return ""
}
