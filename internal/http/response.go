package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// DecodeResponse reads and closes resp.Body and interprets it the way JSON
// calls do. A nil out selects void mode: failures still produce an
// *dispatch.APIError, but a successful body is ignored.
func DecodeResponse(resp *http.Response, out interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	return interpret(resp, body, out)
}

func interpret(resp *http.Response, body []byte, out interface{}) error {
	isJSON := isJSONContent(resp.Header)

	if !isSuccess(resp.StatusCode) {
		return newAPIError(resp, body, isJSON)
	}

	if out == nil {
		return nil
	}

	if !isJSON {
		return newAPIError(resp, nil, false)
	}

	err := json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

func newAPIError(resp *http.Response, body []byte, isJSON bool) *dispatch.APIError {
	apiErr := &dispatch.APIError{
		StatusCode: resp.StatusCode,
		Message:    statusPhrase(resp),
	}

	if isJSON && len(body) > 0 {
		var decoded interface{}

		if json.Unmarshal(body, &decoded) == nil {
			apiErr.Body = decoded
		}
	}

	return apiErr
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func isJSONContent(header http.Header) bool {
	return strings.Contains(strings.ToLower(header.Get(constants.HeaderContentType)), constants.ContentTypeJSON)
}

// statusPhrase strips the numeric code from resp.Status ("404 Not Found").
func statusPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}

	return phrase
}
