package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Error represents an HTTP error response from the LeakRadar API.
type Error struct {
	StatusCode int
	Detail     string
	Body       map[string]any
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// parseError builds an *Error from a non-2xx response. The remote reports
// failures as a JSON object with a "detail" field; when the body is not
// JSON, the raw text becomes the detail.
func parseError(resp *resty.Response) error {
	e := &Error{StatusCode: resp.StatusCode()}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		e.Body = body
		if detail, ok := body["detail"].(string); ok {
			e.Detail = detail
		}
	} else {
		e.Detail = strings.TrimSpace(string(resp.Body()))
	}

	return e
}
