package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*HTTPError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	httpErr := &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}

	var payload ErrorPayload
	if httpErr.Body != "" && json.Unmarshal([]byte(httpErr.Body), &payload) == nil && payload.Error != "" {
		httpErr.Payload = &payload
	}

	return httpErr
}

// mapTransportError wraps an error returned by resty before any response
// was received.
func mapTransportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrServerUnreachable, err)
}
